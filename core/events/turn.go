package events

const (
	// KindToolSelected identifies the capability selection for a turn.
	KindToolSelected Kind = "turn.tool_selected"
	// KindStatus identifies a human-readable progress note.
	KindStatus Kind = "turn.status"
)

// ToolSelected announces which capability will handle the turn. It is always
// the first event of a turn.
type ToolSelected struct {
	Base
	// Label is the display name of the selected capability.
	Label string
	// Capability is the machine-readable capability tag.
	Capability string
}

// NewToolSelected creates a tool selected event.
func NewToolSelected(label, capability string) ToolSelected {
	return ToolSelected{Base: NewBase(KindToolSelected), Label: label, Capability: capability}
}

// Status carries a progress note for the turn. It always follows ToolSelected.
type Status struct {
	Base
	Message string
}

// NewStatus creates a status event.
func NewStatus(message string) Status {
	return Status{Base: NewBase(KindStatus), Message: message}
}
