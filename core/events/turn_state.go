package events

const (
	// KindTurnCompleted identifies successful turn completion.
	KindTurnCompleted Kind = "turn_state.completed"
	// KindTurnFailed identifies turn failure.
	KindTurnFailed Kind = "turn_state.failed"
)

// TurnCompleted marks successful completion of the current turn. It is always
// the last event of a successful turn.
type TurnCompleted struct{ Base }

// NewTurnCompleted creates a turn completed event.
func NewTurnCompleted() TurnCompleted {
	return TurnCompleted{Base: NewBase(KindTurnCompleted)}
}

// TurnFailed marks failure of the current turn. It terminates the sequence;
// TurnCompleted is not emitted after it.
type TurnFailed struct {
	Base
	Message string
}

// NewTurnFailed creates a turn failed event.
func NewTurnFailed(message string) TurnFailed {
	return TurnFailed{Base: NewBase(KindTurnFailed), Message: message}
}
