package llms

// Turn is a single role-tagged message in the conversation history.
// A Turn is immutable once created.
type Turn struct {
	Role    TurnRole
	Content string
}

type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)
