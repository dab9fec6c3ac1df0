package orchestration

import (
	"github.com/jinzhu/copier"
	"github.com/polliant/megagent-core/core/llms"
)

// history is the bounded ordered log of past turns for one session.
// Not safe for concurrent use on its own; the orchestrator guards access.
type history struct {
	maxTurns int
	turns    []llms.Turn
}

func newHistory(maxTurns int) *history {
	return &history{maxTurns: maxTurns}
}

// append records one exchange. The user and assistant turns are appended
// together and eviction trims whole oldest entries first, so the bound can
// never split a pairing in a way that drops a user turn but keeps its
// assistant turn ahead of it.
func (h *history) append(userMessage, assistantMessage string) {
	h.turns = append(h.turns,
		llms.Turn{Role: llms.TurnRoleUser, Content: userMessage},
		llms.Turn{Role: llms.TurnRoleAssistant, Content: assistantMessage},
	)

	if over := len(h.turns) - h.maxTurns; over > 0 {
		h.turns = h.turns[over:]
	}
}

// window returns a deep copy of up to n of the most recent turns,
// oldest first.
func (h *history) window(n int) []llms.Turn {
	start := len(h.turns) - n
	if start < 0 {
		start = 0
	}

	var turns []llms.Turn
	copier.Copy(&turns, h.turns[start:])
	return turns
}

// snapshot returns a deep copy of all retained turns, oldest first.
func (h *history) snapshot() []llms.Turn {
	var turns []llms.Turn
	copier.Copy(&turns, h.turns)
	return turns
}

func (h *history) clear() {
	h.turns = nil
}

func (h *history) len() int {
	return len(h.turns)
}
