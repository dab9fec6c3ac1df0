package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/polliant/megagent-core/core/events"
)

type eventMsg struct {
	event events.Event
}

type streamClosedMsg struct{}

// startTurn drives one orchestration turn on a separate goroutine, bridging
// its events onto ch. The channel is closed when the turn's sequence ends.
func startTurn(ctx context.Context, gateway Gateway, sessionID, message string, ch chan<- tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			defer close(ch)
			for event := range gateway.Process(ctx, sessionID, message) {
				select {
				case ch <- eventMsg{event: event}:
				case <-ctx.Done():
					return
				}
			}
		}()
		return nil
	}
}

// waitForEvent delivers the next bridged message, or streamClosedMsg once the
// turn is over.
func waitForEvent(ch <-chan tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return msg
	}
}
