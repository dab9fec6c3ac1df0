// Package tui provides the interactive terminal chat driving the
// orchestrator in-process.
package tui

import (
	"context"
	"iter"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	orchestration "github.com/polliant/megagent-core/core"
	"github.com/polliant/megagent-core/core/events"
)

// Gateway is the orchestration surface the chat drives.
type Gateway interface {
	Process(ctx context.Context, sessionID, message string, opts ...orchestration.ProcessOption) iter.Seq[events.Event]
	ClearHistory(sessionID string)
}

// Entry roles for display.
const (
	roleUser      = "user"
	roleAssistant = "assistant"
	roleMedia     = "media"
	roleError     = "error"
	roleSystem    = "system"
)

// Layout lines reserved around the viewport: separator, input, help bar.
const chromeLines = 4

type entry struct {
	role string
	text string
}

// Model is the Bubble Tea model for the chat interface.
type Model struct {
	gateway   Gateway
	sessionID string
	ctx       context.Context

	input    textarea.Model
	viewport viewport.Model
	styles   styles

	entries []entry

	// Streaming state for the turn in flight.
	streaming  bool
	toolLabel  string
	statusLine string
	partial    strings.Builder
	eventCh    chan tea.Msg

	width  int
	height int
	ready  bool
}

func New(ctx context.Context, gateway Gateway) Model {
	input := textarea.New()
	input.Placeholder = "Digite uma mensagem... (/clear limpa o histórico)"
	input.Focus()
	input.CharLimit = 4096
	input.SetHeight(1)
	input.ShowLineNumbers = false
	input.KeyMap.InsertNewline.SetEnabled(false)

	return Model{
		gateway:   gateway,
		sessionID: uuid.NewString(),
		ctx:       ctx,
		input:     input,
		viewport:  viewport.New(80, 20),
		styles:    defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.streaming {
				return m, nil
			}
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.SetWidth(msg.Width)
		m.viewport.Width = msg.Width
		if height := msg.Height - chromeLines; height > 0 {
			m.viewport.Height = height
		}
		m.refreshViewport()

	case eventMsg:
		m = m.applyEvent(msg.event)
		m.refreshViewport()
		return m, waitForEvent(m.eventCh)

	case streamClosedMsg:
		m = m.finishTurn()
		m.refreshViewport()
		return m, nil
	}

	// Keystrokes belong to the input alone so typing never scrolls the
	// transcript; everything else (blink ticks, mouse wheel) fans out.
	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.viewport, viewportCmd = m.viewport.Update(msg)
	}
	return m, tea.Batch(inputCmd, viewportCmd)
}

func (m Model) submit() (Model, tea.Cmd) {
	message := strings.TrimSpace(m.input.Value())
	if message == "" {
		return m, nil
	}
	m.input.Reset()

	if message == "/clear" {
		m.gateway.ClearHistory(m.sessionID)
		m.entries = append(m.entries, entry{role: roleSystem, text: "Histórico limpo."})
		m.refreshViewport()
		return m, nil
	}

	m.entries = append(m.entries, entry{role: roleUser, text: message})
	m.streaming = true
	m.toolLabel = ""
	m.statusLine = ""
	m.partial.Reset()
	m.eventCh = make(chan tea.Msg, 16)
	m.refreshViewport()

	return m, tea.Batch(
		startTurn(m.ctx, m.gateway, m.sessionID, message, m.eventCh),
		waitForEvent(m.eventCh),
	)
}

func (m Model) applyEvent(event events.Event) Model {
	switch e := event.(type) {
	case events.ToolSelected:
		m.toolLabel = e.Label
	case events.Status:
		m.statusLine = e.Message
	case events.ResponseSegment:
		m.partial.WriteString(e.Segment)
	case events.MediaGenerated:
		m.entries = append(m.entries, entry{role: roleMedia, text: e.URL})
	case events.TurnFailed:
		m.entries = append(m.entries, entry{role: roleError, text: e.Message})
	case events.TurnCompleted:
		// finishTurn flushes the accumulated response when the stream closes.
	}
	return m
}

func (m Model) finishTurn() Model {
	if response := m.partial.String(); response != "" {
		m.entries = append(m.entries, entry{role: roleAssistant, text: response})
	}
	m.partial.Reset()
	m.streaming = false
	m.toolLabel = ""
	m.statusLine = ""
	m.eventCh = nil
	return m
}

// Run starts the chat program and blocks until the user quits.
func Run(ctx context.Context, gateway Gateway) error {
	program := tea.NewProgram(New(ctx, gateway), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
