package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

type styles struct {
	user      lipgloss.Style
	assistant lipgloss.Style
	media     lipgloss.Style
	errorText lipgloss.Style
	system    lipgloss.Style
	tool      lipgloss.Style
	status    lipgloss.Style
	help      lipgloss.Style
	separator lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		user:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		assistant: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		media:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Underline(true),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		system:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		tool:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		separator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (m Model) View() string {
	if !m.ready {
		return "carregando..."
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.separator.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("enter envia · /clear limpa · esc sai"))
	return b.String()
}

// refreshViewport rebuilds the transcript, including the turn in flight, and
// keeps the view pinned to the latest line.
func (m *Model) refreshViewport() {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(m.renderEntry(e, width))
		b.WriteString("\n\n")
	}

	if m.streaming {
		if m.toolLabel != "" {
			b.WriteString(m.styles.tool.Render(m.toolLabel))
			b.WriteString("\n")
		}
		if partial := m.partial.String(); partial != "" {
			b.WriteString(wordwrap.String(m.styles.assistant.Render(partial), width))
			b.WriteString("\n")
		} else if m.statusLine != "" {
			b.WriteString(m.styles.status.Render(m.statusLine))
			b.WriteString("\n")
		}
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m Model) renderEntry(e entry, width int) string {
	switch e.role {
	case roleUser:
		return m.styles.user.Render("você: ") + wordwrap.String(e.text, width)
	case roleAssistant:
		return wordwrap.String(m.styles.assistant.Render(e.text), width)
	case roleMedia:
		return m.styles.media.Render(e.text)
	case roleError:
		return m.styles.errorText.Render("erro: " + e.text)
	default:
		return m.styles.system.Render(e.text)
	}
}
