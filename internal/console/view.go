package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/theta-arc/internal/chat"
)

var styles = struct {
	title    lipgloss.Style
	input    lipgloss.Style
	reply    lipgloss.Style
	announce lipgloss.Style
	err      lipgloss.Style
	embed    lipgloss.Style
	field    lipgloss.Style
	footer   lipgloss.Style
	button   lipgloss.Style
	help     lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#A78BFA")).
		Padding(0, 1),

	input: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7DD3FC")),

	reply: lipgloss.NewStyle(),

	announce: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDE68A")),

	err: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F87171")),

	embed: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#A78BFA")).
		Padding(0, 1),

	field: lipgloss.NewStyle().
		Bold(true),

	footer: lipgloss.NewStyle().
		Faint(true),

	button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34D399")),

	help: lipgloss.NewStyle().
		Faint(true),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Bye!\n"
	}

	blocks := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		blocks = append(blocks, renderEntry(e))
	}

	// keep the newest lines on screen
	transcript := strings.Join(blocks, "\n")
	if m.height > 4 {
		lines := strings.Split(transcript, "\n")
		if limit := m.height - 4; len(lines) > limit {
			lines = lines[len(lines)-limit:]
		}
		transcript = strings.Join(lines, "\n")
	}

	sections := []string{
		styles.title.Render("✨ Theta Arc ✨"),
		transcript,
		styles.input.Render("> " + string(m.input) + "█"),
		styles.help.Render("enter to send • /command key:value • !N clicks a button • esc to quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderEntry(e entry) string {
	var parts []string
	switch e.kind {
	case entryInput:
		return styles.input.Render("> " + e.content)
	case entryError:
		return styles.err.Render(e.content)
	case entryAnnouncement:
		if e.content != "" {
			parts = append(parts, styles.announce.Render(e.content))
		}
	default:
		if e.content != "" {
			parts = append(parts, styles.reply.Render(e.content))
		}
	}
	if e.embed != nil {
		parts = append(parts, renderEmbed(e.embed))
	}
	if len(e.buttons) > 0 {
		parts = append(parts, renderButtons(e.buttons))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderEmbed(e *chat.Embed) string {
	var lines []string
	if e.Title != "" {
		lines = append(lines, styles.field.Render(e.Title))
	}
	if e.Description != "" {
		lines = append(lines, e.Description)
	}
	for _, f := range e.Fields {
		lines = append(lines, styles.field.Render(f.Name), f.Value)
	}
	if e.Footer != "" {
		lines = append(lines, styles.footer.Render(e.Footer))
	}
	return styles.embed.Render(strings.Join(lines, "\n"))
}

func renderButtons(buttons []chat.Button) string {
	labels := make([]string, 0, len(buttons))
	for i, b := range buttons {
		label := fmt.Sprintf("[!%d %s]", i+1, b.Label)
		if b.Disabled {
			label = styles.footer.Render(label)
		} else {
			label = styles.button.Render(label)
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, " ")
}
