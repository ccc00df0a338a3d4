package console

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// historyLimit caps how many entries the transcript keeps
const historyLimit = 200

// entryKind tags a transcript line
type entryKind int

const (
	entryInput entryKind = iota
	entryReply
	entryAnnouncement
	entryError
)

// entry is one block of the transcript
type entry struct {
	kind    entryKind
	content string
	embed   *chat.Embed
	buttons []chat.Button
}

// Model is the console's bubbletea state
type Model struct {
	ctx      context.Context
	console  *Console
	input    []rune
	entries  []entry
	buttons  []chat.Button
	height   int
	width    int
	Quitting bool
}

// NewModel creates the UI model for c
func NewModel(ctx context.Context, c *Console) Model {
	return Model{ctx: ctx, console: c}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.console.wait()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := string(m.input)
			m.input = nil
			if line == "" {
				return m, nil
			}
			m.append(entry{kind: entryInput, content: line})
			if err := m.console.Submit(m.ctx, line, m.buttons); err != nil {
				m.append(entry{kind: entryError, content: errors.PlayerMessage(err)})
			}
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
		}

	case replyMsg:
		m.show(entryReply, msg.response.Content, msg.response.Embed, msg.response.Buttons)
		return m, m.console.wait()

	case announceMsg:
		a := msg.announcement
		m.show(entryAnnouncement, a.Content, a.Embed, a.Buttons)
		return m, m.console.wait()
	}

	return m, nil
}

// show appends an incoming block. The newest buttons become clickable.
func (m *Model) show(kind entryKind, content string, embed *chat.Embed, buttons []chat.Button) {
	m.append(entry{kind: kind, content: content, embed: embed, buttons: buttons})
	if len(buttons) > 0 {
		m.buttons = buttons
	}
}

func (m *Model) append(e entry) {
	m.entries = append(m.entries, e)
	if len(m.entries) > historyLimit {
		m.entries = m.entries[len(m.entries)-historyLimit:]
	}
}
