// Package console runs the game in a terminal. The operator plays as one
// local user in a single local guild and channel; typed lines go through
// the same dispatcher a chat bridge uses.
package console

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gateway"
)

// Local identities used when none are configured
const (
	DefaultUserID    = "console-user"
	DefaultGuildID   = "console-guild"
	DefaultChannelID = "console-channel"
)

// inboxSize bounds replies waiting for the UI
const inboxSize = 256

// Config holds dependencies for the console
type Config struct {
	Frames    gateway.FrameHandler
	UserID    string
	GuildID   string
	ChannelID string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Frames == nil {
		vb.RequiredField("Frames")
	}

	return vb.Build()
}

// Console is both the reply target and the announcement sink for the
// local session
type Console struct {
	frames    gateway.FrameHandler
	userID    string
	guildID   string
	channelID string

	inbox chan tea.Msg
	seq   atomic.Int64
}

// New creates a console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &Console{
		frames:    cfg.Frames,
		userID:    cfg.UserID,
		guildID:   cfg.GuildID,
		channelID: cfg.ChannelID,
		inbox:     make(chan tea.Msg, inboxSize),
	}
	if c.userID == "" {
		c.userID = DefaultUserID
	}
	if c.guildID == "" {
		c.guildID = DefaultGuildID
	}
	if c.channelID == "" {
		c.channelID = DefaultChannelID
	}
	return c, nil
}

// replyMsg carries a reply into the UI
type replyMsg struct {
	response *chat.Response
}

// announceMsg carries a channel announcement into the UI
type announceMsg struct {
	announcement *chat.Announcement
}

// Reply implements chat.Replier
func (c *Console) Reply(_ context.Context, r *chat.Reply) error {
	return c.push(replyMsg{response: r.Response})
}

// Announce implements chat.Sink. Other channels are not shown.
func (c *Console) Announce(_ context.Context, a *chat.Announcement) error {
	if a.ChannelID != c.channelID {
		return nil
	}
	return c.push(announceMsg{announcement: a})
}

func (c *Console) push(msg tea.Msg) error {
	select {
	case c.inbox <- msg:
		return nil
	default:
		return gateway.ErrBackpressure
	}
}

// Submit turns one typed line into a frame. Lines starting with "/" are
// slash commands with name:value options; "!N" clicks button N of buttons.
func (c *Console) Submit(ctx context.Context, line string, buttons []chat.Button) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	id := fmt.Sprintf("local-%d", c.seq.Add(1))

	var frame *gateway.Frame
	switch {
	case strings.HasPrefix(line, "!"):
		var n int
		if _, err := fmt.Sscanf(line[1:], "%d", &n); err != nil || n < 1 || n > len(buttons) {
			return errors.InvalidArgument("No such button.")
		}
		frame = &gateway.Frame{Type: gateway.FrameComponent, Interaction: c.interaction(id)}
		frame.Interaction.CustomID = buttons[n-1].ID
	case strings.HasPrefix(line, "/"):
		fields := strings.Fields(line[1:])
		if len(fields) == 0 {
			return errors.InvalidArgument("Type a command after /.")
		}
		frame = &gateway.Frame{Type: gateway.FrameCommand, Interaction: c.interaction(id)}
		frame.Interaction.Command = fields[0]
		frame.Interaction.Options = map[string]string{}
		for _, f := range fields[1:] {
			if k, v, ok := strings.Cut(f, ":"); ok {
				frame.Interaction.Options[k] = v
			}
		}
	default:
		frame = &gateway.Frame{Type: gateway.FrameMessage, Message: &chat.Message{
			ID:        id,
			AuthorID:  c.userID,
			GuildID:   c.guildID,
			ChannelID: c.channelID,
			Content:   line,
		}}
	}
	return c.frames.HandleFrame(ctx, frame, c)
}

func (c *Console) interaction(id string) *chat.Interaction {
	return &chat.Interaction{
		ID:        id,
		AuthorID:  c.userID,
		GuildID:   c.guildID,
		ChannelID: c.channelID,
	}
}

// wait blocks for the next reply or announcement
func (c *Console) wait() tea.Cmd {
	return func() tea.Msg {
		return <-c.inbox
	}
}

// Run starts the terminal UI and blocks until the operator quits
func (c *Console) Run(ctx context.Context) error {
	program := tea.NewProgram(NewModel(ctx, c), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "console failed")
	}
	return nil
}
