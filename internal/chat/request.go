package chat

import "context"

// Reply is a response addressed to the request that produced it
type Reply struct {
	RequestID string    `json:"request_id"`
	ChannelID string    `json:"channel_id"`
	Response  *Response `json:"response"`
}

// Replier delivers replies back to the platform
type Replier interface {
	Reply(ctx context.Context, r *Reply) error
}

// ReplierFunc adapts a function to Replier
type ReplierFunc func(ctx context.Context, r *Reply) error

// Reply calls f
func (f ReplierFunc) Reply(ctx context.Context, r *Reply) error {
	return f(ctx, r)
}

// Message is an inbound chat message
type Message struct {
	ID          string   `json:"id"`
	AuthorID    string   `json:"author_id"`
	GuildID     string   `json:"guild_id,omitempty"`
	ChannelID   string   `json:"channel_id"`
	Content     string   `json:"content"`
	Attachments []string `json:"attachments,omitempty"`
	Bot         bool     `json:"bot,omitempty"`
}

// MessageRequest answers a prefix command in the channel it came from.
// Channel messages cannot be private, so Ephemeral is dropped.
type MessageRequest struct {
	msg     *Message
	replier Replier
}

// NewMessageRequest wraps msg
func NewMessageRequest(msg *Message, replier Replier) *MessageRequest {
	return &MessageRequest{msg: msg, replier: replier}
}

// AuthorID returns the sender
func (r *MessageRequest) AuthorID() string { return r.msg.AuthorID }

// GuildID returns the guild, empty in direct messages
func (r *MessageRequest) GuildID() string { return r.msg.GuildID }

// ChannelID returns the channel
func (r *MessageRequest) ChannelID() string { return r.msg.ChannelID }

// Content returns the raw message text
func (r *MessageRequest) Content() string { return r.msg.Content }

// Respond posts resp publicly
func (r *MessageRequest) Respond(ctx context.Context, resp *Response) error {
	public := *resp
	public.Ephemeral = false
	return r.replier.Reply(ctx, &Reply{
		RequestID: r.msg.ID,
		ChannelID: r.msg.ChannelID,
		Response:  &public,
	})
}

// Interaction is a slash command or a component click
type Interaction struct {
	ID        string            `json:"id"`
	AuthorID  string            `json:"author_id"`
	GuildID   string            `json:"guild_id,omitempty"`
	ChannelID string            `json:"channel_id"`
	Command   string            `json:"command,omitempty"`
	Options   map[string]string `json:"options,omitempty"`
	CustomID  string            `json:"custom_id,omitempty"`
}

// InteractionRequest answers a slash command or component. Ephemeral
// replies are honored.
type InteractionRequest struct {
	in      *Interaction
	replier Replier
}

// NewInteractionRequest wraps in
func NewInteractionRequest(in *Interaction, replier Replier) *InteractionRequest {
	return &InteractionRequest{in: in, replier: replier}
}

// AuthorID returns the user who invoked the interaction
func (r *InteractionRequest) AuthorID() string { return r.in.AuthorID }

// GuildID returns the guild, empty in direct messages
func (r *InteractionRequest) GuildID() string { return r.in.GuildID }

// ChannelID returns the channel
func (r *InteractionRequest) ChannelID() string { return r.in.ChannelID }

// Command returns the slash command name
func (r *InteractionRequest) Command() string { return r.in.Command }

// Option returns a named slash option
func (r *InteractionRequest) Option(name string) string { return r.in.Options[name] }

// Options returns every slash option
func (r *InteractionRequest) Options() map[string]string { return r.in.Options }

// CustomID returns the clicked component's id
func (r *InteractionRequest) CustomID() string { return r.in.CustomID }

// Respond sends resp, privately when asked
func (r *InteractionRequest) Respond(ctx context.Context, resp *Response) error {
	return r.replier.Reply(ctx, &Reply{
		RequestID: r.in.ID,
		ChannelID: r.in.ChannelID,
		Response:  resp,
	})
}
