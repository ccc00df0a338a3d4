// Package chat holds the platform-neutral shapes of inbound requests and
// outbound replies. Prefix commands and slash interactions both reach the
// command router through the Request interface.
package chat

import "context"

// Colors used by embeds
const (
	ColorRed     = 0xE74C3C
	ColorBlurple = 0x5865F2
	ColorGold    = 0xF1C40F
	ColorGreen   = 0x2ECC71
	ColorPurple  = 0x9B59B6
	ColorOrange  = 0xE67E22
)

// Field is one named block inside an embed
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed is a rich card
type Embed struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Color       int     `json:"color,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Footer      string  `json:"footer,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// AddField appends a field and returns the embed for chaining
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, Field{Name: name, Value: value, Inline: inline})
	return e
}

// ButtonStyle is the look of a button
type ButtonStyle string

// Button styles
const (
	ButtonSuccess ButtonStyle = "success"
	ButtonDanger  ButtonStyle = "danger"
	ButtonPrimary ButtonStyle = "primary"
)

// Button is a clickable component. ID comes back on a component
// interaction as the custom id.
type Button struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Style    ButtonStyle `json:"style"`
	Disabled bool        `json:"disabled,omitempty"`
}

// Response is a reply to one request
type Response struct {
	Content   string   `json:"content,omitempty"`
	Embed     *Embed   `json:"embed,omitempty"`
	Buttons   []Button `json:"buttons,omitempty"`
	Ephemeral bool     `json:"ephemeral,omitempty"`
}

// Text is a plain public reply
func Text(content string) *Response {
	return &Response{Content: content}
}

// Private is a reply only the caller sees
func Private(content string) *Response {
	return &Response{Content: content, Ephemeral: true}
}

// Card is a public embed reply
func Card(e *Embed) *Response {
	return &Response{Embed: e}
}

// Announcement is an unsolicited channel message
type Announcement struct {
	GuildID   string   `json:"guild_id,omitempty"`
	ChannelID string   `json:"channel_id"`
	Content   string   `json:"content,omitempty"`
	Embed     *Embed   `json:"embed,omitempty"`
	Buttons   []Button `json:"buttons,omitempty"`
}

// Sink delivers announcements to a channel
type Sink interface {
	Announce(ctx context.Context, a *Announcement) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, a *Announcement) error

// Announce calls f
func (f SinkFunc) Announce(ctx context.Context, a *Announcement) error {
	return f(ctx, a)
}

// Request is one inbound command. Respond may be called more than once;
// later calls are follow ups.
type Request interface {
	AuthorID() string
	GuildID() string
	ChannelID() string
	Respond(ctx context.Context, r *Response) error
}
