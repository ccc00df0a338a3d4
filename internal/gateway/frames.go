// Package gateway connects chat bridges to the game over websocket. A
// bridge forwards platform messages, slash commands and button clicks as
// JSON frames and receives replies and channel announcements back.
package gateway

import (
	"encoding/json"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// FrameType tags every frame on the wire
type FrameType string

// Inbound frames
const (
	FrameMessage   FrameType = "message"
	FrameCommand   FrameType = "command"
	FrameComponent FrameType = "component"
)

// Outbound frames
const (
	FrameHello        FrameType = "hello"
	FrameReply        FrameType = "reply"
	FrameAnnouncement FrameType = "announcement"
	FrameError        FrameType = "error"
)

// Frame is one JSON document on the socket. Which payload field is set
// depends on Type.
type Frame struct {
	Type         FrameType          `json:"type"`
	SessionID    string             `json:"session_id,omitempty"`
	Message      *chat.Message      `json:"message,omitempty"`
	Interaction  *chat.Interaction  `json:"interaction,omitempty"`
	Reply        *chat.Reply        `json:"reply,omitempty"`
	Announcement *chat.Announcement `json:"announcement,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// DecodeFrame parses and checks an inbound frame
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed frame")
	}

	switch f.Type {
	case FrameMessage:
		if f.Message == nil {
			return nil, errors.InvalidArgument("message frame without message")
		}
	case FrameCommand:
		if f.Interaction == nil || f.Interaction.Command == "" {
			return nil, errors.InvalidArgument("command frame without command")
		}
	case FrameComponent:
		if f.Interaction == nil || f.Interaction.CustomID == "" {
			return nil, errors.InvalidArgument("component frame without custom_id")
		}
	default:
		return nil, errors.InvalidArgumentf("unsupported frame type %q", f.Type)
	}
	return &f, nil
}

// EncodeFrame renders an outbound frame
func EncodeFrame(f *Frame) ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode frame")
	}
	return data, nil
}
