package activity

import (
	"time"

	"github.com/KirkDiggler/theta-arc/internal/orchestrators/astral"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
)

// Detector tuning
const (
	RepeatWindow    = 30 * time.Second
	RepeatThreshold = 10
	ThetaWindow     = 10 * time.Second
	ThetaThreshold  = 3
	ScreamCooldown  = 30 * time.Second
	ScreamMinLength = 10
	ScreamMinRatio  = 0.9
	EmojiWindow     = 8 * time.Second
	EmojiThreshold  = 12
)

// Trigger names a detector that fired
type Trigger string

// Triggers
const (
	TriggerRepeat Trigger = "repeat"
	TriggerTheta  Trigger = "theta"
	TriggerScream Trigger = "scream"
	TriggerEmoji  Trigger = "emoji"
	TriggerGIF    Trigger = "gif"
)

// ObserveInput is one inbound chat message. Attachments are file names.
type ObserveInput struct {
	GuildID     string
	ChannelID   string
	UserID      string
	Content     string
	Attachments []string
}

// ObserveOutput reports what the message set off. Spawns and boss
// arrivals are announced through game events; Notices are extra channel
// lines and Caught is a GIF catch.
type ObserveOutput struct {
	Triggered []Trigger
	Notices   []string
	Caught    *encounter.CatchOutput
	Progress  *astral.ProgressOutput
}
