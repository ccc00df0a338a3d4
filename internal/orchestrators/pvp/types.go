package pvp

import (
	"time"

	"github.com/KirkDiggler/theta-arc/internal/engine"
	"github.com/KirkDiggler/theta-arc/internal/entities"
)

// Challenge tuning
const (
	DefaultTTL = 5 * time.Minute
	LogPreview = 12
)

// Fighter is one side of a resolved duel
type Fighter struct {
	UserID   string
	Instance entities.Instance
	Name     string
}

// ChallengeInput defines the request for challenging another player
type ChallengeInput struct {
	GuildID    string
	ChannelID  string
	UserID     string
	Target     string
	InstanceID int
}

// ChallengeOutput defines the response for a challenge
type ChallengeOutput struct {
	Duel       entities.Duel
	Challenger Fighter
}

// AcceptInput defines the request for accepting a challenge with one of
// the target's instances
type AcceptInput struct {
	DuelID     string
	UserID     string
	InstanceID int
}

// AcceptOutput defines the response for a fought duel
type AcceptOutput struct {
	Duel       entities.Duel
	Challenger Fighter
	Defender   Fighter
	Result     *engine.SimulateDuelOutput
}

// Preview returns the rounds shown to players and whether any were cut
func (o *AcceptOutput) Preview() ([]engine.DuelRound, bool) {
	if o.Result == nil {
		return nil, false
	}
	if len(o.Result.Rounds) <= LogPreview {
		return o.Result.Rounds, false
	}
	return o.Result.Rounds[:LogPreview], true
}

// DeclineInput defines the request for declining a challenge
type DeclineInput struct {
	DuelID string
	UserID string
}

// DeclineOutput defines the response for a declined challenge
type DeclineOutput struct {
	Duel entities.Duel
}

// SweepInput defines the request for expiring stale challenges
type SweepInput struct{}

// SweepOutput lists the challenges that expired, oldest first
type SweepOutput struct {
	Expired []entities.Duel
}
