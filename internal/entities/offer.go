package entities

import (
	"time"

	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// OfferState is the lifecycle shared by trades and duel challenges
type OfferState string

// Offer states
const (
	OfferPending  OfferState = "pending"
	OfferAccepted OfferState = "accepted"
	OfferDeclined OfferState = "declined"
	OfferExpired  OfferState = "expired"
)

// transitionOffer allows only pending offers to resolve
func transitionOffer(current *OfferState, next OfferState) error {
	if *current != OfferPending {
		return errors.InvalidStatef("offer is already %s", *current)
	}
	switch next {
	case OfferAccepted, OfferDeclined, OfferExpired:
		*current = next
		return nil
	default:
		return errors.InvalidStatef("offer cannot move to %s", next)
	}
}

// TradeSide is what one party gives
type TradeSide struct {
	Instances []int  `json:"instances"`
	Shards    Shards `json:"shards"`
}

// IsEmpty reports an offer that gives nothing
func (s TradeSide) IsEmpty() bool {
	return len(s.Instances) == 0 && s.Shards.IsZero()
}

// Trade is an offer from Author to Target. Offer moves Author to Target,
// Want moves Target to Author.
type Trade struct {
	ID        string     `json:"id"`
	GuildID   string     `json:"guild_id"`
	ChannelID string     `json:"channel_id"`
	Author    string     `json:"author"`
	Target    string     `json:"target"`
	Offer     TradeSide  `json:"offer"`
	Want      TradeSide  `json:"want"`
	State     OfferState `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Transition resolves a pending trade
func (t *Trade) Transition(next OfferState) error {
	return transitionOffer(&t.State, next)
}

// Expired reports whether the offer timed out at now
func (t *Trade) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Duel is a PvP challenge waiting for the target's pick
type Duel struct {
	ID                 string     `json:"id"`
	GuildID            string     `json:"guild_id"`
	ChannelID          string     `json:"channel_id"`
	Challenger         string     `json:"challenger"`
	Target             string     `json:"target"`
	ChallengerInstance int        `json:"challenger_instance"`
	State              OfferState `json:"state"`
	CreatedAt          time.Time  `json:"created_at"`
	ExpiresAt          time.Time  `json:"expires_at"`
}

// Transition resolves a pending duel
func (d *Duel) Transition(next OfferState) error {
	return transitionOffer(&d.State, next)
}

// Expired reports whether the challenge timed out at now
func (d *Duel) Expired(now time.Time) bool {
	return !now.Before(d.ExpiresAt)
}
