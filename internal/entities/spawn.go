package entities

import (
	"time"

	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// SpawnState is the lifecycle of a wild spawn
type SpawnState string

// Spawn states
const (
	SpawnActive   SpawnState = "active"
	SpawnCaught   SpawnState = "caught"
	SpawnVanished SpawnState = "vanished"
)

// Spawn is a wild TAC waiting in a channel
type Spawn struct {
	GuildID   string     `json:"guild_id"`
	ChannelID string     `json:"channel_id"`
	Species   string     `json:"species"`
	State     SpawnState `json:"state"`
	CaughtBy  string     `json:"caught_by,omitempty"`
	SpawnedAt time.Time  `json:"spawned_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Catch moves an active spawn to caught
func (s *Spawn) Catch(userID string, now time.Time) error {
	if s.State != SpawnActive {
		return errors.InvalidState("Too late! This TAC is gone.")
	}
	if !now.Before(s.ExpiresAt) {
		return errors.InvalidState("Too late! It already slipped away.")
	}
	s.State = SpawnCaught
	s.CaughtBy = userID
	return nil
}

// Vanish moves an active spawn to vanished
func (s *Spawn) Vanish() error {
	if s.State != SpawnActive {
		return errors.InvalidStatef("spawn is already %s", s.State)
	}
	s.State = SpawnVanished
	return nil
}

// Open reports whether the spawn can still be caught at now
func (s *Spawn) Open(now time.Time) bool {
	return s.State == SpawnActive && now.Before(s.ExpiresAt)
}
