package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types published on the event bus
const (
	EntityTypePlayer  = "player"
	EntityTypeBoss    = "boss"
	EntityTypeChannel = "channel"
	EntityTypeGuild   = "guild"
)

// Ref is a lightweight core.Entity used as the source or target of game
// events. Events only need an id and a type; the records themselves stay
// inside their services.
type Ref struct {
	ID   string
	Type string
}

// GetID returns the entity id
func (r *Ref) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *Ref) GetType() string {
	return r.Type
}

// Player wraps a user id
func Player(userID string) *Ref {
	return &Ref{ID: userID, Type: EntityTypePlayer}
}

// Boss wraps a guild's boss
func Boss(guildID string) *Ref {
	return &Ref{ID: guildID, Type: EntityTypeBoss}
}

// Guild wraps a guild id
func Guild(guildID string) *Ref {
	return &Ref{ID: guildID, Type: EntityTypeGuild}
}

// Channel wraps a channel id
func Channel(channelID string) *Ref {
	return &Ref{ID: channelID, Type: EntityTypeChannel}
}

var _ core.Entity = (*Ref)(nil)
