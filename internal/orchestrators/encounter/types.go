package encounter

import (
	"time"

	"github.com/KirkDiggler/theta-arc/internal/entities"
)

// DefaultCatchWindow is how long a wild spawn stays catchable
const DefaultCatchWindow = 10 * time.Second

// SpawnInput defines the request for a wild spawn. An empty SpeciesKey
// picks a random species and quietly does nothing when the channel is
// busy; a named species fails instead.
type SpawnInput struct {
	GuildID    string
	ChannelID  string
	SpeciesKey string
}

// SpawnOutput defines the response for a wild spawn
type SpawnOutput struct {
	Spawned bool
	Spawn   entities.Spawn
	Species *entities.Species
}

// CatchInput defines the request for catching the channel's spawn
type CatchInput struct {
	GuildID   string
	ChannelID string
	UserID    string
}

// CatchOutput defines the response for a catch
type CatchOutput struct {
	Spawn    entities.Spawn
	Instance entities.Instance
	Species  *entities.Species
	Reward   entities.Shards
	Balance  entities.Shards
}

// ActiveInput defines the request for a channel's spawn
type ActiveInput struct {
	ChannelID string
}

// ActiveOutput reports the channel's catchable spawn
type ActiveOutput struct {
	Active bool
	Spawn  entities.Spawn
}

// SweepInput defines the request for expiring stale spawns
type SweepInput struct{}

// SweepOutput lists spawns that vanished during the sweep
type SweepOutput struct {
	Vanished []entities.Spawn
}
