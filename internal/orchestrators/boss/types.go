package boss

import "github.com/KirkDiggler/theta-arc/internal/entities"

// TopContributorCount is how many attackers status and defeat report
const TopContributorCount = 3

// SpawnInput defines the request for spawning a boss in a guild. Raid
// binds the boss to a party; only its members may attack.
type SpawnInput struct {
	GuildID   string
	ChannelID string
	Tier      string
	Raid      *entities.RaidBinding
}

// SpawnOutput defines the response for a spawned boss
type SpawnOutput struct {
	Encounter entities.Encounter
	Tier      *entities.BossTier
}

// AttackInput defines the request for attacking the guild boss
type AttackInput struct {
	GuildID    string
	UserID     string
	InstanceID int
}

// AttackOutput defines the response for one attack. Defeat is set on the
// attack that brought HP to zero.
type AttackOutput struct {
	Damage    int
	Special   bool
	Healed    int
	Wilt      bool
	Stacks    int
	Encounter entities.Encounter
	Defeat    *Defeat
}

// Defeat summarizes a fallen boss
type Defeat struct {
	Name    string
	Pot     entities.Shards
	Top     []entities.Contribution
	Rewards map[string]entities.Reward
}

// StatusInput defines the request for the guild's active boss
type StatusInput struct {
	GuildID string
}

// StatusOutput defines the response for the guild's active boss
type StatusOutput struct {
	Encounter entities.Encounter
	Tier      *entities.BossTier
	Top       []entities.Contribution
}

// EffectsInput defines the request for the caller's status effects
type EffectsInput struct {
	GuildID string
	UserID  string
}

// EffectsOutput reports the caller's Wilt stacks. Wilt is false for tiers
// without the mechanic.
type EffectsOutput struct {
	Wilt         bool
	Stacks       int
	ReductionPct int
}

// PurgeInput defines the request for cleansing the caller's stacks
type PurgeInput struct {
	GuildID string
	UserID  string
}

// PurgeOutput defines the response for a purge
type PurgeOutput struct {
	Wilt    bool
	Cleared int
}

// ClaimInput defines the request for draining pending boss rewards
type ClaimInput struct {
	GuildID string
	UserID  string
}

// ClaimOutput defines the response for a reward claim
type ClaimOutput struct {
	Nothing bool
	Reward  entities.Reward
	Balance entities.Shards
}

// DismissInput defines the request for ending a boss without rewards.
// When RaidLeader is set only a raid bound to that leader is dismissed.
type DismissInput struct {
	GuildID    string
	RaidLeader string
}

// DismissOutput defines the response for a dismissal
type DismissOutput struct {
	Dismissed bool
	Name      string
}
