package v1alpha1

import "time"

// GetAccountRequest selects one account
type GetAccountRequest struct {
	UserID string `json:"user_id"`
}

// GetAccountResponse summarises an account
type GetAccountResponse struct {
	UserID         string  `json:"user_id"`
	Status         string  `json:"status"`
	Clan           string  `json:"clan,omitempty"`
	GoldShards     int     `json:"gold_shards"`
	DiamondShards  int     `json:"diamond_shards"`
	EnchantShards  int     `json:"enchanted_shards"`
	NetWorth       int     `json:"net_worth"`
	TotalTACs      int     `json:"total_tacs"`
	UniqueSpecies  int     `json:"unique_species"`
	BestIV         float64 `json:"best_iv"`
	HighestLevel   int     `json:"highest_level"`
	TopInstanceID  int     `json:"top_instance_id,omitempty"`
	TopSpeciesName string  `json:"top_species_name,omitempty"`
}

// LeaderboardRequest names a board: shards, gold or networth
type LeaderboardRequest struct {
	Board string `json:"board"`
}

// LeaderboardEntry is one ranked account
type LeaderboardEntry struct {
	Position int    `json:"position"`
	UserID   string `json:"user_id"`
	Value    int    `json:"value"`
}

// LeaderboardResponse is the top of a board
type LeaderboardResponse struct {
	Board   string             `json:"board"`
	Entries []LeaderboardEntry `json:"entries"`
}

// SummonBossRequest opens a boss in a guild. Tier defaults to the Wilter.
type SummonBossRequest struct {
	GuildID   string `json:"guild_id"`
	ChannelID string `json:"channel_id"`
	Tier      string `json:"tier,omitempty"`
}

// GetBossRequest selects a guild's boss
type GetBossRequest struct {
	GuildID string `json:"guild_id"`
}

// Contribution is one attacker's total damage
type Contribution struct {
	UserID string `json:"user_id"`
	Damage int    `json:"damage"`
}

// BossResponse describes a guild's active boss
type BossResponse struct {
	GuildID   string         `json:"guild_id"`
	ChannelID string         `json:"channel_id"`
	Tier      string         `json:"tier"`
	Name      string         `json:"name"`
	HP        int            `json:"hp"`
	MaxHP     int            `json:"hp_max"`
	Top       []Contribution `json:"top,omitempty"`
}

// SummonSpawnRequest puts a wild TAC in a channel. An empty species picks
// one at random.
type SummonSpawnRequest struct {
	GuildID   string `json:"guild_id"`
	ChannelID string `json:"channel_id"`
	Species   string `json:"species,omitempty"`
}

// SummonSpawnResponse describes the spawn
type SummonSpawnResponse struct {
	Species   string    `json:"species"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}
