package profile

import "github.com/KirkDiggler/theta-arc/internal/entities"

// ItemsPreview is how many item stacks a profile card lists
const ItemsPreview = 6

// ChooseClanInput defines the request for joining a clan
type ChooseClanInput struct {
	UserID string
	Name   string
}

// ChooseClanOutput defines the response for joining a clan
type ChooseClanOutput struct {
	Clan entities.Clan
}

// ClanInput defines the request for viewing the caller's clan
type ClanInput struct {
	UserID string
}

// ClanOutput defines the response for viewing a clan. Clan is nil when the
// user has not chosen one yet.
type ClanOutput struct {
	Clan    *entities.Clan
	Options []entities.Clan
}

// ClanLeaderboardInput defines the request for the clan ranking
type ClanLeaderboardInput struct{}

// ClanRank is one line of the clan ranking
type ClanRank struct {
	Position int
	Clan     entities.Clan
	NetWorth int
	Members  int
}

// ClanLeaderboardOutput defines the response for the clan ranking
type ClanLeaderboardOutput struct {
	Ranks []ClanRank
}

// GetInput defines the request for a profile card
type GetInput struct {
	UserID string
}

// Stats summarises an inventory
type Stats struct {
	Total        int
	Unique       int
	BestIV       float64
	HighestLevel int
}

// ItemStack is one held cosmetic item
type ItemStack struct {
	Name  string
	Count int
}

// TopTAC is the profile's featured instance
type TopTAC struct {
	Instance entities.Instance
	Name     string
}

// GetOutput defines the response for a profile card
type GetOutput struct {
	UserID    string
	Status    string
	Clan      *entities.Clan
	Shards    entities.Shards
	NetWorth  int
	Stats     Stats
	Items     []ItemStack
	MoreItems bool
	Top       *TopTAC
}

// ResetInput defines the request for wiping an account
type ResetInput struct {
	UserID string
}

// ResetOutput defines the response for wiping an account
type ResetOutput struct {
	Status string
}
