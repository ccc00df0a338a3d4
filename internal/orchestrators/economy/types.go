package economy

import "github.com/KirkDiggler/theta-arc/internal/entities"

// LeaderboardSize is the number of ranked accounts returned
const LeaderboardSize = 10

// Board names a shard leaderboard
type Board string

// Boards
const (
	BoardShards   Board = "shards"
	BoardGold     Board = "gold"
	BoardNetWorth Board = "networth"
)

// BuyInput defines the request for buying a species
type BuyInput struct {
	UserID     string
	SpeciesKey string
}

// BuyOutput defines the response for a purchase
type BuyOutput struct {
	Instance entities.Instance
	Species  *entities.Species
	Price    entities.Shards
	Balance  entities.Shards
}

// SellInput defines the request for selling an owned instance
type SellInput struct {
	UserID     string
	InstanceID int
}

// SellOutput defines the response for a sale
type SellOutput struct {
	Instance entities.Instance
	Name     string
	Price    entities.Shards
	Balance  entities.Shards
}

// BalanceInput defines the request for a balance
type BalanceInput struct {
	UserID string
}

// BalanceOutput defines the response for a balance
type BalanceOutput struct {
	Shards entities.Shards
}

// Item is one held cosmetic
type Item struct {
	Name  string
	Count int
}

// ItemsInput defines the request for held cosmetics
type ItemsInput struct {
	UserID string
}

// ItemsOutput defines the response for held cosmetics, sorted by name
type ItemsOutput struct {
	Items []Item
}

// Rank is one leaderboard line
type Rank struct {
	Position int
	UserID   string
	Value    int
}

// LeaderboardInput defines the request for a leaderboard
type LeaderboardInput struct {
	Board Board
}

// LeaderboardOutput defines the response for a leaderboard
type LeaderboardOutput struct {
	Board Board
	Ranks []Rank
}
