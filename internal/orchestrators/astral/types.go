package astral

import "github.com/KirkDiggler/theta-arc/internal/entities"

// AddRestInput defines the request for placing one instance to rest.
// Guild and channel locate the overflow boss.
type AddRestInput struct {
	UserID     string
	GuildID    string
	ChannelID  string
	InstanceID int
}

// AddBreedInput defines the request for starting a breeding pair
type AddBreedInput struct {
	UserID    string
	GuildID   string
	ChannelID string
	A         int
	B         int
}

// AddOutput defines the response for an add. Exactly one of Placed or
// Overflow is set.
type AddOutput struct {
	Placed   []int
	Overflow *Overflow
}

// Overflow reports a blocked add that sent every placement back
type Overflow struct {
	Recalled []int
}

// ProgressInput feeds one message's character count
type ProgressInput struct {
	UserID string
	Chars  int
}

// ProgressOutput reports what the characters produced
type ProgressOutput struct {
	LevelUps  map[int]int
	Completed []entities.Offspring
}

// ClaimInput defines the request for claiming finished placements
type ClaimInput struct {
	UserID string
}

// ClaimOutput defines the response for a claim
type ClaimOutput struct {
	Returned  int
	Offspring []Hatched
	Nothing   bool
}

// Hatched is an offspring turned into an instance
type Hatched struct {
	Instance entities.Instance
	Name     string
}

// ListInput defines the request for listing placements
type ListInput struct {
	UserID string
}

// Line is one placement in a listing
type Line struct {
	Placement entities.Placement
	Instance  entities.Instance
	Name      string
	Partner   *entities.Instance
	PartnerNm string
}

// ListOutput defines the response for listing placements
type ListOutput struct {
	Lines   []Line
	Pending []entities.Offspring
	Names   map[string]string
}

// RecallInput defines the request for recalling every placement
type RecallInput struct {
	UserID string
}

// RecallOutput defines the response for a recall
type RecallOutput struct {
	Recalled []int
}
