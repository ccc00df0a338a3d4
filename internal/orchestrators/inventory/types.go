package inventory

import "github.com/KirkDiggler/theta-arc/internal/entities"

// PageSize is the number of instances per inventory page
const PageSize = 15

// Entry is one inventory line
type Entry struct {
	Instance entities.Instance
	Name     string
}

// ListSpeciesInput defines the request for listing catalog keys
type ListSpeciesInput struct{}

// ListSpeciesOutput defines the response for listing catalog keys
type ListSpeciesOutput struct {
	Keys []string
}

// DescribeSpeciesInput defines the request for a catalog entry
type DescribeSpeciesInput struct {
	Key string
}

// DescribeSpeciesOutput defines the response for a catalog entry
type DescribeSpeciesOutput struct {
	Species *entities.Species
}

// ListInput defines the request for one inventory page. Page is 1-based
// and clamped into range.
type ListInput struct {
	UserID string
	Page   int
}

// ListOutput defines the response for one inventory page
type ListOutput struct {
	Entries []Entry
	Page    int
	Pages   int
	Total   int
}

// InspectInput defines the request for inspecting one instance
type InspectInput struct {
	UserID     string
	InstanceID int
}

// InspectOutput defines the response for inspecting one instance
type InspectOutput struct {
	Instance  entities.Instance
	Species   *entities.Species
	Placement *entities.Placement
}

// GrantInput defines the request for minting a new instance into an
// account. Cost is debited in the same write; CreditReward adds the
// species catch reward.
type GrantInput struct {
	UserID       string
	SpeciesKey   string
	MinLevel     int
	MaxLevel     int
	Cost         entities.Shards
	CreditReward bool
}

// GrantOutput defines the response for minting an instance
type GrantOutput struct {
	Instance entities.Instance
	Species  *entities.Species
	Reward   entities.Shards
	Balance  entities.Shards
}
