package entities

// Catch reward and sort defaults for species that omit them
const (
	DefaultCatchGold = 5
	unsortedSpecies  = 1_000_000
)

// Species is a catalog entry. Species are read-only at runtime.
type Species struct {
	Key         string   `json:"key" yaml:"-"`
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Type        string   `json:"type" yaml:"type"`
	Region      string   `json:"region" yaml:"region"`
	Stats       Stats    `json:"stats" yaml:"stats"`
	EggGroups   []string `json:"egg_groups" yaml:"egg_groups"`
	CatchReward *Shards  `json:"catch_reward,omitempty" yaml:"catch_reward"`
	Value       *Shards  `json:"value,omitempty" yaml:"value"`
	Artist      string   `json:"artist,omitempty" yaml:"artist"`
	ImageFile   string   `json:"image_file,omitempty" yaml:"image_file"`
}

// DisplayName falls back to the key when the catalog has no name
func (s *Species) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Key
}

// Reward is what catching one of this species pays
func (s *Species) Reward() Shards {
	if s.CatchReward == nil {
		return Shards{Gold: DefaultCatchGold}
	}
	return *s.CatchReward
}

// Price returns the buy/sell value and whether the species has one. A
// value of all zeros counts as none.
func (s *Species) Price() (Shards, bool) {
	if s.Value == nil || s.Value.IsZero() {
		return Shards{}, false
	}
	return *s.Value, true
}

// SortID orders inventories by catalog number; species without one sort last
func (s *Species) SortID() int {
	if s.ID == 0 {
		return unsortedSpecies
	}
	return s.ID
}

// SharesEggGroup reports whether two species can breed
func (s *Species) SharesEggGroup(other *Species) bool {
	if other == nil {
		return false
	}
	groups := make(map[string]struct{}, len(s.EggGroups))
	for _, g := range s.EggGroups {
		groups[g] = struct{}{}
	}
	for _, g := range other.EggGroups {
		if _, ok := groups[g]; ok {
			return true
		}
	}
	return false
}
