package entities

// Stat names one of the four creature stats
type Stat string

// Creature stats
const (
	StatAttack    Stat = "attack"
	StatSpeed     Stat = "speed"
	StatHealth    Stat = "health"
	StatEndurance Stat = "endurance"
)

// AllStats returns the stats in display order
func AllStats() []Stat {
	return []Stat{StatAttack, StatSpeed, StatHealth, StatEndurance}
}

// Stats holds one value per stat. Species use it for base stats, instances for IVs.
type Stats struct {
	Attack    int `json:"attack" yaml:"attack"`
	Speed     int `json:"speed" yaml:"speed"`
	Health    int `json:"health" yaml:"health"`
	Endurance int `json:"endurance" yaml:"endurance"`
}

// Get returns the value for stat
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatAttack:
		return s.Attack
	case StatSpeed:
		return s.Speed
	case StatHealth:
		return s.Health
	case StatEndurance:
		return s.Endurance
	default:
		return 0
	}
}

// Set stores value for stat
func (s *Stats) Set(stat Stat, value int) {
	switch stat {
	case StatAttack:
		s.Attack = value
	case StatSpeed:
		s.Speed = value
	case StatHealth:
		s.Health = value
	case StatEndurance:
		s.Endurance = value
	}
}
