package entities

// Party limits
const (
	MaxPartyMembers = 5
	MaxSquadSize    = 3
	MinRaidMembers  = 2
)

// Party is a leader-owned group in one guild
type Party struct {
	GuildID string           `json:"guild_id"`
	Leader  string           `json:"leader"`
	Members []string         `json:"members"`
	Squads  map[string][]int `json:"squads"`
}

// NewParty creates a party led by leader
func NewParty(guildID, leader string) *Party {
	return &Party{
		GuildID: guildID,
		Leader:  leader,
		Members: []string{leader},
		Squads:  map[string][]int{},
	}
}

// Has reports membership
func (p *Party) Has(userID string) bool {
	for _, m := range p.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// Full reports whether the party reached its cap
func (p *Party) Full() bool {
	return len(p.Members) >= MaxPartyMembers
}

// Remove drops a member and their squad
func (p *Party) Remove(userID string) {
	for i, m := range p.Members {
		if m == userID {
			p.Members = append(p.Members[:i], p.Members[i+1:]...)
			break
		}
	}
	delete(p.Squads, userID)
}

// Clone returns a deep copy
func (p *Party) Clone() Party {
	c := *p
	c.Members = append([]string(nil), p.Members...)
	c.Squads = make(map[string][]int, len(p.Squads))
	for k, v := range p.Squads {
		c.Squads[k] = append([]int(nil), v...)
	}
	return c
}
