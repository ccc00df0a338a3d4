package entities

import (
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// DefaultBossHP applies to tiers that omit hp
const DefaultBossHP = 50000

// Well-known tier keys
const (
	TierWilter    = "wilter"
	TierFleebRaid = "fleeb_raid"
	TierStaring   = "staring"
	TierRalgulfa  = "ralgulfa"
)

// Mechanic flags special combat rules on a tier
type Mechanic string

// Mechanics
const (
	MechanicWilt     Mechanic = "wilt"
	MechanicRaid     Mechanic = "raid"
	MechanicFearAura Mechanic = "fear_aura"
)

var defaultMechanics = map[string][]Mechanic{
	TierWilter:    {MechanicWilt},
	TierFleebRaid: {MechanicRaid},
	TierStaring:   {MechanicFearAura},
}

// RewardRange is an inclusive [min, max] shard roll. Catalog files write it
// as a two element list.
type RewardRange struct {
	Min int
	Max int
}

// UnmarshalYAML accepts [lo, hi]
func (r *RewardRange) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("reward range needs two values, got %d", len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	return nil
}

// CosmeticDrop is an item each contributor may receive
type CosmeticDrop struct {
	Item   string  `yaml:"item"`
	Chance float64 `yaml:"chance"`
}

// BossRewards is the pot rolled when a boss falls
type BossRewards struct {
	Gold         *RewardRange  `yaml:"gold_shards"`
	Diamond      *RewardRange  `yaml:"diamond_shards"`
	Enchanted    *RewardRange  `yaml:"enchanted_shards"`
	CosmeticDrop *CosmeticDrop `yaml:"cosmetic_drop"`
}

// Range returns the roll range for c, nil when the tier pays none
func (r BossRewards) Range(c Currency) *RewardRange {
	switch c {
	case CurrencyGold:
		return r.Gold
	case CurrencyDiamond:
		return r.Diamond
	case CurrencyEnchanted:
		return r.Enchanted
	default:
		return nil
	}
}

// BossTier is a boss catalog entry
type BossTier struct {
	Key         string      `yaml:"-"`
	Name        string      `yaml:"name"`
	HP          int         `yaml:"hp"`
	Description string      `yaml:"description"`
	Aura        string      `yaml:"aura"`
	ImageFile   string      `yaml:"image_file"`
	Rewards     BossRewards `yaml:"rewards"`
	Mechanics   []Mechanic  `yaml:"mechanics"`
}

// DisplayName falls back to the key
func (t *BossTier) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Key
}

// MaxHP applies the default for tiers without hp
func (t *BossTier) MaxHP() int {
	if t.HP <= 0 {
		return DefaultBossHP
	}
	return t.HP
}

// Has reports whether the tier uses mechanic m. Tiers that list no
// mechanics get the defaults for their key.
func (t *BossTier) Has(m Mechanic) bool {
	mechanics := t.Mechanics
	if len(mechanics) == 0 {
		mechanics = defaultMechanics[t.Key]
	}
	for _, have := range mechanics {
		if have == m {
			return true
		}
	}
	return false
}

// EncounterState is the boss lifecycle
type EncounterState string

// Encounter states
const (
	EncounterActive   EncounterState = "active"
	EncounterDefeated EncounterState = "defeated"
)

// RaidBinding restricts a boss to one party
type RaidBinding struct {
	Leader  string   `json:"leader"`
	Members []string `json:"members"`
}

// Contribution is one attacker's cumulative damage
type Contribution struct {
	UserID string `json:"user_id"`
	Damage int    `json:"damage"`
}

// Encounter is the active boss of one guild
type Encounter struct {
	GuildID      string         `json:"guild_id"`
	ChannelID    string         `json:"channel_id"`
	Tier         string         `json:"tier"`
	Name         string         `json:"name"`
	HP           int            `json:"hp"`
	MaxHP        int            `json:"hp_max"`
	Contributors map[string]int `json:"contributors"`
	Wilt         map[string]int `json:"wilt"`
	Attacks      int            `json:"attacks"`
	Raid         *RaidBinding   `json:"raid,omitempty"`
	State        EncounterState `json:"state"`
	SpawnedAt    time.Time      `json:"spawned_at"`
}

// NewEncounter opens an active encounter for tier
func NewEncounter(guildID, channelID string, tier *BossTier, now time.Time) *Encounter {
	hp := tier.MaxHP()
	return &Encounter{
		GuildID:      guildID,
		ChannelID:    channelID,
		Tier:         tier.Key,
		Name:         tier.DisplayName(),
		HP:           hp,
		MaxHP:        hp,
		Contributors: map[string]int{},
		Wilt:         map[string]int{},
		State:        EncounterActive,
		SpawnedAt:    now,
	}
}

// Active reports whether the boss can still be attacked
func (e *Encounter) Active() bool {
	return e != nil && e.State == EncounterActive && e.HP > 0
}

// ApplyDamage floors HP at zero and records the contribution
func (e *Encounter) ApplyDamage(userID string, damage int) {
	e.HP = max(0, e.HP-damage)
	e.Contributors[userID] += damage
	e.Attacks++
}

// Heal restores up to max HP
func (e *Encounter) Heal(amount int) {
	e.HP = min(e.MaxHP, e.HP+amount)
}

// Defeat moves an active encounter to defeated. It fails on a second call,
// which keeps reward distribution to exactly once.
func (e *Encounter) Defeat() error {
	if e.State != EncounterActive {
		return errors.InvalidStatef("boss %s is already %s", e.Name, e.State)
	}
	e.State = EncounterDefeated
	return nil
}

// RaidMember reports whether userID may attack a raid-bound boss
func (e *Encounter) RaidMember(userID string) bool {
	if e.Raid == nil {
		return false
	}
	for _, m := range e.Raid.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// TopContributors returns up to n contributors by damage, highest first
func (e *Encounter) TopContributors(n int) []Contribution {
	out := make([]Contribution, 0, len(e.Contributors))
	for uid, dmg := range e.Contributors {
		out = append(out, Contribution{UserID: uid, Damage: dmg})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Damage != out[j].Damage {
			return out[i].Damage > out[j].Damage
		}
		return out[i].UserID < out[j].UserID
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Reward is what one contributor receives when a boss falls
type Reward struct {
	Shards Shards         `json:"shards"`
	Items  map[string]int `json:"items,omitempty"`
}

// Merge adds o into r
func (r *Reward) Merge(o Reward) {
	r.Shards = r.Shards.Add(o.Shards)
	if len(o.Items) == 0 {
		return
	}
	if r.Items == nil {
		r.Items = map[string]int{}
	}
	for k, v := range o.Items {
		r.Items[k] += v
	}
}

// Snapshot returns a copy that shares no maps with e
func (e *Encounter) Snapshot() Encounter {
	c := *e
	c.Contributors = make(map[string]int, len(e.Contributors))
	for k, v := range e.Contributors {
		c.Contributors[k] = v
	}
	c.Wilt = make(map[string]int, len(e.Wilt))
	for k, v := range e.Wilt {
		c.Wilt[k] = v
	}
	if e.Raid != nil {
		raid := *e.Raid
		raid.Members = append([]string(nil), e.Raid.Members...)
		c.Raid = &raid
	}
	return c
}
