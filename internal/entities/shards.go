package entities

import "strings"

// Currency names one of the shard balances
type Currency string

// Currencies
const (
	CurrencyGold      Currency = "gold_shards"
	CurrencyDiamond   Currency = "diamond_shards"
	CurrencyEnchanted Currency = "enchanted_shards"
)

// Net worth weights
const (
	DiamondWeight   = 20
	EnchantedWeight = 50
)

// AllCurrencies returns the currencies in display order
func AllCurrencies() []Currency {
	return []Currency{CurrencyGold, CurrencyDiamond, CurrencyEnchanted}
}

// ParseCurrency resolves the short and long names players type
// (g, gold, gold_shards and so on).
func ParseCurrency(name string) (Currency, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "g", "gold", string(CurrencyGold):
		return CurrencyGold, true
	case "d", "diamond", string(CurrencyDiamond):
		return CurrencyDiamond, true
	case "e", "enchanted", string(CurrencyEnchanted):
		return CurrencyEnchanted, true
	default:
		return "", false
	}
}

// Shards is a set of shard balances
type Shards struct {
	Gold      int `json:"gold_shards" yaml:"gold_shards"`
	Diamond   int `json:"diamond_shards" yaml:"diamond_shards"`
	Enchanted int `json:"enchanted_shards" yaml:"enchanted_shards"`
}

// Get returns the balance for c
func (s Shards) Get(c Currency) int {
	switch c {
	case CurrencyGold:
		return s.Gold
	case CurrencyDiamond:
		return s.Diamond
	case CurrencyEnchanted:
		return s.Enchanted
	default:
		return 0
	}
}

// Set stores the balance for c
func (s *Shards) Set(c Currency, amount int) {
	switch c {
	case CurrencyGold:
		s.Gold = amount
	case CurrencyDiamond:
		s.Diamond = amount
	case CurrencyEnchanted:
		s.Enchanted = amount
	}
}

// Add returns s + o
func (s Shards) Add(o Shards) Shards {
	return Shards{
		Gold:      s.Gold + o.Gold,
		Diamond:   s.Diamond + o.Diamond,
		Enchanted: s.Enchanted + o.Enchanted,
	}
}

// Sub returns s - o
func (s Shards) Sub(o Shards) Shards {
	return Shards{
		Gold:      s.Gold - o.Gold,
		Diamond:   s.Diamond - o.Diamond,
		Enchanted: s.Enchanted - o.Enchanted,
	}
}

// Covers reports whether every balance in s is at least the matching one in o
func (s Shards) Covers(o Shards) bool {
	return s.Gold >= o.Gold && s.Diamond >= o.Diamond && s.Enchanted >= o.Enchanted
}

// IsZero reports whether all balances are zero
func (s Shards) IsZero() bool {
	return s == Shards{}
}

// Total is the unweighted sum of all balances
func (s Shards) Total() int {
	return s.Gold + s.Diamond + s.Enchanted
}

// NetWorth weighs diamond and enchanted shards above gold
func (s Shards) NetWorth() int {
	return s.Gold + s.Diamond*DiamondWeight + s.Enchanted*EnchantedWeight
}
