package entities

import (
	"sort"
	"time"
)

// AccountMeta holds streak bookkeeping carried on every account
type AccountMeta struct {
	LastDaily int64 `json:"last_daily"`
	Streak    int   `json:"streak"`
}

// Account is a player's persistent document
type Account struct {
	ID             string         `json:"user_id"`
	Status         string         `json:"status"`
	Currency       Shards         `json:"currency"`
	Inventory      []Instance     `json:"inventory"`
	NextInstanceID int            `json:"next_instance_id"`
	Astral         []Placement    `json:"astral"`
	Offspring      []Offspring    `json:"astral_offspring_pending"`
	Items          map[string]int `json:"items"`
	Meta           AccountMeta    `json:"meta"`
	Clan           string         `json:"clan,omitempty"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewAccount returns a fresh default account
func NewAccount(id, status string) *Account {
	return &Account{
		ID:             id,
		Status:         status,
		Inventory:      []Instance{},
		NextInstanceID: 1,
		Astral:         []Placement{},
		Offspring:      []Offspring{},
		Items:          map[string]int{},
	}
}

// Instance returns the owned instance with id
func (a *Account) Instance(id int) (*Instance, bool) {
	for i := range a.Inventory {
		if a.Inventory[i].ID == id {
			return &a.Inventory[i], true
		}
	}
	return nil, false
}

// Owns reports whether every id is in the inventory
func (a *Account) Owns(ids ...int) bool {
	for _, id := range ids {
		if _, ok := a.Instance(id); !ok {
			return false
		}
	}
	return true
}

// AddInstance assigns the next id to inst and appends it
func (a *Account) AddInstance(inst Instance) Instance {
	if a.NextInstanceID < 1 {
		a.NextInstanceID = 1
	}
	inst.ID = a.NextInstanceID
	a.NextInstanceID++
	a.Inventory = append(a.Inventory, inst)
	return inst
}

// RemoveInstance takes the instance with id out of the inventory
func (a *Account) RemoveInstance(id int) (Instance, bool) {
	for i := range a.Inventory {
		if a.Inventory[i].ID == id {
			inst := a.Inventory[i]
			a.Inventory = append(a.Inventory[:i], a.Inventory[i+1:]...)
			return inst, true
		}
	}
	return Instance{}, false
}

// Placement returns the Astral placement holding instance id
func (a *Account) Placement(instanceID int) (*Placement, bool) {
	for i := range a.Astral {
		if a.Astral[i].InstanceID == instanceID {
			return &a.Astral[i], true
		}
	}
	return nil, false
}

// AddItems credits cosmetic items
func (a *Account) AddItems(items map[string]int) {
	if len(items) == 0 {
		return
	}
	if a.Items == nil {
		a.Items = map[string]int{}
	}
	for k, v := range items {
		a.Items[k] += v
	}
}

// ItemNames returns held item names sorted alphabetically
func (a *Account) ItemNames() []string {
	names := make([]string, 0, len(a.Items))
	for k, v := range a.Items {
		if v > 0 {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// Normalize fills nil collections and restores the id allocator invariant.
// It reports whether anything changed.
func (a *Account) Normalize() bool {
	changed := false
	if a.Inventory == nil {
		a.Inventory = []Instance{}
		changed = true
	}
	if a.Astral == nil {
		a.Astral = []Placement{}
		changed = true
	}
	if a.Offspring == nil {
		a.Offspring = []Offspring{}
		changed = true
	}
	if a.Items == nil {
		a.Items = map[string]int{}
		changed = true
	}

	for i := range a.Astral {
		if a.Astral[i].State != "" {
			continue
		}
		a.Astral[i].State = AstralResting
		if a.Astral[i].Mode == AstralBreed {
			a.Astral[i].State = AstralBreeding
		}
		changed = true
	}

	highest := 0
	for _, inst := range a.Inventory {
		highest = max(highest, inst.ID)
	}
	for _, p := range a.Astral {
		highest = max(highest, p.InstanceID)
	}
	if a.NextInstanceID <= highest {
		a.NextInstanceID = highest + 1
		changed = true
	}
	return changed
}

// Clone returns a deep copy
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.Inventory = make([]Instance, len(a.Inventory))
	for i, inst := range a.Inventory {
		if inst.IVs != nil {
			ivs := *inst.IVs
			inst.IVs = &ivs
		}
		c.Inventory[i] = inst
	}
	c.Astral = make([]Placement, len(a.Astral))
	for i, p := range a.Astral {
		if p.Breed != nil {
			b := *p.Breed
			p.Breed = &b
		}
		c.Astral[i] = p
	}
	c.Offspring = append([]Offspring{}, a.Offspring...)
	c.Items = make(map[string]int, len(a.Items))
	for k, v := range a.Items {
		c.Items[k] = v
	}
	return &c
}
