package entities

// Instance level bounds
const (
	MinLevel   = 1
	MaxLevel   = 1024
	CatchMinLv = 1
	CatchMaxLv = 10
	BuyMaxLv   = 3
)

// Gender of an instance
type Gender string

// Genders
const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Opposite reports whether g and o are different known genders
func (g Gender) Opposite(o Gender) bool {
	return (g == GenderMale && o == GenderFemale) || (g == GenderFemale && o == GenderMale)
}

// GenderFromRoll maps a 1-2 die roll to a gender
func GenderFromRoll(roll int) Gender {
	if roll%2 == 0 {
		return GenderFemale
	}
	return GenderMale
}

// Instance is one owned creature. IVs is nil only for records written
// before IVs existed; the repair command backfills them.
type Instance struct {
	ID      int     `json:"id"`
	Species string  `json:"tac"`
	Level   int     `json:"level"`
	Gender  Gender  `json:"gender"`
	IVs     *Stats  `json:"ivs,omitempty"`
	IVAvg   float64 `json:"iv_avg"`
}

// Perfect reports a 100% IV roll
func (i *Instance) Perfect() bool {
	return i.IVAvg >= 100
}

// IVsOrBase returns the rolled IVs, or the species base for legacy records
func (i *Instance) IVsOrBase(species *Species) Stats {
	if i.IVs != nil {
		return *i.IVs
	}
	if species != nil {
		return species.Stats
	}
	return Stats{}
}

// Offspring is a bred instance waiting to be claimed. IVs are rolled on claim.
type Offspring struct {
	Species string `json:"tac"`
	Level   int    `json:"level"`
	Gender  Gender `json:"gender"`
}
