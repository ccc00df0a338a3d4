package engine

import (
	"math"

	"github.com/KirkDiggler/theta-arc/internal/entities"
)

// Combat tuning
const (
	MaxDuelRounds      = 40
	DuelCritChance     = 0.10
	DuelCritMultiplier = 1.5
	VarianceMin        = 0.95
	VarianceMax        = 1.08
	IVRollMin          = 0.01
	IVRollMax          = 1.00
	WiltBacklashChance = 0.15
	WiltBacklashStacks = 2

	wiltPerStack   = 0.03
	wiltMaxReduce  = 0.60
	wiltHealFrac   = 0.004
	raidPerMember  = 0.04
	raidMaxBonus   = 1.20
	fearAuraFactor = 0.90
)

// Ratio is rolled/base for one stat; zero bases count as perfect
func Ratio(iv, base int) float64 {
	if base <= 0 {
		return 1.0
	}
	return float64(max(0, iv)) / float64(base)
}

// IVFactor is the mean per-stat ratio
func IVFactor(ivs, base entities.Stats) float64 {
	total := 0.0
	for _, stat := range entities.AllStats() {
		total += Ratio(ivs.Get(stat), base.Get(stat))
	}
	return total / float64(len(entities.AllStats()))
}

// IVAverage is IVFactor as a percentage rounded to two decimals
func IVAverage(ivs, base entities.Stats) float64 {
	return math.Round(IVFactor(ivs, base)*100*100) / 100
}

// RollStat turns a base and a [0.01, 1] percentage into an IV in [1, base]
func RollStat(base int, pct float64) int {
	if base <= 0 {
		return 0
	}
	v := int(math.Round(float64(base) * pct))
	return min(base, max(1, v))
}

// StatWeight mixes attack, speed and endurance IVs into raw power
func StatWeight(ivs entities.Stats) float64 {
	return 0.55*float64(ivs.Attack) + 0.25*float64(ivs.Speed) + 0.20*float64(ivs.Endurance)
}

// LevelFactor scales damage with level
func LevelFactor(level int) float64 {
	return 1.0 + float64(level)/64.0
}

// BaseDamage is the unrounded damage of one attack with the given variance roll
func BaseDamage(ivs, base entities.Stats, level int, variance float64) float64 {
	return StatWeight(ivs) * IVFactor(ivs, base) * LevelFactor(level) / 50.0 * variance
}

// DuelHP is the starting HP of a duel combatant
func DuelHP(ivs, base entities.Stats) int {
	hp := ivs.Health
	if hp == 0 {
		hp = base.Health
	}
	return max(1, hp)
}

// WiltPhase is 0 above two thirds HP, 1 at or below two thirds, 2 at or below one third
func WiltPhase(hp, maxHP int) int {
	switch {
	case float64(hp) <= float64(maxHP)/3.0:
		return 2
	case float64(hp) <= float64(maxHP)*2.0/3.0:
		return 1
	default:
		return 0
	}
}

// WiltReduction is the fraction of damage removed by stacks
func WiltReduction(stacks int) float64 {
	return math.Min(wiltMaxReduce, float64(stacks)*wiltPerStack)
}

// WiltDamage applies the stack reduction and then the phase bonus
func WiltDamage(raw float64, stacks, phase int) int {
	dmg := int(math.Max(1, raw*(1.0-WiltReduction(stacks))))
	switch phase {
	case 1:
		dmg = int(float64(dmg) * 1.05)
	case 2:
		dmg = int(float64(dmg) * 1.10)
	}
	return dmg
}

// WiltStackGain is the stacks an attack adds before any backlash
func WiltStackGain(phase int) int {
	gain := 1
	if phase >= 1 {
		gain++
	}
	if phase >= 2 {
		gain++
	}
	return gain
}

// WiltHeal is the HP restored by a backlash
func WiltHeal(maxHP int) int {
	return int(float64(maxHP) * wiltHealFrac)
}

// RaidMultiplier scales raw damage by party power, capped at +20%
func RaidMultiplier(partyPower int) float64 {
	return math.Min(1.0+raidPerMember*float64(partyPower), raidMaxBonus)
}

// FearAura shrinks a party power aggregate
func FearAura(power int) int {
	return max(1, int(float64(power)*fearAuraFactor))
}

// Share is a contributor's rounded cut of one pot currency
func Share(pot, damage, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(pot) * float64(damage) / float64(total)))
}
