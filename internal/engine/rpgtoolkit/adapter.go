// Package rpgtoolkit implements engine.Engine on top of rpg-toolkit dice.
package rpgtoolkit

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/theta-arc/internal/engine"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	roller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{roller: cfg.DiceRoller}, nil
}

var _ engine.Engine = (*Adapter)(nil)

// RollIVs rolls an independent percentage per non-zero base stat
func (a *Adapter) RollIVs(_ context.Context, input *engine.RollIVsInput) (*engine.RollIVsOutput, error) {
	if input == nil || input.Species == nil {
		return nil, errors.InvalidArgument("species is required")
	}

	base := input.Species.Stats
	var ivs entities.Stats
	for _, stat := range entities.AllStats() {
		if base.Get(stat) <= 0 {
			continue
		}
		pct, err := a.uniform(engine.IVRollMin, engine.IVRollMax)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", stat)
		}
		ivs.Set(stat, engine.RollStat(base.Get(stat), pct))
	}

	return &engine.RollIVsOutput{
		IVs:   ivs,
		IVAvg: engine.IVAverage(ivs, base),
	}, nil
}

// RollInstance rolls level, gender and IVs
func (a *Adapter) RollInstance(ctx context.Context, input *engine.RollInstanceInput) (*engine.RollInstanceOutput, error) {
	if input == nil || input.Species == nil {
		return nil, errors.InvalidArgument("species is required")
	}

	level, err := a.between(input.MinLevel, input.MaxLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll level")
	}
	gender, err := a.gender()
	if err != nil {
		return nil, err
	}
	rolled, err := a.RollIVs(ctx, &engine.RollIVsInput{Species: input.Species})
	if err != nil {
		return nil, err
	}

	ivs := rolled.IVs
	return &engine.RollInstanceOutput{
		Instance: entities.Instance{
			Species: input.Species.Key,
			Level:   level,
			Gender:  gender,
			IVs:     &ivs,
			IVAvg:   rolled.IVAvg,
		},
	}, nil
}

// RollOffspring picks a parent species uniformly with a catch-range level
func (a *Adapter) RollOffspring(_ context.Context, input *engine.RollOffspringInput) (*engine.RollOffspringOutput, error) {
	if input == nil || input.ParentA == "" || input.ParentB == "" {
		return nil, errors.InvalidArgument("both parents are required")
	}

	species := input.ParentA
	pick, err := a.roller.Roll(2)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick parent")
	}
	if pick == 2 {
		species = input.ParentB
	}
	level, err := a.between(entities.CatchMinLv, entities.CatchMaxLv)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll level")
	}
	gender, err := a.gender()
	if err != nil {
		return nil, err
	}

	return &engine.RollOffspringOutput{
		Offspring: entities.Offspring{Species: species, Level: level, Gender: gender},
	}, nil
}

// ResolveBossAttack applies raid scaling, fear aura and wilt in that order
func (a *Adapter) ResolveBossAttack(
	_ context.Context,
	input *engine.ResolveBossAttackInput,
) (*engine.ResolveBossAttackOutput, error) {
	if input == nil || input.Tier == nil || input.Encounter == nil {
		return nil, errors.InvalidArgument("tier and encounter are required")
	}
	if input.Attacker.Instance == nil || input.Attacker.Species == nil {
		return nil, errors.InvalidArgument("attacker is required")
	}

	raw, err := a.baseDamage(input.Attacker)
	if err != nil {
		return nil, err
	}

	if input.Tier.Has(entities.MechanicRaid) {
		power := max(1, input.PartySize)
		if input.Tier.Has(entities.MechanicFearAura) {
			power = engine.FearAura(power)
		}
		raw *= engine.RaidMultiplier(power)
	}

	if !input.Tier.Has(entities.MechanicWilt) {
		return &engine.ResolveBossAttackOutput{Damage: max(1, int(raw))}, nil
	}

	enc := input.Encounter
	stacks := enc.Wilt[input.UserID]
	phase := engine.WiltPhase(enc.HP, enc.MaxHP)
	out := &engine.ResolveBossAttackOutput{
		Damage: max(1, engine.WiltDamage(raw, stacks, phase)),
		Phase:  phase,
	}
	gain := engine.WiltStackGain(phase)

	backlash, err := a.chance(engine.WiltBacklashChance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll backlash")
	}
	if backlash && enc.HP > 0 {
		gain += engine.WiltBacklashStacks
		out.Healed = engine.WiltHeal(enc.MaxHP)
		out.Special = true
	}
	out.Stacks = stacks + gain
	return out, nil
}

// SimulateDuel alternates attacks until one side drops or the round cap hits
func (a *Adapter) SimulateDuel(_ context.Context, input *engine.SimulateDuelInput) (*engine.SimulateDuelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	for _, c := range []engine.Combatant{input.Challenger, input.Defender} {
		if c.Instance == nil || c.Species == nil {
			return nil, errors.InvalidArgument("both combatants are required")
		}
	}

	hp := map[engine.DuelSide]int{
		engine.SideChallenger: engine.DuelHP(input.Challenger.Instance.IVsOrBase(input.Challenger.Species), input.Challenger.Species.Stats),
		engine.SideDefender:   engine.DuelHP(input.Defender.Instance.IVsOrBase(input.Defender.Species), input.Defender.Species.Stats),
	}
	fighters := map[engine.DuelSide]engine.Combatant{
		engine.SideChallenger: input.Challenger,
		engine.SideDefender:   input.Defender,
	}
	opponent := map[engine.DuelSide]engine.DuelSide{
		engine.SideChallenger: engine.SideDefender,
		engine.SideDefender:   engine.SideChallenger,
	}

	out := &engine.SimulateDuelOutput{}
	attacker := engine.SideChallenger
	for round := 1; round <= engine.MaxDuelRounds; round++ {
		if hp[engine.SideChallenger] <= 0 || hp[engine.SideDefender] <= 0 {
			break
		}

		dmg, err := a.baseDamage(fighters[attacker])
		if err != nil {
			return nil, err
		}
		crit, err := a.chance(engine.DuelCritChance)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll crit")
		}
		if crit {
			dmg *= engine.DuelCritMultiplier
		}
		hit := max(1, int(dmg))

		target := opponent[attacker]
		hp[target] = max(0, hp[target]-hit)
		out.Rounds = append(out.Rounds, engine.DuelRound{
			Round:       round,
			Attacker:    attacker,
			Damage:      hit,
			Crit:        crit,
			RemainingHP: hp[target],
		})
		attacker = target
	}

	out.ChallengerHP = hp[engine.SideChallenger]
	out.DefenderHP = hp[engine.SideDefender]
	switch {
	case out.ChallengerHP == out.DefenderHP:
		out.Verdict = engine.SideDraw
	case out.ChallengerHP > out.DefenderHP:
		out.Verdict = engine.SideChallenger
	default:
		out.Verdict = engine.SideDefender
	}
	return out, nil
}

// DistributeRewards rolls each currency once and splits by damage share
func (a *Adapter) DistributeRewards(
	_ context.Context,
	input *engine.DistributeRewardsInput,
) (*engine.DistributeRewardsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var pot entities.Shards
	for _, c := range entities.AllCurrencies() {
		rng := input.Rewards.Range(c)
		if rng == nil {
			continue
		}
		amount, err := a.between(rng.Min, rng.Max)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", c)
		}
		pot.Set(c, amount)
	}

	total := 0
	users := make([]string, 0, len(input.Contributors))
	for uid, dmg := range input.Contributors {
		total += dmg
		users = append(users, uid)
	}
	total = max(1, total)
	sort.Strings(users)

	out := &engine.DistributeRewardsOutput{
		Pot:     pot,
		Rewards: make(map[string]entities.Reward, len(users)),
	}
	drop := input.Rewards.CosmeticDrop
	for _, uid := range users {
		dmg := input.Contributors[uid]
		var reward entities.Reward
		for _, c := range entities.AllCurrencies() {
			reward.Shards.Set(c, engine.Share(pot.Get(c), dmg, total))
		}
		if drop != nil && drop.Item != "" && drop.Chance > 0 {
			got, err := a.chance(drop.Chance)
			if err != nil {
				return nil, errors.Wrap(err, "failed to roll cosmetic drop")
			}
			if got {
				reward.Items = map[string]int{drop.Item: 1}
			}
		}
		out.Rewards[uid] = reward
	}
	return out, nil
}

// PickIndex returns a uniform index in [0, n)
func (a *Adapter) PickIndex(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgument("nothing to pick from")
	}
	if n == 1 {
		return 0, nil
	}
	roll, err := a.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to pick")
	}
	return roll - 1, nil
}

func (a *Adapter) baseDamage(c engine.Combatant) (float64, error) {
	variance, err := a.uniform(engine.VarianceMin, engine.VarianceMax)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll damage variance")
	}
	ivs := c.Instance.IVsOrBase(c.Species)
	return engine.BaseDamage(ivs, c.Species.Stats, c.Instance.Level, variance), nil
}

func (a *Adapter) gender() (entities.Gender, error) {
	roll, err := a.roller.Roll(2)
	if err != nil {
		return "", errors.Wrap(err, "failed to roll gender")
	}
	return entities.GenderFromRoll(roll), nil
}
