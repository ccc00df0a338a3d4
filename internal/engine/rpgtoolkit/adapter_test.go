package rpgtoolkit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/theta-arc/internal/engine"
	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/testutils"
)

type AdapterTestSuite struct {
	suite.Suite
	ctx     context.Context
	species *entities.Species
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.species = &entities.Species{
		Key:       "fleeb",
		Stats:     entities.Stats{Attack: 120, Speed: 80, Health: 200, Endurance: 0},
		EggGroups: []string{"slime"},
	}
}

func (s *AdapterTestSuite) adapter(roller *testutils.ScriptedRoller) *rpgtoolkit.Adapter {
	a, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: roller})
	s.Require().NoError(err)
	return a
}

func (s *AdapterTestSuite) TestNewAdapter() {
	s.Run("nil config", func() {
		a, err := rpgtoolkit.NewAdapter(nil)
		s.Assert().Nil(a)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("missing dice roller", func() {
		a, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{})
		s.Assert().Nil(a)
		s.Assert().Contains(err.Error(), "dice roller is required")
	})
}

func (s *AdapterTestSuite) TestRollIVs() {
	s.Run("top rolls match base", func() {
		out, err := s.adapter(testutils.MaxRoller()).RollIVs(s.ctx, &engine.RollIVsInput{Species: s.species})
		s.Require().NoError(err)
		s.Assert().Equal(s.species.Stats, out.IVs)
		s.Assert().Equal(100.0, out.IVAvg)
	})

	s.Run("bottom rolls stay at least one", func() {
		out, err := s.adapter(testutils.MinRoller()).RollIVs(s.ctx, &engine.RollIVsInput{Species: s.species})
		s.Require().NoError(err)
		s.Assert().Equal(entities.Stats{Attack: 1, Speed: 1, Health: 2, Endurance: 0}, out.IVs)
		s.Assert().Less(out.IVAvg, 30.0)
	})

	s.Run("species required", func() {
		_, err := s.adapter(testutils.MaxRoller()).RollIVs(s.ctx, &engine.RollIVsInput{})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *AdapterTestSuite) TestRollInstance() {
	out, err := s.adapter(testutils.MaxRoller()).RollInstance(s.ctx, &engine.RollInstanceInput{
		Species:  s.species,
		MinLevel: entities.CatchMinLv,
		MaxLevel: entities.CatchMaxLv,
	})
	s.Require().NoError(err)

	s.Assert().Equal("fleeb", out.Instance.Species)
	s.Assert().Equal(entities.CatchMaxLv, out.Instance.Level)
	s.Assert().Equal(entities.GenderFemale, out.Instance.Gender)
	s.Require().NotNil(out.Instance.IVs)
	s.Assert().Zero(out.Instance.ID)
}

func (s *AdapterTestSuite) TestRollOffspring() {
	out, err := s.adapter(testutils.MinRoller()).RollOffspring(s.ctx, &engine.RollOffspringInput{
		ParentA: "fleeb",
		ParentB: "wilter",
	})
	s.Require().NoError(err)
	s.Assert().Equal(entities.Offspring{Species: "fleeb", Level: 1, Gender: entities.GenderMale}, out.Offspring)

	out, err = s.adapter(testutils.MaxRoller()).RollOffspring(s.ctx, &engine.RollOffspringInput{
		ParentA: "fleeb",
		ParentB: "wilter",
	})
	s.Require().NoError(err)
	s.Assert().Equal("wilter", out.Offspring.Species)
	s.Assert().Equal(entities.CatchMaxLv, out.Offspring.Level)
}

func (s *AdapterTestSuite) combatant(level int, health int) engine.Combatant {
	species := &entities.Species{
		Key:   "duelist",
		Stats: entities.Stats{Attack: 100, Speed: 100, Health: health, Endurance: 100},
	}
	ivs := species.Stats
	return engine.Combatant{
		Instance: &entities.Instance{Species: species.Key, Level: level, IVs: &ivs, IVAvg: 100},
		Species:  species,
	}
}

func (s *AdapterTestSuite) TestSimulateDuel() {
	s.Run("equal fighters with equal damage draw at the round cap", func() {
		out, err := s.adapter(testutils.MaxRoller()).SimulateDuel(s.ctx, &engine.SimulateDuelInput{
			Challenger: s.combatant(10, 10000),
			Defender:   s.combatant(10, 10000),
		})
		s.Require().NoError(err)

		s.Assert().Equal(engine.SideDraw, out.Verdict)
		s.Assert().Len(out.Rounds, engine.MaxDuelRounds)
		s.Assert().Equal(out.ChallengerHP, out.DefenderHP)
		s.Assert().Equal(engine.SideChallenger, out.Rounds[0].Attacker)
		s.Assert().Equal(engine.SideDefender, out.Rounds[1].Attacker)
		for _, r := range out.Rounds {
			s.Assert().False(r.Crit)
		}
	})

	s.Run("challenger moves first and can end it", func() {
		out, err := s.adapter(testutils.MaxRoller()).SimulateDuel(s.ctx, &engine.SimulateDuelInput{
			Challenger: s.combatant(64, 4),
			Defender:   s.combatant(64, 4),
		})
		s.Require().NoError(err)

		s.Assert().Equal(engine.SideChallenger, out.Verdict)
		s.Assert().Len(out.Rounds, 1)
		s.Assert().Equal(0, out.DefenderHP)
	})

	s.Run("crits multiply damage", func() {
		// variance roll, then crit roll of 1 for the first attack
		roller := testutils.MaxRoller().Then(10001, 1)
		out, err := s.adapter(roller).SimulateDuel(s.ctx, &engine.SimulateDuelInput{
			Challenger: s.combatant(0, 10000),
			Defender:   s.combatant(0, 10000),
		})
		s.Require().NoError(err)

		s.Assert().True(out.Rounds[0].Crit)
		s.Assert().Greater(out.Rounds[0].Damage, out.Rounds[1].Damage)
		s.Assert().Equal(engine.SideChallenger, out.Verdict)
	})
}

func (s *AdapterTestSuite) encounter(tier *entities.BossTier) *entities.Encounter {
	return entities.NewEncounter("g1", "c1", tier, time.Now())
}

func (s *AdapterTestSuite) TestResolveBossAttack() {
	attacker := s.combatant(64, 100)

	s.Run("plain tier", func() {
		tier := &entities.BossTier{Key: "ralgulfa", HP: 1000}
		out, err := s.adapter(testutils.MaxRoller()).ResolveBossAttack(s.ctx, &engine.ResolveBossAttackInput{
			Attacker: attacker, Tier: tier, Encounter: s.encounter(tier), UserID: "u1", PartySize: 1,
		})
		s.Require().NoError(err)
		s.Assert().Equal(4, out.Damage)
		s.Assert().Zero(out.Stacks)
	})

	s.Run("wilt without backlash gains phase stacks", func() {
		tier := &entities.BossTier{Key: entities.TierWilter, HP: 900}
		enc := s.encounter(tier)
		enc.HP = 300
		enc.Wilt["u1"] = 4

		out, err := s.adapter(testutils.MaxRoller()).ResolveBossAttack(s.ctx, &engine.ResolveBossAttackInput{
			Attacker: attacker, Tier: tier, Encounter: enc, UserID: "u1", PartySize: 1,
		})
		s.Require().NoError(err)
		s.Assert().Equal(2, out.Phase)
		s.Assert().Equal(7, out.Stacks)
		s.Assert().False(out.Special)
		s.Assert().Zero(out.Healed)
		s.Assert().Equal(4, enc.Wilt["u1"], "encounter is not modified")
	})

	s.Run("wilt backlash heals and adds stacks", func() {
		tier := &entities.BossTier{Key: entities.TierWilter, HP: 50000}
		out, err := s.adapter(testutils.MinRoller()).ResolveBossAttack(s.ctx, &engine.ResolveBossAttackInput{
			Attacker: attacker, Tier: tier, Encounter: s.encounter(tier), UserID: "u1", PartySize: 1,
		})
		s.Require().NoError(err)
		s.Assert().True(out.Special)
		s.Assert().Equal(3, out.Stacks)
		s.Assert().Equal(200, out.Healed)
		s.Assert().GreaterOrEqual(out.Damage, 1)
	})

	s.Run("raid scales with party size", func() {
		tier := &entities.BossTier{Key: entities.TierFleebRaid, HP: 50000}
		strong := s.combatant(640, 100)
		solo, err := s.adapter(testutils.MaxRoller()).ResolveBossAttack(s.ctx, &engine.ResolveBossAttackInput{
			Attacker: strong, Tier: tier, Encounter: s.encounter(tier), UserID: "u1", PartySize: 1,
		})
		s.Require().NoError(err)
		full, err := s.adapter(testutils.MaxRoller()).ResolveBossAttack(s.ctx, &engine.ResolveBossAttackInput{
			Attacker: strong, Tier: tier, Encounter: s.encounter(tier), UserID: "u1", PartySize: 5,
		})
		s.Require().NoError(err)
		s.Assert().Greater(full.Damage, solo.Damage)
	})
}

func (s *AdapterTestSuite) TestDistributeRewards() {
	rewards := entities.BossRewards{
		Gold:         &entities.RewardRange{Min: 100, Max: 100},
		Diamond:      &entities.RewardRange{Min: 10, Max: 20},
		CosmeticDrop: &entities.CosmeticDrop{Item: "wilter_egg", Chance: 1},
	}

	out, err := s.adapter(testutils.MinRoller()).DistributeRewards(s.ctx, &engine.DistributeRewardsInput{
		Rewards:      rewards,
		Contributors: map[string]int{"a": 60, "b": 40},
	})
	s.Require().NoError(err)

	s.Assert().Equal(entities.Shards{Gold: 100, Diamond: 10}, out.Pot)
	s.Assert().Equal(entities.Shards{Gold: 60, Diamond: 6}, out.Rewards["a"].Shards)
	s.Assert().Equal(entities.Shards{Gold: 40, Diamond: 4}, out.Rewards["b"].Shards)
	s.Assert().Equal(1, out.Rewards["b"].Items["wilter_egg"])
}

func (s *AdapterTestSuite) TestPickIndex() {
	idx, err := s.adapter(testutils.MaxRoller()).PickIndex(7)
	s.Require().NoError(err)
	s.Assert().Equal(6, idx)

	_, err = s.adapter(testutils.MaxRoller()).PickIndex(0)
	s.Assert().Error(err)
}
