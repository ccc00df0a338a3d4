package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
)

type EntitiesTestSuite struct {
	suite.Suite
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) TestAccountAllocatesIncreasingIDs() {
	acct := entities.NewAccount("42", "")

	first := acct.AddInstance(entities.Instance{Species: "fleeb", Level: 1})
	second := acct.AddInstance(entities.Instance{Species: "fleeb", Level: 1})
	acct.RemoveInstance(second.ID)
	third := acct.AddInstance(entities.Instance{Species: "wilter", Level: 2})

	s.Assert().Equal(1, first.ID)
	s.Assert().Equal(2, second.ID)
	s.Assert().Equal(3, third.ID, "ids are never reused")
	s.Assert().Equal(4, acct.NextInstanceID)
	s.Assert().True(acct.Owns(1, 3))
	s.Assert().False(acct.Owns(2))
}

func (s *EntitiesTestSuite) TestNormalizeRepairsAllocator() {
	acct := &entities.Account{
		ID:             "7",
		NextInstanceID: 2,
		Inventory:      []entities.Instance{{ID: 5, Species: "fleeb"}},
		Astral:         []entities.Placement{{InstanceID: 5, Mode: entities.AstralRest}},
	}

	s.Require().True(acct.Normalize())
	s.Assert().Equal(6, acct.NextInstanceID)
	s.Assert().NotNil(acct.Items)
	s.Assert().Equal(entities.AstralResting, acct.Astral[0].State)
	s.Assert().False(acct.Normalize(), "second pass is a no-op")
}

func (s *EntitiesTestSuite) TestCloneIsDeep() {
	acct := entities.NewAccount("1", "")
	acct.AddInstance(entities.Instance{Species: "fleeb", IVs: &entities.Stats{Attack: 3}})
	a, b := entities.NewBreedPair(1, 2)
	acct.Astral = append(acct.Astral, a, b)
	acct.Items["wilter_egg"] = 1

	clone := acct.Clone()
	clone.Inventory[0].IVs.Attack = 99
	clone.Astral[0].Breed.ProgressCycles = 5
	clone.Items["wilter_egg"] = 3

	s.Assert().Equal(3, acct.Inventory[0].IVs.Attack)
	s.Assert().Equal(0, acct.Astral[0].Breed.ProgressCycles)
	s.Assert().Equal(1, acct.Items["wilter_egg"])
}

func (s *EntitiesTestSuite) TestAstralTransitions() {
	s.Run("breeding completes once", func() {
		p, _ := entities.NewBreedPair(1, 2)
		s.Require().NoError(p.Transition(entities.AstralCompleted))
		err := p.Transition(entities.AstralCompleted)
		s.Assert().True(errors.IsInvalidState(err))
	})

	s.Run("resting cannot complete", func() {
		p := entities.NewRestPlacement(1)
		s.Assert().Error(p.Transition(entities.AstralCompleted))
		s.Assert().True(p.Claimable())
	})

	s.Run("breeding is not claimable until complete", func() {
		p, partner := entities.NewBreedPair(1, 2)
		s.Assert().False(p.Claimable())
		s.Assert().Equal(2, p.Breed.PartnerID)
		s.Assert().Equal(1, partner.Breed.PartnerID)
		s.Assert().Equal(entities.BreedTargetCycles, p.Breed.TargetCycles)
	})
}

func (s *EntitiesTestSuite) TestShards() {
	bal := entities.Shards{Gold: 10, Diamond: 2, Enchanted: 1}

	s.Assert().Equal(13, bal.Total())
	s.Assert().Equal(10+40+50, bal.NetWorth())
	s.Assert().True(bal.Covers(entities.Shards{Gold: 10}))
	s.Assert().False(bal.Covers(entities.Shards{Enchanted: 2}))
	s.Assert().Equal(entities.Shards{Gold: 5, Diamond: 2, Enchanted: 1}, bal.Sub(entities.Shards{Gold: 5}))

	c, ok := entities.ParseCurrency("D")
	s.Assert().True(ok)
	s.Assert().Equal(entities.CurrencyDiamond, c)
	_, ok = entities.ParseCurrency("platinum")
	s.Assert().False(ok)
}

func (s *EntitiesTestSuite) TestSpeciesDefaults() {
	sp := &entities.Species{Key: "fleeb"}

	s.Assert().Equal(entities.Shards{Gold: entities.DefaultCatchGold}, sp.Reward())
	s.Assert().Equal("fleeb", sp.DisplayName())
	_, ok := sp.Price()
	s.Assert().False(ok)

	other := &entities.Species{Key: "wilter", EggGroups: []string{"field", "bug"}}
	sp.EggGroups = []string{"bug"}
	s.Assert().True(sp.SharesEggGroup(other))
	other.EggGroups = []string{"field"}
	s.Assert().False(sp.SharesEggGroup(other))
}

func (s *EntitiesTestSuite) TestBossTierMechanicDefaults() {
	wilter := &entities.BossTier{Key: entities.TierWilter}
	raid := &entities.BossTier{Key: entities.TierFleebRaid}
	custom := &entities.BossTier{Key: entities.TierWilter, Mechanics: []entities.Mechanic{entities.MechanicRaid}}

	s.Assert().True(wilter.Has(entities.MechanicWilt))
	s.Assert().False(wilter.Has(entities.MechanicRaid))
	s.Assert().True(raid.Has(entities.MechanicRaid))
	s.Assert().False(custom.Has(entities.MechanicWilt), "explicit mechanics replace the defaults")
	s.Assert().Equal(entities.DefaultBossHP, wilter.MaxHP())
}

func (s *EntitiesTestSuite) TestBossTierDecodesRewardRanges() {
	raw := `
name: The Wilter
hp: 1200
rewards:
  gold_shards: [100, 50]
  enchanted_shards: [1, 3]
  cosmetic_drop: {item: wilter_egg, chance: 0.25}
`
	var tier entities.BossTier
	s.Require().NoError(yaml.Unmarshal([]byte(raw), &tier))

	s.Assert().Equal(1200, tier.MaxHP())
	s.Assert().Equal(&entities.RewardRange{Min: 50, Max: 100}, tier.Rewards.Gold)
	s.Assert().Nil(tier.Rewards.Range(entities.CurrencyDiamond))
	s.Assert().Equal("wilter_egg", tier.Rewards.CosmeticDrop.Item)
}

func (s *EntitiesTestSuite) TestEncounterDefeatHappensOnce() {
	enc := entities.NewEncounter("g", "c", &entities.BossTier{Key: "wilter", HP: 10}, time.Now())

	enc.ApplyDamage("a", 7)
	enc.ApplyDamage("b", 9)

	s.Assert().Equal(0, enc.HP, "hp floors at zero")
	s.Assert().Equal(2, enc.Attacks)
	s.Require().NoError(enc.Defeat())
	s.Assert().Error(enc.Defeat())
	s.Assert().False(enc.Active())

	top := enc.TopContributors(1)
	s.Require().Len(top, 1)
	s.Assert().Equal("b", top[0].UserID)
}

func (s *EntitiesTestSuite) TestOfferTransitions() {
	trade := &entities.Trade{State: entities.OfferPending}
	s.Require().NoError(trade.Transition(entities.OfferAccepted))
	s.Assert().True(errors.IsInvalidState(trade.Transition(entities.OfferDeclined)))

	duel := &entities.Duel{State: entities.OfferPending}
	s.Assert().Error(duel.Transition(entities.OfferPending))
}

func (s *EntitiesTestSuite) TestSpawnWindow() {
	now := time.Now()
	spawn := &entities.Spawn{State: entities.SpawnActive, ExpiresAt: now.Add(10 * time.Second)}

	s.Assert().True(spawn.Open(now))
	s.Assert().Error(spawn.Catch("u", now.Add(11*time.Second)))
	s.Require().NoError(spawn.Catch("u", now.Add(time.Second)))
	s.Assert().Error(spawn.Catch("v", now.Add(2*time.Second)))
	s.Assert().Error(spawn.Vanish())
}

func (s *EntitiesTestSuite) TestLookupClan() {
	for _, name := range []string{"lambda", "LMB", "Lambda", " l "} {
		c, ok := entities.LookupClan(name)
		s.Assert().True(ok, name)
		s.Assert().Equal("Lambda", c.Name)
	}
	_, ok := entities.LookupClan("rift")
	s.Assert().False(ok)
}
