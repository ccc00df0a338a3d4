package encounter_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
	"github.com/KirkDiggler/theta-arc/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	clock        *clock.Manual
	ledger       *ledger.Ledger
	bus          *gameevents.Bus
	vanished     []string
	appeared     []string
	orchestrator encounter.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(time.Unix(1000, 0))
	s.ledger, _ = testutils.Ledger(s.T(), s.clock)
	s.bus = gameevents.New(nil)
	s.vanished, s.appeared = nil, nil
	s.bus.Subscribe(gameevents.SpawnVanished, func(_ context.Context, ev events.Event) error {
		s.vanished = append(s.vanished, gameevents.String(ev, gameevents.KeyChannelID))
		return nil
	})
	s.bus.Subscribe(gameevents.SpawnAppeared, func(_ context.Context, ev events.Event) error {
		s.appeared = append(s.appeared, gameevents.String(ev, gameevents.KeySpecies))
		return nil
	})
	s.orchestrator = s.build(testutils.Catalog())
}

func (s *OrchestratorTestSuite) build(cat *catalog.Catalog) encounter.Service {
	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: testutils.MaxRoller()})
	s.Require().NoError(err)
	inv, err := inventory.NewOrchestrator(&inventory.Config{Ledger: s.ledger, Catalog: cat, Engine: eng})
	s.Require().NoError(err)

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		Inventory: inv,
		Catalog:   cat,
		Engine:    eng,
		Events:    s.bus,
		Clock:     s.clock,
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) spawn(channel, species string) *encounter.SpawnOutput {
	out, err := s.orchestrator.Spawn(s.ctx, &encounter.SpawnInput{GuildID: "g1", ChannelID: channel, SpeciesKey: species})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestRandomSpawn() {
	out := s.spawn("c1", "")
	s.Require().True(out.Spawned)
	s.Assert().Equal("annihilon", out.Spawn.Species, "max roll picks the last catalog entry")
	s.Assert().Equal(s.clock.Now().Add(encounter.DefaultCatchWindow), out.Spawn.ExpiresAt)
	s.Assert().Equal([]string{"annihilon"}, s.appeared)

	again := s.spawn("c1", "")
	s.Assert().False(again.Spawned, "one spawn per channel")

	other := s.spawn("c2", "")
	s.Assert().True(other.Spawned)
}

func (s *OrchestratorTestSuite) TestRandomSpawnWithEmptyCatalog() {
	s.orchestrator = s.build(catalog.New(nil, nil))

	out := s.spawn("c1", "")
	s.Assert().False(out.Spawned)
}

func (s *OrchestratorTestSuite) TestNamedSpawn() {
	out := s.spawn("c1", "Glorp")
	s.Assert().Equal("glorp", out.Spawn.Species)

	_, err := s.orchestrator.Spawn(s.ctx, &encounter.SpawnInput{ChannelID: "c1", SpeciesKey: "fleeb"})
	s.Assert().True(errors.IsInvalidState(err))

	_, err = s.orchestrator.Spawn(s.ctx, &encounter.SpawnInput{ChannelID: "c2", SpeciesKey: "nope"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCatchGrantsAndCredits() {
	s.spawn("c1", "glorp")

	out, err := s.orchestrator.Catch(s.ctx, &encounter.CatchInput{GuildID: "g1", ChannelID: "c1", UserID: "u1"})
	s.Require().NoError(err)
	s.Assert().Equal(entities.SpawnCaught, out.Spawn.State)
	s.Assert().Equal("u1", out.Spawn.CaughtBy)
	s.Assert().Equal(1, out.Instance.ID)
	s.Assert().Equal(entities.CatchMaxLv, out.Instance.Level)
	s.Assert().Equal(entities.Shards{Gold: 8, Diamond: 1}, out.Reward)
	s.Assert().Equal(out.Reward, out.Balance)

	_, err = s.orchestrator.Catch(s.ctx, &encounter.CatchInput{GuildID: "g1", ChannelID: "c1", UserID: "u2"})
	s.Assert().True(errors.IsNotFound(err), "only the first catch wins")

	active, err := s.orchestrator.Active(s.ctx, &encounter.ActiveInput{ChannelID: "c1"})
	s.Require().NoError(err)
	s.Assert().False(active.Active)
}

func (s *OrchestratorTestSuite) TestSameSpeciesTwiceGetsDistinctIDs() {
	var ids []int
	for i := 0; i < 2; i++ {
		s.spawn("c1", "fleeb")
		out, err := s.orchestrator.Catch(s.ctx, &encounter.CatchInput{ChannelID: "c1", UserID: "u1"})
		s.Require().NoError(err)
		ids = append(ids, out.Instance.ID)
	}
	s.Assert().Equal([]int{1, 2}, ids)

	acct, err := s.ledger.Load(s.ctx, "u1")
	s.Require().NoError(err)
	s.Assert().Len(acct.Inventory, 2)
}

func (s *OrchestratorTestSuite) TestCatchAfterWindowVanishes() {
	s.spawn("c1", "fleeb")
	s.clock.Advance(encounter.DefaultCatchWindow)

	_, err := s.orchestrator.Catch(s.ctx, &encounter.CatchInput{ChannelID: "c1", UserID: "u1"})
	s.Assert().True(errors.IsInvalidState(err))
	s.Assert().Equal([]string{"c1"}, s.vanished)

	acct, err := s.ledger.Load(s.ctx, "u1")
	s.Require().NoError(err)
	s.Assert().Empty(acct.Inventory)

	out := s.spawn("c1", "")
	s.Assert().True(out.Spawned, "the channel is free again")
}

func (s *OrchestratorTestSuite) TestSweep() {
	s.spawn("c2", "fleeb")
	s.spawn("c1", "glorp")
	s.clock.Advance(5 * time.Second)
	s.spawn("c3", "fleeb")

	out, err := s.orchestrator.Sweep(s.ctx, &encounter.SweepInput{})
	s.Require().NoError(err)
	s.Assert().Empty(out.Vanished)

	s.clock.Advance(5 * time.Second)
	out, err = s.orchestrator.Sweep(s.ctx, &encounter.SweepInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Vanished, 2)
	s.Assert().Equal(entities.SpawnVanished, out.Vanished[0].State)
	s.Assert().Equal([]string{"c1", "c2"}, s.vanished)

	active, err := s.orchestrator.Active(s.ctx, &encounter.ActiveInput{ChannelID: "c3"})
	s.Require().NoError(err)
	s.Assert().True(active.Active)
}
