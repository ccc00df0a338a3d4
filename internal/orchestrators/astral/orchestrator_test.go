package astral_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/astral"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
	"github.com/KirkDiggler/theta-arc/internal/testutils"
)

const user = "u1"

type OrchestratorTestSuite struct {
	suite.Suite
	ledger       *ledger.Ledger
	bus          *gameevents.Bus
	overflows    []string
	orchestrator astral.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ledger, _ = testutils.Ledger(s.T(), clock.NewManual(time.Unix(0, 0)))
	s.bus = gameevents.New(nil)
	s.overflows = nil
	s.bus.Subscribe(gameevents.AstralOverflow, func(_ context.Context, ev events.Event) error {
		s.overflows = append(s.overflows, gameevents.String(ev, gameevents.KeyGuildID))
		return nil
	})

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: testutils.MaxRoller()})
	s.Require().NoError(err)

	s.orchestrator, err = astral.NewOrchestrator(&astral.Config{
		Ledger:  s.ledger,
		Catalog: testutils.Catalog(),
		Engine:  eng,
		Events:  s.bus,
	})
	s.Require().NoError(err)

	acct, err := s.ledger.Load(s.ctx, user)
	s.Require().NoError(err)
	acct.Inventory = []entities.Instance{
		testutils.Instance(1, "fleeb", 5, entities.GenderMale),
		testutils.Instance(2, "glorp", 3, entities.GenderFemale),
		testutils.Instance(3, "fleeb", 1020, entities.GenderMale),
		testutils.Instance(4, "annihilon", 7, entities.GenderFemale),
		testutils.Instance(5, "fleeb", 2, entities.GenderMale),
	}
	acct.NextInstanceID = 6
	s.Require().NoError(s.ledger.Save(s.ctx, acct))
}

func (s *OrchestratorTestSuite) account() *entities.Account {
	acct, err := s.ledger.Load(s.ctx, user)
	s.Require().NoError(err)
	return acct
}

func (s *OrchestratorTestSuite) rest(id int) {
	out, err := s.orchestrator.AddRest(s.ctx, &astral.AddRestInput{UserID: user, GuildID: "g", InstanceID: id})
	s.Require().NoError(err)
	s.Require().Nil(out.Overflow)
}

func (s *OrchestratorTestSuite) feed(chars int) *astral.ProgressOutput {
	out, err := s.orchestrator.Progress(s.ctx, &astral.ProgressInput{UserID: user, Chars: chars})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestRestLevelsPerCycle() {
	s.rest(1)

	s.feed(64)
	acct := s.account()
	inst, _ := acct.Instance(1)
	s.Assert().Equal(6, inst.Level)
	s.Assert().Equal(0, acct.Astral[0].ProgressChars)

	s.feed(65)
	acct = s.account()
	inst, _ = acct.Instance(1)
	s.Assert().Equal(7, inst.Level)
	s.Assert().Equal(1, acct.Astral[0].ProgressChars)
}

func (s *OrchestratorTestSuite) TestRestCapsAtMaxLevel() {
	s.rest(3)
	out := s.feed(64 * 10)

	inst, _ := s.account().Instance(3)
	s.Assert().Equal(entities.MaxLevel, inst.Level)
	s.Assert().Equal(entities.MaxLevel, out.LevelUps[3])

	s.feed(64)
	inst, _ = s.account().Instance(3)
	s.Assert().Equal(entities.MaxLevel, inst.Level)
}

func (s *OrchestratorTestSuite) TestProgressIgnoresNonPositive() {
	s.rest(1)
	s.feed(0)
	s.feed(-10)
	s.Assert().Equal(0, s.account().Astral[0].ProgressChars)
}

func (s *OrchestratorTestSuite) TestProgressUnknownUserIsNoop() {
	out, err := s.orchestrator.Progress(s.ctx, &astral.ProgressInput{UserID: "stranger", Chars: 500})
	s.Require().NoError(err)
	s.Assert().Empty(out.Completed)

	all, err := s.ledger.All(s.ctx)
	s.Require().NoError(err)
	s.Assert().Len(all, 1)
}

func (s *OrchestratorTestSuite) TestAddRestErrors() {
	_, err := s.orchestrator.AddRest(s.ctx, &astral.AddRestInput{UserID: user, InstanceID: 99})
	s.Assert().True(errors.IsNotFound(err))

	s.rest(1)
	_, err = s.orchestrator.AddRest(s.ctx, &astral.AddRestInput{UserID: user, InstanceID: 1})
	s.Assert().True(errors.IsInvalidState(err))
}

func (s *OrchestratorTestSuite) TestBreedRejectsIncompatible() {
	testCases := []struct {
		name  string
		a, b  int
		check func(error) bool
	}{
		{name: "same instance", a: 1, b: 1, check: errors.IsInvalidArgument},
		{name: "same gender", a: 1, b: 5, check: errors.IsInvalidState},
		{name: "no shared egg group", a: 1, b: 4, check: errors.IsInvalidState},
		{name: "not owned", a: 1, b: 42, check: errors.IsNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.AddBreed(s.ctx, &astral.AddBreedInput{UserID: user, A: tc.a, B: tc.b})
			s.Require().Error(err)
			s.Assert().True(tc.check(err), err.Error())
			s.Assert().Empty(s.account().Astral)
		})
	}
}

func (s *OrchestratorTestSuite) TestBreedCompletesOnceAndClaims() {
	out, err := s.orchestrator.AddBreed(s.ctx, &astral.AddBreedInput{UserID: user, A: 1, B: 2})
	s.Require().NoError(err)
	s.Assert().Equal([]int{1, 2}, out.Placed)

	acct := s.account()
	s.Require().Len(acct.Astral, 2)
	s.Assert().Equal(2, acct.Astral[0].Breed.PartnerID)
	s.Assert().Equal(1, acct.Astral[1].Breed.PartnerID)

	progress := s.feed(64 * 15)
	s.Assert().Empty(progress.Completed)
	acct = s.account()
	s.Assert().Equal(15, acct.Astral[0].Breed.ProgressCycles)
	s.Assert().Equal(15, acct.Astral[1].Breed.ProgressCycles)

	progress = s.feed(64)
	s.Require().Len(progress.Completed, 1)
	s.Assert().Equal("glorp", progress.Completed[0].Species)
	s.Assert().Equal(entities.CatchMaxLv, progress.Completed[0].Level)

	progress = s.feed(64 * 20)
	s.Assert().Empty(progress.Completed)

	acct = s.account()
	s.Assert().Len(acct.Offspring, 1)
	for _, p := range acct.Astral {
		s.Assert().Equal(entities.AstralCompleted, p.State)
	}

	claim, err := s.orchestrator.Claim(s.ctx, &astral.ClaimInput{UserID: user})
	s.Require().NoError(err)
	s.Require().Len(claim.Offspring, 1)
	s.Assert().Equal(6, claim.Offspring[0].Instance.ID)
	s.Assert().Equal("Glorp", claim.Offspring[0].Name)

	acct = s.account()
	s.Assert().Empty(acct.Astral)
	s.Assert().Empty(acct.Offspring)
	s.Assert().Len(acct.Inventory, 6)
	s.Assert().Equal(7, acct.NextInstanceID)
}

func (s *OrchestratorTestSuite) TestBreedPastLimitOverflows() {
	s.rest(3)
	s.rest(4)

	out, err := s.orchestrator.AddBreed(s.ctx, &astral.AddBreedInput{UserID: user, GuildID: "guild-9", A: 1, B: 2})
	s.Require().NoError(err)
	s.Require().NotNil(out.Overflow)
	s.Assert().Equal([]int{3, 4}, out.Overflow.Recalled)
	s.Assert().Empty(out.Placed)

	acct := s.account()
	s.Assert().Empty(acct.Astral)
	s.Assert().Len(acct.Inventory, 5)
	s.Assert().Equal([]string{"guild-9"}, s.overflows)
}

func (s *OrchestratorTestSuite) TestBreedWithOneRestingFits() {
	s.rest(3)

	out, err := s.orchestrator.AddBreed(s.ctx, &astral.AddBreedInput{UserID: user, GuildID: "guild-9", A: 1, B: 2})
	s.Require().NoError(err)
	s.Assert().Nil(out.Overflow)
	s.Assert().Equal([]int{1, 2}, out.Placed)
	s.Assert().Len(s.account().Astral, 3)
	s.Assert().Empty(s.overflows)
}

func (s *OrchestratorTestSuite) TestFourthAddOverflows() {
	s.rest(1)
	s.rest(2)
	s.rest(3)

	out, err := s.orchestrator.AddRest(s.ctx, &astral.AddRestInput{UserID: user, GuildID: "guild-9", InstanceID: 4})
	s.Require().NoError(err)
	s.Require().NotNil(out.Overflow)
	s.Assert().Equal([]int{1, 2, 3}, out.Overflow.Recalled)
	s.Assert().Empty(out.Placed)

	acct := s.account()
	s.Assert().Empty(acct.Astral)
	s.Assert().Len(acct.Inventory, 5)
	s.Assert().Equal([]string{"guild-9"}, s.overflows)
}

func (s *OrchestratorTestSuite) TestBreedAddAlsoOverflows() {
	s.rest(3)
	s.rest(4)
	s.rest(5)

	out, err := s.orchestrator.AddBreed(s.ctx, &astral.AddBreedInput{UserID: user, GuildID: "g", A: 1, B: 2})
	s.Require().NoError(err)
	s.Require().NotNil(out.Overflow)
	s.Assert().Len(s.overflows, 1)
}

func (s *OrchestratorTestSuite) TestClaimNothing() {
	out, err := s.orchestrator.Claim(s.ctx, &astral.ClaimInput{UserID: user})
	s.Require().NoError(err)
	s.Assert().True(out.Nothing)
}

func (s *OrchestratorTestSuite) TestClaimKeepsUnfinishedBreeding() {
	s.rest(3)
	_, err := s.orchestrator.AddBreed(s.ctx, &astral.AddBreedInput{UserID: user, A: 1, B: 2})
	s.Require().NoError(err)

	out, err := s.orchestrator.Claim(s.ctx, &astral.ClaimInput{UserID: user})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Returned)
	s.Assert().Len(s.account().Astral, 2)
}

func (s *OrchestratorTestSuite) TestRecallKeepsOffspring() {
	acct := s.account()
	acct.Offspring = []entities.Offspring{{Species: "fleeb", Level: 2, Gender: entities.GenderMale}}
	s.Require().NoError(s.ledger.Save(s.ctx, acct))
	s.rest(1)

	out, err := s.orchestrator.Recall(s.ctx, &astral.RecallInput{UserID: user})
	s.Require().NoError(err)
	s.Assert().Equal([]int{1}, out.Recalled)

	acct = s.account()
	s.Assert().Empty(acct.Astral)
	s.Assert().Len(acct.Offspring, 1)
}

func (s *OrchestratorTestSuite) TestList() {
	s.rest(3)
	_, err := s.orchestrator.AddBreed(s.ctx, &astral.AddBreedInput{UserID: user, A: 1, B: 2})
	s.Require().NoError(err)

	out, err := s.orchestrator.List(s.ctx, &astral.ListInput{UserID: user})
	s.Require().NoError(err)
	s.Require().Len(out.Lines, 3)
	s.Assert().Equal(entities.AstralRest, out.Lines[0].Placement.Mode)
	s.Require().NotNil(out.Lines[1].Partner)
	s.Assert().Equal("Glorp", out.Lines[1].PartnerNm)
	s.Assert().True(strings.HasPrefix(out.Lines[1].Placement.Describe(), "Breeding"))
}
