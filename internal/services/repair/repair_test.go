package repair_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/repositories/accounts"
	"github.com/KirkDiggler/theta-arc/internal/services/repair"
	"github.com/KirkDiggler/theta-arc/internal/testutils"
)

type RepairTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     *accounts.InMemoryRepository
	repairer *repair.Repairer
}

func TestRepairSuite(t *testing.T) {
	suite.Run(t, new(RepairTestSuite))
}

func (s *RepairTestSuite) SetupTest() {
	s.ctx = context.Background()
	l, repo := testutils.Ledger(s.T(), clock.NewManual(time.Unix(0, 0)))
	s.repo = repo

	r, err := repair.New(&repair.Config{Ledger: l, Catalog: testutils.Catalog()})
	s.Require().NoError(err)
	s.repairer = r

	legacy := entities.NewAccount("old", "")
	legacy.Inventory = []entities.Instance{
		{ID: 1, Species: "fleeb", Level: 3},
		{ID: 4, Species: "glorp", Level: 5},
		{ID: 5, Species: "gone", Level: 1},
	}
	legacy.NextInstanceID = 2

	healthy := entities.NewAccount("ok", "")
	healthy.Inventory = []entities.Instance{testutils.Instance(1, "fleeb", 2, entities.GenderFemale)}
	healthy.NextInstanceID = 2

	_, err = s.repo.SaveMany(s.ctx, accounts.SaveManyInput{Accounts: []*entities.Account{legacy, healthy}})
	s.Require().NoError(err)
}

func (s *RepairTestSuite) stored(id string) *entities.Account {
	out, err := s.repo.Get(s.ctx, accounts.GetInput{ID: id})
	s.Require().NoError(err)
	return out.Account
}

func (s *RepairTestSuite) TestNewValidatesConfig() {
	_, err := repair.New(nil)
	s.Assert().Error(err)

	_, err = repair.New(&repair.Config{})
	s.Assert().Error(err)
}

func (s *RepairTestSuite) TestRunBackfillsAndFixesAllocator() {
	out, err := s.repairer.Run(s.ctx, &repair.Input{})
	s.Require().NoError(err)
	s.Assert().Equal(&repair.Output{
		Scanned:         2,
		Repaired:        1,
		IVsBackfilled:   2,
		AllocatorsFixed: 1,
		UnknownSpecies:  1,
	}, out)

	acct := s.stored("old")
	s.Assert().Equal(6, acct.NextInstanceID)

	sp, err := testutils.Catalog().Species("fleeb")
	s.Require().NoError(err)
	s.Require().NotNil(acct.Inventory[0].IVs)
	s.Assert().Equal(sp.Stats, *acct.Inventory[0].IVs)
	s.Assert().Equal(100.0, acct.Inventory[0].IVAvg)
	s.Assert().Nil(acct.Inventory[2].IVs)
}

func (s *RepairTestSuite) TestDryRunWritesNothing() {
	out, err := s.repairer.Run(s.ctx, &repair.Input{DryRun: true})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Repaired)

	acct := s.stored("old")
	s.Assert().Equal(2, acct.NextInstanceID)
	s.Assert().Nil(acct.Inventory[0].IVs)
}

func (s *RepairTestSuite) TestSecondRunFindsNothing() {
	_, err := s.repairer.Run(s.ctx, nil)
	s.Require().NoError(err)

	out, err := s.repairer.Run(s.ctx, nil)
	s.Require().NoError(err)
	s.Assert().Equal(0, out.Repaired)
	s.Assert().Equal(1, out.UnknownSpecies)
}
