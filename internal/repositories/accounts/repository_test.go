package accounts_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/repositories/accounts"
	"github.com/KirkDiggler/theta-arc/internal/testutils"
)

// RepositoryTestSuite runs the same behavior checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (accounts.Repository, func())
	repo    accounts.Repository
	cleanup func()
	clock   *clock.Manual
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestInMemoryRepository(t *testing.T) {
	c := clock.NewManual(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	suite.Run(t, &RepositoryTestSuite{
		clock: c,
		newRepo: func() (accounts.Repository, func()) {
			return accounts.NewInMemory(c), nil
		},
	})
}

func TestRedisRepository(t *testing.T) {
	c := clock.NewManual(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	suite.Run(t, &RepositoryTestSuite{
		clock: c,
		newRepo: func() (accounts.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := accounts.NewRedis(&accounts.RedisConfig{Client: client, Clock: c})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	c := clock.NewManual(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	suite.Run(t, &RepositoryTestSuite{
		clock: c,
		newRepo: func() (accounts.Repository, func()) {
			repo, err := accounts.NewSQLite(context.Background(), &accounts.SQLiteConfig{
				Path:  filepath.Join(t.TempDir(), "accounts.db"),
				Clock: c,
			})
			if err != nil {
				t.Fatal(err)
			}
			return repo, func() { _ = repo.Close() }
		},
	})
}

func sampleAccount(id string) *entities.Account {
	acct := entities.NewAccount(id, "Member")
	acct.Currency = entities.Shards{Gold: 120, Diamond: 2}
	acct.AddInstance(entities.Instance{Species: "fleeb", Level: 4, Gender: entities.GenderFemale})
	acct.AddInstance(entities.Instance{Species: "wilter", Level: 9, Gender: entities.GenderMale})
	acct.Astral = append(acct.Astral, entities.NewRestPlacement(1))
	acct.Items["crown"] = 1
	return acct
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, accounts.GetInput{ID: "nobody"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestGetEmptyID() {
	_, err := s.repo.Get(s.ctx, accounts.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	acct := sampleAccount("100")
	_, err := s.repo.Save(s.ctx, accounts.SaveInput{Account: acct})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, accounts.GetInput{ID: "100"})
	s.Require().NoError(err)
	got := out.Account
	s.Assert().Equal("Member", got.Status)
	s.Assert().Equal(120, got.Currency.Gold)
	s.Assert().Len(got.Inventory, 2)
	s.Assert().Equal(3, got.NextInstanceID)
	s.Assert().Equal(entities.AstralResting, got.Astral[0].State)
	s.Assert().Equal(1, got.Items["crown"])
	s.Assert().True(s.clock.Now().Equal(got.UpdatedAt))
}

func (s *RepositoryTestSuite) TestSaveOverwrites() {
	acct := sampleAccount("100")
	_, err := s.repo.Save(s.ctx, accounts.SaveInput{Account: acct})
	s.Require().NoError(err)

	acct.Currency.Gold = 5
	acct.RemoveInstance(1)
	_, err = s.repo.Save(s.ctx, accounts.SaveInput{Account: acct})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, accounts.GetInput{ID: "100"})
	s.Require().NoError(err)
	s.Assert().Equal(5, out.Account.Currency.Gold)
	s.Assert().Len(out.Account.Inventory, 1)
}

func (s *RepositoryTestSuite) TestSaveRejectsNil() {
	_, err := s.repo.Save(s.ctx, accounts.SaveInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestSaveManyAndList() {
	_, err := s.repo.SaveMany(s.ctx, accounts.SaveManyInput{
		Accounts: []*entities.Account{sampleAccount("b"), sampleAccount("a")},
	})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, accounts.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Accounts, 2)
	s.Assert().Equal("a", out.Accounts[0].ID)
	s.Assert().Equal("b", out.Accounts[1].ID)
}

func (s *RepositoryTestSuite) TestSaveManyValidatesBeforeWriting() {
	_, err := s.repo.SaveMany(s.ctx, accounts.SaveManyInput{
		Accounts: []*entities.Account{sampleAccount("a"), {ID: ""}},
	})
	s.Require().Error(err)

	_, err = s.repo.Get(s.ctx, accounts.GetInput{ID: "a"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, accounts.SaveInput{Account: sampleAccount("a")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, accounts.DeleteInput{ID: "a"})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, accounts.DeleteInput{ID: "a"})
	s.Assert().True(errors.IsNotFound(err))

	out, err := s.repo.List(s.ctx, accounts.ListInput{})
	s.Require().NoError(err)
	s.Assert().Empty(out.Accounts)
}

func TestRedisReindex(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClientWithContext(t, func(mr *miniredis.Miniredis) {
		_ = mr.Set("account:orphan", `{"user_id":"orphan","status":"Member","next_instance_id":1}`)
	})
	defer cleanup()

	repo, err := accounts.NewRedis(&accounts.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	before, err := repo.List(ctx, accounts.ListInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(before.Accounts) != 0 {
		t.Fatalf("expected unindexed account to be hidden, got %d", len(before.Accounts))
	}

	added, err := repo.Reindex(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if added != 1 {
		t.Fatalf("expected 1 id added, got %d", added)
	}

	after, err := repo.List(ctx, accounts.ListInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Accounts) != 1 || after.Accounts[0].ID != "orphan" {
		t.Fatalf("unexpected accounts after reindex: %+v", after.Accounts)
	}
}
