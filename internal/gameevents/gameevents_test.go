package gameevents_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
)

type BusTestSuite struct {
	suite.Suite
	bus *gameevents.Bus
	ctx context.Context
}

func TestBusSuite(t *testing.T) {
	suite.Run(t, new(BusTestSuite))
}

func (s *BusTestSuite) SetupTest() {
	s.bus = gameevents.New(nil)
	s.ctx = context.Background()
}

func (s *BusTestSuite) TestPublishDeliversPayloadSynchronously() {
	var got []string
	s.bus.Subscribe(gameevents.AstralOverflow, func(_ context.Context, ev events.Event) error {
		got = append(got, gameevents.String(ev, gameevents.KeyUserID), gameevents.String(ev, gameevents.KeyGuildID))
		return nil
	})

	err := s.bus.Publish(s.ctx, gameevents.AstralOverflow, rpgtoolkit.Player("42"), rpgtoolkit.Guild("7"), gameevents.Payload{
		gameevents.KeyUserID:  "42",
		gameevents.KeyGuildID: "7",
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"42", "7"}, got)
}

func (s *BusTestSuite) TestOtherTopicsAreIgnored() {
	called := false
	s.bus.Subscribe(gameevents.BossDefeated, func(context.Context, events.Event) error {
		called = true
		return nil
	})

	s.Require().NoError(s.bus.Publish(s.ctx, gameevents.BossSpawned, rpgtoolkit.Guild("7"), nil, nil))
	s.Assert().False(called)
}

func (s *BusTestSuite) TestHandlerErrorIsReturned() {
	s.bus.Subscribe(gameevents.TradeExpired, func(context.Context, events.Event) error {
		return fmt.Errorf("boom")
	})
	s.Assert().Error(s.bus.Publish(s.ctx, gameevents.TradeExpired, rpgtoolkit.Guild("7"), nil, nil))
}

func (s *BusTestSuite) TestUnsubscribe() {
	count := 0
	id := s.bus.Subscribe(gameevents.SpawnVanished, func(context.Context, events.Event) error {
		count++
		return nil
	})
	s.Require().NoError(s.bus.Publish(s.ctx, gameevents.SpawnVanished, rpgtoolkit.Guild("7"), nil, nil))
	s.Require().NoError(s.bus.Unsubscribe(id))
	s.Require().NoError(s.bus.Publish(s.ctx, gameevents.SpawnVanished, rpgtoolkit.Guild("7"), nil, nil))
	s.Assert().Equal(1, count)
}

func (s *BusTestSuite) TestStringMissingKey() {
	s.bus.Subscribe(gameevents.DuelExpired, func(_ context.Context, ev events.Event) error {
		s.Assert().Empty(gameevents.String(ev, "nope"))
		return nil
	})
	s.Require().NoError(s.bus.Publish(s.ctx, gameevents.DuelExpired, rpgtoolkit.Guild("7"), nil, nil))
}
