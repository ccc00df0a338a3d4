package gateway_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
	"github.com/KirkDiggler/theta-arc/internal/gateway"
	"github.com/KirkDiggler/theta-arc/internal/handlers/commands"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
	bossmock "github.com/KirkDiggler/theta-arc/internal/orchestrators/boss/mock"
	"github.com/KirkDiggler/theta-arc/internal/testutils"
)

type fakeSink struct {
	mu   sync.Mutex
	sent []*chat.Announcement
}

func (f *fakeSink) Announce(_ context.Context, a *chat.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, a)
	return nil
}

func (f *fakeSink) all() []*chat.Announcement {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*chat.Announcement(nil), f.sent...)
}

type AnnouncerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	ctx       context.Context
	bus       *gameevents.Bus
	sink      *fakeSink
	mockBoss  *bossmock.MockService
	announcer *gateway.Announcer
}

func TestAnnouncerTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncerTestSuite))
}

func (s *AnnouncerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.bus = gameevents.New(nil)
	s.sink = &fakeSink{}
	s.mockBoss = bossmock.NewMockService(s.ctrl)

	a, err := gateway.NewAnnouncer(&gateway.AnnouncerConfig{
		Bus:     s.bus,
		Sink:    s.sink,
		Catalog: testutils.Catalog(),
		Boss:    s.mockBoss,
	})
	s.Require().NoError(err)
	s.announcer = a
	s.announcer.Start()
}

func (s *AnnouncerTestSuite) TearDownTest() {
	s.announcer.Stop()
	s.ctrl.Finish()
}

func (s *AnnouncerTestSuite) publish(topic string, payload gameevents.Payload) {
	s.Require().NoError(s.bus.Publish(s.ctx, topic, rpgtoolkit.Guild("g1"), nil, payload))
}

func (s *AnnouncerTestSuite) where(extra gameevents.Payload) gameevents.Payload {
	p := gameevents.Payload{gameevents.KeyGuildID: "g1", gameevents.KeyChannelID: "c1"}
	for k, v := range extra {
		p[k] = v
	}
	return p
}

func (s *AnnouncerTestSuite) TestConfigRequired() {
	_, err := gateway.NewAnnouncer(nil)
	s.Assert().Error(err)

	_, err = gateway.NewAnnouncer(&gateway.AnnouncerConfig{Bus: s.bus})
	s.Assert().Error(err)
}

func (s *AnnouncerTestSuite) TestSpawnCardCarriesCatchButton() {
	s.publish(gameevents.SpawnAppeared, s.where(gameevents.Payload{gameevents.KeySpecies: "fleeb"}))

	sent := s.sink.all()
	s.Require().Len(sent, 1)
	s.Assert().Equal("g1", sent[0].GuildID)
	s.Assert().Equal("c1", sent[0].ChannelID)
	s.Require().NotNil(sent[0].Embed)
	s.Assert().Equal("A wild Fleeb appeared!", sent[0].Embed.Title)
	s.Assert().Contains(sent[0].Embed.Description, "10 seconds")
	s.Assert().Equal(commands.CatchButton(), sent[0].Buttons)
}

func (s *AnnouncerTestSuite) TestVanishedUsesDisplayName() {
	s.publish(gameevents.SpawnVanished, s.where(gameevents.Payload{gameevents.KeySpecies: "fleeb"}))

	sent := s.sink.all()
	s.Require().Len(sent, 1)
	s.Assert().Equal("💨 The Fleeb vanished back into the void...", sent[0].Content)
}

func (s *AnnouncerTestSuite) TestBossSpawnedPostsCard() {
	s.mockBoss.EXPECT().
		Status(gomock.Any(), &boss.StatusInput{GuildID: "g1"}).
		Return(&boss.StatusOutput{
			Encounter: entities.Encounter{Name: "The Wilter", HP: 500, MaxHP: 500},
		}, nil)

	s.publish(gameevents.BossSpawned, s.where(gameevents.Payload{gameevents.KeyTier: entities.TierWilter}))

	sent := s.sink.all()
	s.Require().Len(sent, 1)
	s.Require().NotNil(sent[0].Embed)
	s.Assert().Contains(sent[0].Embed.Title, "The Wilter")
}

func (s *AnnouncerTestSuite) TestBossDismissed() {
	s.publish(gameevents.BossDismissed, s.where(gameevents.Payload{gameevents.KeyTier: entities.TierWilter}))

	sent := s.sink.all()
	s.Require().Len(sent, 1)
	s.Assert().Equal("🌫️ **The Wilter** fades away.", sent[0].Content)
}

func (s *AnnouncerTestSuite) TestExpiries() {
	s.publish(gameevents.TradeExpired, s.where(gameevents.Payload{gameevents.KeyOfferID: "3"}))
	s.publish(gameevents.DuelExpired, s.where(gameevents.Payload{gameevents.KeyOfferID: "9"}))

	sent := s.sink.all()
	s.Require().Len(sent, 2)
	s.Assert().Equal("⏳ Trade #3 timed out.", sent[0].Content)
	s.Assert().Equal("⏳ PvP Challenge #9 expired.", sent[1].Content)
}

func (s *AnnouncerTestSuite) TestEventsWithoutChannelAreSkipped() {
	s.publish(gameevents.TradeExpired, gameevents.Payload{gameevents.KeyOfferID: "3"})
	s.Assert().Empty(s.sink.all())
}

func (s *AnnouncerTestSuite) TestStopUnsubscribes() {
	s.announcer.Stop()
	s.publish(gameevents.TradeExpired, s.where(gameevents.Payload{gameevents.KeyOfferID: "3"}))
	s.Assert().Empty(s.sink.all())
}
