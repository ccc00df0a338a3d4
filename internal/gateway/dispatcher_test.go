package gateway_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gateway"
	"github.com/KirkDiggler/theta-arc/internal/handlers/commands"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/activity"
	activitymock "github.com/KirkDiggler/theta-arc/internal/orchestrators/activity/mock"
	astralmock "github.com/KirkDiggler/theta-arc/internal/orchestrators/astral/mock"
	bossmock "github.com/KirkDiggler/theta-arc/internal/orchestrators/boss/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/economy"
	economymock "github.com/KirkDiggler/theta-arc/internal/orchestrators/economy/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	encountermock "github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter/mock"
	inventorymock "github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory/mock"
	partymock "github.com/KirkDiggler/theta-arc/internal/orchestrators/party/mock"
	profilemock "github.com/KirkDiggler/theta-arc/internal/orchestrators/profile/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp"
	pvpmock "github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/trade"
	trademock "github.com/KirkDiggler/theta-arc/internal/orchestrators/trade/mock"
	"github.com/KirkDiggler/theta-arc/internal/testutils"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ctx           context.Context
	cancel        context.CancelFunc
	mockActivity  *activitymock.MockService
	mockEconomy   *economymock.MockService
	mockEncounter *encountermock.MockService
	mockTrade     *trademock.MockService
	mockPvP       *pvpmock.MockService
	sink          *fakeSink
	replies       chan *chat.Reply
	dispatcher    *gateway.Dispatcher
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mockActivity = activitymock.NewMockService(s.ctrl)
	s.mockEconomy = economymock.NewMockService(s.ctrl)
	s.mockEncounter = encountermock.NewMockService(s.ctrl)
	s.mockTrade = trademock.NewMockService(s.ctrl)
	s.mockPvP = pvpmock.NewMockService(s.ctrl)
	s.sink = &fakeSink{}
	s.replies = make(chan *chat.Reply, 16)

	router, err := commands.NewRouter(&commands.Config{
		Inventory: inventorymock.NewMockService(s.ctrl),
		Economy:   s.mockEconomy,
		Astral:    astralmock.NewMockService(s.ctrl),
		Boss:      bossmock.NewMockService(s.ctrl),
		Party:     partymock.NewMockService(s.ctrl),
		Encounter: s.mockEncounter,
		Trade:     s.mockTrade,
		PvP:       s.mockPvP,
		Profile:   profilemock.NewMockService(s.ctrl),
		Allowed:   func(string) bool { return false },
	})
	s.Require().NoError(err)

	s.dispatcher, err = gateway.NewDispatcher(&gateway.DispatcherConfig{
		Router:        router,
		Activity:      s.mockActivity,
		Encounter:     s.mockEncounter,
		Trade:         s.mockTrade,
		PvP:           s.mockPvP,
		Sink:          s.sink,
		SweepInterval: time.Hour,
		QueueSize:     4,
	})
	s.Require().NoError(err)
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.cancel()
	s.ctrl.Finish()
}

func (s *DispatcherTestSuite) start() {
	go func() { _ = s.dispatcher.Run(s.ctx) }()
}

func (s *DispatcherTestSuite) replier() chat.Replier {
	return chat.ReplierFunc(func(_ context.Context, r *chat.Reply) error {
		s.replies <- r
		return nil
	})
}

func (s *DispatcherTestSuite) message(author, content string, bot bool) *gateway.Frame {
	return &gateway.Frame{Type: gateway.FrameMessage, Message: &chat.Message{
		ID:        "m-" + content,
		AuthorID:  author,
		GuildID:   "g1",
		ChannelID: "c1",
		Content:   content,
		Bot:       bot,
	}}
}

func (s *DispatcherTestSuite) nextReply() *chat.Reply {
	select {
	case r := <-s.replies:
		return r
	case <-time.After(2 * time.Second):
		s.FailNow("no reply")
		return nil
	}
}

func (s *DispatcherTestSuite) expectBalance() {
	s.mockEconomy.EXPECT().
		Balance(gomock.Any(), &economy.BalanceInput{UserID: "u1"}).
		Return(&economy.BalanceOutput{Shards: entities.Shards{Gold: 12}}, nil)
}

func (s *DispatcherTestSuite) TestConfigRequired() {
	_, err := gateway.NewDispatcher(nil)
	s.Assert().Error(err)

	_, err = gateway.NewDispatcher(&gateway.DispatcherConfig{})
	s.Assert().Error(err)
}

func (s *DispatcherTestSuite) TestBotMessagesAreIgnored() {
	s.mockActivity.EXPECT().
		Observe(gomock.Any(), gomock.Any()).
		Return(&activity.ObserveOutput{}, nil)
	s.expectBalance()
	s.start()

	s.Require().NoError(s.dispatcher.HandleFrame(s.ctx, s.message("bot", "%balance", true), s.replier()))
	s.Require().NoError(s.dispatcher.HandleFrame(s.ctx, s.message("u1", "%balance", false), s.replier()))

	r := s.nextReply()
	s.Assert().Equal("m-%balance", r.RequestID)
	s.Assert().Contains(r.Response.Content, "Gold: 12")
}

func (s *DispatcherTestSuite) TestGIFCatchSkipsRouter() {
	s.mockActivity.EXPECT().
		Observe(gomock.Any(), &activity.ObserveInput{
			GuildID:   "g1",
			ChannelID: "c1",
			UserID:    "u1",
			Content:   "%balance",
		}).
		Return(&activity.ObserveOutput{
			Triggered: []activity.Trigger{activity.TriggerGIF},
			Caught: &encounter.CatchOutput{
				Spawn:    entities.Spawn{Species: "fleeb"},
				Instance: testutils.Instance(5, "fleeb", 7, entities.GenderMale),
				Reward:   entities.Shards{Gold: 8},
			},
		}, nil)
	s.start()

	s.Require().NoError(s.dispatcher.HandleFrame(s.ctx, s.message("u1", "%balance", false), s.replier()))

	r := s.nextReply()
	s.Assert().Contains(r.Response.Content, "🎉 <@u1> caught **fleeb** (#5, Lv 7")
}

func (s *DispatcherTestSuite) TestNoticesAreAnnounced() {
	s.mockActivity.EXPECT().
		Observe(gomock.Any(), gomock.Any()).
		Return(&activity.ObserveOutput{Notices: []string{"🌌 Cosmic Overflow!"}}, nil)
	s.expectBalance()
	s.start()

	s.Require().NoError(s.dispatcher.HandleFrame(s.ctx, s.message("u1", "%balance", false), s.replier()))
	s.nextReply()

	sent := s.sink.all()
	s.Require().Len(sent, 1)
	s.Assert().Equal(&chat.Announcement{GuildID: "g1", ChannelID: "c1", Content: "🌌 Cosmic Overflow!"}, sent[0])
}

func (s *DispatcherTestSuite) TestActivityFailureStillRoutes() {
	s.mockActivity.EXPECT().
		Observe(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("store down"))
	s.expectBalance()
	s.start()

	s.Require().NoError(s.dispatcher.HandleFrame(s.ctx, s.message("u1", "%balance", false), s.replier()))
	s.Assert().Contains(s.nextReply().Response.Content, "Gold: 12")
}

func (s *DispatcherTestSuite) TestSlashCommand() {
	s.expectBalance()
	s.start()

	frame := &gateway.Frame{Type: gateway.FrameCommand, Interaction: &chat.Interaction{
		ID:        "i1",
		AuthorID:  "u1",
		GuildID:   "g1",
		ChannelID: "c1",
		Command:   "balance",
	}}
	s.Require().NoError(s.dispatcher.HandleFrame(s.ctx, frame, s.replier()))

	r := s.nextReply()
	s.Assert().Equal("i1", r.RequestID)
	s.Assert().Contains(r.Response.Content, "Gold: 12")
}

func (s *DispatcherTestSuite) TestFullQueueIsRejected() {
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.dispatcher.HandleFrame(s.ctx, s.message("u1", "hi", false), s.replier()))
	}
	err := s.dispatcher.HandleFrame(s.ctx, s.message("u1", "hi", false), s.replier())
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeResourceExhausted, errors.GetCode(err))
	s.Assert().Equal("The game is busy. Try again in a moment.", errors.PlayerMessage(err))
}

func (s *DispatcherTestSuite) TestSweepRunsEveryTimer() {
	s.mockEncounter.EXPECT().Sweep(gomock.Any(), &encounter.SweepInput{}).
		Return(&encounter.SweepOutput{Vanished: []entities.Spawn{{ChannelID: "c1"}}}, nil)
	s.mockTrade.EXPECT().Sweep(gomock.Any(), &trade.SweepInput{}).
		Return(nil, errors.Internal("boom"))
	s.mockPvP.EXPECT().Sweep(gomock.Any(), &pvp.SweepInput{}).
		Return(&pvp.SweepOutput{}, nil)

	s.dispatcher.Sweep(s.ctx)
}
