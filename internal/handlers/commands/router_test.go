package commands_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/handlers/commands"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/astral"
	astralmock "github.com/KirkDiggler/theta-arc/internal/orchestrators/astral/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
	bossmock "github.com/KirkDiggler/theta-arc/internal/orchestrators/boss/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/economy"
	economymock "github.com/KirkDiggler/theta-arc/internal/orchestrators/economy/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	encountermock "github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory"
	inventorymock "github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/party"
	partymock "github.com/KirkDiggler/theta-arc/internal/orchestrators/party/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/profile"
	profilemock "github.com/KirkDiggler/theta-arc/internal/orchestrators/profile/mock"
	pvpmock "github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp/mock"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/trade"
	trademock "github.com/KirkDiggler/theta-arc/internal/orchestrators/trade/mock"
	"github.com/KirkDiggler/theta-arc/internal/testutils"
)

type fakeRequest struct {
	author, guild, channel string
	responses              []*chat.Response
}

func (f *fakeRequest) AuthorID() string  { return f.author }
func (f *fakeRequest) GuildID() string   { return f.guild }
func (f *fakeRequest) ChannelID() string { return f.channel }

func (f *fakeRequest) Respond(_ context.Context, resp *chat.Response) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeRequest) last() *chat.Response {
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

type RouterTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ctx           context.Context
	mockInventory *inventorymock.MockService
	mockEconomy   *economymock.MockService
	mockAstral    *astralmock.MockService
	mockBoss      *bossmock.MockService
	mockParty     *partymock.MockService
	mockEncounter *encountermock.MockService
	mockTrade     *trademock.MockService
	mockPvP       *pvpmock.MockService
	mockProfile   *profilemock.MockService
	router        *commands.Router
	req           *fakeRequest
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockInventory = inventorymock.NewMockService(s.ctrl)
	s.mockEconomy = economymock.NewMockService(s.ctrl)
	s.mockAstral = astralmock.NewMockService(s.ctrl)
	s.mockBoss = bossmock.NewMockService(s.ctrl)
	s.mockParty = partymock.NewMockService(s.ctrl)
	s.mockEncounter = encountermock.NewMockService(s.ctrl)
	s.mockTrade = trademock.NewMockService(s.ctrl)
	s.mockPvP = pvpmock.NewMockService(s.ctrl)
	s.mockProfile = profilemock.NewMockService(s.ctrl)

	router, err := commands.NewRouter(s.config())
	s.Require().NoError(err)
	s.router = router
	s.req = &fakeRequest{author: "u1", guild: "g1", channel: "c1"}
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterTestSuite) config() *commands.Config {
	return &commands.Config{
		Inventory: s.mockInventory,
		Economy:   s.mockEconomy,
		Astral:    s.mockAstral,
		Boss:      s.mockBoss,
		Party:     s.mockParty,
		Encounter: s.mockEncounter,
		Trade:     s.mockTrade,
		PvP:       s.mockPvP,
		Profile:   s.mockProfile,
		Allowed:   func(uid string) bool { return uid == "admin" },
	}
}

func (s *RouterTestSuite) send(content string) bool {
	return s.router.HandleMessage(s.ctx, s.req, content)
}

func (s *RouterTestSuite) TestNewRouterValidatesConfig() {
	_, err := commands.NewRouter(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	cfg := s.config()
	cfg.Boss = nil
	_, err = commands.NewRouter(cfg)
	s.Assert().Error(err)
	s.Assert().Contains(err.Error(), "Boss")
}

func (s *RouterTestSuite) TestIgnoresOrdinaryChat() {
	s.Assert().False(s.send("hello there"))
	s.Assert().False(s.send("%"))
	s.Assert().False(s.send("%nope"))
	s.Assert().Empty(s.req.responses)
}

func (s *RouterTestSuite) TestBalanceAlias() {
	s.mockEconomy.EXPECT().
		Balance(s.ctx, &economy.BalanceInput{UserID: "u1"}).
		Return(&economy.BalanceOutput{Shards: entities.Shards{Gold: 12, Diamond: 3}}, nil)

	s.Require().True(s.send("%BAL"))
	s.Assert().Equal("💎 Diamond: 3 | 🪙 Gold: 12 | ✨ Enchanted: 0", s.req.last().Content)
}

func (s *RouterTestSuite) TestInventory() {
	s.Run("empty", func() {
		s.mockInventory.EXPECT().
			List(s.ctx, &inventory.ListInput{UserID: "u1"}).
			Return(&inventory.ListOutput{Page: 1, Pages: 1}, nil)

		s.send("%inventory")
		s.Assert().Equal("Your inventory is empty.", s.req.last().Content)
	})

	s.Run("named page", func() {
		s.mockInventory.EXPECT().
			List(s.ctx, &inventory.ListInput{UserID: "u1", Page: 2}).
			Return(&inventory.ListOutput{
				Entries: []inventory.Entry{{Instance: testutils.Instance(16, "fleeb", 4, entities.GenderMale), Name: "Fleeb"}},
				Page:    2,
				Pages:   2,
				Total:   16,
			}, nil)

		s.send("%inventory page:2")
		lines := strings.Split(s.req.last().Content, "\n")
		s.Require().Len(lines, 3)
		s.Assert().Equal("**Your TACs**  (Page 2/2 • 16 total)", lines[0])
		s.Assert().True(strings.HasPrefix(lines[1], "#16 Fleeb ♂️"))
	})
}

func (s *RouterTestSuite) TestDescribeUnknownSpecies() {
	s.mockInventory.EXPECT().
		DescribeSpecies(s.ctx, &inventory.DescribeSpeciesInput{Key: "nope"}).
		Return(nil, errors.NotFound("Unknown TAC 'nope'."))

	s.send("%describe Nope")
	s.Assert().Equal("❌ TAC not found.", s.req.last().Content)
	s.Assert().True(s.req.last().Ephemeral)
}

func (s *RouterTestSuite) TestInternalErrorsAreMasked() {
	s.mockEconomy.EXPECT().
		Sell(s.ctx, &economy.SellInput{UserID: "u1", InstanceID: 4}).
		Return(nil, errors.Internal("redis write failed"))

	s.send("%sell #4")
	s.Assert().NotContains(s.req.last().Content, "redis")
	s.Assert().True(strings.HasPrefix(s.req.last().Content, "❌ "))
}

func (s *RouterTestSuite) TestBuy() {
	sp, err := testutils.Catalog().Species("fleeb")
	s.Require().NoError(err)
	inst := testutils.Instance(3, "fleeb", 2, entities.GenderFemale)
	inst.IVAvg = 91.25

	s.mockEconomy.EXPECT().
		Buy(s.ctx, &economy.BuyInput{UserID: "u1", SpeciesKey: "fleeb"}).
		Return(&economy.BuyOutput{Instance: inst, Species: sp, Price: entities.Shards{Gold: 50}}, nil)

	s.send("%buy fleeb")
	s.Assert().Equal(fmt.Sprintf("✅ Bought **%s** for 50 gold. (#3, Lv 2, ♀️, IV 91.2%%)", sp.DisplayName()), s.req.last().Content)
}

func (s *RouterTestSuite) TestTradeOffer() {
	s.mockTrade.EXPECT().
		Offer(s.ctx, &trade.OfferInput{
			GuildID:   "g1",
			ChannelID: "c1",
			UserID:    "u1",
			Target:    "42",
			Offer:     "#1 gold=25",
			Want:      "#9 diamond=1",
		}).
		Return(&trade.OfferOutput{
			Trade: entities.Trade{ID: "7", Author: "u1", Target: "42",
				Offer: entities.TradeSide{Instances: []int{1}, Shards: entities.Shards{Gold: 25}},
				Want:  entities.TradeSide{Instances: []int{9}, Shards: entities.Shards{Diamond: 1}}},
			Offered: []trade.Listing{{InstanceID: 1, Name: "Fleeb"}},
			Wanted:  []trade.Listing{{InstanceID: 9, Name: "Glorp"}},
		}, nil)

	s.send(`%trade <@42> offer:"#1 gold=25" want:"#9 diamond=1"`)

	resp := s.req.last()
	s.Assert().Equal("<@42>", resp.Content)
	s.Require().NotNil(resp.Embed)
	s.Assert().Equal("Trade Offer #7", resp.Embed.Title)
	s.Require().Len(resp.Buttons, 2)
	s.Assert().Equal("trade_accept:7", resp.Buttons[0].ID)
	s.Assert().Equal("trade_decline:7", resp.Buttons[1].ID)
}

func (s *RouterTestSuite) TestTradeNeedsRealUser() {
	s.send("%trade bob #1")
	s.Assert().Equal("❌ Pick a real user to trade with.", s.req.last().Content)
}

func (s *RouterTestSuite) TestTradeButtons() {
	s.Run("accept", func() {
		s.mockTrade.EXPECT().
			Accept(s.ctx, &trade.AcceptInput{TradeID: "7", UserID: "u1"}).
			Return(&trade.AcceptOutput{Trade: entities.Trade{ID: "7"}}, nil)

		s.router.HandleComponent(s.ctx, s.req, "trade_accept:7")
		s.Assert().Contains(s.req.last().Content, "Trade #7 completed")
	})

	s.Run("stale accept", func() {
		s.mockTrade.EXPECT().
			Accept(s.ctx, &trade.AcceptInput{TradeID: "8", UserID: "u1"}).
			Return(nil, errors.Stale("Ownership changed; trade invalid."))

		s.router.HandleComponent(s.ctx, s.req, "trade_accept:8")
		s.Assert().Equal("❌ Ownership changed; trade invalid.", s.req.last().Content)
	})

	s.Run("decline by text", func() {
		s.mockTrade.EXPECT().
			Decline(s.ctx, &trade.DeclineInput{TradeID: "9", UserID: "u1"}).
			Return(&trade.DeclineOutput{Trade: entities.Trade{ID: "9"}}, nil)

		s.send("%trade decline #9")
		s.Assert().Equal("❌ Trade #9 declined.", s.req.last().Content)
	})

	s.Run("unknown button", func() {
		s.router.HandleComponent(s.ctx, s.req, "mystery:1")
		s.Assert().True(s.req.last().Ephemeral)
	})
}

func (s *RouterTestSuite) TestCatchButton() {
	s.Run("too late", func() {
		s.mockEncounter.EXPECT().
			Catch(s.ctx, &encounter.CatchInput{GuildID: "g1", ChannelID: "c1", UserID: "u1"}).
			Return(nil, errors.NotFound("Too late!"))

		s.router.HandleComponent(s.ctx, s.req, commands.ComponentCatch)
		s.Assert().Equal("Too late!", s.req.last().Content)
	})

	s.Run("caught", func() {
		sp, err := testutils.Catalog().Species("fleeb")
		s.Require().NoError(err)
		s.mockEncounter.EXPECT().
			Catch(s.ctx, gomock.Any()).
			Return(&encounter.CatchOutput{
				Instance: testutils.Instance(5, "fleeb", 7, entities.GenderMale),
				Species:  sp,
				Reward:   entities.Shards{Gold: 8, Diamond: 1},
			}, nil)

		s.router.HandleComponent(s.ctx, s.req, commands.ComponentCatch)
		s.Assert().Equal(fmt.Sprintf("🎉 <@u1> caught **%s** (#5, Lv 7, ♂️) (+8 gold, 1 diamond)", sp.DisplayName()), s.req.last().Content)
	})
}

func (s *RouterTestSuite) TestSummonRequiresAllowList() {
	s.send("%summon fleeb")
	s.Assert().Equal("❌ You don't have permission.", s.req.last().Content)

	s.send("%summon_boss")
	s.Assert().Equal("❌ You don't have permission.", s.req.last().Content)
}

func (s *RouterTestSuite) TestSummonBusyChannel() {
	s.req.author = "admin"
	s.mockEncounter.EXPECT().
		Spawn(s.ctx, &encounter.SpawnInput{GuildID: "g1", ChannelID: "c1", SpeciesKey: "fleeb"}).
		Return(nil, errors.InvalidState("A TAC is already active in this channel."))

	s.send("%summon fleeb")
	s.Assert().Equal("❌ A TAC is already active here.", s.req.last().Content)
}

func (s *RouterTestSuite) TestSummonBossDefaultsToWilter() {
	s.req.author = "admin"
	s.mockBoss.EXPECT().
		Spawn(s.ctx, &boss.SpawnInput{GuildID: "g1", ChannelID: "c1", Tier: entities.TierWilter}).
		Return(&boss.SpawnOutput{Encounter: entities.Encounter{Name: "Wilter"}}, nil)

	s.send("%summon_boss")
	s.Assert().Equal("Summoned **Wilter**.", s.req.last().Content)
}

func (s *RouterTestSuite) TestAttack() {
	s.Run("hit with wilt", func() {
		s.mockBoss.EXPECT().
			Attack(s.ctx, &boss.AttackInput{GuildID: "g1", UserID: "u1", InstanceID: 3}).
			Return(&boss.AttackOutput{Damage: 1200, Special: true, Wilt: true, Stacks: 2,
				Encounter: entities.Encounter{Name: "Wilter"}}, nil)

		s.send("%attack 3")
		s.Assert().Equal("🗡️ <@u1> dealt **1,200** to **Wilter**, Wiltburst! it healed a bit (your Wilt stacks: **2**).", s.req.last().Content)
	})

	s.Run("killing blow", func() {
		s.mockBoss.EXPECT().
			Attack(s.ctx, gomock.Any()).
			Return(&boss.AttackOutput{Damage: 50, Encounter: entities.Encounter{Name: "Wilter"},
				Defeat: &boss.Defeat{Name: "Wilter", Top: []entities.Contribution{{UserID: "u1", Damage: 50000}}}}, nil)

		s.send("%attack 3")
		lines := strings.Split(s.req.last().Content, "\n")
		s.Require().Len(lines, 4)
		s.Assert().Equal("💥 **Wilter** falls! Rewards via `/boss_claim` / `%boss_claim`.", lines[1])
		s.Assert().Equal("<@u1> — 50,000", lines[3])
	})

	s.Run("outsider of a raid", func() {
		s.mockBoss.EXPECT().
			Attack(s.ctx, gomock.Any()).
			Return(nil, errors.PermissionDenied("Only the active raid party can attack this boss."))

		s.send("%attack 3")
		s.Assert().Equal("❌ Only the active raid party can attack this boss.", s.req.last().Content)
	})
}

func (s *RouterTestSuite) TestBossWithoutEncounter() {
	s.mockBoss.EXPECT().
		Status(s.ctx, &boss.StatusInput{GuildID: "g1"}).
		Return(nil, errors.NotFound("No active boss."))

	s.send("%boss")
	s.Assert().Equal("No active boss.", s.req.last().Content)
}

func (s *RouterTestSuite) TestBossClaim() {
	s.mockBoss.EXPECT().
		Claim(s.ctx, &boss.ClaimInput{GuildID: "g1", UserID: "u1"}).
		Return(&boss.ClaimOutput{Reward: entities.Reward{
			Shards: entities.Shards{Gold: 400},
			Items:  map[string]int{"Wilter Egg": 1},
		}}, nil)

	s.send("%boss_claim")
	s.Assert().Equal("✅ Claimed — Shards: 400 gold | Items: 1× Wilter Egg", s.req.last().Content)
}

func (s *RouterTestSuite) TestAstralAdd() {
	s.Run("breed mode points at astral_breed", func() {
		s.send("%astral_add 4 breed")
		s.Assert().Contains(s.req.last().Content, "astral_breed")
	})

	s.Run("bad mode", func() {
		s.send("%astral_add 4 nap")
		s.Assert().Equal("❌ Mode must be 'rest' or 'breed'.", s.req.last().Content)
	})

	s.Run("overflow", func() {
		s.mockAstral.EXPECT().
			AddRest(s.ctx, &astral.AddRestInput{UserID: "u1", GuildID: "g1", ChannelID: "c1", InstanceID: 4}).
			Return(&astral.AddOutput{Overflow: &astral.Overflow{Recalled: []int{1, 2, 3}}}, nil)

		s.send("%astral_add 4 rest")
		s.Assert().Contains(s.req.last().Content, "Recalled from Astral to inventory: #1, #2, #3")
		s.Assert().Contains(s.req.last().Content, "Your new add was blocked.")
	})

	s.Run("placed", func() {
		s.mockAstral.EXPECT().
			AddRest(s.ctx, gomock.Any()).
			Return(&astral.AddOutput{Placed: []int{4}}, nil)

		s.send("%astral_add 4")
		s.Assert().Equal("✅ Placed #4 into Astral (rest).", s.req.last().Content)
	})
}

func (s *RouterTestSuite) TestAstralBreed() {
	s.Run("overflow", func() {
		s.mockAstral.EXPECT().
			AddBreed(s.ctx, &astral.AddBreedInput{UserID: "u1", GuildID: "g1", ChannelID: "c1", A: 1, B: 2}).
			Return(&astral.AddOutput{Overflow: &astral.Overflow{Recalled: []int{3, 4}}}, nil)

		s.send("%astral_breed 1 2")
		s.Assert().Contains(s.req.last().Content, "Recalled from Astral to inventory: #3, #4")
		s.Assert().Contains(s.req.last().Content, "Your new add was blocked.")
	})

	s.Run("started", func() {
		s.mockAstral.EXPECT().
			AddBreed(s.ctx, gomock.Any()).
			Return(&astral.AddOutput{Placed: []int{1, 2}}, nil)

		s.send("%astral_breed 1 2")
		s.Assert().Contains(s.req.last().Content, "Breeding started.")
	})
}

func (s *RouterTestSuite) TestPartyCommands() {
	s.Run("outside a guild", func() {
		s.req.guild = ""
		defer func() { s.req.guild = "g1" }()

		s.send("%party_create")
		s.Assert().Equal("❌ Parties only work in servers.", s.req.last().Content)
	})

	s.Run("join needs a mention", func() {
		s.send("%party_join bob")
		s.Assert().Equal("❌ Usage: `%party_join @leader`", s.req.last().Content)
	})

	s.Run("squad limit", func() {
		s.send("%party_set 1 2 3 4")
		s.Assert().Equal("❌ Pick 1–3 instance IDs.", s.req.last().Content)
	})

	s.Run("squad set", func() {
		s.mockParty.EXPECT().
			SetSquad(s.ctx, &party.SetSquadInput{GuildID: "g1", UserID: "u1", InstanceIDs: []int{1, 2}}).
			Return(&party.SetSquadOutput{Squad: []party.SquadMember{{InstanceID: 1, Name: "Fleeb"}, {InstanceID: 2, Name: "Glorp"}}}, nil)

		s.send("%party_set 1 2")
		s.Assert().Equal("✅ Raid squad set: #1 Fleeb, #2 Glorp", s.req.last().Content)
	})

	s.Run("raid usage", func() {
		s.send("%raid_fleeb dance")
		s.Assert().Equal("❌ Usage: `%raid_fleeb start` or `%raid_fleeb status`", s.req.last().Content)
	})
}

func (s *RouterTestSuite) TestSlashUsesNamedOptions() {
	s.mockProfile.EXPECT().
		ChooseClan(s.ctx, &profile.ChooseClanInput{UserID: "u1", Name: "lambda"}).
		Return(&profile.ChooseClanOutput{Clan: entities.Clans()[1]}, nil)

	s.router.HandleSlash(s.ctx, s.req, "choose_clan", map[string]string{"Name": "lambda"})
	s.Assert().True(strings.HasPrefix(s.req.last().Content, "✅ You joined **Lambda 🐏**"))
}

func (s *RouterTestSuite) TestHelpListsEveryCommand() {
	s.send("%help")

	var all strings.Builder
	for _, r := range s.req.responses {
		s.Assert().LessOrEqual(len(r.Content), 1900)
		all.WriteString(r.Content)
	}
	for _, c := range s.router.Commands() {
		s.Assert().Contains(all.String(), "`/"+c.Name+"`")
	}
}
