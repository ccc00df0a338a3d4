package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

// Help sections in display order
const (
	GroupBasics  = "Basics"
	GroupClans   = "Clans"
	GroupCatch   = "Catching & Spawns"
	GroupAstral  = "Astral (Lv cap 1024)"
	GroupEconomy = "Economy"
	GroupBoards  = "Leaderboards"
	GroupBoss    = "World Boss"
	GroupParty   = "Parties & Raids"
	GroupPvP     = "PvP (Friendly)"
	GroupAdmin   = "Summon (allow-list only)"
)

var groupOrder = []string{
	GroupBasics, GroupClans, GroupCatch, GroupAstral, GroupEconomy,
	GroupBoards, GroupBoss, GroupParty, GroupPvP, GroupAdmin,
}

// groupNotes are help lines that belong to no single command
var groupNotes = map[string][]string{
	GroupCatch: {
		"Post a **GIF**, say **theta** 3×/10s, **CAPS scream** (10+ chars), or emoji-spam (spawns a boss)",
		"Click **Catch!** or post a GIF in time to capture (Lv 1–10, IV 80–100%, gender)",
	},
}

// Button custom id kinds
const (
	ComponentCatch        = "catch"
	ComponentTradeAccept  = "trade_accept"
	ComponentTradeDecline = "trade_decline"
)

// CatchButton is attached to spawn cards
func CatchButton() []chat.Button {
	return []chat.Button{{ID: ComponentCatch, Label: "Catch!", Style: chat.ButtonSuccess}}
}

// TradeButtons are attached to trade cards
func TradeButtons(tradeID string) []chat.Button {
	return []chat.Button{
		{ID: ComponentTradeAccept + ":" + tradeID, Label: "Accept", Style: chat.ButtonSuccess},
		{ID: ComponentTradeDecline + ":" + tradeID, Label: "Decline", Style: chat.ButtonDanger},
	}
}

func (r *Router) table() []*Command {
	return []*Command{
		{Name: "help", Group: GroupBasics, Usage: "help", Description: "Show this menu", Handler: r.help},
		{Name: "list", Group: GroupBasics, Usage: "list", Description: "List TAC keys", Handler: r.list},
		{Name: "describe", Group: GroupBasics, Usage: "describe <tac>", Description: "Show TAC info & base stats",
			Params: []string{"tac"}, Handler: r.describe},
		{Name: "inventory", Aliases: []string{"inv"}, Group: GroupBasics, Usage: "inventory [page]", Description: "Compact, paginated inventory",
			Params: []string{"page"}, Handler: r.inventoryPage},
		{Name: "inspect", Group: GroupBasics, Usage: "inspect <id>", Description: "Detailed instance view",
			Params: []string{"id"}, Handler: r.inspect},
		{Name: "profile", Group: GroupBasics, Usage: "profile [@user]", Description: "Profile card (clan, shards, top TAC)",
			Params: []string{"user"}, Handler: r.showProfile},
		{Name: "balance", Aliases: []string{"bal"}, Group: GroupBasics, Usage: "balance", Description: "Your shard balances", Handler: r.balance},
		{Name: "items", Group: GroupBasics, Usage: "items", Description: "Cosmetic items (e.g., Wilter Egg)", Handler: r.items},
		{Name: "resetme", Group: GroupBasics, Usage: "resetme", Description: "Wipe your TACs, shards, items and clan", Handler: r.resetMe},

		{Name: "choose_clan", Group: GroupClans, Usage: "choose_clan <name>", Description: clanChoices(),
			Params: []string{"name"}, Greedy: true, Handler: r.chooseClan},
		{Name: "clan", Group: GroupClans, Usage: "clan", Description: "View your clan & lore", Handler: r.clan},
		{Name: "clan_lb", Group: GroupClans, Usage: "clan_lb", Description: "Clan leaderboard (weighted net worth)", Handler: r.clanLeaderboard},

		{Name: "astral_add", Group: GroupAstral, Usage: "astral_add <id> rest", Description: "Rest to gain levels while you chat",
			Params: []string{"id", "mode"}, Handler: r.astralAdd},
		{Name: "astral_breed", Group: GroupAstral, Usage: "astral_breed <idA> <idB>", Description: "Opposite gender + shared egg group",
			Params: []string{"a", "b"}, Handler: r.astralBreed},
		{Name: "astral_list", Group: GroupAstral, Usage: "astral_list", Description: "View Astral queue & breeding progress", Handler: r.astralList},
		{Name: "astral_claim", Group: GroupAstral, Usage: "astral_claim", Description: "Return resting TACs & claim offspring", Handler: r.astralClaim},
		{Name: "astral_recall", Group: GroupAstral, Usage: "astral_recall", Description: "Pull every TAC out of Astral now", Handler: r.astralRecall},

		{Name: "buy", Group: GroupEconomy, Usage: "buy <tac>", Description: "Spend shards to get a TAC",
			Params: []string{"tac"}, Handler: r.buy},
		{Name: "sell", Group: GroupEconomy, Usage: "sell <id>", Description: "Sell an instance for shards",
			Params: []string{"id"}, Handler: r.sell},
		{Name: "trade", Group: GroupEconomy, Usage: `trade @user offer:"#1 gold=25" want:"#9 diamond=1"`, Description: "Safe trades",
			Params: []string{"user", "offer"}, Options: []string{"want"}, Greedy: true, Handler: r.tradeOffer},

		{Name: "lb_shards", Group: GroupBoards, Usage: "lb_shards", Description: "Most shards held", Handler: r.leaderboardShards},
		{Name: "lb_gold", Group: GroupBoards, Usage: "lb_gold", Description: "Most gold held", Handler: r.leaderboardGold},
		{Name: "lb_networth", Group: GroupBoards, Usage: "lb_networth", Description: "Weighted net worth", Handler: r.leaderboardNetWorth},

		{Name: "boss", Group: GroupBoss, Usage: "boss", Description: "Show current boss", Handler: r.showBoss},
		{Name: "attack", Group: GroupBoss, Usage: "attack <id>", Description: "Attack boss",
			Params: []string{"id"}, Handler: r.attack},
		{Name: "boss_status", Group: GroupBoss, Usage: "boss_status", Description: "Debuffs/status", Handler: r.bossStatus},
		{Name: "purge", Group: GroupBoss, Usage: "purge", Description: "Cleanse your Wilt stacks", Handler: r.purge},
		{Name: "boss_claim", Group: GroupBoss, Usage: "boss_claim", Description: "Claim rewards", Handler: r.bossClaim},

		{Name: "party_create", Group: GroupParty, Usage: "party_create", Description: "Start a party you control", Handler: r.partyCreate},
		{Name: "party_join", Group: GroupParty, Usage: "party_join @leader", Description: "Join a leader's party",
			Params: []string{"leader"}, Handler: r.partyJoin},
		{Name: "party_leave", Group: GroupParty, Usage: "party_leave", Description: "Leave, or disband when you lead", Handler: r.partyLeave},
		{Name: "party_members", Group: GroupParty, Usage: "party_members [@leader]", Description: "Show a party roster",
			Params: []string{"leader"}, Handler: r.partyMembers},
		{Name: "party_set", Group: GroupParty, Usage: "party_set <a> [b] [c]", Description: "Pick up to 3 raid TACs",
			Params: []string{"a", "b", "c"}, Handler: r.partySet},
		{Name: "raid_fleeb", Group: GroupParty, Usage: "raid_fleeb start|status", Description: "Party leader starts a raid; only the party can attack",
			Params: []string{"action"}, Handler: r.raidFleeb},

		{Name: "pvp", Group: GroupPvP, Usage: "pvp @user <your_instance_id>", Description: "Send a challenge",
			Params: []string{"user", "id"}, Handler: r.pvpChallenge},
		{Name: "pvp_accept", Group: GroupPvP, Usage: "pvp_accept <challenge_id> <your_id>", Description: "Fight with one of your TACs",
			Params: []string{"challenge", "id"}, Handler: r.pvpAccept},
		{Name: "pvp_decline", Group: GroupPvP, Usage: "pvp_decline <challenge_id>", Description: "Turn a challenge down",
			Params: []string{"challenge"}, Handler: r.pvpDecline},

		{Name: "summon", Group: GroupAdmin, Usage: "summon <tac>", Description: "Spawn a wild TAC here",
			Params: []string{"tac"}, Handler: r.summon},
		{Name: "summon_boss", Group: GroupAdmin, Usage: "summon_boss [tier]", Description: "Spawn a world boss",
			Params: []string{"tier"}, Handler: r.summonBoss},
	}
}

// HelpText renders the command menu
func (r *Router) HelpText() string {
	byGroup := map[string][]*Command{}
	for _, c := range r.commands {
		byGroup[c.Group] = append(byGroup[c.Group], c)
	}

	var b strings.Builder
	b.WriteString("**Theta Arc — Commands**\n")
	for _, g := range groupOrder {
		cmds, notes := byGroup[g], groupNotes[g]
		if len(cmds) == 0 && len(notes) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n__%s__\n", g)
		for _, n := range notes {
			fmt.Fprintf(&b, "• %s\n", n)
		}
		for _, c := range cmds {
			fmt.Fprintf(&b, "• `%s%s` / `/%s` — %s\n", r.prefix, c.Usage, c.Name, c.Description)
		}
	}
	fmt.Fprintf(&b, "\n__Tips__\n• Gender shows as ♂️/♀️. IVs display with bars. Use `%sinspect <id>` for details.\n", r.prefix)
	return b.String()
}

func (r *Router) help(ctx context.Context, req chat.Request, _ *Args) error {
	for _, chunk := range render.Chunk(r.HelpText(), render.ChunkLimit) {
		r.reply(ctx, req, chat.Private(chunk))
	}
	return nil
}
