package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/economy"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/trade"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

func (r *Router) buy(ctx context.Context, req chat.Request, args *Args) error {
	key := strings.ToLower(args.Get("tac"))
	if key == "" {
		return errors.InvalidArgument("Invalid TAC or no cost set.")
	}
	out, err := r.economy.Buy(ctx, &economy.BuyInput{UserID: req.AuthorID(), SpeciesKey: key})
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.InvalidArgument("Invalid TAC or no cost set.")
		}
		return err
	}
	inst := &out.Instance
	return r.respond(ctx, req, chat.Text(fmt.Sprintf("✅ Bought **%s** for %s. (#%d, Lv %d, %s, IV %.1f%%)",
		out.Species.DisplayName(), render.Shards(out.Price), inst.ID, inst.Level, render.GenderEmoji(inst.Gender), inst.IVAvg)))
}

func (r *Router) sell(ctx context.Context, req chat.Request, args *Args) error {
	out, err := r.economy.Sell(ctx, &economy.SellInput{UserID: req.AuthorID(), InstanceID: args.Int("id")})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Text(fmt.Sprintf("💰 Sold #%d %s for %s.", out.Instance.ID, out.Name, render.Shards(out.Price))))
}

// tradeOffer also takes "trade accept <id>" and "trade decline <id>" for
// clients without buttons.
func (r *Router) tradeOffer(ctx context.Context, req chat.Request, args *Args) error {
	switch strings.ToLower(args.Get("user")) {
	case "accept":
		return r.tradeAccept(ctx, req, args.Get("offer"))
	case "decline":
		return r.tradeDecline(ctx, req, args.Get("offer"))
	}

	target := args.User("user")
	if target == "" {
		return errors.InvalidArgument("Pick a real user to trade with.")
	}
	out, err := r.trade.Offer(ctx, &trade.OfferInput{
		GuildID:   req.GuildID(),
		ChannelID: req.ChannelID(),
		UserID:    req.AuthorID(),
		Target:    target,
		Offer:     args.Get("offer"),
		Want:      args.Get("want"),
	})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, &chat.Response{
		Content: render.Mention(target),
		Embed:   render.Trade(out, r.tradeTTL),
		Buttons: TradeButtons(out.Trade.ID),
	})
}

func (r *Router) tradeAccept(ctx context.Context, req chat.Request, id string) error {
	out, err := r.trade.Accept(ctx, &trade.AcceptInput{TradeID: strings.TrimPrefix(id, "#"), UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Text(fmt.Sprintf("✅ Trade #%s completed. Trade accepted.", out.Trade.ID)))
}

func (r *Router) tradeDecline(ctx context.Context, req chat.Request, id string) error {
	out, err := r.trade.Decline(ctx, &trade.DeclineInput{TradeID: strings.TrimPrefix(id, "#"), UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Text(fmt.Sprintf("❌ Trade #%s declined.", out.Trade.ID)))
}

func (r *Router) tradeAcceptButton(ctx context.Context, req chat.Request, id string) error {
	return r.tradeAccept(ctx, req, id)
}

func (r *Router) tradeDeclineButton(ctx context.Context, req chat.Request, id string) error {
	return r.tradeDecline(ctx, req, id)
}

var boards = map[economy.Board]struct {
	title string
	unit  string
}{
	economy.BoardShards:   {"Shards Leaderboard", "shards"},
	economy.BoardGold:     {"Gold Leaderboard", "gold"},
	economy.BoardNetWorth: {"Net Worth Leaderboard", "score"},
}

func (r *Router) leaderboard(ctx context.Context, req chat.Request, board economy.Board) error {
	out, err := r.economy.Leaderboard(ctx, &economy.LeaderboardInput{Board: board})
	if err != nil {
		return err
	}
	if len(out.Ranks) == 0 {
		return r.respond(ctx, req, chat.Text("No data."))
	}
	meta := boards[board]
	lines := []string{"**" + meta.title + "**"}
	for _, rank := range out.Ranks {
		lines = append(lines, fmt.Sprintf("%d. %s — %s %s", rank.Position, render.Mention(rank.UserID), render.Number(rank.Value), meta.unit))
	}
	return r.respond(ctx, req, chat.Text(strings.Join(lines, "\n")))
}

func (r *Router) leaderboardShards(ctx context.Context, req chat.Request, _ *Args) error {
	return r.leaderboard(ctx, req, economy.BoardShards)
}

func (r *Router) leaderboardGold(ctx context.Context, req chat.Request, _ *Args) error {
	return r.leaderboard(ctx, req, economy.BoardGold)
}

func (r *Router) leaderboardNetWorth(ctx context.Context, req chat.Request, _ *Args) error {
	return r.leaderboard(ctx, req, economy.BoardNetWorth)
}
