package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/profile"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

func clanChoices() string {
	names := make([]string, 0, len(entities.Clans()))
	for _, c := range entities.Clans() {
		names = append(names, c.Name+" "+c.Icon)
	}
	return strings.Join(names, ", ")
}

func (r *Router) chooseClan(ctx context.Context, req chat.Request, args *Args) error {
	out, err := r.profile.ChooseClan(ctx, &profile.ChooseClanInput{UserID: req.AuthorID(), Name: args.Get("name")})
	if err != nil {
		return err
	}
	c := out.Clan
	return r.respond(ctx, req, chat.Text(fmt.Sprintf("✅ You joined **%s %s** — %s", c.Name, c.Icon, c.Lore)))
}

func (r *Router) clan(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.profile.Clan(ctx, &profile.ClanInput{UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	if out.Clan == nil {
		return r.respond(ctx, req, chat.Private(fmt.Sprintf(
			"You haven't chosen a clan. Use `%schoose_clan <name>`.\nOptions: %s", r.prefix, clanChoices())))
	}
	return r.respond(ctx, req, chat.Private(fmt.Sprintf("**Clan:** %s %s\n%s", out.Clan.Name, out.Clan.Icon, out.Clan.Lore)))
}

func (r *Router) clanLeaderboard(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.profile.ClanLeaderboard(ctx, &profile.ClanLeaderboardInput{})
	if err != nil {
		return err
	}
	if len(out.Ranks) == 0 {
		return r.respond(ctx, req, chat.Text("No clan data yet."))
	}
	lines := []string{"**Clan Net Worth** (weighted)"}
	for _, rank := range out.Ranks {
		lines = append(lines, fmt.Sprintf("%d. %s %s — %s", rank.Position, rank.Clan.Name, rank.Clan.Icon, render.Number(rank.NetWorth)))
	}
	return r.respond(ctx, req, chat.Text(strings.Join(lines, "\n")))
}
