package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/party"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

func (r *Router) partyCreate(ctx context.Context, req chat.Request, _ *Args) error {
	if err := guild(req, "Parties"); err != nil {
		return err
	}
	if _, err := r.party.Create(ctx, &party.CreateInput{GuildID: req.GuildID(), UserID: req.AuthorID()}); err != nil {
		return err
	}
	me := render.Mention(req.AuthorID())
	return r.respond(ctx, req, chat.Text(fmt.Sprintf(
		"✅ Party created. Controller: %s. Others can join with `%sparty_join %s`.", me, r.prefix, me)))
}

func (r *Router) partyJoin(ctx context.Context, req chat.Request, args *Args) error {
	if err := guild(req, "Parties"); err != nil {
		return err
	}
	leader := args.User("leader")
	if leader == "" {
		return errors.InvalidArgumentf("Usage: `%sparty_join @leader`", r.prefix)
	}
	if _, err := r.party.Join(ctx, &party.JoinInput{GuildID: req.GuildID(), UserID: req.AuthorID(), Leader: leader}); err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Text(fmt.Sprintf("✅ %s joined %s's party.", render.Mention(req.AuthorID()), render.Mention(leader))))
}

func (r *Router) partyLeave(ctx context.Context, req chat.Request, _ *Args) error {
	if err := guild(req, "Parties"); err != nil {
		return err
	}
	out, err := r.party.Leave(ctx, &party.LeaveInput{GuildID: req.GuildID(), UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	switch {
	case out.Disbanded && out.RaidDismissed:
		return r.respond(ctx, req, chat.Text("🚫 You disbanded the party. The raid boss fades away."))
	case out.Disbanded:
		return r.respond(ctx, req, chat.Text("🚫 You disbanded the party."))
	default:
		return r.respond(ctx, req, chat.Text("You left the party."))
	}
}

func (r *Router) partyMembers(ctx context.Context, req chat.Request, args *Args) error {
	if err := guild(req, "Parties"); err != nil {
		return err
	}
	out, err := r.party.Members(ctx, &party.MembersInput{GuildID: req.GuildID(), UserID: req.AuthorID(), Leader: args.User("leader")})
	if err != nil {
		return err
	}
	members := make([]string, len(out.Party.Members))
	for i, m := range out.Party.Members {
		members[i] = render.Mention(m)
	}
	return r.respond(ctx, req, chat.Text(fmt.Sprintf("**Party** (Controller: %s) — %s",
		render.Mention(out.Party.Leader), strings.Join(members, ", "))))
}

func (r *Router) partySet(ctx context.Context, req chat.Request, args *Args) error {
	if err := guild(req, "Parties"); err != nil {
		return err
	}
	var picks []int
	for _, p := range []string{"a", "b", "c"} {
		if id := args.Int(p); id > 0 {
			picks = append(picks, id)
		}
	}
	if len(picks) == 0 || len(args.Extra) > 0 {
		return errors.InvalidArgument("Pick 1–3 instance IDs.")
	}
	out, err := r.party.SetSquad(ctx, &party.SetSquadInput{GuildID: req.GuildID(), UserID: req.AuthorID(), InstanceIDs: picks})
	if err != nil {
		return err
	}
	parts := make([]string, len(out.Squad))
	for i, s := range out.Squad {
		parts[i] = fmt.Sprintf("#%d %s", s.InstanceID, s.Name)
	}
	return r.respond(ctx, req, chat.Text("✅ Raid squad set: "+strings.Join(parts, ", ")))
}

func (r *Router) raidFleeb(ctx context.Context, req chat.Request, args *Args) error {
	if err := guild(req, "Raids"); err != nil {
		return err
	}
	switch strings.ToLower(args.Get("action")) {
	case "start":
		if _, err := r.party.StartRaid(ctx, &party.StartRaidInput{
			GuildID:   req.GuildID(),
			ChannelID: req.ChannelID(),
			UserID:    req.AuthorID(),
		}); err != nil {
			return err
		}
		return r.respond(ctx, req, chat.Text(fmt.Sprintf(
			"🧪 Fleeb Raid started by %s! Only the party can attack. Use `%sattack <id>`.", render.Mention(req.AuthorID()), r.prefix)))
	case "status":
		out, err := r.party.RaidStatus(ctx, &party.RaidStatusInput{GuildID: req.GuildID()})
		if err != nil {
			return err
		}
		if !out.Active || out.Boss == nil {
			return r.respond(ctx, req, chat.Private("No active Fleeb Raid."))
		}
		return r.respond(ctx, req, &chat.Response{
			Content: "Fleeb Raid is active.",
			Embed:   render.Boss(&out.Boss.Encounter, out.Boss.Tier, out.Boss.Top),
		})
	default:
		return errors.InvalidArgumentf("Usage: `%sraid_fleeb start` or `%sraid_fleeb status`", r.prefix, r.prefix)
	}
}
