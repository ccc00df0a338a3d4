package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

func (r *Router) pvpChallenge(ctx context.Context, req chat.Request, args *Args) error {
	target := args.User("user")
	if target == "" || args.Int("id") == 0 {
		return errors.InvalidArgumentf("Usage: `%spvp @user <your_instance_id>`", r.prefix)
	}
	out, err := r.pvp.Challenge(ctx, &pvp.ChallengeInput{
		GuildID:    req.GuildID(),
		ChannelID:  req.ChannelID(),
		UserID:     req.AuthorID(),
		Target:     target,
		InstanceID: args.Int("id"),
	})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, &chat.Response{
		Content: render.Mention(target),
		Embed:   render.Challenge(out),
	})
}

func (r *Router) pvpAccept(ctx context.Context, req chat.Request, args *Args) error {
	id := strings.TrimPrefix(args.Get("challenge"), "#")
	if id == "" || args.Int("id") == 0 {
		return errors.InvalidArgumentf("Usage: `%spvp_accept <challenge_id> <your_id>`", r.prefix)
	}
	out, err := r.pvp.Accept(ctx, &pvp.AcceptInput{DuelID: id, UserID: req.AuthorID(), InstanceID: args.Int("id")})
	if err != nil {
		return err
	}
	for _, chunk := range render.Chunk(render.Duel(out), render.ChunkLimit) {
		r.reply(ctx, req, chat.Text(chunk))
	}
	return nil
}

func (r *Router) pvpDecline(ctx context.Context, req chat.Request, args *Args) error {
	id := strings.TrimPrefix(args.Get("challenge"), "#")
	if id == "" {
		return errors.InvalidArgumentf("Usage: `%spvp_decline <challenge_id>`", r.prefix)
	}
	out, err := r.pvp.Decline(ctx, &pvp.DeclineInput{DuelID: id, UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Text(fmt.Sprintf("❌ PvP Challenge #%s has been declined.", out.Duel.ID)))
}
