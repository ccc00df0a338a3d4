package commands

import (
	"context"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

func (r *Router) summon(ctx context.Context, req chat.Request, args *Args) error {
	if !r.allowed(req.AuthorID()) {
		return errNoPermission
	}
	key := strings.ToLower(args.Get("tac"))
	if key == "" {
		return errors.NotFound("TAC not found.")
	}
	out, err := r.encounter.Spawn(ctx, &encounter.SpawnInput{
		GuildID:    req.GuildID(),
		ChannelID:  req.ChannelID(),
		SpeciesKey: key,
	})
	switch {
	case errors.IsNotFound(err):
		return errors.NotFound("TAC not found.")
	case errors.IsInvalidState(err):
		return errors.InvalidState("A TAC is already active here.")
	case err != nil:
		return err
	}
	// the spawn card itself is posted by the SpawnAppeared announcement
	return r.respond(ctx, req, chat.Private("✅ Summoned "+out.Species.DisplayName()+"."))
}

func (r *Router) catchButton(ctx context.Context, req chat.Request, _ string) error {
	out, err := r.encounter.Catch(ctx, &encounter.CatchInput{
		GuildID:   req.GuildID(),
		ChannelID: req.ChannelID(),
		UserID:    req.AuthorID(),
	})
	if err != nil {
		if errors.IsNotFound(err) || errors.IsInvalidState(err) {
			return r.respond(ctx, req, chat.Private("Too late!"))
		}
		return err
	}
	return r.respond(ctx, req, chat.Text(render.Caught(req.AuthorID(), out)))
}

