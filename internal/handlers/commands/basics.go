package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/economy"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/profile"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

func (r *Router) list(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.inventory.ListSpecies(ctx, &inventory.ListSpeciesInput{})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Text("Available TACs:\n`"+strings.Join(out.Keys, "`, `")+"`"))
}

func (r *Router) describe(ctx context.Context, req chat.Request, args *Args) error {
	out, err := r.inventory.DescribeSpecies(ctx, &inventory.DescribeSpeciesInput{Key: strings.ToLower(args.Get("tac"))})
	if err != nil {
		if errors.IsNotFound(err) || errors.IsInvalidArgument(err) {
			return errors.NotFound("TAC not found.")
		}
		return err
	}
	return r.respond(ctx, req, chat.Card(render.Species(out.Species)))
}

func (r *Router) inventoryPage(ctx context.Context, req chat.Request, args *Args) error {
	out, err := r.inventory.List(ctx, &inventory.ListInput{UserID: req.AuthorID(), Page: args.Int("page")})
	if err != nil {
		return err
	}
	if out.Total == 0 {
		return r.respond(ctx, req, chat.Private("Your inventory is empty."))
	}

	lines := make([]string, 0, len(out.Entries)+2)
	lines = append(lines, fmt.Sprintf("**Your TACs**  (Page %d/%d • %d total)", out.Page, out.Pages, out.Total))
	for i := range out.Entries {
		lines = append(lines, render.InstanceLine(&out.Entries[i].Instance, out.Entries[i].Name))
	}
	lines = append(lines, fmt.Sprintf("Use `%sinventory <page>` or `/inventory page:<n>`", r.prefix))
	return r.respond(ctx, req, chat.Private(strings.Join(lines, "\n")))
}

func (r *Router) inspect(ctx context.Context, req chat.Request, args *Args) error {
	out, err := r.inventory.Inspect(ctx, &inventory.InspectInput{UserID: req.AuthorID(), InstanceID: args.Int("id")})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Card(render.Inspect(out)))
}

func (r *Router) showProfile(ctx context.Context, req chat.Request, args *Args) error {
	userID := req.AuthorID()
	if u := args.User("user"); u != "" {
		userID = u
	}
	out, err := r.profile.Get(ctx, &profile.GetInput{UserID: userID})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Card(render.Profile(out, render.Mention(userID))))
}

func (r *Router) balance(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.economy.Balance(ctx, &economy.BalanceInput{UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Private(render.Balance(out.Shards)))
}

func (r *Router) items(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.economy.Items(ctx, &economy.ItemsInput{UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		return r.respond(ctx, req, chat.Private("You have no items."))
	}
	lines := []string{"**Items**"}
	for _, it := range out.Items {
		lines = append(lines, fmt.Sprintf("• **%s** × %d", it.Name, it.Count))
	}
	return r.respond(ctx, req, chat.Private(strings.Join(lines, "\n")))
}

func (r *Router) resetMe(ctx context.Context, req chat.Request, _ *Args) error {
	if _, err := r.profile.Reset(ctx, &profile.ResetInput{UserID: req.AuthorID()}); err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Private("Your TAC inventory, shards, items, and clan have been reset."))
}
