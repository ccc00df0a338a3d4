package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/astral"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

func ids(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("#%d", n)
	}
	return strings.Join(parts, ", ")
}

// overflowText is shown when a fourth placement tears the veil
func overflowText(o *astral.Overflow) string {
	recalled := "none"
	if len(o.Recalled) > 0 {
		recalled = ids(o.Recalled)
	}
	return "🌌 **Cosmic Overflow!** Your attempt to place a fourth TAC in Astral tore the veil.\n" +
		"🌲 **Ralgulfa** senses imbalance and emerges to sever excess.\n" +
		"↩️ Recalled from Astral to inventory: " + recalled + "\n" +
		"❌ Your new add was blocked."
}

func (r *Router) astralAdd(ctx context.Context, req chat.Request, args *Args) error {
	switch strings.ToLower(args.Get("mode")) {
	case "", string(entities.AstralRest):
	case string(entities.AstralBreed):
		return errors.InvalidArgumentf("Use `%sastral_breed <idA> <idB>` to breed.", r.prefix)
	default:
		return errors.InvalidArgument("Mode must be 'rest' or 'breed'.")
	}

	out, err := r.astral.AddRest(ctx, &astral.AddRestInput{
		UserID:     req.AuthorID(),
		GuildID:    req.GuildID(),
		ChannelID:  req.ChannelID(),
		InstanceID: args.Int("id"),
	})
	if err != nil {
		return err
	}
	if out.Overflow != nil {
		return r.respond(ctx, req, chat.Text(overflowText(out.Overflow)))
	}
	return r.respond(ctx, req, chat.Text(fmt.Sprintf("✅ Placed %s into Astral (rest).", ids(out.Placed))))
}

func (r *Router) astralBreed(ctx context.Context, req chat.Request, args *Args) error {
	out, err := r.astral.AddBreed(ctx, &astral.AddBreedInput{
		UserID:    req.AuthorID(),
		GuildID:   req.GuildID(),
		ChannelID: req.ChannelID(),
		A:         args.Int("a"),
		B:         args.Int("b"),
	})
	if err != nil {
		return err
	}
	if out.Overflow != nil {
		return r.respond(ctx, req, chat.Text(overflowText(out.Overflow)))
	}
	return r.respond(ctx, req, chat.Text(fmt.Sprintf(
		"✅ Breeding started. Type to progress (1 cycle / %d chars).", entities.CycleChars)))
}

func (r *Router) astralList(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.astral.List(ctx, &astral.ListInput{UserID: req.AuthorID()})
	if err != nil {
		return err
	}

	lines := []string{"**Astral**"}
	if len(out.Lines) == 0 {
		lines = append(lines, "No entries.")
	}
	for _, l := range out.Lines {
		line := fmt.Sprintf("#%d %s (Lv %d) — %s", l.Instance.ID, l.Name, l.Instance.Level, l.Placement.Describe())
		if l.Partner != nil {
			line += fmt.Sprintf(" with #%d %s", l.Partner.ID, l.PartnerNm)
		}
		lines = append(lines, line)
	}
	if len(out.Pending) > 0 {
		lines = append(lines, "", "**Offspring Ready:**")
		for _, baby := range out.Pending {
			name := out.Names[baby.Species]
			if name == "" {
				name = baby.Species
			}
			lines = append(lines, fmt.Sprintf("%s (Lv %d, %s)", name, baby.Level, render.GenderEmoji(baby.Gender)))
		}
	}
	return r.respond(ctx, req, chat.Private(strings.Join(lines, "\n")))
}

func (r *Router) astralClaim(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.astral.Claim(ctx, &astral.ClaimInput{UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	if out.Nothing {
		return r.respond(ctx, req, chat.Private("Nothing to claim right now."))
	}

	var lines []string
	if out.Returned > 0 {
		lines = append(lines, fmt.Sprintf("Returned %d resting TAC(s) from Astral.", out.Returned))
	}
	if len(out.Offspring) > 0 {
		lines = append(lines, "New offspring:")
		for _, h := range out.Offspring {
			inst := &h.Instance
			lines = append(lines, fmt.Sprintf("- %s (#%d, Lv %d, %s, IV %.1f%%)",
				h.Name, inst.ID, inst.Level, render.GenderEmoji(inst.Gender), inst.IVAvg))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "Breeding pairs returned to your inventory.")
	}
	return r.respond(ctx, req, chat.Text(strings.Join(lines, "\n")))
}

func (r *Router) astralRecall(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.astral.Recall(ctx, &astral.RecallInput{UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	if len(out.Recalled) == 0 {
		return r.respond(ctx, req, chat.Private("Nothing is in Astral."))
	}
	return r.respond(ctx, req, chat.Private("↩️ Recalled from Astral to inventory: "+ids(out.Recalled)))
}
