package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

var errNoPermission = errors.PermissionDenied("You don't have permission.")

func (r *Router) showBoss(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.boss.Status(ctx, &boss.StatusInput{GuildID: req.GuildID()})
	if err != nil {
		if errors.IsNotFound(err) {
			return r.respond(ctx, req, chat.Private("No active boss."))
		}
		return err
	}
	return r.respond(ctx, req, chat.Card(render.Boss(&out.Encounter, out.Tier, out.Top)))
}

func (r *Router) summonBoss(ctx context.Context, req chat.Request, args *Args) error {
	if !r.allowed(req.AuthorID()) {
		return errNoPermission
	}
	if err := guild(req, "Bosses"); err != nil {
		return err
	}
	tier := strings.ToLower(args.Get("tier"))
	if tier == "" {
		tier = entities.TierWilter
	}
	out, err := r.boss.Spawn(ctx, &boss.SpawnInput{GuildID: req.GuildID(), ChannelID: req.ChannelID(), Tier: tier})
	if err != nil {
		return err
	}
	// the arrival card is posted by the BossSpawned announcement
	return r.respond(ctx, req, chat.Private(fmt.Sprintf("Summoned **%s**.", out.Encounter.Name)))
}

func (r *Router) attack(ctx context.Context, req chat.Request, args *Args) error {
	out, err := r.boss.Attack(ctx, &boss.AttackInput{
		GuildID:    req.GuildID(),
		UserID:     req.AuthorID(),
		InstanceID: args.Int("id"),
	})
	if err != nil {
		return err
	}
	return r.respond(ctx, req, chat.Text(AttackText(req.AuthorID(), out)))
}

// AttackText renders one hit, and the fall of the boss when it landed the
// killing blow
func AttackText(userID string, out *boss.AttackOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🗡️ %s dealt **%s** to **%s**", render.Mention(userID), render.Number(out.Damage), out.Encounter.Name)
	if out.Special {
		b.WriteString(", Wiltburst! it healed a bit")
	}
	if out.Wilt {
		fmt.Fprintf(&b, " (your Wilt stacks: **%d**)", out.Stacks)
	}
	b.WriteString(".")

	if out.Defeat != nil {
		fmt.Fprintf(&b, "\n💥 **%s** falls! Rewards via `/boss_claim` / `%%boss_claim`.", out.Defeat.Name)
		if len(out.Defeat.Top) > 0 {
			b.WriteString("\nTop damage:\n" + render.Contributions(out.Defeat.Top))
		}
	}
	return b.String()
}

func (r *Router) bossStatus(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.boss.Effects(ctx, &boss.EffectsInput{GuildID: req.GuildID(), UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	if !out.Wilt || out.Stacks == 0 {
		return r.respond(ctx, req, chat.Private("You feel ready."))
	}
	return r.respond(ctx, req, chat.Private(fmt.Sprintf(
		"🌿 You have **%d** Wilt stack(s). Your damage is reduced by **%d%%**.", out.Stacks, out.ReductionPct)))
}

func (r *Router) purge(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.boss.Purge(ctx, &boss.PurgeInput{GuildID: req.GuildID(), UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	if !out.Wilt {
		return r.respond(ctx, req, chat.Private("✨ You feel lighter."))
	}
	return r.respond(ctx, req, chat.Private("✨ You purified yourself."))
}

func (r *Router) bossClaim(ctx context.Context, req chat.Request, _ *Args) error {
	out, err := r.boss.Claim(ctx, &boss.ClaimInput{GuildID: req.GuildID(), UserID: req.AuthorID()})
	if err != nil {
		return err
	}
	if out.Nothing {
		return r.respond(ctx, req, chat.Private("Nothing to claim."))
	}
	text := "✅ Claimed — Shards: " + render.Shards(out.Reward.Shards)
	if len(out.Reward.Items) > 0 {
		text += " | Items: " + itemList(out.Reward.Items)
	}
	return r.respond(ctx, req, chat.Private(text))
}

func itemList(items map[string]int) string {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%d× %s", items[name], name)
	}
	return strings.Join(parts, ", ")
}
