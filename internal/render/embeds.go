package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/engine"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/profile"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/trade"
)

// DefaultArtist is credited when a species names none
const DefaultArtist = "@lordhank2"

func artist(sp *entities.Species) string {
	if sp.Artist != "" {
		return sp.Artist
	}
	return DefaultArtist
}

// Species is the describe card
func Species(sp *entities.Species) *chat.Embed {
	e := &chat.Embed{
		Title:       sp.DisplayName(),
		Description: sp.Description,
		Color:       chat.ColorBlurple,
		Footer:      "Art by " + artist(sp),
		Image:       sp.ImageFile,
	}
	e.AddField("Type", sp.Type, true).
		AddField("Region", sp.Region, true).
		AddField("Base Stats", BaseStats(sp.Stats), false).
		AddField("Egg Groups", strings.Join(sp.EggGroups, ", "), true)
	return e
}

// Spawn is the wild spawn card
func Spawn(sp *entities.Species, window time.Duration) *chat.Embed {
	e := &chat.Embed{
		Title:       fmt.Sprintf("A wild %s appeared!", sp.DisplayName()),
		Description: fmt.Sprintf("Click **Catch!** or send a GIF within **%d seconds** to catch it!", int(window.Seconds())),
		Color:       chat.ColorRed,
		Footer:      "Catch it quickly or it vanishes! | Art by " + artist(sp),
		Image:       sp.ImageFile,
	}
	e.AddField("Region", sp.Region, true).
		AddField("Stats", BaseStats(sp.Stats), false)
	return e
}

// Caught announces a successful catch
func Caught(userID string, out *encounter.CatchOutput) string {
	name := out.Spawn.Species
	if out.Species != nil {
		name = out.Species.DisplayName()
	}
	inst := &out.Instance
	return fmt.Sprintf("🎉 %s caught **%s** (#%d, Lv %d, %s) (+%s)",
		Mention(userID), name, inst.ID, inst.Level, GenderEmoji(inst.Gender), Shards(out.Reward))
}

// Vanished announces a spawn nobody caught
func Vanished(name string) string {
	return fmt.Sprintf("💨 The %s vanished back into the void...", name)
}

// Inspect is the detailed instance card
func Inspect(out *inventory.InspectOutput) *chat.Embed {
	inst := &out.Instance
	name := inst.Species
	e := &chat.Embed{Color: chat.ColorGold}
	if out.Species != nil {
		name = out.Species.DisplayName()
		e.Description = out.Species.Description
		e.Image = out.Species.ImageFile
		e.Footer = "Art by " + artist(out.Species)
	}
	e.Title = fmt.Sprintf("%s  •  #%d", name, inst.ID)
	e.AddField("Level / Gender", fmt.Sprintf("Lv %d  •  %s", inst.Level, GenderEmoji(inst.Gender)), true).
		AddField("IV Average", IVAverage(inst), true)
	if out.Placement != nil {
		e.AddField("Astral", out.Placement.Describe(), false)
	}
	e.AddField("IVs vs Base", IVs(inst, out.Species), false).
		AddField("IV Bars", IVBars(inst, out.Species), false)
	return e
}

// Boss is the world boss card
func Boss(enc *entities.Encounter, tier *entities.BossTier, top []entities.Contribution) *chat.Embed {
	e := &chat.Embed{
		Title: "🧪 World Boss — " + enc.Name,
		Color: chat.ColorRed,
	}
	e.AddField("HP", fmt.Sprintf("%s/%s\n`%s`", Number(enc.HP), Number(enc.MaxHP), HPBar(enc.HP, enc.MaxHP)), false)

	aura := "*A presence looms...*"
	if tier != nil {
		e.Image = tier.ImageFile
		switch {
		case tier.Aura != "":
			aura = tier.Aura
		case tier.Description != "":
			aura = tier.Description
		}
	}
	e.AddField("Aura", aura, false)

	if enc.Raid != nil {
		members := []string{Mention(enc.Raid.Leader)}
		for _, m := range enc.Raid.Members {
			if m != enc.Raid.Leader {
				members = append(members, Mention(m))
			}
		}
		e.AddField("Raid Party", strings.Join(members, ", "), false)
	}
	if len(top) > 0 {
		e.AddField("Top Damage", Contributions(top), false)
	}
	return e
}

// Contributions lists damage dealt per user
func Contributions(top []entities.Contribution) string {
	lines := make([]string, 0, len(top))
	for _, c := range top {
		lines = append(lines, fmt.Sprintf("%s — %s", Mention(c.UserID), Number(c.Damage)))
	}
	return strings.Join(lines, "\n")
}

// Profile is the profile card. displayName titles the card.
func Profile(out *profile.GetOutput, displayName string) *chat.Embed {
	clan := "—"
	if out.Clan != nil {
		clan = out.Clan.Name + " " + out.Clan.Icon
	}
	e := &chat.Embed{
		Title: displayName + "'s Profile",
		Color: chat.ColorGreen,
	}
	if out.Status != "" {
		e.Description = "*" + out.Status + "*"
	}
	e.AddField("Clan", clan, true).
		AddField("Shards", Wallet(out.Shards), true).
		AddField("Net Worth", Number(out.NetWorth), true).
		AddField("TAC Stats", fmt.Sprintf("Total: **%d**\nUnique: **%d**\nBest IV: **%.1f%%**\nHighest Lv: **%d**",
			out.Stats.Total, out.Stats.Unique, out.Stats.BestIV, out.Stats.HighestLevel), true).
		AddField("Items", items(out), true)

	if out.Top != nil {
		inst := &out.Top.Instance
		e.AddField("Top TAC", fmt.Sprintf("#%d %s %s — Lv%d  •  IV %.1f%%",
			inst.ID, out.Top.Name, GenderEmoji(inst.Gender), inst.Level, inst.IVAvg), false)
	}
	return e
}

func items(out *profile.GetOutput) string {
	if len(out.Items) == 0 {
		return "—"
	}
	parts := make([]string, 0, len(out.Items)+1)
	for _, it := range out.Items {
		parts = append(parts, fmt.Sprintf("%s ×%d", it.Name, it.Count))
	}
	if out.MoreItems {
		parts = append(parts, "…")
	}
	return strings.Join(parts, "\n")
}

// Listings renders instances on one side of a trade
func Listings(ls []trade.Listing) string {
	if len(ls) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(ls))
	for _, l := range ls {
		parts = append(parts, fmt.Sprintf("#%d %s", l.InstanceID, l.Name))
	}
	return strings.Join(parts, ", ")
}

// Trade is the offer card shown to the recipient
func Trade(out *trade.OfferOutput, ttl time.Duration) *chat.Embed {
	t := &out.Trade
	want := "—"
	if !t.Want.IsEmpty() {
		want = Listings(out.Wanted) + " | " + Shards(t.Want.Shards)
	}
	e := &chat.Embed{
		Title:  "Trade Offer #" + t.ID,
		Color:  chat.ColorBlurple,
		Footer: fmt.Sprintf("Only the recipient can Accept. Expires in %ds.", int(ttl.Seconds())),
	}
	e.AddField("From", Mention(t.Author), true).
		AddField("To", Mention(t.Target), true).
		AddField("They Offer", Listings(out.Offered)+" | "+Shards(t.Offer.Shards), false).
		AddField("They Want from You", want, false)
	return e
}

// Challenge is the duel invitation card
func Challenge(out *pvp.ChallengeOutput) *chat.Embed {
	d := &out.Duel
	inst := &out.Challenger.Instance
	e := &chat.Embed{
		Title:  "PvP Challenge #" + d.ID,
		Color:  chat.ColorPurple,
		Footer: fmt.Sprintf("Accept with `%%pvp_accept %s <your_instance_id>` or decline with `%%pvp_decline %s`.", d.ID, d.ID),
	}
	e.AddField("Challenger", Mention(d.Challenger), true).
		AddField("Target", Mention(d.Target), true).
		AddField("Challenger TAC", fmt.Sprintf("#%d %s (Lv %d, IV %.1f%%)", inst.ID, out.Challenger.Name, inst.Level, inst.IVAvg), false)
	return e
}

// Duel renders the fight log and verdict
func Duel(out *pvp.AcceptOutput) string {
	a, b := out.Challenger, out.Defender
	lines := []string{fmt.Sprintf("**Duel:** %s (%s #%d) vs %s (%s #%d)",
		Mention(a.UserID), a.Name, a.Instance.ID, Mention(b.UserID), b.Name, b.Instance.ID)}

	rounds, cut := out.Preview()
	for _, r := range rounds {
		attacker, defender := "A", "B"
		if r.Attacker == engine.SideDefender {
			attacker, defender = "B", "A"
		}
		crit := ""
		if r.Crit {
			crit = " (crit!)"
		}
		lines = append(lines, fmt.Sprintf("Round %d: %s deals **%d**%s → %s HP %d", r.Round, attacker, r.Damage, crit, defender, r.RemainingHP))
	}
	if cut {
		lines = append(lines, "…")
	}

	switch out.Result.Verdict {
	case engine.SideChallenger:
		lines = append(lines, "**Winner:** "+Mention(a.UserID)+" 🏆")
	case engine.SideDefender:
		lines = append(lines, "**Winner:** "+Mention(b.UserID)+" 🏆")
	default:
		lines = append(lines, "**Result:** Draw! ⚖️")
	}
	return strings.Join(lines, "\n")
}

// Number formats n with thousands separators
func Number(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
