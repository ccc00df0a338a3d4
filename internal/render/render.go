// Package render turns game state into the text and embeds players see.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/entities"
)

// Gauge widths
const (
	IVBarWidth = 18
	HPBarWidth = 24
	ChunkLimit = 1900
)

// Bar renders a fixed-width gauge of current over total
func Bar(current, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	ratio := math.Max(0, math.Min(1, float64(current)/float64(total)))
	filled := int(math.Round(ratio * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// HPBar renders a boss health gauge
func HPBar(hp, maxHP int) string {
	return Bar(hp, maxHP, HPBarWidth)
}

// GenderEmoji renders a gender marker
func GenderEmoji(g entities.Gender) string {
	switch g {
	case entities.GenderMale:
		return "♂️"
	case entities.GenderFemale:
		return "♀️"
	default:
		return "❔"
	}
}

// Mention renders a user mention
func Mention(userID string) string {
	return "<@" + userID + ">"
}

// Shards lists the non-zero balances, or "none"
func Shards(s entities.Shards) string {
	var parts []string
	if s.Gold != 0 {
		parts = append(parts, fmt.Sprintf("%d gold", s.Gold))
	}
	if s.Diamond != 0 {
		parts = append(parts, fmt.Sprintf("%d diamond", s.Diamond))
	}
	if s.Enchanted != 0 {
		parts = append(parts, fmt.Sprintf("%d enchanted", s.Enchanted))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// Balance renders every balance with its icon
func Balance(s entities.Shards) string {
	return fmt.Sprintf("💎 Diamond: %d | 🪙 Gold: %d | ✨ Enchanted: %d", s.Diamond, s.Gold, s.Enchanted)
}

// Wallet is the compact balance used on profile cards
func Wallet(s entities.Shards) string {
	return fmt.Sprintf("💎 %d  •  🪙 %d  •  ✨ %d", s.Diamond, s.Gold, s.Enchanted)
}

// BaseStats renders a species' stat block
func BaseStats(s entities.Stats) string {
	return fmt.Sprintf("**ATTACK** %d  •  **SPEED** %d\n**HEALTH** %d  •  **ENDURANCE** %d",
		s.Attack, s.Speed, s.Health, s.Endurance)
}

// IVs renders an instance's stats against its species base
func IVs(inst *entities.Instance, species *entities.Species) string {
	ivs := inst.IVsOrBase(species)
	parts := make([]string, 0, 4)
	for _, stat := range entities.AllStats() {
		label := strings.ToUpper(string(stat))
		base := 0
		if species != nil {
			base = species.Stats.Get(stat)
		}
		if base > 0 {
			parts = append(parts, fmt.Sprintf("**%s** %d/%d", label, ivs.Get(stat), base))
		} else {
			parts = append(parts, fmt.Sprintf("**%s** %d", label, ivs.Get(stat)))
		}
	}
	return strings.Join(parts, "  •  ")
}

var barLabels = []struct {
	label string
	stat  entities.Stat
}{
	{"ATK", entities.StatAttack},
	{"SPD", entities.StatSpeed},
	{"HP", entities.StatHealth},
	{"END", entities.StatEndurance},
}

// IVBars renders one gauge per stat inside a code block
func IVBars(inst *entities.Instance, species *entities.Species) string {
	ivs := inst.IVsOrBase(species)
	lines := make([]string, 0, len(barLabels))
	for _, b := range barLabels {
		cur := ivs.Get(b.stat)
		base := 1
		if species != nil {
			base = species.Stats.Get(b.stat)
		}
		pct := "—"
		bar := strings.Repeat(" ", IVBarWidth)
		if base > 0 {
			pct = fmt.Sprintf("%.0f%%", float64(cur)/float64(base)*100)
			bar = Bar(cur, base, IVBarWidth)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", b.label, bar, pct))
	}
	return "```" + strings.Join(lines, "\n") + "```"
}

// IVAverage renders an IV average, starred when perfect
func IVAverage(inst *entities.Instance) string {
	s := fmt.Sprintf("%.2f%%", inst.IVAvg)
	if inst.Perfect() {
		s += " ⭐"
	}
	return s
}

// InstanceLine is the compact one-line form used by inventories
func InstanceLine(inst *entities.Instance, name string) string {
	star := ""
	if inst.Perfect() {
		star = " ⭐"
	}
	return fmt.Sprintf("#%d %s %s  | Lv%d | IV %.0f%%%s", inst.ID, name, GenderEmoji(inst.Gender), inst.Level, inst.IVAvg, star)
}

// Chunk splits long text at line breaks into pieces of at most limit bytes
func Chunk(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return []string{text}
	}
	var chunks []string
	var buf strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if buf.Len()+len(line) > limit && buf.Len() > 0 {
			chunks = append(chunks, buf.String())
			buf.Reset()
		}
		buf.WriteString(line)
	}
	if buf.Len() > 0 {
		chunks = append(chunks, buf.String())
	}
	return chunks
}
