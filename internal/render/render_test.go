package render_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/theta-arc/internal/engine"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/trade"
	"github.com/KirkDiggler/theta-arc/internal/render"
	"github.com/KirkDiggler/theta-arc/internal/testutils"
)

func TestBar(t *testing.T) {
	testCases := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{name: "full", current: 10, total: 10, want: strings.Repeat("█", 4)},
		{name: "half", current: 5, total: 10, want: "██░░"},
		{name: "overfull clamps", current: 20, total: 10, want: strings.Repeat("█", 4)},
		{name: "negative clamps", current: -3, total: 10, want: strings.Repeat("░", 4)},
		{name: "no total", current: 5, total: 0, want: strings.Repeat("░", 4)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.Bar(tc.current, tc.total, 4))
		})
	}
}

func TestHPBarWidth(t *testing.T) {
	assert.Equal(t, render.HPBarWidth, utf8.RuneCountInString(render.HPBar(1234, 50000)))
}

func TestIVBars(t *testing.T) {
	sp, err := testutils.Catalog().Species("fleeb")
	require.NoError(t, err)
	inst := testutils.Instance(1, "fleeb", 3, entities.GenderMale)
	inst.IVs.Attack = 20

	out := render.IVBars(&inst, sp)
	assert.Contains(t, out, "ATK "+strings.Repeat("█", 9)+strings.Repeat("░", 9)+" 50%")
	assert.Contains(t, out, "SPD "+strings.Repeat("█", render.IVBarWidth)+" 100%")
}

func TestIVBarsZeroBase(t *testing.T) {
	sp, err := testutils.Catalog().Species("annihilon")
	require.NoError(t, err)
	inst := testutils.Instance(1, "annihilon", 3, entities.GenderFemale)

	assert.Contains(t, render.IVBars(&inst, sp), "END "+strings.Repeat(" ", render.IVBarWidth)+" —")
}

func TestShards(t *testing.T) {
	assert.Equal(t, "none", render.Shards(entities.Shards{}))
	assert.Equal(t, "8 gold, 1 diamond", render.Shards(entities.Shards{Gold: 8, Diamond: 1}))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "0", render.Number(0))
	assert.Equal(t, "999", render.Number(999))
	assert.Equal(t, "50,000", render.Number(50000))
	assert.Equal(t, "-1,234,567", render.Number(-1234567))
}

func TestInstanceLineStarsPerfect(t *testing.T) {
	inst := testutils.Instance(12, "annihilon", 10, entities.GenderMale)
	assert.Equal(t, "#12 Annihilon ♂️  | Lv10 | IV 100% ⭐", render.InstanceLine(&inst, "Annihilon"))

	inst.IVAvg = 96.4
	assert.Equal(t, "#12 Annihilon ♂️  | Lv10 | IV 96%", render.InstanceLine(&inst, "Annihilon"))
}

func TestChunk(t *testing.T) {
	assert.Equal(t, []string{"short"}, render.Chunk("  short \n", 100))

	text := "aaaa\nbbbb\ncccc"
	assert.Equal(t, []string{"aaaa\nbbbb\n", "cccc"}, render.Chunk(text, 10))
}

func TestInspectShowsPlacement(t *testing.T) {
	sp, err := testutils.Catalog().Species("glorp")
	require.NoError(t, err)
	placement := entities.NewRestPlacement(2)

	e := render.Inspect(&inventory.InspectOutput{
		Instance:  testutils.Instance(2, "glorp", 4, entities.GenderFemale),
		Species:   sp,
		Placement: &placement,
	})

	assert.Equal(t, "Glorp  •  #2", e.Title)
	var names []string
	for _, f := range e.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Level / Gender", "IV Average", "Astral", "IVs vs Base", "IV Bars"}, names)
	assert.Equal(t, "Resting in Astral", e.Fields[2].Value)
}

func TestBossEmbedListsRaidLeaderFirst(t *testing.T) {
	tier, err := testutils.Catalog().BossTier(entities.TierFleebRaid)
	require.NoError(t, err)
	enc := entities.NewEncounter("g1", "c1", tier, time.Unix(0, 0))
	enc.Raid = &entities.RaidBinding{Leader: "u2", Members: []string{"u1", "u2"}}

	e := render.Boss(enc, tier, []entities.Contribution{{UserID: "u1", Damage: 1500}})

	assert.Equal(t, "🧪 World Boss — Fleeb Raid", e.Title)
	assert.Contains(t, e.Fields[0].Value, "2,000/2,000")
	assert.Equal(t, "<@u2>, <@u1>", e.Fields[2].Value)
	assert.Equal(t, "<@u1> — 1,500", e.Fields[3].Value)
}

func TestTradeEmbedWithoutWant(t *testing.T) {
	e := render.Trade(&trade.OfferOutput{
		Trade: entities.Trade{
			ID:     "7",
			Author: "a",
			Target: "b",
			Offer:  entities.TradeSide{Instances: []int{1}, Shards: entities.Shards{Gold: 25}},
		},
		Offered: []trade.Listing{{InstanceID: 1, Name: "Fleeb"}},
	}, trade.DefaultTTL)

	assert.Equal(t, "Trade Offer #7", e.Title)
	assert.Equal(t, "#1 Fleeb | 25 gold", e.Fields[2].Value)
	assert.Equal(t, "—", e.Fields[3].Value)
	assert.Contains(t, e.Footer, "60s")
}

func TestDuelTruncatesLog(t *testing.T) {
	rounds := make([]engine.DuelRound, pvp.LogPreview+3)
	for i := range rounds {
		side := engine.SideChallenger
		if i%2 == 1 {
			side = engine.SideDefender
		}
		rounds[i] = engine.DuelRound{Round: i + 1, Attacker: side, Damage: 5, RemainingHP: 40}
	}
	rounds[1].Crit = true

	text := render.Duel(&pvp.AcceptOutput{
		Challenger: pvp.Fighter{UserID: "a", Name: "Fleeb", Instance: entities.Instance{ID: 1}},
		Defender:   pvp.Fighter{UserID: "b", Name: "Glorp", Instance: entities.Instance{ID: 9}},
		Result:     &engine.SimulateDuelOutput{Verdict: engine.SideDefender, Rounds: rounds},
	})

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 1+pvp.LogPreview+2)
	assert.Equal(t, "**Duel:** <@a> (Fleeb #1) vs <@b> (Glorp #9)", lines[0])
	assert.Equal(t, "Round 2: B deals **5** (crit!) → A HP 40", lines[2])
	assert.Equal(t, "…", lines[len(lines)-2])
	assert.Equal(t, "**Winner:** <@b> 🏆", lines[len(lines)-1])
}
