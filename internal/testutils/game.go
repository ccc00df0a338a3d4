package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/repositories/accounts"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Catalog returns a small catalog covering every boss tier and a few
// species with overlapping egg groups
func Catalog() *catalog.Catalog {
	species := map[string]*entities.Species{
		"fleeb": {
			ID: 1, Name: "Fleeb", Type: "Water", Region: "Shallows",
			Stats:     entities.Stats{Attack: 40, Speed: 60, Health: 50, Endurance: 30},
			EggGroups: []string{"blob", "water"},
			Value:     &entities.Shards{Gold: 30},
		},
		"glorp": {
			ID: 2, Name: "Glorp", Type: "Water", Region: "Shallows",
			Stats:       entities.Stats{Attack: 55, Speed: 20, Health: 80, Endurance: 45},
			EggGroups:   []string{"blob"},
			CatchReward: &entities.Shards{Gold: 8, Diamond: 1},
		},
		"annihilon": {
			ID: 3, Name: "Annihilon", Type: "Void", Region: "Astral",
			Stats:     entities.Stats{Attack: 120, Speed: 90, Health: 100, Endurance: 0},
			EggGroups: []string{"void"},
		},
	}
	tiers := map[string]*entities.BossTier{
		entities.TierWilter: {
			Name: "The Wilter", HP: 1000,
			Rewards: entities.BossRewards{
				Gold:         &entities.RewardRange{Min: 100, Max: 100},
				Diamond:      &entities.RewardRange{Min: 10, Max: 10},
				CosmeticDrop: &entities.CosmeticDrop{Item: "wilter_petal", Chance: 1},
			},
		},
		entities.TierFleebRaid: {
			Name: "Fleeb Raid", HP: 2000,
			Rewards: entities.BossRewards{Gold: &entities.RewardRange{Min: 300, Max: 300}},
		},
		entities.TierStaring: {Name: "The Staring", HP: 500},
		entities.TierRalgulfa: {
			Name: "Ralgulfa", HP: 5000, Aura: "Fear",
			Rewards: entities.BossRewards{Enchanted: &entities.RewardRange{Min: 2, Max: 2}},
		},
	}
	return catalog.New(species, tiers)
}

// Ledger returns a ledger over an empty in-memory account store
func Ledger(t *testing.T, c clock.Clock) (*ledger.Ledger, *accounts.InMemoryRepository) {
	repo := accounts.NewInMemory(c)
	l, err := ledger.New(&ledger.Config{AccountRepo: repo})
	require.NoError(t, err)
	return l, repo
}

// Instance builds an owned instance with full IVs for species from Catalog
func Instance(id int, species string, level int, gender entities.Gender) entities.Instance {
	sp, _ := Catalog().Species(species)
	ivs := sp.Stats
	return entities.Instance{ID: id, Species: species, Level: level, Gender: gender, IVs: &ivs, IVAvg: 100}
}
