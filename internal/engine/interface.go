// Package engine holds the game's numeric rules: IV rolls, damage, boss
// mechanics, duel simulation and reward splitting. Formulas are plain
// functions; everything that needs randomness goes through Engine.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/theta-arc/internal/engine Engine

import (
	"context"
)

// Engine rolls and resolves game mechanics
type Engine interface {
	// RollIVs rolls individual values for a species
	RollIVs(ctx context.Context, input *RollIVsInput) (*RollIVsOutput, error)

	// RollInstance rolls a fresh instance (level, gender, IVs) without an id
	RollInstance(ctx context.Context, input *RollInstanceInput) (*RollInstanceOutput, error)

	// RollOffspring picks the species, level and gender of a bred offspring
	RollOffspring(ctx context.Context, input *RollOffspringInput) (*RollOffspringOutput, error)

	// ResolveBossAttack computes one attack against a boss, including tier mechanics
	ResolveBossAttack(ctx context.Context, input *ResolveBossAttackInput) (*ResolveBossAttackOutput, error)

	// SimulateDuel plays a PvP duel to completion
	SimulateDuel(ctx context.Context, input *SimulateDuelInput) (*SimulateDuelOutput, error)

	// DistributeRewards rolls a defeated boss's pot and splits it by damage
	DistributeRewards(ctx context.Context, input *DistributeRewardsInput) (*DistributeRewardsOutput, error)

	// PickIndex returns a uniform index in [0, n)
	PickIndex(n int) (int, error)
}
