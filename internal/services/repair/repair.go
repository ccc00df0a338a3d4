// Package repair scans stored accounts and fixes records written by older
// versions of the game.
package repair

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Config holds the dependencies for the repairer
type Config struct {
	Ledger  *ledger.Ledger
	Catalog *catalog.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// Input controls one repair pass
type Input struct {
	// DryRun counts what would change without writing
	DryRun bool
}

// Output reports what a pass found
type Output struct {
	Scanned         int
	Repaired        int
	IVsBackfilled   int
	AllocatorsFixed int
	UnknownSpecies  int
	Failed          int
}

// Repairer fixes legacy account records
type Repairer struct {
	ledger  *ledger.Ledger
	catalog *catalog.Catalog
}

// New creates a repairer
func New(cfg *Config) (*Repairer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Repairer{ledger: cfg.Ledger, catalog: cfg.Catalog}, nil
}

// Run scans every stored account. Instances without IVs get their species
// base at 100% and a broken instance id allocator is moved past the
// highest id in use. A failed save is counted and the scan continues.
func (r *Repairer) Run(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		input = &Input{}
	}

	accts, err := r.ledger.All(ctx)
	if err != nil {
		return nil, err
	}

	out := &Output{}
	for _, acct := range accts {
		out.Scanned++

		backfilled, unknown := r.backfillIVs(acct)
		out.IVsBackfilled += backfilled
		out.UnknownSpecies += unknown

		before := acct.NextInstanceID
		normalized := acct.Normalize()
		if acct.NextInstanceID != before {
			out.AllocatorsFixed++
		}

		if backfilled == 0 && !normalized {
			continue
		}
		out.Repaired++
		if input.DryRun {
			slog.Info("Account needs repair", "user_id", acct.ID, "ivs", backfilled, "next_instance_id", acct.NextInstanceID)
			continue
		}
		if err := r.ledger.Save(ctx, acct); err != nil {
			out.Failed++
			slog.Error("Account repair failed", "user_id", acct.ID, "error", err)
		}
	}

	slog.Info("Repair finished",
		"dry_run", input.DryRun,
		"scanned", out.Scanned,
		"repaired", out.Repaired,
		"ivs_backfilled", out.IVsBackfilled,
		"allocators_fixed", out.AllocatorsFixed,
		"failed", out.Failed,
	)
	return out, nil
}

func (r *Repairer) backfillIVs(acct *entities.Account) (backfilled, unknown int) {
	for i := range acct.Inventory {
		inst := &acct.Inventory[i]
		if inst.IVs != nil {
			continue
		}
		sp, err := r.catalog.Species(inst.Species)
		if err != nil {
			unknown++
			continue
		}
		ivs := sp.Stats
		inst.IVs = &ivs
		inst.IVAvg = 100
		backfilled++
	}
	return backfilled, unknown
}
