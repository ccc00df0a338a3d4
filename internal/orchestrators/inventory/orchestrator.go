// Package inventory owns creature instances: minting, listing and
// inspecting what an account holds.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/theta-arc/internal/engine"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Service defines the interface for inventory operations
type Service interface {
	// ListSpecies returns every catalog key alphabetically
	ListSpecies(ctx context.Context, input *ListSpeciesInput) (*ListSpeciesOutput, error)

	// DescribeSpecies returns one catalog entry
	DescribeSpecies(ctx context.Context, input *DescribeSpeciesInput) (*DescribeSpeciesOutput, error)

	// List returns a page of the caller's instances
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Inspect returns one owned instance with its Astral placement
	Inspect(ctx context.Context, input *InspectInput) (*InspectOutput, error)

	// Grant rolls a new instance into an account
	Grant(ctx context.Context, input *GrantInput) (*GrantOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	Ledger  *ledger.Ledger
	Catalog *catalog.Catalog
	Engine  engine.Engine
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
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	ledger  *ledger.Ledger
	catalog *catalog.Catalog
	engine  engine.Engine
}

// NewOrchestrator creates a new inventory orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		ledger:  cfg.Ledger,
		catalog: cfg.Catalog,
		engine:  cfg.Engine,
	}, nil
}

func (o *orchestrator) ListSpecies(_ context.Context, _ *ListSpeciesInput) (*ListSpeciesOutput, error) {
	all := o.catalog.AllSpecies()
	keys := make([]string, len(all))
	for i, sp := range all {
		keys[i] = sp.Key
	}
	sort.Strings(keys)
	return &ListSpeciesOutput{Keys: keys}, nil
}

func (o *orchestrator) DescribeSpecies(_ context.Context, input *DescribeSpeciesInput) (*DescribeSpeciesOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.InvalidArgument("TAC name is required")
	}
	sp, err := o.catalog.Species(input.Key)
	if err != nil {
		return nil, err
	}
	return &DescribeSpeciesOutput{Species: sp}, nil
}

func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	inv := append([]entities.Instance(nil), acct.Inventory...)
	sort.SliceStable(inv, func(i, j int) bool {
		a, b := inv[i], inv[j]
		sa, sb := o.catalog.SortID(a.Species), o.catalog.SortID(b.Species)
		if sa != sb {
			return sa < sb
		}
		if a.Species != b.Species {
			return a.Species < b.Species
		}
		if a.IVAvg != b.IVAvg {
			return a.IVAvg > b.IVAvg
		}
		return a.ID < b.ID
	})

	total := len(inv)
	pages := max(1, (total+PageSize-1)/PageSize)
	page := min(max(1, input.Page), pages)
	start := (page - 1) * PageSize
	end := min(start+PageSize, total)

	entries := make([]Entry, 0, end-start)
	for _, inst := range inv[start:end] {
		entries = append(entries, Entry{Instance: inst, Name: o.name(inst.Species)})
	}

	return &ListOutput{Entries: entries, Page: page, Pages: pages, Total: total}, nil
}

func (o *orchestrator) Inspect(ctx context.Context, input *InspectInput) (*InspectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	inst, ok := acct.Instance(input.InstanceID)
	if !ok {
		return nil, errors.NotFound("Instance not found.")
	}

	out := &InspectOutput{Instance: *inst}
	if sp, err := o.catalog.Species(inst.Species); err == nil {
		out.Species = sp
	}
	if p, ok := acct.Placement(inst.ID); ok {
		placed := *p
		out.Placement = &placed
	}
	return out, nil
}

func (o *orchestrator) Grant(ctx context.Context, input *GrantInput) (*GrantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	sp, err := o.catalog.Species(input.SpeciesKey)
	if err != nil {
		return nil, err
	}

	minLv, maxLv := input.MinLevel, input.MaxLevel
	if minLv <= 0 {
		minLv = entities.CatchMinLv
	}
	if maxLv < minLv {
		maxLv = minLv
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !acct.Currency.Covers(input.Cost) {
		return nil, errors.InsufficientResources("Not enough shards.").
			WithMeta("needed", input.Cost.Total())
	}

	rolled, err := o.engine.RollInstance(ctx, &engine.RollInstanceInput{
		Species:  sp,
		MinLevel: minLv,
		MaxLevel: maxLv,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll instance")
	}

	inst := acct.AddInstance(rolled.Instance)
	acct.Currency = acct.Currency.Sub(input.Cost)
	var reward entities.Shards
	if input.CreditReward {
		reward = sp.Reward()
		acct.Currency = acct.Currency.Add(reward)
	}
	if err := o.ledger.Save(ctx, acct); err != nil {
		return nil, err
	}

	slog.Info("Instance granted",
		"user_id", input.UserID,
		"species", sp.Key,
		"instance_id", inst.ID,
		"level", inst.Level,
		"iv_avg", inst.IVAvg,
	)

	return &GrantOutput{Instance: inst, Species: sp, Reward: reward, Balance: acct.Currency}, nil
}

func (o *orchestrator) name(key string) string {
	if sp, err := o.catalog.Species(key); err == nil {
		return sp.DisplayName()
	}
	return key
}
