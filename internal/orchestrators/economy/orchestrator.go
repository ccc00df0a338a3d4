// Package economy handles buying, selling and shard leaderboards.
package economy

//go:generate mockgen -destination=mock/mock_service.go -package=economymock github.com/KirkDiggler/theta-arc/internal/orchestrators/economy Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Service defines the interface for shard economy operations
type Service interface {
	// Buy debits a species' value and grants a fresh instance
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)

	// Sell removes an owned instance and credits its species' value
	Sell(ctx context.Context, input *SellInput) (*SellOutput, error)

	Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error)

	Items(ctx context.Context, input *ItemsInput) (*ItemsOutput, error)

	// Leaderboard ranks every stored account on one shard measure
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)
}

// Config holds the dependencies for the economy orchestrator
type Config struct {
	Ledger    *ledger.Ledger
	Catalog   *catalog.Catalog
	Inventory inventory.Service
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
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}

	return vb.Build()
}

type orchestrator struct {
	ledger    *ledger.Ledger
	catalog   *catalog.Catalog
	inventory inventory.Service
}

// NewOrchestrator creates a new economy orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		ledger:    cfg.Ledger,
		catalog:   cfg.Catalog,
		inventory: cfg.Inventory,
	}, nil
}

func (o *orchestrator) Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sp, err := o.catalog.Species(input.SpeciesKey)
	if err != nil {
		return nil, errors.InvalidArgument("Invalid TAC or no cost set.")
	}
	price, ok := sp.Price()
	if !ok {
		return nil, errors.InvalidArgument("Invalid TAC or no cost set.")
	}

	granted, err := o.inventory.Grant(ctx, &inventory.GrantInput{
		UserID:     input.UserID,
		SpeciesKey: sp.Key,
		MinLevel:   entities.CatchMinLv,
		MaxLevel:   entities.BuyMaxLv,
		Cost:       price,
	})
	if err != nil {
		return nil, err
	}

	return &BuyOutput{
		Instance: granted.Instance,
		Species:  sp,
		Price:    price,
		Balance:  granted.Balance,
	}, nil
}

func (o *orchestrator) Sell(ctx context.Context, input *SellInput) (*SellOutput, error) {
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
	sp, err := o.catalog.Species(inst.Species)
	if err != nil {
		return nil, errors.InvalidArgument("This TAC has no sell value.")
	}
	price, ok := sp.Price()
	if !ok {
		return nil, errors.InvalidArgument("This TAC has no sell value.")
	}
	if _, placed := acct.Placement(inst.ID); placed {
		return nil, errors.InvalidStatef("#%d is in Astral. Claim or recall it first.", inst.ID)
	}

	sold, _ := acct.RemoveInstance(inst.ID)
	acct.Currency = acct.Currency.Add(price)
	if err := o.ledger.Save(ctx, acct); err != nil {
		return nil, err
	}

	slog.Info("Instance sold",
		"user_id", input.UserID,
		"instance_id", sold.ID,
		"species", sold.Species,
		"gold", price.Gold,
	)

	return &SellOutput{
		Instance: sold,
		Name:     sp.DisplayName(),
		Price:    price,
		Balance:  acct.Currency,
	}, nil
}

func (o *orchestrator) Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &BalanceOutput{Shards: acct.Currency}, nil
}

func (o *orchestrator) Items(ctx context.Context, input *ItemsInput) (*ItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	out := &ItemsOutput{}
	for _, name := range acct.ItemNames() {
		out.Items = append(out.Items, Item{Name: name, Count: acct.Items[name]})
	}
	return out, nil
}

func (o *orchestrator) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var measure func(entities.Shards) int
	switch input.Board {
	case BoardShards:
		measure = entities.Shards.Total
	case BoardGold:
		measure = func(s entities.Shards) int { return s.Gold }
	case BoardNetWorth:
		measure = entities.Shards.NetWorth
	default:
		return nil, errors.InvalidArgumentf("unknown leaderboard %q", input.Board)
	}

	accts, err := o.ledger.All(ctx)
	if err != nil {
		return nil, err
	}

	ranks := make([]Rank, 0, len(accts))
	for _, a := range accts {
		ranks = append(ranks, Rank{UserID: a.ID, Value: measure(a.Currency)})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Value != ranks[j].Value {
			return ranks[i].Value > ranks[j].Value
		}
		return ranks[i].UserID < ranks[j].UserID
	})
	if len(ranks) > LeaderboardSize {
		ranks = ranks[:LeaderboardSize]
	}
	for i := range ranks {
		ranks[i].Position = i + 1
	}

	return &LeaderboardOutput{Board: input.Board, Ranks: ranks}, nil
}
