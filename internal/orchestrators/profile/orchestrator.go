// Package profile covers the player's identity: clan membership, the
// profile card, the clan ranking and account resets.
package profile

//go:generate mockgen -destination=mock/mock_service.go -package=profilemock github.com/KirkDiggler/theta-arc/internal/orchestrators/profile Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Service defines the interface for profile operations
type Service interface {
	ChooseClan(ctx context.Context, input *ChooseClanInput) (*ChooseClanOutput, error)
	Clan(ctx context.Context, input *ClanInput) (*ClanOutput, error)
	ClanLeaderboard(ctx context.Context, input *ClanLeaderboardInput) (*ClanLeaderboardOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}

// Config holds the dependencies for the profile orchestrator
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

type orchestrator struct {
	ledger  *ledger.Ledger
	catalog *catalog.Catalog
}

// NewOrchestrator creates a new profile orchestrator with the provided dependencies
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
	}, nil
}

func (o *orchestrator) ChooseClan(ctx context.Context, input *ChooseClanInput) (*ChooseClanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var chosen entities.Clan
	_, err := o.ledger.Update(ctx, input.UserID, func(acct *entities.Account) error {
		if acct.Clan != "" {
			name := acct.Clan
			if c, ok := entities.LookupClan(acct.Clan); ok {
				name = c.Name
			}
			return errors.InvalidStatef("You already chose %s.", name)
		}
		c, ok := entities.LookupClan(input.Name)
		if !ok {
			return errors.InvalidArgument("Pick one of: " + clanOptions()).WithMeta("name", input.Name)
		}
		acct.Clan = c.Key
		chosen = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Clan chosen", "user_id", input.UserID, "clan", chosen.Key)
	return &ChooseClanOutput{Clan: chosen}, nil
}

func (o *orchestrator) Clan(ctx context.Context, input *ClanInput) (*ClanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	out := &ClanOutput{Options: entities.Clans()}
	if c, ok := entities.LookupClan(acct.Clan); ok {
		out.Clan = &c
	}
	return out, nil
}

func (o *orchestrator) ClanLeaderboard(ctx context.Context, _ *ClanLeaderboardInput) (*ClanLeaderboardOutput, error) {
	accts, err := o.ledger.All(ctx)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]*ClanRank)
	for _, acct := range accts {
		c, ok := entities.LookupClan(acct.Clan)
		if !ok {
			continue
		}
		r := sums[c.Key]
		if r == nil {
			r = &ClanRank{Clan: c}
			sums[c.Key] = r
		}
		r.NetWorth += acct.Currency.NetWorth()
		r.Members++
	}

	ranks := make([]ClanRank, 0, len(sums))
	for _, r := range sums {
		ranks = append(ranks, *r)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].NetWorth != ranks[j].NetWorth {
			return ranks[i].NetWorth > ranks[j].NetWorth
		}
		return ranks[i].Clan.Key < ranks[j].Clan.Key
	})
	for i := range ranks {
		ranks[i].Position = i + 1
	}
	return &ClanLeaderboardOutput{Ranks: ranks}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	out := &GetOutput{
		UserID:   acct.ID,
		Status:   acct.Status,
		Shards:   acct.Currency,
		NetWorth: acct.Currency.NetWorth(),
		Stats:    inventoryStats(acct.Inventory),
	}
	if c, ok := entities.LookupClan(acct.Clan); ok {
		out.Clan = &c
	}

	for _, name := range acct.ItemNames() {
		if len(out.Items) == ItemsPreview {
			out.MoreItems = true
			break
		}
		out.Items = append(out.Items, ItemStack{Name: name, Count: acct.Items[name]})
	}

	if top, ok := topInstance(acct.Inventory); ok {
		name := top.Species
		if sp, err := o.catalog.Species(top.Species); err == nil {
			name = sp.DisplayName()
		}
		out.Top = &TopTAC{Instance: top, Name: name}
	}
	return out, nil
}

func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	fresh, err := o.ledger.Reset(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	slog.Info("Account reset", "user_id", input.UserID)
	return &ResetOutput{Status: fresh.Status}, nil
}

func inventoryStats(inv []entities.Instance) Stats {
	species := make(map[string]bool, len(inv))
	st := Stats{Total: len(inv)}
	for _, inst := range inv {
		species[inst.Species] = true
		st.BestIV = max(st.BestIV, inst.IVAvg)
		st.HighestLevel = max(st.HighestLevel, inst.Level)
	}
	st.Unique = len(species)
	return st
}

// topInstance picks the highest IV, then the highest level, then the newest id
func topInstance(inv []entities.Instance) (entities.Instance, bool) {
	if len(inv) == 0 {
		return entities.Instance{}, false
	}
	best := inv[0]
	for _, inst := range inv[1:] {
		switch {
		case inst.IVAvg != best.IVAvg:
			if inst.IVAvg > best.IVAvg {
				best = inst
			}
		case inst.Level != best.Level:
			if inst.Level > best.Level {
				best = inst
			}
		case inst.ID > best.ID:
			best = inst
		}
	}
	return best, true
}

func clanOptions() string {
	s := ""
	for i, c := range entities.Clans() {
		if i > 0 {
			s += ", "
		}
		s += c.Name + " " + c.Icon
	}
	return s
}
