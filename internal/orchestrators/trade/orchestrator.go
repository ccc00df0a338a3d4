// Package trade implements player-to-player offers. Accepting re-checks
// both accounts and moves everything in one batch save.
package trade

//go:generate mockgen -destination=mock/mock_service.go -package=trademock github.com/KirkDiggler/theta-arc/internal/orchestrators/trade Service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/pkg/idgen"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Service defines the interface for trade operations
type Service interface {
	// Offer validates the author's side and opens a pending trade
	Offer(ctx context.Context, input *OfferInput) (*OfferOutput, error)

	// Accept completes a pending trade for its recipient
	Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error)

	// Decline cancels a pending trade for either party
	Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error)

	// Sweep expires offers past their TTL
	Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error)
}

// Config holds the dependencies for the trade orchestrator
type Config struct {
	Ledger  *ledger.Ledger
	Catalog *catalog.Catalog
	Events  *gameevents.Bus
	Clock   clock.Clock
	IDs     idgen.Generator
	TTL     time.Duration
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
	if c.Events == nil {
		vb.RequiredField("Events")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	ledger  *ledger.Ledger
	catalog *catalog.Catalog
	events  *gameevents.Bus
	clock   clock.Clock
	ids     idgen.Generator
	ttl     time.Duration

	mu     sync.Mutex
	trades map[string]*entities.Trade
}

// NewOrchestrator creates a new trade orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		ledger:  cfg.Ledger,
		catalog: cfg.Catalog,
		events:  cfg.Events,
		clock:   cfg.Clock,
		ids:     cfg.IDs,
		ttl:     cfg.TTL,
		trades:  make(map[string]*entities.Trade),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.ids == nil {
		o.ids = idgen.NewSequential("")
	}
	if o.ttl == 0 {
		o.ttl = DefaultTTL
	}
	return o, nil
}

func (o *orchestrator) Offer(ctx context.Context, input *OfferInput) (*OfferOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Target == "" {
		return nil, errors.InvalidArgument("Pick a real user to trade with.")
	}
	if input.Target == input.UserID {
		return nil, errors.InvalidArgument("You can't trade with yourself.")
	}

	offer := ParseItems(input.Offer)
	want := ParseItems(input.Want)
	if offer.IsEmpty() {
		return nil, errors.InvalidArgument("Your offer is empty. Include `#ids` and/or `gold=.. diamond=.. enchanted=..`.")
	}

	author, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !tradable(author, offer) {
		return nil, errors.InsufficientResources("You don't own some offered instance(s) or have enough shards.")
	}
	target, err := o.ledger.Load(ctx, input.Target)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	t := &entities.Trade{
		ID:        o.ids.Generate(),
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		Author:    input.UserID,
		Target:    input.Target,
		Offer:     offer,
		Want:      want,
		State:     entities.OfferPending,
		CreatedAt: now,
		ExpiresAt: now.Add(o.ttl),
	}

	o.mu.Lock()
	expired := o.prune(now)
	o.trades[t.ID] = t
	o.mu.Unlock()
	o.announce(ctx, expired)

	slog.Info("Trade offered",
		"trade_id", t.ID,
		"author", t.Author,
		"target", t.Target,
		"offer_instances", len(offer.Instances),
		"want_instances", len(want.Instances),
	)

	return &OfferOutput{
		Trade:   *t,
		Offered: o.listings(author, offer.Instances),
		Wanted:  o.listings(target, want.Instances),
	}, nil
}

func (o *orchestrator) Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	t, err := o.pending(ctx, input.TradeID)
	if err != nil {
		return nil, err
	}
	if input.UserID != t.Target {
		return nil, errors.PermissionDenied("Only the recipient can accept.")
	}

	author, err := o.ledger.Load(ctx, t.Author)
	if err != nil {
		return nil, err
	}
	target, err := o.ledger.Load(ctx, t.Target)
	if err != nil {
		return nil, err
	}

	if !owned(author, t.Offer.Instances) || !owned(target, t.Want.Instances) {
		return nil, errors.Stale("Ownership changed; trade invalid.").WithMeta("trade_id", t.ID)
	}
	if !author.Currency.Covers(t.Offer.Shards) || !target.Currency.Covers(t.Want.Shards) {
		return nil, errors.Stale("Shard balances changed; trade invalid.").WithMeta("trade_id", t.ID)
	}

	move(author, target, t.Offer)
	move(target, author, t.Want)
	if err := o.ledger.SaveMany(ctx, author, target); err != nil {
		return nil, err
	}

	o.mu.Lock()
	err = t.Transition(entities.OfferAccepted)
	delete(o.trades, t.ID)
	done := *t
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	slog.Info("Trade completed", "trade_id", done.ID, "author", done.Author, "target", done.Target)
	return &AcceptOutput{Trade: done}, nil
}

func (o *orchestrator) Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	t, err := o.pending(ctx, input.TradeID)
	if err != nil {
		return nil, err
	}
	if input.UserID != t.Target && input.UserID != t.Author {
		return nil, errors.PermissionDenied("You are not part of this trade.")
	}

	o.mu.Lock()
	err = t.Transition(entities.OfferDeclined)
	delete(o.trades, t.ID)
	done := *t
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	slog.Info("Trade declined", "trade_id", done.ID, "by", input.UserID)
	return &DeclineOutput{Trade: done}, nil
}

func (o *orchestrator) Sweep(ctx context.Context, _ *SweepInput) (*SweepOutput, error) {
	o.mu.Lock()
	expired := o.prune(o.clock.Now())
	o.mu.Unlock()

	o.announce(ctx, expired)
	return &SweepOutput{Expired: expired}, nil
}

// pending returns the live trade with id, expiring anything overdue first
func (o *orchestrator) pending(ctx context.Context, id string) (*entities.Trade, error) {
	o.mu.Lock()
	expired := o.prune(o.clock.Now())
	t := o.trades[id]
	o.mu.Unlock()

	o.announce(ctx, expired)
	if t == nil {
		return nil, errors.NotFound("Trade no longer exists.").WithMeta("trade_id", id)
	}
	return t, nil
}

// prune expires overdue trades. Callers hold mu.
func (o *orchestrator) prune(now time.Time) []entities.Trade {
	var out []entities.Trade
	for id, t := range o.trades {
		if !t.Expired(now) {
			continue
		}
		delete(o.trades, id)
		if err := t.Transition(entities.OfferExpired); err != nil {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (o *orchestrator) announce(ctx context.Context, expired []entities.Trade) {
	for _, t := range expired {
		slog.Info("Trade expired", "trade_id", t.ID, "author", t.Author, "target", t.Target)
		err := o.events.Publish(ctx, gameevents.TradeExpired, rpgtoolkit.Player(t.Author), rpgtoolkit.Player(t.Target),
			gameevents.Payload{
				gameevents.KeyGuildID:   t.GuildID,
				gameevents.KeyChannelID: t.ChannelID,
				gameevents.KeyUserID:    t.Author,
				gameevents.KeyOfferID:   t.ID,
			})
		if err != nil {
			slog.Debug("Trade expiry handler failed", "trade_id", t.ID, "error", err)
		}
	}
}

func (o *orchestrator) listings(acct *entities.Account, ids []int) []Listing {
	var out []Listing
	for _, id := range ids {
		inst, ok := acct.Instance(id)
		if !ok {
			continue
		}
		name := inst.Species
		if sp, err := o.catalog.Species(inst.Species); err == nil {
			name = sp.DisplayName()
		}
		out = append(out, Listing{InstanceID: id, Name: name})
	}
	return out
}

func tradable(acct *entities.Account, side entities.TradeSide) bool {
	return owned(acct, side.Instances) && acct.Currency.Covers(side.Shards)
}

// owned reports whether acct holds every id outside the Astral
func owned(acct *entities.Account, ids []int) bool {
	for _, id := range ids {
		if _, ok := acct.Instance(id); !ok {
			return false
		}
		if _, placed := acct.Placement(id); placed {
			return false
		}
	}
	return true
}

// move transfers side from src to dst. Received instances take fresh ids
// from dst's allocator.
func move(src, dst *entities.Account, side entities.TradeSide) {
	for _, id := range side.Instances {
		if inst, ok := src.RemoveInstance(id); ok {
			dst.AddInstance(inst)
		}
	}
	src.Currency = src.Currency.Sub(side.Shards)
	dst.Currency = dst.Currency.Add(side.Shards)
}
