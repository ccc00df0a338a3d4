// Package pvp runs friendly duels: a challenge names the challenger's
// instance, the target answers with one of theirs and the fight resolves
// immediately.
package pvp

//go:generate mockgen -destination=mock/mock_service.go -package=pvpmock github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp Service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/theta-arc/internal/engine"
	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/pkg/idgen"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Service defines the interface for duel operations
type Service interface {
	// Challenge opens a duel against another player
	Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error)

	// Accept fights a pending duel to completion
	Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error)

	// Decline cancels a pending duel
	Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error)

	// Sweep expires challenges past their TTL
	Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error)
}

// Config holds the dependencies for the pvp orchestrator
type Config struct {
	Ledger  *ledger.Ledger
	Catalog *catalog.Catalog
	Engine  engine.Engine
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
	if c.Engine == nil {
		vb.RequiredField("Engine")
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
	engine  engine.Engine
	events  *gameevents.Bus
	clock   clock.Clock
	ids     idgen.Generator
	ttl     time.Duration

	mu    sync.Mutex
	duels map[string]*entities.Duel
}

// NewOrchestrator creates a new pvp orchestrator with the provided dependencies
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
		engine:  cfg.Engine,
		events:  cfg.Events,
		clock:   cfg.Clock,
		ids:     cfg.IDs,
		ttl:     cfg.TTL,
		duels:   make(map[string]*entities.Duel),
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

func (o *orchestrator) Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Target == "" {
		return nil, errors.InvalidArgument("Usage: `%pvp @user <your_instance_id>`")
	}
	if input.Target == input.UserID {
		return nil, errors.InvalidArgument("You can't duel yourself.")
	}

	fighter, err := o.fighter(ctx, input.UserID, input.InstanceID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	d := &entities.Duel{
		ID:                 o.ids.Generate(),
		GuildID:            input.GuildID,
		ChannelID:          input.ChannelID,
		Challenger:         input.UserID,
		Target:             input.Target,
		ChallengerInstance: input.InstanceID,
		State:              entities.OfferPending,
		CreatedAt:          now,
		ExpiresAt:          now.Add(o.ttl),
	}

	o.mu.Lock()
	expired := o.prune(now)
	o.duels[d.ID] = d
	o.mu.Unlock()
	o.announce(ctx, expired)

	slog.Info("Duel challenged",
		"duel_id", d.ID,
		"challenger", d.Challenger,
		"target", d.Target,
		"instance_id", d.ChallengerInstance,
	)
	return &ChallengeOutput{Duel: *d, Challenger: *fighter}, nil
}

func (o *orchestrator) Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.pending(ctx, input.DuelID, "Challenge not found.")
	if err != nil {
		return nil, err
	}
	if input.UserID != d.Target {
		return nil, errors.PermissionDenied("You're not the target of this challenge.")
	}

	defender, err := o.fighter(ctx, input.UserID, input.InstanceID)
	if err != nil {
		return nil, err
	}
	challenger, err := o.fighter(ctx, d.Challenger, d.ChallengerInstance)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Stale("The challenger no longer owns that TAC.").WithMeta("duel_id", d.ID)
		}
		return nil, err
	}

	result, err := o.engine.SimulateDuel(ctx, &engine.SimulateDuelInput{
		Challenger: o.combatant(challenger),
		Defender:   o.combatant(defender),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to simulate duel")
	}

	o.mu.Lock()
	err = d.Transition(entities.OfferAccepted)
	delete(o.duels, d.ID)
	done := *d
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	slog.Info("Duel fought",
		"duel_id", done.ID,
		"challenger", done.Challenger,
		"target", done.Target,
		"verdict", result.Verdict,
		"rounds", len(result.Rounds),
	)
	return &AcceptOutput{Duel: done, Challenger: *challenger, Defender: *defender, Result: result}, nil
}

func (o *orchestrator) Decline(ctx context.Context, input *DeclineInput) (*DeclineOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d, err := o.pending(ctx, input.DuelID, "No such challenge.")
	if err != nil {
		return nil, err
	}
	if input.UserID != d.Target && input.UserID != d.Challenger {
		return nil, errors.PermissionDenied("Only the target or the challenger can decline.")
	}

	o.mu.Lock()
	err = d.Transition(entities.OfferDeclined)
	delete(o.duels, d.ID)
	done := *d
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	slog.Info("Duel declined", "duel_id", done.ID, "by", input.UserID)
	return &DeclineOutput{Duel: done}, nil
}

func (o *orchestrator) Sweep(ctx context.Context, _ *SweepInput) (*SweepOutput, error) {
	o.mu.Lock()
	expired := o.prune(o.clock.Now())
	o.mu.Unlock()

	o.announce(ctx, expired)
	return &SweepOutput{Expired: expired}, nil
}

func (o *orchestrator) fighter(ctx context.Context, userID string, instanceID int) (*Fighter, error) {
	acct, err := o.ledger.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	inst, ok := acct.Instance(instanceID)
	if !ok {
		return nil, errors.NotFound("You don't own that instance.").WithMeta("instance_id", instanceID)
	}
	name := inst.Species
	if sp, err := o.catalog.Species(inst.Species); err == nil {
		name = sp.DisplayName()
	}
	return &Fighter{UserID: userID, Instance: *inst, Name: name}, nil
}

func (o *orchestrator) combatant(f *Fighter) engine.Combatant {
	inst := f.Instance
	sp, err := o.catalog.Species(inst.Species)
	if err != nil {
		// Unknown species fight on an empty stat line and take the minimums.
		sp = &entities.Species{Key: inst.Species}
	}
	return engine.Combatant{Instance: &inst, Species: sp}
}

func (o *orchestrator) pending(ctx context.Context, id, missing string) (*entities.Duel, error) {
	o.mu.Lock()
	expired := o.prune(o.clock.Now())
	d := o.duels[id]
	o.mu.Unlock()

	o.announce(ctx, expired)
	if d == nil {
		return nil, errors.NotFound(missing).WithMeta("duel_id", id)
	}
	return d, nil
}

// prune expires overdue duels. Callers hold mu.
func (o *orchestrator) prune(now time.Time) []entities.Duel {
	var out []entities.Duel
	for id, d := range o.duels {
		if !d.Expired(now) {
			continue
		}
		delete(o.duels, id)
		if err := d.Transition(entities.OfferExpired); err != nil {
			continue
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (o *orchestrator) announce(ctx context.Context, expired []entities.Duel) {
	for _, d := range expired {
		slog.Info("Duel expired", "duel_id", d.ID, "challenger", d.Challenger, "target", d.Target)
		err := o.events.Publish(ctx, gameevents.DuelExpired, rpgtoolkit.Player(d.Challenger), rpgtoolkit.Player(d.Target),
			gameevents.Payload{
				gameevents.KeyGuildID:   d.GuildID,
				gameevents.KeyChannelID: d.ChannelID,
				gameevents.KeyUserID:    d.Challenger,
				gameevents.KeyOfferID:   d.ID,
			})
		if err != nil {
			slog.Debug("Duel expiry handler failed", "duel_id", d.ID, "error", err)
		}
	}
}
