// Package astral runs the rest and breed placements that progress as a
// user types.
package astral

//go:generate mockgen -destination=mock/mock_service.go -package=astralmock github.com/KirkDiggler/theta-arc/internal/orchestrators/astral Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/theta-arc/internal/engine"
	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Service defines the interface for Astral operations
type Service interface {
	// AddRest places an owned instance to rest
	AddRest(ctx context.Context, input *AddRestInput) (*AddOutput, error)

	// AddBreed places two compatible instances as a breeding pair
	AddBreed(ctx context.Context, input *AddBreedInput) (*AddOutput, error)

	// Progress converts typed characters into cycles
	Progress(ctx context.Context, input *ProgressInput) (*ProgressOutput, error)

	// Claim returns resting instances and hatches pending offspring
	Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error)

	// List describes every placement and pending offspring
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Recall sends every placement back. Pending offspring are kept.
	Recall(ctx context.Context, input *RecallInput) (*RecallOutput, error)
}

// Config holds the dependencies for the Astral orchestrator
type Config struct {
	Ledger  *ledger.Ledger
	Catalog *catalog.Catalog
	Engine  engine.Engine
	Events  *gameevents.Bus
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

	return vb.Build()
}

type orchestrator struct {
	ledger  *ledger.Ledger
	catalog *catalog.Catalog
	engine  engine.Engine
	events  *gameevents.Bus
}

// NewOrchestrator creates a new Astral orchestrator
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
		events:  cfg.Events,
	}, nil
}

func (o *orchestrator) AddRest(ctx context.Context, input *AddRestInput) (*AddOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !acct.Owns(input.InstanceID) {
		return nil, errors.NotFound("Instance not found.")
	}
	if len(acct.Astral) >= entities.MaxAstralSlots {
		return o.overflow(ctx, acct, input.GuildID, input.ChannelID)
	}
	if _, placed := acct.Placement(input.InstanceID); placed {
		return nil, errors.InvalidStatef("#%d is already in Astral.", input.InstanceID)
	}

	acct.Astral = append(acct.Astral, entities.NewRestPlacement(input.InstanceID))
	if err := o.ledger.Save(ctx, acct); err != nil {
		return nil, err
	}

	slog.Info("Astral rest started", "user_id", input.UserID, "instance_id", input.InstanceID)
	return &AddOutput{Placed: []int{input.InstanceID}}, nil
}

func (o *orchestrator) AddBreed(ctx context.Context, input *AddBreedInput) (*AddOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.A == input.B {
		return nil, errors.InvalidArgument("Breeding needs two different TACs.")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	a, okA := acct.Instance(input.A)
	b, okB := acct.Instance(input.B)
	if !okA || !okB {
		return nil, errors.NotFound("Instance(s) not found.")
	}
	if len(acct.Astral)+2 > entities.MaxAstralSlots {
		return o.overflow(ctx, acct, input.GuildID, input.ChannelID)
	}
	for _, id := range []int{a.ID, b.ID} {
		if _, placed := acct.Placement(id); placed {
			return nil, errors.InvalidState("One or both are already in Astral.")
		}
	}
	if !a.Gender.Opposite(b.Gender) {
		return nil, errors.InvalidState("Breeding requires opposite genders.")
	}
	spA, errA := o.catalog.Species(a.Species)
	spB, errB := o.catalog.Species(b.Species)
	if errA != nil || errB != nil || !spA.SharesEggGroup(spB) {
		return nil, errors.InvalidState("Egg groups are not compatible.")
	}
	first, second := entities.NewBreedPair(a.ID, b.ID)
	acct.Astral = append(acct.Astral, first, second)
	if err := o.ledger.Save(ctx, acct); err != nil {
		return nil, err
	}

	slog.Info("Astral breeding started", "user_id", input.UserID, "a", a.ID, "b", b.ID)
	return &AddOutput{Placed: []int{a.ID, b.ID}}, nil
}

// overflow recalls everything and tells the boss service to react
func (o *orchestrator) overflow(ctx context.Context, acct *entities.Account, guildID, channelID string) (*AddOutput, error) {
	recalled := recallAll(acct)
	if err := o.ledger.Save(ctx, acct); err != nil {
		return nil, err
	}

	slog.Info("Astral overflow", "user_id", acct.ID, "guild_id", guildID, "recalled", recalled)

	if err := o.events.Publish(ctx, gameevents.AstralOverflow,
		rpgtoolkit.Player(acct.ID), rpgtoolkit.Guild(guildID),
		gameevents.Payload{
			gameevents.KeyUserID:    acct.ID,
			gameevents.KeyGuildID:   guildID,
			gameevents.KeyChannelID: channelID,
		},
	); err != nil {
		slog.Debug("Overflow reaction failed", "user_id", acct.ID, "error", err)
	}

	return &AddOutput{Overflow: &Overflow{Recalled: recalled}}, nil
}

func (o *orchestrator) Progress(ctx context.Context, input *ProgressInput) (*ProgressOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out := &ProgressOutput{LevelUps: map[int]int{}}
	if input.Chars <= 0 {
		return out, nil
	}

	acct, err := o.ledger.Peek(ctx, input.UserID)
	if err != nil {
		if errors.IsNotFound(err) {
			return out, nil
		}
		return nil, err
	}
	if len(acct.Astral) == 0 {
		return out, nil
	}

	advanced := map[int]bool{}
	for i := range acct.Astral {
		p := &acct.Astral[i]
		p.ProgressChars += input.Chars
		cycles := p.ProgressChars / entities.CycleChars
		if cycles <= 0 {
			continue
		}
		p.ProgressChars %= entities.CycleChars

		inst, ok := acct.Instance(p.InstanceID)
		if !ok {
			continue
		}

		switch p.Mode {
		case entities.AstralRest:
			before := inst.Level
			inst.Level = min(entities.MaxLevel, inst.Level+cycles)
			if inst.Level != before {
				out.LevelUps[inst.ID] = inst.Level
			}
		case entities.AstralBreed:
			if p.Breed == nil || p.State != entities.AstralBreeding || advanced[p.InstanceID] {
				continue
			}
			baby, err := o.advancePair(ctx, acct, p, cycles)
			if err != nil {
				return nil, err
			}
			advanced[p.InstanceID] = true
			advanced[p.Breed.PartnerID] = true
			if baby != nil {
				out.Completed = append(out.Completed, *baby)
			}
		}
	}

	if err := o.ledger.Save(ctx, acct); err != nil {
		return nil, err
	}
	if len(out.Completed) > 0 {
		slog.Info("Astral breeding completed", "user_id", input.UserID, "offspring", len(out.Completed))
	}
	return out, nil
}

// advancePair moves the shared counter of a pair once and completes both
// halves when it reaches the target
func (o *orchestrator) advancePair(
	ctx context.Context,
	acct *entities.Account,
	p *entities.Placement,
	cycles int,
) (*entities.Offspring, error) {
	partner, _ := acct.Placement(p.Breed.PartnerID)

	p.Breed.ProgressCycles += cycles
	if partner != nil && partner.Breed != nil {
		partner.Breed.ProgressCycles = p.Breed.ProgressCycles
	}
	if p.Breed.ProgressCycles < p.Breed.TargetCycles {
		return nil, nil
	}

	if err := p.Transition(entities.AstralCompleted); err != nil {
		return nil, err
	}
	if partner != nil && partner.State == entities.AstralBreeding {
		if err := partner.Transition(entities.AstralCompleted); err != nil {
			return nil, err
		}
	}

	a, okA := acct.Instance(p.InstanceID)
	b, okB := acct.Instance(p.Breed.PartnerID)
	if !okA || !okB {
		return nil, nil
	}
	rolled, err := o.engine.RollOffspring(ctx, &engine.RollOffspringInput{ParentA: a.Species, ParentB: b.Species})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll offspring")
	}
	acct.Offspring = append(acct.Offspring, rolled.Offspring)
	return &rolled.Offspring, nil
}

func (o *orchestrator) Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	out := &ClaimOutput{}
	keep := make([]entities.Placement, 0, len(acct.Astral))
	removed := false
	for _, p := range acct.Astral {
		if !p.Claimable() {
			keep = append(keep, p)
			continue
		}
		removed = true
		if p.Mode == entities.AstralRest {
			out.Returned++
		}
	}

	for _, baby := range acct.Offspring {
		sp, err := o.catalog.Species(baby.Species)
		if err != nil {
			slog.Warn("Offspring species missing from catalog", "user_id", input.UserID, "species", baby.Species)
			sp = &entities.Species{Key: baby.Species}
		}
		rolled, err := o.engine.RollIVs(ctx, &engine.RollIVsInput{Species: sp})
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll offspring IVs")
		}
		ivs := rolled.IVs
		inst := acct.AddInstance(entities.Instance{
			Species: baby.Species,
			Level:   baby.Level,
			Gender:  baby.Gender,
			IVs:     &ivs,
			IVAvg:   rolled.IVAvg,
		})
		out.Offspring = append(out.Offspring, Hatched{Instance: inst, Name: sp.DisplayName()})
	}

	if !removed && len(acct.Offspring) == 0 {
		out.Nothing = true
		return out, nil
	}

	acct.Astral = keep
	acct.Offspring = []entities.Offspring{}
	if err := o.ledger.Save(ctx, acct); err != nil {
		return nil, err
	}

	slog.Info("Astral claimed", "user_id", input.UserID, "returned", out.Returned, "offspring", len(out.Offspring))
	return out, nil
}

func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	out := &ListOutput{Pending: append([]entities.Offspring(nil), acct.Offspring...), Names: map[string]string{}}
	for _, p := range acct.Astral {
		inst, ok := acct.Instance(p.InstanceID)
		if !ok {
			continue
		}
		line := Line{Placement: p, Instance: *inst, Name: o.name(inst.Species)}
		if p.Breed != nil {
			if partner, ok := acct.Instance(p.Breed.PartnerID); ok {
				cp := *partner
				line.Partner = &cp
				line.PartnerNm = o.name(partner.Species)
			}
		}
		out.Lines = append(out.Lines, line)
	}
	for _, baby := range acct.Offspring {
		out.Names[baby.Species] = o.name(baby.Species)
	}
	return out, nil
}

func (o *orchestrator) Recall(ctx context.Context, input *RecallInput) (*RecallOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	recalled := recallAll(acct)
	if len(recalled) == 0 {
		return &RecallOutput{Recalled: recalled}, nil
	}
	if err := o.ledger.Save(ctx, acct); err != nil {
		return nil, err
	}
	return &RecallOutput{Recalled: recalled}, nil
}

// recallAll clears placements and returns their ids. Instances never left
// the inventory, so nothing else moves.
func recallAll(acct *entities.Account) []int {
	ids := make([]int, 0, len(acct.Astral))
	for _, p := range acct.Astral {
		ids = append(ids, p.InstanceID)
	}
	acct.Astral = []entities.Placement{}
	return ids
}

func (o *orchestrator) name(key string) string {
	if sp, err := o.catalog.Species(key); err == nil {
		return sp.DisplayName()
	}
	return key
}
