// Package encounter implements the wild spawn orchestrator: at most one
// catchable TAC per channel, caught within the catch window or gone.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter Service

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
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
)

// Service defines the interface for wild spawn operations
type Service interface {
	// Spawn puts a wild TAC in a channel
	Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error)

	// Catch grants the channel's spawn to the first caller inside the window
	Catch(ctx context.Context, input *CatchInput) (*CatchOutput, error)

	// Active reports the channel's catchable spawn
	Active(ctx context.Context, input *ActiveInput) (*ActiveOutput, error)

	// Sweep vanishes every spawn whose window has closed
	Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Inventory   inventory.Service
	Catalog     *catalog.Catalog
	Engine      engine.Engine
	Events      *gameevents.Bus
	Clock       clock.Clock
	CatchWindow time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Inventory == nil {
		vb.RequiredField("Inventory")
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
	if c.CatchWindow < 0 {
		vb.InvalidField("CatchWindow", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	inventory inventory.Service
	catalog   *catalog.Catalog
	engine    engine.Engine
	events    *gameevents.Bus
	clock     clock.Clock
	window    time.Duration

	mu     sync.Mutex
	spawns map[string]*entities.Spawn
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		inventory: cfg.Inventory,
		catalog:   cfg.Catalog,
		engine:    cfg.Engine,
		events:    cfg.Events,
		clock:     cfg.Clock,
		window:    cfg.CatchWindow,
		spawns:    make(map[string]*entities.Spawn),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.window == 0 {
		o.window = DefaultCatchWindow
	}
	return o, nil
}

func (o *orchestrator) Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	named := input.SpeciesKey != ""

	var sp *entities.Species
	if named {
		var err error
		if sp, err = o.catalog.Species(input.SpeciesKey); err != nil {
			return nil, err
		}
	}

	o.mu.Lock()
	now := o.clock.Now()
	if cur := o.spawns[input.ChannelID]; cur != nil && cur.Open(now) {
		o.mu.Unlock()
		if named {
			return nil, errors.InvalidState("A TAC is already active in this channel.")
		}
		return &SpawnOutput{}, nil
	}

	if !named {
		all := o.catalog.AllSpecies()
		if len(all) == 0 {
			o.mu.Unlock()
			return &SpawnOutput{}, nil
		}
		idx, err := o.engine.PickIndex(len(all))
		if err != nil {
			o.mu.Unlock()
			return nil, errors.Wrap(err, "failed to pick species")
		}
		sp = all[idx]
	}

	spawn := &entities.Spawn{
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		Species:   sp.Key,
		State:     entities.SpawnActive,
		SpawnedAt: now,
		ExpiresAt: now.Add(o.window),
	}
	o.spawns[input.ChannelID] = spawn
	o.mu.Unlock()

	slog.Info("Wild TAC appeared", "guild_id", input.GuildID, "channel_id", input.ChannelID, "species", sp.Key)
	o.publish(ctx, gameevents.SpawnAppeared, spawn)

	return &SpawnOutput{Spawned: true, Spawn: *spawn, Species: sp}, nil
}

func (o *orchestrator) Catch(ctx context.Context, input *CatchInput) (*CatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	spawn := o.spawns[input.ChannelID]
	if spawn == nil {
		o.mu.Unlock()
		return nil, errors.NotFound("Too late!")
	}
	now := o.clock.Now()
	if !spawn.Open(now) {
		vanished := o.vanish(input.ChannelID, spawn)
		o.mu.Unlock()
		if vanished {
			o.publish(ctx, gameevents.SpawnVanished, spawn)
		}
		return nil, errors.InvalidState("Too late! It already slipped away.")
	}

	granted, err := o.inventory.Grant(ctx, &inventory.GrantInput{
		UserID:       input.UserID,
		SpeciesKey:   spawn.Species,
		MinLevel:     entities.CatchMinLv,
		MaxLevel:     entities.CatchMaxLv,
		CreditReward: true,
	})
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	if err := spawn.Catch(input.UserID, now); err != nil {
		o.mu.Unlock()
		return nil, err
	}
	delete(o.spawns, input.ChannelID)
	caught := *spawn
	o.mu.Unlock()

	slog.Info("Wild TAC caught",
		"channel_id", input.ChannelID,
		"user_id", input.UserID,
		"species", caught.Species,
		"instance_id", granted.Instance.ID,
	)

	return &CatchOutput{
		Spawn:    caught,
		Instance: granted.Instance,
		Species:  granted.Species,
		Reward:   granted.Reward,
		Balance:  granted.Balance,
	}, nil
}

func (o *orchestrator) Active(_ context.Context, input *ActiveInput) (*ActiveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	spawn := o.spawns[input.ChannelID]
	if spawn == nil || !spawn.Open(o.clock.Now()) {
		return &ActiveOutput{}, nil
	}
	return &ActiveOutput{Active: true, Spawn: *spawn}, nil
}

func (o *orchestrator) Sweep(ctx context.Context, _ *SweepInput) (*SweepOutput, error) {
	o.mu.Lock()
	now := o.clock.Now()
	var gone []entities.Spawn
	for ch, spawn := range o.spawns {
		if spawn.Open(now) {
			continue
		}
		if o.vanish(ch, spawn) {
			gone = append(gone, *spawn)
		}
	}
	o.mu.Unlock()

	sort.Slice(gone, func(i, j int) bool { return gone[i].ChannelID < gone[j].ChannelID })
	for i := range gone {
		o.publish(ctx, gameevents.SpawnVanished, &gone[i])
	}
	return &SweepOutput{Vanished: gone}, nil
}

// vanish removes an expired spawn. Callers hold mu.
func (o *orchestrator) vanish(channelID string, spawn *entities.Spawn) bool {
	delete(o.spawns, channelID)
	if err := spawn.Vanish(); err != nil {
		return false
	}
	slog.Info("Wild TAC vanished", "channel_id", channelID, "species", spawn.Species)
	return true
}

func (o *orchestrator) publish(ctx context.Context, topic string, spawn *entities.Spawn) {
	err := o.events.Publish(ctx, topic, rpgtoolkit.Channel(spawn.ChannelID), rpgtoolkit.Guild(spawn.GuildID),
		gameevents.Payload{
			gameevents.KeyGuildID:   spawn.GuildID,
			gameevents.KeyChannelID: spawn.ChannelID,
			gameevents.KeySpecies:   spawn.Species,
		})
	if err != nil {
		slog.Debug("Spawn event handler failed", "topic", topic, "channel_id", spawn.ChannelID, "error", err)
	}
}
