// Package boss runs world bosses: one active encounter per guild, attack
// resolution, the defeat payout and the pending reward ledger.
package boss

//go:generate mockgen -destination=mock/mock_service.go -package=bossmock github.com/KirkDiggler/theta-arc/internal/orchestrators/boss Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/theta-arc/internal/engine"
	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Service defines the interface for world boss operations
type Service interface {
	// Spawn opens an encounter for a tier in a guild
	Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error)

	// Attack resolves one attack with an owned instance
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// Status returns the guild's active boss
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// Effects reports the caller's negative stacks
	Effects(ctx context.Context, input *EffectsInput) (*EffectsOutput, error)

	// Purge clears the caller's negative stacks
	Purge(ctx context.Context, input *PurgeInput) (*PurgeOutput, error)

	// Claim credits everything staged for the caller in a guild
	Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error)

	// Dismiss ends the active boss without paying out
	Dismiss(ctx context.Context, input *DismissInput) (*DismissOutput, error)
}

// Config holds the dependencies for the boss orchestrator
type Config struct {
	Ledger  *ledger.Ledger
	Catalog *catalog.Catalog
	Engine  engine.Engine
	Events  *gameevents.Bus
	Clock   clock.Clock
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
	clock   clock.Clock

	mu      sync.Mutex
	bosses  map[string]*entities.Encounter
	pending map[string]map[string]entities.Reward
}

// NewOrchestrator creates a new boss orchestrator. It subscribes to Astral
// overflow and answers with a ralgulfa spawn in that guild.
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
		bosses:  make(map[string]*entities.Encounter),
		pending: make(map[string]map[string]entities.Reward),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	o.events.Subscribe(gameevents.AstralOverflow, o.onAstralOverflow)

	return o, nil
}

// onAstralOverflow is best effort: an active boss or a missing tier only
// gets logged.
func (o *orchestrator) onAstralOverflow(ctx context.Context, ev events.Event) error {
	guildID := gameevents.String(ev, gameevents.KeyGuildID)
	if guildID == "" {
		return nil
	}
	_, err := o.Spawn(ctx, &SpawnInput{
		GuildID:   guildID,
		ChannelID: gameevents.String(ev, gameevents.KeyChannelID),
		Tier:      entities.TierRalgulfa,
	})
	if err != nil {
		slog.Debug("Overflow boss not spawned", "guild_id", guildID, "error", err)
	}
	return nil
}

func (o *orchestrator) Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	key := strings.ToLower(strings.TrimSpace(input.Tier))
	tier, err := o.catalog.BossTier(key)
	if err != nil {
		return nil, errors.NotFound("Unknown boss.")
	}

	o.mu.Lock()
	if o.bosses[input.GuildID].Active() {
		o.mu.Unlock()
		return nil, errors.InvalidState("A boss is already active here.")
	}
	enc := entities.NewEncounter(input.GuildID, input.ChannelID, tier, o.clock.Now())
	if input.Raid != nil {
		raid := *input.Raid
		raid.Members = append([]string(nil), input.Raid.Members...)
		enc.Raid = &raid
	}
	o.bosses[input.GuildID] = enc
	snap := enc.Snapshot()
	o.mu.Unlock()

	slog.Info("Boss spawned",
		"guild_id", input.GuildID,
		"tier", tier.Key,
		"hp", enc.MaxHP,
		"raid", input.Raid != nil,
	)
	o.publish(ctx, gameevents.BossSpawned, input.GuildID, gameevents.Payload{
		gameevents.KeyGuildID:   input.GuildID,
		gameevents.KeyChannelID: input.ChannelID,
		gameevents.KeyTier:      tier.Key,
	})

	return &SpawnOutput{Encounter: snap, Tier: tier}, nil
}

func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	enc := o.bosses[input.GuildID]
	if !enc.Active() {
		o.mu.Unlock()
		return nil, errors.NotFound("No active boss.")
	}
	inst, ok := acct.Instance(input.InstanceID)
	if !ok {
		o.mu.Unlock()
		return nil, errors.NotFound("You don't own that instance.")
	}
	tier := o.tier(enc.Tier)
	partySize := 1
	if tier.Has(entities.MechanicRaid) {
		if !enc.RaidMember(input.UserID) {
			o.mu.Unlock()
			return nil, errors.PermissionDenied("Only the active raid party can attack this boss.")
		}
		partySize = len(enc.Raid.Members)
	}
	sp, err := o.catalog.Species(inst.Species)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}

	res, err := o.engine.ResolveBossAttack(ctx, &engine.ResolveBossAttackInput{
		Attacker:  engine.Combatant{Instance: inst, Species: sp},
		Tier:      tier,
		Encounter: enc,
		UserID:    input.UserID,
		PartySize: partySize,
	})
	if err != nil {
		o.mu.Unlock()
		return nil, errors.Wrap(err, "failed to resolve attack")
	}

	if res.Healed > 0 {
		enc.Heal(res.Healed)
	}
	enc.ApplyDamage(input.UserID, res.Damage)
	wilt := tier.Has(entities.MechanicWilt)
	if wilt {
		enc.Wilt[input.UserID] = res.Stacks
	}

	out := &AttackOutput{
		Damage:  res.Damage,
		Special: res.Special,
		Healed:  res.Healed,
		Wilt:    wilt,
		Stacks:  res.Stacks,
	}

	if enc.HP > 0 {
		out.Encounter = enc.Snapshot()
		o.mu.Unlock()
		return out, nil
	}

	defeat, err := o.defeat(ctx, enc, tier)
	out.Encounter = enc.Snapshot()
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out.Defeat = defeat

	o.publish(ctx, gameevents.BossDefeated, enc.GuildID, gameevents.Payload{
		gameevents.KeyGuildID:   enc.GuildID,
		gameevents.KeyChannelID: enc.ChannelID,
		gameevents.KeyTier:      enc.Tier,
		gameevents.KeyUserID:    input.UserID,
	})
	return out, nil
}

// defeat pays out and removes the encounter. Callers hold mu.
func (o *orchestrator) defeat(ctx context.Context, enc *entities.Encounter, tier *entities.BossTier) (*Defeat, error) {
	if err := enc.Defeat(); err != nil {
		return nil, err
	}
	delete(o.bosses, enc.GuildID)

	dist, err := o.engine.DistributeRewards(ctx, &engine.DistributeRewardsInput{
		Rewards:      tier.Rewards,
		Contributors: enc.Contributors,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to distribute rewards")
	}

	staged := o.pending[enc.GuildID]
	if staged == nil {
		staged = make(map[string]entities.Reward)
		o.pending[enc.GuildID] = staged
	}
	for uid, reward := range dist.Rewards {
		cur := staged[uid]
		cur.Merge(reward)
		staged[uid] = cur
	}

	slog.Info("Boss defeated",
		"guild_id", enc.GuildID,
		"tier", enc.Tier,
		"attacks", enc.Attacks,
		"contributors", len(enc.Contributors),
		"gold_pot", dist.Pot.Gold,
	)

	return &Defeat{
		Name:    enc.Name,
		Pot:     dist.Pot,
		Top:     enc.TopContributors(TopContributorCount),
		Rewards: dist.Rewards,
	}, nil
}

func (o *orchestrator) Status(_ context.Context, input *StatusInput) (*StatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	enc := o.bosses[input.GuildID]
	if !enc.Active() {
		return nil, errors.NotFound("No active boss.")
	}
	return &StatusOutput{
		Encounter: enc.Snapshot(),
		Tier:      o.tier(enc.Tier),
		Top:       enc.TopContributors(TopContributorCount),
	}, nil
}

func (o *orchestrator) Effects(_ context.Context, input *EffectsInput) (*EffectsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	enc := o.bosses[input.GuildID]
	if !enc.Active() {
		return nil, errors.NotFound("No active boss.")
	}
	if !o.tier(enc.Tier).Has(entities.MechanicWilt) {
		return &EffectsOutput{}, nil
	}
	stacks := enc.Wilt[input.UserID]
	return &EffectsOutput{
		Wilt:         true,
		Stacks:       stacks,
		ReductionPct: int(engine.WiltReduction(stacks)*100 + 0.5),
	}, nil
}

func (o *orchestrator) Purge(_ context.Context, input *PurgeInput) (*PurgeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	enc := o.bosses[input.GuildID]
	if !enc.Active() {
		return nil, errors.NotFound("No active boss.")
	}
	if !o.tier(enc.Tier).Has(entities.MechanicWilt) {
		return &PurgeOutput{}, nil
	}
	stacks := enc.Wilt[input.UserID]
	if stacks <= 0 {
		return nil, errors.InvalidState("You're already clean.")
	}
	enc.Wilt[input.UserID] = 0

	slog.Info("Wilt purged", "guild_id", input.GuildID, "user_id", input.UserID, "stacks", stacks)
	return &PurgeOutput{Wilt: true, Cleared: stacks}, nil
}

func (o *orchestrator) Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	reward, ok := o.pending[input.GuildID][input.UserID]
	if ok {
		delete(o.pending[input.GuildID], input.UserID)
	}
	o.mu.Unlock()

	if !ok || (reward.Shards.IsZero() && len(reward.Items) == 0) {
		return &ClaimOutput{Nothing: true}, nil
	}

	acct, err := o.ledger.Update(ctx, input.UserID, func(a *entities.Account) error {
		a.Currency = a.Currency.Add(reward.Shards)
		a.AddItems(reward.Items)
		return nil
	})
	if err != nil {
		o.restage(input.GuildID, input.UserID, reward)
		return nil, err
	}

	slog.Info("Boss rewards claimed",
		"guild_id", input.GuildID,
		"user_id", input.UserID,
		"gold", reward.Shards.Gold,
		"diamond", reward.Shards.Diamond,
		"enchanted", reward.Shards.Enchanted,
		"items", len(reward.Items),
	)
	return &ClaimOutput{Reward: reward, Balance: acct.Currency}, nil
}

// restage puts a reward back after a failed save
func (o *orchestrator) restage(guildID, userID string, reward entities.Reward) {
	o.mu.Lock()
	defer o.mu.Unlock()

	staged := o.pending[guildID]
	if staged == nil {
		staged = make(map[string]entities.Reward)
		o.pending[guildID] = staged
	}
	cur := staged[userID]
	cur.Merge(reward)
	staged[userID] = cur
}

func (o *orchestrator) Dismiss(ctx context.Context, input *DismissInput) (*DismissOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	enc := o.bosses[input.GuildID]
	if !enc.Active() {
		o.mu.Unlock()
		return &DismissOutput{}, nil
	}
	if input.RaidLeader != "" && (enc.Raid == nil || enc.Raid.Leader != input.RaidLeader) {
		o.mu.Unlock()
		return &DismissOutput{}, nil
	}
	delete(o.bosses, input.GuildID)
	o.mu.Unlock()

	slog.Info("Boss dismissed", "guild_id", input.GuildID, "tier", enc.Tier, "hp", enc.HP)
	o.publish(ctx, gameevents.BossDismissed, input.GuildID, gameevents.Payload{
		gameevents.KeyGuildID:   input.GuildID,
		gameevents.KeyChannelID: enc.ChannelID,
		gameevents.KeyTier:      enc.Tier,
	})

	return &DismissOutput{Dismissed: true, Name: enc.Name}, nil
}

// tier resolves a catalog tier, falling back to a bare tier when the
// catalog no longer lists it so its default mechanics still apply
func (o *orchestrator) tier(key string) *entities.BossTier {
	if t, err := o.catalog.BossTier(key); err == nil {
		return t
	}
	return &entities.BossTier{Key: key}
}

func (o *orchestrator) publish(ctx context.Context, topic, guildID string, payload gameevents.Payload) {
	if err := o.events.Publish(ctx, topic, rpgtoolkit.Boss(guildID), rpgtoolkit.Guild(guildID), payload); err != nil {
		slog.Debug("Boss event handler failed", "topic", topic, "guild_id", guildID, "error", err)
	}
}
