// Package activity turns ordinary chat messages into game effects: Astral
// progress for every message, and the detectors that summon wild TACs
// and bosses.
package activity

//go:generate mockgen -destination=mock/mock_service.go -package=activitymock github.com/KirkDiggler/theta-arc/internal/orchestrators/activity Service

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/astral"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/party"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/pkg/window"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
)

// ScreamSpecies is the TAC a caps scream prefers to summon
const ScreamSpecies = "fleeb"

// Service defines the interface for chat activity
type Service interface {
	// Observe runs one message through Astral progress and every detector
	Observe(ctx context.Context, input *ObserveInput) (*ObserveOutput, error)
}

// Config holds the dependencies for the activity orchestrator
type Config struct {
	Astral    astral.Service
	Encounter encounter.Service
	Boss      boss.Service
	Party     party.Service
	Catalog   *catalog.Catalog
	Clock     clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Astral == nil {
		vb.RequiredField("Astral")
	}
	if c.Encounter == nil {
		vb.RequiredField("Encounter")
	}
	if c.Boss == nil {
		vb.RequiredField("Boss")
	}
	if c.Party == nil {
		vb.RequiredField("Party")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	astral    astral.Service
	encounter encounter.Service
	boss      boss.Service
	party     party.Service
	catalog   *catalog.Catalog

	repeats *window.Counter
	thetas  *window.Counter
	screams *window.Counter
	emojis  *window.Counter
}

// NewOrchestrator creates a new activity orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &orchestrator{
		astral:    cfg.Astral,
		encounter: cfg.Encounter,
		boss:      cfg.Boss,
		party:     cfg.Party,
		catalog:   cfg.Catalog,
		repeats:   window.New(c, RepeatWindow),
		thetas:    window.New(c, ThetaWindow),
		screams:   window.New(c, ScreamCooldown),
		emojis:    window.New(c, EmojiWindow),
	}, nil
}

func (o *orchestrator) Observe(ctx context.Context, input *ObserveInput) (*ObserveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	out := &ObserveOutput{}

	o.repeat(ctx, input, out)

	progress, err := o.astral.Progress(ctx, &astral.ProgressInput{
		UserID: input.UserID,
		Chars:  utf8.RuneCountInString(input.Content),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to feed astral")
	}
	out.Progress = progress

	o.theta(ctx, input, out)
	o.scream(ctx, input, out)
	o.emoji(ctx, input, out)
	o.gif(ctx, input, out)

	return out, nil
}

func (o *orchestrator) repeat(ctx context.Context, in *ObserveInput, out *ObserveOutput) {
	if len(in.Attachments) > 0 || !IsAlphanumeric(in.Content) {
		return
	}
	key := in.ChannelID + "\x00" + in.Content
	if !o.repeats.Add(key, 1, RepeatThreshold) {
		return
	}
	o.repeats.Reset(key)
	out.Triggered = append(out.Triggered, TriggerRepeat)

	if _, err := o.boss.Spawn(ctx, &boss.SpawnInput{
		GuildID:   in.GuildID,
		ChannelID: in.ChannelID,
		Tier:      entities.TierStaring,
	}); err != nil {
		slog.Debug("Repeat detector could not spawn boss", "channel_id", in.ChannelID, "error", err)
	}
}

func (o *orchestrator) theta(ctx context.Context, in *ObserveInput, out *ObserveOutput) {
	hits := ThetaCount(in.Content)
	if hits == 0 || in.GuildID == "" {
		return
	}
	key := in.ChannelID + "\x00" + in.UserID
	if !o.thetas.Add(key, hits, ThetaThreshold) {
		return
	}
	o.thetas.Reset(key)
	out.Triggered = append(out.Triggered, TriggerTheta)

	if _, err := o.encounter.Spawn(ctx, &encounter.SpawnInput{GuildID: in.GuildID, ChannelID: in.ChannelID}); err != nil {
		slog.Debug("Theta chant could not spawn", "channel_id", in.ChannelID, "error", err)
	}
}

func (o *orchestrator) scream(ctx context.Context, in *ObserveInput, out *ObserveOutput) {
	if !IsCapsScream(in.Content) || o.spawnActive(ctx, in.ChannelID) {
		return
	}
	if !o.screams.TryAcquire(in.ChannelID) {
		return
	}
	out.Triggered = append(out.Triggered, TriggerScream)

	species := ""
	if o.catalog.HasSpecies(ScreamSpecies) {
		species = ScreamSpecies
	}
	if _, err := o.encounter.Spawn(ctx, &encounter.SpawnInput{
		GuildID:    in.GuildID,
		ChannelID:  in.ChannelID,
		SpeciesKey: species,
	}); err != nil {
		slog.Debug("Caps scream could not spawn", "channel_id", in.ChannelID, "error", err)
		return
	}
	out.Notices = append(out.Notices, "⚠️ Your scream tore a rift and something hostile emerged!")
}

func (o *orchestrator) emoji(ctx context.Context, in *ObserveInput, out *ObserveOutput) {
	if in.GuildID == "" {
		return
	}
	n := EmojiCount(in.Content)
	if n == 0 {
		return
	}

	raid, err := o.party.RaidStatus(ctx, &party.RaidStatusInput{GuildID: in.GuildID})
	if err != nil {
		slog.Debug("Emoji surge could not read raid status", "guild_id", in.GuildID, "error", err)
		return
	}
	if raid.Active {
		return
	}

	if !o.emojis.Add(in.ChannelID, n, EmojiThreshold) {
		return
	}
	if _, err := o.boss.Status(ctx, &boss.StatusInput{GuildID: in.GuildID}); err == nil {
		return
	}
	o.emojis.Reset(in.ChannelID)
	out.Triggered = append(out.Triggered, TriggerEmoji)

	spawned, err := o.boss.Spawn(ctx, &boss.SpawnInput{
		GuildID:   in.GuildID,
		ChannelID: in.ChannelID,
		Tier:      entities.TierWilter,
	})
	if err != nil {
		slog.Debug("Emoji surge could not spawn boss", "guild_id", in.GuildID, "error", err)
		return
	}
	out.Notices = append(out.Notices, "⚠️ The emoji surge agitated **"+spawned.Tier.DisplayName()+"**!")
}

func (o *orchestrator) gif(ctx context.Context, in *ObserveInput, out *ObserveOutput) {
	if !IsGIF(in.Content, in.Attachments) {
		return
	}
	out.Triggered = append(out.Triggered, TriggerGIF)

	if o.spawnActive(ctx, in.ChannelID) {
		caught, err := o.encounter.Catch(ctx, &encounter.CatchInput{
			GuildID:   in.GuildID,
			ChannelID: in.ChannelID,
			UserID:    in.UserID,
		})
		if err != nil {
			slog.Debug("GIF catch missed", "channel_id", in.ChannelID, "user_id", in.UserID, "error", err)
			return
		}
		out.Caught = caught
		return
	}

	if _, err := o.encounter.Spawn(ctx, &encounter.SpawnInput{GuildID: in.GuildID, ChannelID: in.ChannelID}); err != nil {
		slog.Debug("GIF could not spawn", "channel_id", in.ChannelID, "error", err)
	}
}

func (o *orchestrator) spawnActive(ctx context.Context, channelID string) bool {
	active, err := o.encounter.Active(ctx, &encounter.ActiveInput{ChannelID: channelID})
	if err != nil {
		slog.Debug("Spawn lookup failed", "channel_id", channelID, "error", err)
		return true
	}
	return active.Active
}
