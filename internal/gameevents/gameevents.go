// Package gameevents names the cross-service notifications and wraps the
// rpg-toolkit bus used to deliver them. Delivery is synchronous: handlers
// run inside Publish on the caller's goroutine.
package gameevents

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Topics
const (
	AstralOverflow = "astral.overflow"
	BossSpawned    = "boss.spawned"
	BossDefeated   = "boss.defeated"
	BossDismissed  = "boss.dismissed"
	SpawnAppeared  = "spawn.appeared"
	SpawnVanished  = "spawn.vanished"
	TradeExpired   = "trade.expired"
	DuelExpired    = "duel.expired"
)

// Payload keys
const (
	KeyGuildID   = "guild_id"
	KeyChannelID = "channel_id"
	KeyUserID    = "user_id"
	KeyTier      = "tier"
	KeySpecies   = "species"
	KeyMessage   = "message"
	KeyOfferID   = "offer_id"
)

// Payload is the key/value context attached to a published event
type Payload map[string]any

// Bus publishes game events
type Bus struct {
	bus events.EventBus
}

// New wraps bus. A nil bus gets a fresh toolkit bus.
func New(bus events.EventBus) *Bus {
	if bus == nil {
		bus = events.NewBus()
	}
	return &Bus{bus: bus}
}

// Publish sends topic with payload. Handler errors are returned.
func (b *Bus) Publish(ctx context.Context, topic string, source, target core.Entity, payload Payload) error {
	ev := events.NewGameEvent(topic, source, target)
	for k, v := range payload {
		ev.Context().Set(k, v)
	}
	if err := b.bus.Publish(ctx, ev); err != nil {
		slog.Debug("Event handler failed", "topic", topic, "error", err)
		return err
	}
	return nil
}

// Subscribe registers fn for topic and returns the subscription id
func (b *Bus) Subscribe(topic string, fn events.HandlerFunc) string {
	return b.bus.SubscribeFunc(topic, 0, fn)
}

// Unsubscribe removes a subscription
func (b *Bus) Unsubscribe(id string) error {
	return b.bus.Unsubscribe(id)
}

// String reads a string payload value
func String(ev events.Event, key string) string {
	v, ok := ev.Context().Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
