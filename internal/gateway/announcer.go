package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
	"github.com/KirkDiggler/theta-arc/internal/handlers/commands"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
	"github.com/KirkDiggler/theta-arc/internal/render"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
)

// AnnouncerConfig holds dependencies for the announcer
type AnnouncerConfig struct {
	Bus         *gameevents.Bus
	Sink        chat.Sink
	Catalog     *catalog.Catalog
	Boss        boss.Service
	CatchWindow time.Duration
}

// Validate ensures all required dependencies are provided
func (c *AnnouncerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	if c.Sink == nil {
		vb.RequiredField("Sink")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Boss == nil {
		vb.RequiredField("Boss")
	}

	return vb.Build()
}

// Announcer turns game events into channel announcements
type Announcer struct {
	bus         *gameevents.Bus
	sink        chat.Sink
	catalog     *catalog.Catalog
	boss        boss.Service
	catchWindow time.Duration
	subs        []string
}

// NewAnnouncer creates an announcer. Call Start to subscribe.
func NewAnnouncer(cfg *AnnouncerConfig) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	a := &Announcer{
		bus:         cfg.Bus,
		sink:        cfg.Sink,
		catalog:     cfg.Catalog,
		boss:        cfg.Boss,
		catchWindow: cfg.CatchWindow,
	}
	if a.catchWindow <= 0 {
		a.catchWindow = DefaultCatchWindow
	}
	return a, nil
}

// DefaultCatchWindow matches the encounter default when none is configured
const DefaultCatchWindow = 10 * time.Second

// Start subscribes to every announced topic
func (a *Announcer) Start() {
	handlers := map[string]events.HandlerFunc{
		gameevents.SpawnAppeared: a.spawnAppeared,
		gameevents.SpawnVanished: a.spawnVanished,
		gameevents.BossSpawned:   a.bossSpawned,
		gameevents.BossDismissed: a.bossDismissed,
		gameevents.TradeExpired:  a.tradeExpired,
		gameevents.DuelExpired:   a.duelExpired,
	}
	for topic, fn := range handlers {
		a.subs = append(a.subs, a.bus.Subscribe(topic, fn))
	}
}

// Stop removes the subscriptions
func (a *Announcer) Stop() {
	for _, id := range a.subs {
		if err := a.bus.Unsubscribe(id); err != nil {
			slog.Debug("Unsubscribe failed", "subscription", id, "error", err)
		}
	}
	a.subs = nil
}

func (a *Announcer) spawnAppeared(ctx context.Context, ev events.Event) error {
	sp, err := a.catalog.Species(gameevents.String(ev, gameevents.KeySpecies))
	if err != nil {
		return err
	}
	return a.post(ctx, ev, &chat.Announcement{
		Embed:   render.Spawn(sp, a.catchWindow),
		Buttons: commands.CatchButton(),
	})
}

func (a *Announcer) spawnVanished(ctx context.Context, ev events.Event) error {
	key := gameevents.String(ev, gameevents.KeySpecies)
	name := key
	if sp, err := a.catalog.Species(key); err == nil {
		name = sp.DisplayName()
	}
	return a.post(ctx, ev, &chat.Announcement{Content: render.Vanished(name)})
}

func (a *Announcer) bossSpawned(ctx context.Context, ev events.Event) error {
	out, err := a.boss.Status(ctx, &boss.StatusInput{GuildID: gameevents.String(ev, gameevents.KeyGuildID)})
	if err != nil {
		return err
	}
	return a.post(ctx, ev, &chat.Announcement{Embed: render.Boss(&out.Encounter, out.Tier, out.Top)})
}

func (a *Announcer) bossDismissed(ctx context.Context, ev events.Event) error {
	key := gameevents.String(ev, gameevents.KeyTier)
	name := key
	if tier, err := a.catalog.BossTier(key); err == nil {
		name = tier.DisplayName()
	}
	return a.post(ctx, ev, &chat.Announcement{Content: fmt.Sprintf("🌫️ **%s** fades away.", name)})
}

func (a *Announcer) tradeExpired(ctx context.Context, ev events.Event) error {
	return a.post(ctx, ev, &chat.Announcement{
		Content: fmt.Sprintf("⏳ Trade #%s timed out.", gameevents.String(ev, gameevents.KeyOfferID)),
	})
}

func (a *Announcer) duelExpired(ctx context.Context, ev events.Event) error {
	return a.post(ctx, ev, &chat.Announcement{
		Content: fmt.Sprintf("⏳ PvP Challenge #%s expired.", gameevents.String(ev, gameevents.KeyOfferID)),
	})
}

// post addresses ann to the event's channel
func (a *Announcer) post(ctx context.Context, ev events.Event, ann *chat.Announcement) error {
	ann.GuildID = gameevents.String(ev, gameevents.KeyGuildID)
	ann.ChannelID = gameevents.String(ev, gameevents.KeyChannelID)
	if ann.ChannelID == "" {
		slog.Debug("Event without channel", "guild_id", ann.GuildID)
		return nil
	}
	return a.sink.Announce(ctx, ann)
}
