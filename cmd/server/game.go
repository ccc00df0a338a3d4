package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/config"
	"github.com/KirkDiggler/theta-arc/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/gameevents"
	"github.com/KirkDiggler/theta-arc/internal/gateway"
	"github.com/KirkDiggler/theta-arc/internal/handlers/commands"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/activity"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/astral"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/economy"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/party"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/profile"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/trade"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/redis"
	"github.com/KirkDiggler/theta-arc/internal/repositories/accounts"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// game holds every service of one process
type game struct {
	cfg     *config.Config
	clock   clock.Clock
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	bus     *gameevents.Bus

	inventory inventory.Service
	economy   economy.Service
	astral    astral.Service
	boss      boss.Service
	party     party.Service
	encounter encounter.Service
	trade     trade.Service
	pvp       pvp.Service
	profile   profile.Service
	activity  activity.Service
	router    *commands.Router

	closers []func() error
}

// newGame opens storage, loads the catalog and builds the orchestrators
func newGame(ctx context.Context, cfg *config.Config) (*game, error) {
	g := &game{cfg: cfg, clock: clock.New(), bus: gameevents.New(nil)}

	repo, err := g.openAccounts(ctx)
	if err != nil {
		return nil, err
	}

	g.catalog = catalog.Load(catalog.Config{SpeciesPath: cfg.SpeciesCatalog, BossTierPath: cfg.BossCatalog})

	g.ledger, err = ledger.New(&ledger.Config{
		AccountRepo:     repo,
		SpecialStatuses: cfg.SpecialStatuses,
		DefaultStatus:   cfg.DefaultStatus,
	})
	if err != nil {
		g.Close()
		return nil, errors.Wrap(err, "failed to create ledger")
	}

	if err := g.buildServices(); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func (g *game) openAccounts(ctx context.Context) (accounts.Repository, error) {
	switch g.cfg.Storage {
	case config.StorageRedis:
		client, err := redis.Connect(ctx, g.cfg.RedisEndpoints, &redis.Options{
			PoolSize:        g.cfg.RedisPoolSize,
			MaxRetries:      g.cfg.RedisMaxRetry,
			ConnMaxIdleTime: g.cfg.RedisIdle,
			UseTLS:          g.cfg.RedisTLS,
		})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
		}
		g.closers = append(g.closers, client.Close)
		slog.Info("Using redis account store", "endpoints", g.cfg.RedisEndpoints)
		return accounts.NewRedis(&accounts.RedisConfig{Client: client, Clock: g.clock})

	case config.StorageSQLite:
		repo, err := accounts.NewSQLite(ctx, &accounts.SQLiteConfig{Path: g.cfg.SQLitePath, Clock: g.clock})
		if err != nil {
			return nil, err
		}
		g.closers = append(g.closers, repo.Close)
		slog.Info("Using sqlite account store", "path", g.cfg.SQLitePath)
		return repo, nil

	default:
		slog.Warn("Using in-memory account store; progress is lost on exit")
		return accounts.NewInMemory(g.clock), nil
	}
}

func (g *game) buildServices() error {
	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: dice.DefaultRoller})
	if err != nil {
		return errors.Wrap(err, "failed to create engine")
	}

	if g.inventory, err = inventory.NewOrchestrator(&inventory.Config{
		Ledger: g.ledger, Catalog: g.catalog, Engine: eng,
	}); err != nil {
		return errors.Wrap(err, "failed to create inventory")
	}
	if g.economy, err = economy.NewOrchestrator(&economy.Config{
		Ledger: g.ledger, Catalog: g.catalog, Inventory: g.inventory,
	}); err != nil {
		return errors.Wrap(err, "failed to create economy")
	}
	if g.astral, err = astral.NewOrchestrator(&astral.Config{
		Ledger: g.ledger, Catalog: g.catalog, Engine: eng, Events: g.bus,
	}); err != nil {
		return errors.Wrap(err, "failed to create astral")
	}
	if g.boss, err = boss.NewOrchestrator(&boss.Config{
		Ledger: g.ledger, Catalog: g.catalog, Engine: eng, Events: g.bus, Clock: g.clock,
	}); err != nil {
		return errors.Wrap(err, "failed to create boss")
	}
	if g.party, err = party.NewOrchestrator(&party.Config{
		Boss: g.boss, Ledger: g.ledger, Catalog: g.catalog,
	}); err != nil {
		return errors.Wrap(err, "failed to create party")
	}
	if g.encounter, err = encounter.NewOrchestrator(&encounter.Config{
		Inventory:   g.inventory,
		Catalog:     g.catalog,
		Engine:      eng,
		Events:      g.bus,
		Clock:       g.clock,
		CatchWindow: g.cfg.CatchWindow,
	}); err != nil {
		return errors.Wrap(err, "failed to create encounter")
	}
	if g.trade, err = trade.NewOrchestrator(&trade.Config{
		Ledger: g.ledger, Catalog: g.catalog, Events: g.bus, Clock: g.clock, TTL: g.cfg.TradeTTL,
	}); err != nil {
		return errors.Wrap(err, "failed to create trade")
	}
	if g.pvp, err = pvp.NewOrchestrator(&pvp.Config{
		Ledger: g.ledger, Catalog: g.catalog, Engine: eng, Events: g.bus, Clock: g.clock, TTL: g.cfg.DuelTTL,
	}); err != nil {
		return errors.Wrap(err, "failed to create pvp")
	}
	if g.profile, err = profile.NewOrchestrator(&profile.Config{
		Ledger: g.ledger, Catalog: g.catalog,
	}); err != nil {
		return errors.Wrap(err, "failed to create profile")
	}
	if g.activity, err = activity.NewOrchestrator(&activity.Config{
		Astral:    g.astral,
		Encounter: g.encounter,
		Boss:      g.boss,
		Party:     g.party,
		Catalog:   g.catalog,
		Clock:     g.clock,
	}); err != nil {
		return errors.Wrap(err, "failed to create activity")
	}

	g.router, err = commands.NewRouter(&commands.Config{
		Inventory:   g.inventory,
		Economy:     g.economy,
		Astral:      g.astral,
		Boss:        g.boss,
		Party:       g.party,
		Encounter:   g.encounter,
		Trade:       g.trade,
		PvP:         g.pvp,
		Profile:     g.profile,
		Allowed:     g.cfg.Allowed,
		CatchWindow: g.cfg.CatchWindow,
		TradeTTL:    g.cfg.TradeTTL,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create router")
	}
	return nil
}

// frontend builds the dispatcher and announcer that deliver to sink
func (g *game) frontend(sink chat.Sink) (*gateway.Dispatcher, *gateway.Announcer, error) {
	dispatcher, err := gateway.NewDispatcher(&gateway.DispatcherConfig{
		Router:        g.router,
		Activity:      g.activity,
		Encounter:     g.encounter,
		Trade:         g.trade,
		PvP:           g.pvp,
		Sink:          sink,
		SweepInterval: g.cfg.SweepInterval,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create dispatcher")
	}

	announcer, err := gateway.NewAnnouncer(&gateway.AnnouncerConfig{
		Bus:         g.bus,
		Sink:        sink,
		Catalog:     g.catalog,
		Boss:        g.boss,
		CatchWindow: g.cfg.CatchWindow,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create announcer")
	}
	return dispatcher, announcer, nil
}

// Close releases storage connections
func (g *game) Close() {
	for _, closeFn := range g.closers {
		if err := closeFn(); err != nil {
			slog.Warn("Close failed", "error", err)
		}
	}
	g.closers = nil
}
