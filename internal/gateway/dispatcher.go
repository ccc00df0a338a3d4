package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/handlers/commands"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/activity"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/trade"
	"github.com/KirkDiggler/theta-arc/internal/render"
)

// Dispatcher defaults
const (
	DefaultQueueSize     = 256
	DefaultSweepInterval = 2 * time.Second
)

// DispatcherConfig holds dependencies for the dispatcher
type DispatcherConfig struct {
	Router    *commands.Router
	Activity  activity.Service
	Encounter encounter.Service
	Trade     trade.Service
	PvP       pvp.Service
	Sink      chat.Sink

	SweepInterval time.Duration
	QueueSize     int
}

// Validate ensures all required dependencies are provided
func (c *DispatcherConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Router == nil {
		vb.RequiredField("Router")
	}
	if c.Activity == nil {
		vb.RequiredField("Activity")
	}
	if c.Encounter == nil {
		vb.RequiredField("Encounter")
	}
	if c.Trade == nil {
		vb.RequiredField("Trade")
	}
	if c.PvP == nil {
		vb.RequiredField("PvP")
	}
	if c.Sink == nil {
		vb.RequiredField("Sink")
	}

	return vb.Build()
}

type job struct {
	frame   *Frame
	replier chat.Replier
}

// Dispatcher runs inbound frames and timer sweeps one at a time, in
// arrival order
type Dispatcher struct {
	router    *commands.Router
	activity  activity.Service
	encounter encounter.Service
	trade     trade.Service
	pvp       pvp.Service
	sink      chat.Sink

	sweepInterval time.Duration
	inbox         chan job
}

// NewDispatcher creates a dispatcher. Call Run to start processing.
func NewDispatcher(cfg *DispatcherConfig) (*Dispatcher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	d := &Dispatcher{
		router:        cfg.Router,
		activity:      cfg.Activity,
		encounter:     cfg.Encounter,
		trade:         cfg.Trade,
		pvp:           cfg.PvP,
		sink:          cfg.Sink,
		sweepInterval: cfg.SweepInterval,
	}
	if d.sweepInterval <= 0 {
		d.sweepInterval = DefaultSweepInterval
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = DefaultQueueSize
	}
	d.inbox = make(chan job, size)
	return d, nil
}

// HandleFrame queues a frame. It fails fast when the queue is full.
func (d *Dispatcher) HandleFrame(_ context.Context, frame *Frame, replier chat.Replier) error {
	select {
	case d.inbox <- job{frame: frame, replier: replier}:
		return nil
	default:
		return errors.New(errors.CodeResourceExhausted, "The game is busy. Try again in a moment.")
	}
}

// Run processes queued frames and sweeps until ctx ends
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.sweepInterval)
	defer ticker.Stop()

	slog.Info("Dispatcher started", "sweep_interval", d.sweepInterval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Dispatcher stopped")
			return ctx.Err()
		case j := <-d.inbox:
			d.dispatch(ctx, j)
		case <-ticker.C:
			d.Sweep(ctx)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, j job) {
	in := j.frame.Interaction
	switch j.frame.Type {
	case FrameMessage:
		d.message(ctx, j.frame.Message, j.replier)
	case FrameCommand:
		d.router.HandleSlash(ctx, chat.NewInteractionRequest(in, j.replier), in.Command, in.Options)
	case FrameComponent:
		d.router.HandleComponent(ctx, chat.NewInteractionRequest(in, j.replier), in.CustomID)
	}
}

// message feeds the activity detectors, then the command router. A GIF
// that caught a spawn is not also read as a command.
func (d *Dispatcher) message(ctx context.Context, msg *chat.Message, replier chat.Replier) {
	if msg.Bot {
		return
	}
	req := chat.NewMessageRequest(msg, replier)

	out, err := d.activity.Observe(ctx, &activity.ObserveInput{
		GuildID:     msg.GuildID,
		ChannelID:   msg.ChannelID,
		UserID:      msg.AuthorID,
		Content:     msg.Content,
		Attachments: msg.Attachments,
	})
	if err != nil {
		slog.Error("Activity failed", "channel_id", msg.ChannelID, "user_id", msg.AuthorID, "error", err)
	} else {
		if len(out.Triggered) > 0 {
			slog.Debug("Detectors fired", "channel_id", msg.ChannelID, "triggers", out.Triggered)
		}
		for _, notice := range out.Notices {
			d.announce(ctx, &chat.Announcement{GuildID: msg.GuildID, ChannelID: msg.ChannelID, Content: notice})
		}
		if out.Caught != nil {
			if err := req.Respond(ctx, chat.Text(render.Caught(msg.AuthorID, out.Caught))); err != nil {
				slog.Debug("Catch reply failed", "channel_id", msg.ChannelID, "error", err)
			}
			return
		}
	}

	d.router.HandleMessage(ctx, req, msg.Content)
}

// Sweep expires stale spawns, trades and duels. Their announcements go
// out through the event subscriptions.
func (d *Dispatcher) Sweep(ctx context.Context) {
	if out, err := d.encounter.Sweep(ctx, &encounter.SweepInput{}); err != nil {
		slog.Error("Spawn sweep failed", "error", err)
	} else if len(out.Vanished) > 0 {
		slog.Debug("Spawns vanished", "count", len(out.Vanished))
	}
	if out, err := d.trade.Sweep(ctx, &trade.SweepInput{}); err != nil {
		slog.Error("Trade sweep failed", "error", err)
	} else if len(out.Expired) > 0 {
		slog.Debug("Trades expired", "count", len(out.Expired))
	}
	if out, err := d.pvp.Sweep(ctx, &pvp.SweepInput{}); err != nil {
		slog.Error("Duel sweep failed", "error", err)
	} else if len(out.Expired) > 0 {
		slog.Debug("Duels expired", "count", len(out.Expired))
	}
}

func (d *Dispatcher) announce(ctx context.Context, a *chat.Announcement) {
	if err := d.sink.Announce(ctx, a); err != nil {
		slog.Warn("Announcement failed", "channel_id", a.ChannelID, "error", err)
	}
}
