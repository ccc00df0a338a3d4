// Package commands routes prefix and slash commands to the game services
// and renders their results.
package commands

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/astral"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/economy"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/inventory"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/party"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/profile"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/pvp"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/trade"
)

// DefaultPrefix starts a prefix command
const DefaultPrefix = "%"

// HandlerFunc runs one command
type HandlerFunc func(ctx context.Context, req chat.Request, args *Args) error

// Command is one entry of the command table
type Command struct {
	Name        string
	Aliases     []string
	Group       string
	Usage       string
	Description string
	// Params are filled positionally by prefix commands and by name from
	// slash options.
	Params []string
	// Options are accepted only as name:value tokens
	Options []string
	// Greedy lets the last open parameter take every remaining token
	Greedy  bool
	Handler HandlerFunc
}

func (c *Command) accepts(name string) bool {
	for _, p := range c.Params {
		if p == name {
			return true
		}
	}
	for _, o := range c.Options {
		if o == name {
			return true
		}
	}
	return false
}

// Config holds dependencies for the router
type Config struct {
	Inventory inventory.Service
	Economy   economy.Service
	Astral    astral.Service
	Boss      boss.Service
	Party     party.Service
	Encounter encounter.Service
	Trade     trade.Service
	PvP       pvp.Service
	Profile   profile.Service

	// Allowed gates summon and summon_boss
	Allowed     func(userID string) bool
	Prefix      string
	CatchWindow time.Duration
	TradeTTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.Economy == nil {
		vb.RequiredField("Economy")
	}
	if c.Astral == nil {
		vb.RequiredField("Astral")
	}
	if c.Boss == nil {
		vb.RequiredField("Boss")
	}
	if c.Party == nil {
		vb.RequiredField("Party")
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
	if c.Profile == nil {
		vb.RequiredField("Profile")
	}
	if c.Allowed == nil {
		vb.RequiredField("Allowed")
	}

	return vb.Build()
}

// Router owns the command table
type Router struct {
	inventory inventory.Service
	economy   economy.Service
	astral    astral.Service
	boss      boss.Service
	party     party.Service
	encounter encounter.Service
	trade     trade.Service
	pvp       pvp.Service
	profile   profile.Service

	allowed     func(string) bool
	prefix      string
	catchWindow time.Duration
	tradeTTL    time.Duration

	commands   []*Command
	byName     map[string]*Command
	components map[string]componentFunc
}

// componentFunc handles a button click. value is the custom id after the
// first colon.
type componentFunc func(ctx context.Context, req chat.Request, value string) error

// NewRouter creates a router with the full command table
func NewRouter(cfg *Config) (*Router, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	r := &Router{
		inventory:   cfg.Inventory,
		economy:     cfg.Economy,
		astral:      cfg.Astral,
		boss:        cfg.Boss,
		party:       cfg.Party,
		encounter:   cfg.Encounter,
		trade:       cfg.Trade,
		pvp:         cfg.PvP,
		profile:     cfg.Profile,
		allowed:     cfg.Allowed,
		prefix:      cfg.Prefix,
		catchWindow: cfg.CatchWindow,
		tradeTTL:    cfg.TradeTTL,
		byName:      map[string]*Command{},
	}
	if r.prefix == "" {
		r.prefix = DefaultPrefix
	}
	if r.catchWindow <= 0 {
		r.catchWindow = encounter.DefaultCatchWindow
	}
	if r.tradeTTL <= 0 {
		r.tradeTTL = trade.DefaultTTL
	}

	r.commands = r.table()
	for _, c := range r.commands {
		r.byName[c.Name] = c
		for _, a := range c.Aliases {
			r.byName[a] = c
		}
	}
	r.components = map[string]componentFunc{
		ComponentCatch:        r.catchButton,
		ComponentTradeAccept:  r.tradeAcceptButton,
		ComponentTradeDecline: r.tradeDeclineButton,
	}
	return r, nil
}

// Commands returns the command table sorted by name
func (r *Router) Commands() []*Command {
	out := append([]*Command(nil), r.commands...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a command by name or alias
func (r *Router) Lookup(name string) (*Command, bool) {
	c, ok := r.byName[strings.ToLower(name)]
	return c, ok
}

// HandleMessage runs a prefix command. It reports false when content is
// not a known command.
func (r *Router) HandleMessage(ctx context.Context, req chat.Request, content string) bool {
	body, ok := strings.CutPrefix(strings.TrimSpace(content), r.prefix)
	if !ok {
		return false
	}
	tokens := tokenize(body)
	if len(tokens) == 0 {
		return false
	}
	cmd, ok := r.Lookup(tokens[0])
	if !ok {
		return false
	}
	r.run(ctx, req, cmd, parseArgs(cmd, tokens[1:]))
	return true
}

// HandleSlash runs a slash command with its named options
func (r *Router) HandleSlash(ctx context.Context, req chat.Request, name string, options map[string]string) {
	cmd, ok := r.Lookup(name)
	if !ok {
		r.reply(ctx, req, chat.Private("❌ Unknown command."))
		return
	}
	values := make(map[string]string, len(options))
	for k, v := range options {
		values[strings.ToLower(k)] = v
	}
	r.run(ctx, req, cmd, &Args{Values: values})
}

// HandleComponent runs a button click identified by customID
func (r *Router) HandleComponent(ctx context.Context, req chat.Request, customID string) {
	kind, value, _ := strings.Cut(customID, ":")
	fn, ok := r.components[kind]
	if !ok {
		r.reply(ctx, req, chat.Private("❌ That button no longer does anything."))
		return
	}
	if err := fn(ctx, req, value); err != nil {
		r.fail(ctx, req, kind, err)
	}
}

func (r *Router) run(ctx context.Context, req chat.Request, cmd *Command, args *Args) {
	if err := cmd.Handler(ctx, req, args); err != nil {
		r.fail(ctx, req, cmd.Name, err)
	}
}

// fail renders a domain error as a private reply. Internal failures are
// logged and hidden.
func (r *Router) fail(ctx context.Context, req chat.Request, name string, err error) {
	if !errors.GetCode(err).Player() {
		slog.Error("Command failed", "command", name, "user_id", req.AuthorID(), "error", err)
	} else {
		slog.Debug("Command rejected", "command", name, "user_id", req.AuthorID(), "error", err)
	}
	r.reply(ctx, req, chat.Private("❌ "+errors.PlayerMessage(err)))
}

func (r *Router) reply(ctx context.Context, req chat.Request, resp *chat.Response) {
	if err := req.Respond(ctx, resp); err != nil {
		slog.Debug("Reply failed", "channel_id", req.ChannelID(), "error", err)
	}
}

// respond is the handler-side reply. Delivery failures are not command
// failures.
func (r *Router) respond(ctx context.Context, req chat.Request, resp *chat.Response) error {
	r.reply(ctx, req, resp)
	return nil
}

// guild rejects commands sent outside a guild
func guild(req chat.Request, what string) error {
	if req.GuildID() == "" {
		return errors.InvalidStatef("%s only work in servers.", what)
	}
	return nil
}
