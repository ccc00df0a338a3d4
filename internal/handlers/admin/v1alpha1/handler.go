package v1alpha1

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/economy"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/encounter"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/profile"
)

// HandlerConfig holds dependencies for the admin handler
type HandlerConfig struct {
	Profile   profile.Service
	Economy   economy.Service
	Boss      boss.Service
	Encounter encounter.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Profile == nil {
		vb.RequiredField("Profile")
	}
	if c.Economy == nil {
		vb.RequiredField("Economy")
	}
	if c.Boss == nil {
		vb.RequiredField("Boss")
	}
	if c.Encounter == nil {
		vb.RequiredField("Encounter")
	}

	return vb.Build()
}

var _ AdminServiceServer = (*Handler)(nil)

// Handler implements AdminServiceServer
type Handler struct {
	profile   profile.Service
	economy   economy.Service
	boss      boss.Service
	encounter encounter.Service
}

// NewHandler creates a new admin handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		profile:   cfg.Profile,
		economy:   cfg.Economy,
		boss:      cfg.Boss,
		encounter: cfg.Encounter,
	}, nil
}

// GetAccount returns an account summary
func (h *Handler) GetAccount(ctx context.Context, req *GetAccountRequest) (*GetAccountResponse, error) {
	if req.UserID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("user_id is required"))
	}

	out, err := h.profile.Get(ctx, &profile.GetInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &GetAccountResponse{
		UserID:        out.UserID,
		Status:        out.Status,
		GoldShards:    out.Shards.Gold,
		DiamondShards: out.Shards.Diamond,
		EnchantShards: out.Shards.Enchanted,
		NetWorth:      out.NetWorth,
		TotalTACs:     out.Stats.Total,
		UniqueSpecies: out.Stats.Unique,
		BestIV:        out.Stats.BestIV,
		HighestLevel:  out.Stats.HighestLevel,
	}
	if out.Clan != nil {
		resp.Clan = out.Clan.Key
	}
	if out.Top != nil {
		resp.TopInstanceID = out.Top.Instance.ID
		resp.TopSpeciesName = out.Top.Name
	}
	return resp, nil
}

// Leaderboard returns the top of a board
func (h *Handler) Leaderboard(ctx context.Context, req *LeaderboardRequest) (*LeaderboardResponse, error) {
	board := economy.Board(req.Board)
	switch board {
	case economy.BoardShards, economy.BoardGold, economy.BoardNetWorth:
	default:
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("board must be %s, %s or %s",
			economy.BoardShards, economy.BoardGold, economy.BoardNetWorth))
	}

	out, err := h.economy.Leaderboard(ctx, &economy.LeaderboardInput{Board: board})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &LeaderboardResponse{Board: string(out.Board), Entries: make([]LeaderboardEntry, 0, len(out.Ranks))}
	for _, r := range out.Ranks {
		resp.Entries = append(resp.Entries, LeaderboardEntry{Position: r.Position, UserID: r.UserID, Value: r.Value})
	}
	return resp, nil
}

// SummonBoss opens a boss encounter in a guild
func (h *Handler) SummonBoss(ctx context.Context, req *SummonBossRequest) (*BossResponse, error) {
	if req.GuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("guild_id is required"))
	}
	tier := req.Tier
	if tier == "" {
		tier = entities.TierWilter
	}

	out, err := h.boss.Spawn(ctx, &boss.SpawnInput{GuildID: req.GuildID, ChannelID: req.ChannelID, Tier: tier})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	slog.Info("Boss summoned by operator", "guild_id", req.GuildID, "tier", tier)
	return bossResponse(&out.Encounter, nil), nil
}

// SummonSpawn puts a wild TAC in a channel
func (h *Handler) SummonSpawn(ctx context.Context, req *SummonSpawnRequest) (*SummonSpawnResponse, error) {
	if req.ChannelID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("channel_id is required"))
	}

	out, err := h.encounter.Spawn(ctx, &encounter.SpawnInput{
		GuildID:    req.GuildID,
		ChannelID:  req.ChannelID,
		SpeciesKey: req.Species,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if !out.Spawned {
		return nil, errors.ToGRPCError(errors.InvalidState("A TAC is already active in this channel."))
	}

	resp := &SummonSpawnResponse{
		Species:   out.Spawn.Species,
		Name:      out.Spawn.Species,
		ExpiresAt: out.Spawn.ExpiresAt,
	}
	if out.Species != nil {
		resp.Name = out.Species.DisplayName()
	}
	return resp, nil
}

// GetBoss returns a guild's active boss
func (h *Handler) GetBoss(ctx context.Context, req *GetBossRequest) (*BossResponse, error) {
	if req.GuildID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("guild_id is required"))
	}

	out, err := h.boss.Status(ctx, &boss.StatusInput{GuildID: req.GuildID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return bossResponse(&out.Encounter, out.Top), nil
}

func bossResponse(enc *entities.Encounter, top []entities.Contribution) *BossResponse {
	resp := &BossResponse{
		GuildID:   enc.GuildID,
		ChannelID: enc.ChannelID,
		Tier:      enc.Tier,
		Name:      enc.Name,
		HP:        enc.HP,
		MaxHP:     enc.MaxHP,
	}
	for _, c := range top {
		resp.Top = append(resp.Top, Contribution{UserID: c.UserID, Damage: c.Damage})
	}
	return resp
}
