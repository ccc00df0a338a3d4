// Package party manages guild parties and the raids they start.
package party

//go:generate mockgen -destination=mock/mock_service.go -package=partymock github.com/KirkDiggler/theta-arc/internal/orchestrators/party Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
	"github.com/KirkDiggler/theta-arc/internal/repositories/catalog"
	"github.com/KirkDiggler/theta-arc/internal/services/ledger"
)

// Service defines the interface for party operations
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Leave removes the caller. A leader leaving disbands the party and
	// dismisses any raid bound to it.
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)

	Members(ctx context.Context, input *MembersInput) (*MembersOutput, error)

	// SetSquad picks the caller's raid instances
	SetSquad(ctx context.Context, input *SetSquadInput) (*SetSquadOutput, error)

	// StartRaid spawns the raid tier bound to the leader's party
	StartRaid(ctx context.Context, input *StartRaidInput) (*StartRaidOutput, error)

	RaidStatus(ctx context.Context, input *RaidStatusInput) (*RaidStatusOutput, error)
}

// Config holds the dependencies for the party orchestrator
type Config struct {
	Boss    boss.Service
	Ledger  *ledger.Ledger
	Catalog *catalog.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Boss == nil {
		vb.RequiredField("Boss")
	}
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	boss    boss.Service
	ledger  *ledger.Ledger
	catalog *catalog.Catalog

	mu sync.Mutex
	// guild -> leader -> party
	parties map[string]map[string]*entities.Party
}

// NewOrchestrator creates a new party orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		boss:    cfg.Boss,
		ledger:  cfg.Ledger,
		catalog: cfg.Catalog,
		parties: make(map[string]map[string]*entities.Party),
	}, nil
}

func requireGuild(guildID string) error {
	if guildID == "" {
		return errors.InvalidArgument("Parties only work in servers.")
	}
	return nil
}

// partyOf finds the party holding userID. Callers hold mu.
func (o *orchestrator) partyOf(guildID, userID string) *entities.Party {
	for _, p := range o.parties[guildID] {
		if p.Has(userID) {
			return p
		}
	}
	return nil
}

func (o *orchestrator) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGuild(input.GuildID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.partyOf(input.GuildID, input.UserID) != nil {
		return nil, errors.InvalidState("You're already in a party.")
	}
	p := entities.NewParty(input.GuildID, input.UserID)
	if o.parties[input.GuildID] == nil {
		o.parties[input.GuildID] = make(map[string]*entities.Party)
	}
	o.parties[input.GuildID][input.UserID] = p

	slog.Info("Party created", "guild_id", input.GuildID, "leader", input.UserID)
	return &CreateOutput{Party: p.Clone()}, nil
}

func (o *orchestrator) Join(_ context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGuild(input.GuildID); err != nil {
		return nil, err
	}
	if input.Leader == "" {
		return nil, errors.InvalidArgument("Usage: party_join @leader")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.partyOf(input.GuildID, input.UserID) != nil {
		return nil, errors.InvalidState("You're already in a party.")
	}
	p := o.parties[input.GuildID][input.Leader]
	if p == nil {
		return nil, errors.NotFound("That leader has no party.")
	}
	if p.Full() {
		return nil, errors.InvalidState("Party is full.")
	}
	p.Members = append(p.Members, input.UserID)

	slog.Info("Party joined", "guild_id", input.GuildID, "leader", input.Leader, "user_id", input.UserID)
	return &JoinOutput{Party: p.Clone()}, nil
}

func (o *orchestrator) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGuild(input.GuildID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	p := o.partyOf(input.GuildID, input.UserID)
	if p == nil {
		o.mu.Unlock()
		return nil, errors.NotFound("You're not in a party.")
	}
	if p.Leader != input.UserID {
		p.Remove(input.UserID)
		o.mu.Unlock()
		slog.Info("Party left", "guild_id", input.GuildID, "leader", p.Leader, "user_id", input.UserID)
		return &LeaveOutput{}, nil
	}
	delete(o.parties[input.GuildID], p.Leader)
	o.mu.Unlock()

	dismissed, err := o.boss.Dismiss(ctx, &boss.DismissInput{GuildID: input.GuildID, RaidLeader: p.Leader})
	if err != nil {
		return nil, errors.Wrap(err, "failed to end raid")
	}

	slog.Info("Party disbanded", "guild_id", input.GuildID, "leader", p.Leader, "raid_dismissed", dismissed.Dismissed)
	return &LeaveOutput{Disbanded: true, RaidDismissed: dismissed.Dismissed}, nil
}

func (o *orchestrator) Members(_ context.Context, input *MembersInput) (*MembersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGuild(input.GuildID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if input.Leader != "" {
		p := o.parties[input.GuildID][input.Leader]
		if p == nil {
			return nil, errors.NotFound("That leader has no party.")
		}
		return &MembersOutput{Party: p.Clone()}, nil
	}
	p := o.partyOf(input.GuildID, input.UserID)
	if p == nil {
		return nil, errors.NotFound("You're not in a party.")
	}
	return &MembersOutput{Party: p.Clone()}, nil
}

func (o *orchestrator) SetSquad(ctx context.Context, input *SetSquadInput) (*SetSquadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGuild(input.GuildID); err != nil {
		return nil, err
	}

	picks := make([]int, 0, len(input.InstanceIDs))
	for _, id := range input.InstanceIDs {
		if id != 0 {
			picks = append(picks, id)
		}
	}
	if len(picks) == 0 || len(picks) > entities.MaxSquadSize {
		return nil, errors.InvalidArgument("Pick 1 to 3 instance IDs.")
	}

	acct, err := o.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	squad := make([]SquadMember, 0, len(picks))
	for _, id := range picks {
		inst, ok := acct.Instance(id)
		if !ok {
			return nil, errors.NotFoundf("You don't own instance #%d.", id)
		}
		name := inst.Species
		if sp, err := o.catalog.Species(inst.Species); err == nil {
			name = sp.DisplayName()
		}
		squad = append(squad, SquadMember{InstanceID: id, Name: name})
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p := o.partyOf(input.GuildID, input.UserID)
	if p == nil {
		return nil, errors.NotFound("Join or create a party first.")
	}
	p.Squads[input.UserID] = picks

	return &SetSquadOutput{Squad: squad}, nil
}

func (o *orchestrator) StartRaid(ctx context.Context, input *StartRaidInput) (*StartRaidOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGuild(input.GuildID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	p := o.parties[input.GuildID][input.UserID]
	var snapshot entities.Party
	if p != nil {
		snapshot = p.Clone()
	}
	o.mu.Unlock()

	if p == nil {
		return nil, errors.PermissionDenied("Only a party controller (leader) can start a raid.")
	}
	if len(snapshot.Members) < entities.MinRaidMembers {
		return nil, errors.InvalidState("Need at least 2 party members to start a raid.")
	}

	_, err := o.boss.Status(ctx, &boss.StatusInput{GuildID: input.GuildID})
	switch {
	case err == nil:
		return nil, errors.InvalidState("A boss is already active here.")
	case !errors.IsNotFound(err):
		return nil, err
	}

	spawned, err := o.boss.Spawn(ctx, &boss.SpawnInput{
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		Tier:      entities.TierFleebRaid,
		Raid:      &entities.RaidBinding{Leader: snapshot.Leader, Members: snapshot.Members},
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Raid started", "guild_id", input.GuildID, "leader", input.UserID, "members", len(snapshot.Members))
	return &StartRaidOutput{Boss: spawned, Party: snapshot}, nil
}

func (o *orchestrator) RaidStatus(ctx context.Context, input *RaidStatusInput) (*RaidStatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	status, err := o.boss.Status(ctx, &boss.StatusInput{GuildID: input.GuildID})
	if errors.IsNotFound(err) {
		return &RaidStatusOutput{}, nil
	}
	if err != nil {
		return nil, err
	}
	if status.Encounter.Raid == nil && !status.Tier.Has(entities.MechanicRaid) {
		return &RaidStatusOutput{}, nil
	}
	return &RaidStatusOutput{Active: true, Boss: status}, nil
}
