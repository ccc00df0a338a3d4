package party

import (
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/orchestrators/boss"
)

// CreateInput defines the request for creating a party
type CreateInput struct {
	GuildID string
	UserID  string
}

// CreateOutput defines the response for a new party
type CreateOutput struct {
	Party entities.Party
}

// JoinInput defines the request for joining a leader's party
type JoinInput struct {
	GuildID string
	UserID  string
	Leader  string
}

// JoinOutput defines the response for joining a party
type JoinOutput struct {
	Party entities.Party
}

// LeaveInput defines the request for leaving the caller's party
type LeaveInput struct {
	GuildID string
	UserID  string
}

// LeaveOutput reports whether the leader disbanded the party and whether
// that ended a raid.
type LeaveOutput struct {
	Disbanded     bool
	RaidDismissed bool
}

// MembersInput defines the request for a party roster. An empty Leader
// means the caller's own party.
type MembersInput struct {
	GuildID string
	UserID  string
	Leader  string
}

// MembersOutput defines the response for a party roster
type MembersOutput struct {
	Party entities.Party
}

// SquadMember is one instance picked for raids
type SquadMember struct {
	InstanceID int
	Name       string
}

// SetSquadInput defines the request for picking raid instances
type SetSquadInput struct {
	GuildID     string
	UserID      string
	InstanceIDs []int
}

// SetSquadOutput defines the response for a squad pick
type SetSquadOutput struct {
	Squad []SquadMember
}

// StartRaidInput defines the request for starting a raid
type StartRaidInput struct {
	GuildID   string
	ChannelID string
	UserID    string
}

// StartRaidOutput defines the response for a started raid
type StartRaidOutput struct {
	Boss  *boss.SpawnOutput
	Party entities.Party
}

// RaidStatusInput defines the request for the guild's raid
type RaidStatusInput struct {
	GuildID string
}

// RaidStatusOutput reports the active raid boss, if any
type RaidStatusOutput struct {
	Active bool
	Boss   *boss.StatusOutput
}
