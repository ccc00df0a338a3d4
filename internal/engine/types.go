package engine

import "github.com/KirkDiggler/theta-arc/internal/entities"

// Combatant is an instance together with its species
type Combatant struct {
	Instance *entities.Instance
	Species  *entities.Species
}

// RollIVsInput contains parameters for rolling IVs
type RollIVsInput struct {
	Species *entities.Species
}

// RollIVsOutput contains the rolled IVs
type RollIVsOutput struct {
	IVs   entities.Stats
	IVAvg float64
}

// RollInstanceInput contains parameters for rolling a new instance
type RollInstanceInput struct {
	Species  *entities.Species
	MinLevel int
	MaxLevel int
}

// RollInstanceOutput contains the rolled instance. ID is left for the account to assign.
type RollInstanceOutput struct {
	Instance entities.Instance
}

// RollOffspringInput names the two parent species
type RollOffspringInput struct {
	ParentA string
	ParentB string
}

// RollOffspringOutput contains the pending offspring
type RollOffspringOutput struct {
	Offspring entities.Offspring
}

// ResolveBossAttackInput contains parameters for one attack on a boss.
// Encounter is read, never modified.
type ResolveBossAttackInput struct {
	Attacker  Combatant
	Tier      *entities.BossTier
	Encounter *entities.Encounter
	UserID    string
	PartySize int
}

// ResolveBossAttackOutput is the outcome the boss service applies.
// Healed is applied before Damage.
type ResolveBossAttackOutput struct {
	Damage  int
	Special bool
	Stacks  int
	Healed  int
	Phase   int
}

// DuelSide identifies a duel participant
type DuelSide string

// Duel sides and verdicts
const (
	SideChallenger DuelSide = "challenger"
	SideDefender   DuelSide = "defender"
	SideDraw       DuelSide = "draw"
)

// DuelRound is one attack in a duel log
type DuelRound struct {
	Round       int
	Attacker    DuelSide
	Damage      int
	Crit        bool
	RemainingHP int
}

// SimulateDuelInput contains the two combatants. Challenger moves first.
type SimulateDuelInput struct {
	Challenger Combatant
	Defender   Combatant
}

// SimulateDuelOutput contains the verdict and the full round log
type SimulateDuelOutput struct {
	Verdict      DuelSide
	Rounds       []DuelRound
	ChallengerHP int
	DefenderHP   int
}

// DistributeRewardsInput contains the tier rewards and the damage ledger
type DistributeRewardsInput struct {
	Rewards      entities.BossRewards
	Contributors map[string]int
}

// DistributeRewardsOutput contains the rolled pot and each contributor's share
type DistributeRewardsOutput struct {
	Pot     entities.Shards
	Rewards map[string]entities.Reward
}
