package entities

import (
	"fmt"

	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// Astral tuning
const (
	CycleChars        = 64
	MaxAstralSlots    = 3
	BreedTargetCycles = 16
)

// AstralMode is what a placement does with its cycles
type AstralMode string

// Astral modes
const (
	AstralRest  AstralMode = "rest"
	AstralBreed AstralMode = "breed"
)

// AstralState is the lifecycle of one placement.
//
//	resting                       levels up on every cycle until claimed
//	breeding -> completed         offspring queued once, then waits for claim
type AstralState string

// Astral states
const (
	AstralResting   AstralState = "resting"
	AstralBreeding  AstralState = "breeding"
	AstralCompleted AstralState = "completed"
)

var astralTransitions = map[AstralState][]AstralState{
	AstralBreeding: {AstralCompleted},
}

// BreedProgress is shared by both halves of a breeding pair
type BreedProgress struct {
	PartnerID      int `json:"partner_instance_id"`
	ProgressCycles int `json:"progress_cycles"`
	TargetCycles   int `json:"target_cycles"`
}

// Placement puts one owned instance into the Astral
type Placement struct {
	InstanceID    int            `json:"instance_id"`
	Mode          AstralMode     `json:"mode"`
	State         AstralState    `json:"state"`
	ProgressChars int            `json:"progress_chars"`
	Breed         *BreedProgress `json:"breed,omitempty"`
}

// NewRestPlacement starts an instance resting
func NewRestPlacement(instanceID int) Placement {
	return Placement{
		InstanceID: instanceID,
		Mode:       AstralRest,
		State:      AstralResting,
	}
}

// NewBreedPair returns the two symmetric halves of a breeding pair
func NewBreedPair(a, b int) (Placement, Placement) {
	half := func(self, partner int) Placement {
		return Placement{
			InstanceID: self,
			Mode:       AstralBreed,
			State:      AstralBreeding,
			Breed: &BreedProgress{
				PartnerID:    partner,
				TargetCycles: BreedTargetCycles,
			},
		}
	}
	return half(a, b), half(b, a)
}

// Transition moves the placement to next, rejecting moves the lifecycle does not allow
func (p *Placement) Transition(next AstralState) error {
	for _, allowed := range astralTransitions[p.State] {
		if allowed == next {
			p.State = next
			return nil
		}
	}
	return errors.InvalidStatef("astral placement %d cannot go from %s to %s", p.InstanceID, p.State, next)
}

// Claimable reports whether claim removes this placement
func (p *Placement) Claimable() bool {
	return p.State == AstralResting || p.State == AstralCompleted
}

// Describe renders the placement progress for listings
func (p *Placement) Describe() string {
	if p.Mode == AstralRest || p.Breed == nil {
		return "Resting in Astral"
	}
	if p.State == AstralCompleted {
		return "Breeding complete"
	}
	return fmt.Sprintf("Breeding (%d/%d cycles)", p.Breed.ProgressCycles, p.Breed.TargetCycles)
}
