package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that returns queued results and then
// falls back to a fixed face. Fallback "max" returns the die size, which
// means no crits, no backlash and top variance in the combat rolls.
type ScriptedRoller struct {
	mu       sync.Mutex
	queue    []int
	fallback func(size int) int
}

// MaxRoller always rolls the highest face
func MaxRoller() *ScriptedRoller {
	return &ScriptedRoller{fallback: func(size int) int { return size }}
}

// MinRoller always rolls 1
func MinRoller() *ScriptedRoller {
	return &ScriptedRoller{fallback: func(int) int { return 1 }}
}

// Then queues results returned before the fallback, clamped to the die size
func (r *ScriptedRoller) Then(results ...int) *ScriptedRoller {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, results...)
	return r
}

// Roll implements dice.Roller
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		return min(max(1, next), size), nil
	}
	return r.fallback(size), nil
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var _ dice.Roller = (*ScriptedRoller)(nil)
