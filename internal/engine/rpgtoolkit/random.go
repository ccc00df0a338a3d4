package rpgtoolkit

import (
	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// Resolution of continuous rolls built from integer dice
const resolution = 10000

// uniform returns a value in [lo, hi] in resolution-sized steps
func (a *Adapter) uniform(lo, hi float64) (float64, error) {
	roll, err := a.roller.Roll(resolution + 1)
	if err != nil {
		return 0, err
	}
	return lo + float64(roll-1)/float64(resolution)*(hi-lo), nil
}

// chance succeeds with probability p
func (a *Adapter) chance(p float64) (bool, error) {
	if p <= 0 {
		return false, nil
	}
	if p >= 1 {
		return true, nil
	}
	roll, err := a.roller.Roll(resolution)
	if err != nil {
		return false, err
	}
	return roll <= int(p*resolution), nil
}

// between returns an integer in [lo, hi]
func (a *Adapter) between(lo, hi int) (int, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("empty range [%d, %d]", lo, hi)
	}
	if hi == lo {
		return lo, nil
	}
	roll, err := a.roller.Roll(hi - lo + 1)
	if err != nil {
		return 0, err
	}
	return lo + roll - 1, nil
}
