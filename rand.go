package discrete

import (
	"math/rand"
	"sync"
)

// NewLockedSource returns a seeded Source that may be shared
// between goroutines.
func NewLockedSource(seed int64) Source {
	return &lockedRand{
		rng: rand.New(rand.NewSource(seed)),
	}
}

type lockedRand struct {
	mx  sync.Mutex
	rng *rand.Rand
}

func (lr *lockedRand) Float64() float64 {
	lr.mx.Lock()
	result := lr.rng.Float64()
	lr.mx.Unlock()
	return result
}
