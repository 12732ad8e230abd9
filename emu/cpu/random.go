package cpu

import (
	"math/rand"
	"time"
)

// Random supplies the uniformly distributed bytes for the RND instruction.
type Random interface {
	Byte() uint8
}

type randomSource struct {
	rnd *rand.Rand
}

// NewRandom returns a Random seeded with seed, a zero seed picks a time based one.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomSource{rnd: rand.New(rand.NewSource(seed))}
}

func (r *randomSource) Byte() uint8 {
	return uint8(r.rnd.Intn(256))
}
