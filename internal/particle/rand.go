package particle

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// NewRand returns a deterministic random source for the given seed.
// Tests pass a fixed seed; production code passes EntropySeed().
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// EntropySeed reads a seed from the OS entropy pool, falling back to the
// wall clock if the pool is unavailable.
func EntropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]) &^ (1 << 63))
}

// RandomInRange returns a random float64 in the range [min, max].
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// Signed returns a random value in [-magnitude, magnitude].
func Signed(rng *rand.Rand, magnitude float64) float64 {
	return (rng.Float64()*2 - 1) * magnitude
}
