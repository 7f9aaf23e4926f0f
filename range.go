package dice

import (
	"math/rand"

	"github.com/louisbranch/dice/internal/random"
)

// RollRange returns a uniform random integer in the inclusive range
// [low, high], seeding a fresh generator for the draw. ErrInvalidRange is
// returned when low > high.
func RollRange(low, high int) (int, error) {
	rng, err := random.NewRand()
	if err != nil {
		return 0, err
	}
	return RollRangeWithRng(rng, low, high)
}

// RollRangeWithRng returns a uniform random integer in the inclusive range
// [low, high], drawn from the provided random source.
func RollRangeWithRng(rng *rand.Rand, low, high int) (int, error) {
	if low > high {
		return 0, ErrInvalidRange
	}
	return low + rng.Intn(high-low+1), nil
}
