package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollRange_WithinBounds(t *testing.T) {
	tests := []struct {
		name string
		low  int
		high int
	}{
		{name: "single value low", low: 3, high: 3},
		{name: "single value high", low: 4, high: 4},
		{name: "d6 range", low: 1, high: 6},
		{name: "negative bounds", low: -5, high: -1},
		{name: "spanning zero", low: -3, high: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				v, err := RollRange(tt.low, tt.high)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, v, tt.low)
				assert.LessOrEqual(t, v, tt.high)
			}
		})
	}
}

func TestRollRange_Reversed(t *testing.T) {
	_, err := RollRange(5, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = RollRange(12, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRollRangeWithRng(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v, err := RollRangeWithRng(rng, 10, 20)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 20)
	}

	_, err := RollRangeWithRng(rng, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
