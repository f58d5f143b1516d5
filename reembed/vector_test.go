package reembed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVector(t *testing.T) {
	tests := []struct {
		name     string
		input    []float32
		expected []float32
	}{
		{
			name:     "unit vector remains unchanged",
			input:    []float32{1.0, 0.0, 0.0},
			expected: []float32{1.0, 0.0, 0.0},
		},
		{
			name:     "scale non-unit vector",
			input:    []float32{3.0, 4.0},
			expected: []float32{0.6, 0.8},
		},
		{
			name:     "negative values",
			input:    []float32{-1.0, 1.0},
			expected: []float32{-1.0 / float32(math.Sqrt(2)), 1.0 / float32(math.Sqrt(2))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeVector(tt.input)
			require.Equal(t, len(tt.expected), len(result), "vector length mismatch")

			for i := range result {
				assert.InDelta(t, tt.expected[i], result[i], 1e-6, "element %d", i)
			}

			// Verify magnitude is 1.0
			var magnitude float32
			for _, v := range result {
				magnitude += v * v
			}
			magnitude = float32(math.Sqrt(float64(magnitude)))
			assert.InDelta(t, 1.0, magnitude, 1e-6, "magnitude should be 1.0")
		})
	}
}

func TestNormalizeVector_ZeroVector(t *testing.T) {
	input := []float32{0.0, 0.0, 0.0}
	result := NormalizeVector(input)

	// Zero vector cannot be normalized, comes back as zeros
	require.Len(t, result, 3)
	for i, v := range result {
		assert.Equal(t, float32(0.0), v, "element %d should be 0", i)
	}
}

func TestNormalizeVector_EmptyVector(t *testing.T) {
	input := []float32{}
	result := NormalizeVector(input)
	assert.Empty(t, result, "empty vector should return empty vector")
}

func TestNormalizeVector_DoesNotMutateInput(t *testing.T) {
	input := []float32{3.0, 4.0}
	_ = NormalizeVector(input)
	assert.Equal(t, []float32{3.0, 4.0}, input, "input should be untouched")
}
