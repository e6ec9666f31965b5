package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 0.0, SafeFloat(math.NaN()))
	assert.Equal(t, 0.0, SafeFloat(math.Inf(1)))
	assert.Equal(t, 0.0, SafeFloat(math.Inf(-1)))
	assert.Equal(t, 1.25, SafeFloat(1.25))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 2))
	assert.Equal(t, 2.0, Clamp(7, 0, 2))
	assert.Equal(t, 1.5, Clamp(1.5, 0, 2))
}

func TestDot(t *testing.T) {
	assert.Equal(t, 0.0, Dot(nil, nil))
	assert.Equal(t, 32.0, Dot([]float64{1, 2, 3}, []float64{4, 5, 6}))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3.5, Abs(-3.5))
	assert.Equal(t, 3.5, Abs(3.5))
	assert.Equal(t, 0.0, Abs(0))
}
