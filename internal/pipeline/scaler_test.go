package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rqsm520/AVF-Guardian/internal/artifacts"
)

func TestStandardize(t *testing.T) {
	fv := FeatureVector{
		Names:  []string{"a", "b", "c"},
		Values: []float64{1, 4, 9},
	}
	params := &artifacts.ScalerParams{
		FeatureNames: []string{"a", "b", "c"},
		Mean:         []float64{1, 2, 3},
		Scale:        []float64{1, 2, 3},
	}

	scaled, err := Standardize(fv, params)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, scaled)
}

func TestStandardizeShapeMismatch(t *testing.T) {
	fv := FeatureVector{
		Names:  []string{"a", "b"},
		Values: []float64{1, 2},
	}
	params := &artifacts.ScalerParams{
		FeatureNames: []string{"a", "b", "c"},
		Mean:         []float64{0, 0, 0},
		Scale:        []float64{1, 1, 1},
	}

	_, err := Standardize(fv, params)
	require.Error(t, err)

	var shapeErr *FeatureShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 2, shapeErr.Got)
	assert.Equal(t, 3, shapeErr.Want)
}

func TestStandardizeAllocatesFreshSlice(t *testing.T) {
	fv := FeatureVector{Names: []string{"a"}, Values: []float64{5}}
	params := &artifacts.ScalerParams{FeatureNames: []string{"a"}, Mean: []float64{0}, Scale: []float64{1}}

	scaled, err := Standardize(fv, params)
	require.NoError(t, err)

	scaled[0] = 99
	assert.Equal(t, 5.0, fv.Values[0])
}
