package artifacts_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rqsm520/AVF-Guardian/internal/artifacts"
	"github.com/rqsm520/AVF-Guardian/internal/pipeline"
)

func writeJSON(t *testing.T, dir, name string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

// writeArtifacts создает полный набор согласованных артефактов в каталоге
func writeArtifacts(t *testing.T, dir string, withStats bool) {
	t.Helper()

	names := pipeline.FeatureNames()
	coefficients := make([]float64, len(names))
	mean := make([]float64, len(names))
	scale := make([]float64, len(names))
	for i := range names {
		coefficients[i] = 0.1
		scale[i] = 1
	}

	writeJSON(t, dir, "lr_model.json", artifacts.ModelParams{
		FeatureNames: names,
		Coefficients: coefficients,
		Intercept:    -1.5,
	})
	writeJSON(t, dir, "scaler.json", artifacts.ScalerParams{
		FeatureNames: names,
		Mean:         mean,
		Scale:        scale,
	})
	writeJSON(t, dir, "winsor_limits.json", artifacts.WinsorLimits{
		"MLR": {Lower: 0, Upper: 2},
		"CRP": {Lower: 0, Upper: 50},
	})

	if withStats {
		writeJSON(t, dir, "data_stats.json", artifacts.DescriptiveStats{
			"MLR": {"50%": 0.37, "mean": 0.45},
		})
	}
}

func TestLoadFromFirstExistingDir(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, true)

	store, err := artifacts.Load([]string{filepath.Join(dir, "no-such"), dir})
	require.NoError(t, err)

	assert.Len(t, store.Model.Coefficients, pipeline.FeatureDim)
	assert.Equal(t, -1.5, store.Model.Intercept)
	assert.Len(t, store.Scaler.Mean, pipeline.FeatureDim)
	assert.Equal(t, 0.37, store.Stats.Median("MLR", 0.4))
}

func TestLoadNoCandidateDir(t *testing.T) {
	_, err := artifacts.Load([]string{"/no/such/dir", "/also/missing"})
	require.Error(t, err)

	var cfgErr *artifacts.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadMissingRequiredArtifact(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, false)
	require.NoError(t, os.Remove(filepath.Join(dir, "scaler.json")))

	_, err := artifacts.Load([]string{dir})

	var cfgErr *artifacts.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoadUnparseableArtifact(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, false)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lr_model.json"), []byte("{broken"), 0o644))

	_, err := artifacts.Load([]string{dir})

	var cfgErr *artifacts.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoadMissingStatsIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, false)

	store, err := artifacts.Load([]string{dir})
	require.NoError(t, err)

	assert.Nil(t, store.Stats)
	// При отсутствии статистики медиана отдает fallback
	assert.Equal(t, 0.4, store.Stats.Median("MLR", 0.4))
}

func TestLoadRejectsShapeDrift(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, false)

	names := pipeline.FeatureNames()
	writeJSON(t, dir, "lr_model.json", artifacts.ModelParams{
		FeatureNames: names,
		Coefficients: []float64{0.1, 0.2}, // не совпадает с числом имен
		Intercept:    0,
	})

	_, err := artifacts.Load([]string{dir})

	var cfgErr *artifacts.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoadRejectsZeroScale(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, false)

	names := pipeline.FeatureNames()
	scale := make([]float64, len(names))
	for i := range scale {
		scale[i] = 1
	}
	scale[7] = 0
	writeJSON(t, dir, "scaler.json", artifacts.ScalerParams{
		FeatureNames: names,
		Mean:         make([]float64, len(names)),
		Scale:        scale,
	})

	_, err := artifacts.Load([]string{dir})
	require.Error(t, err)
}

func TestValidateAlignment(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, false)

	store, err := artifacts.Load([]string{dir})
	require.NoError(t, err)

	require.NoError(t, store.Validate(pipeline.FeatureNames()))

	// Перестановка двух фич скейлера должна ловиться до первого запроса
	store.Scaler.FeatureNames[0], store.Scaler.FeatureNames[1] = store.Scaler.FeatureNames[1], store.Scaler.FeatureNames[0]
	err = store.Validate(pipeline.FeatureNames())

	var cfgErr *artifacts.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestWinsorLookupCaseInsensitive(t *testing.T) {
	limits := artifacts.WinsorLimits{
		" crp ": {Lower: 0, Upper: 50},
	}

	bounds, ok := limits.Lookup("CRP")
	require.True(t, ok)
	assert.Equal(t, 50.0, bounds.Upper)

	_, ok = limits.Lookup("NLR")
	assert.False(t, ok)
}

func TestMedianFallbacks(t *testing.T) {
	stats := artifacts.DescriptiveStats{
		"CRP": {"mean": 7.2}, // медианы нет
	}

	assert.Equal(t, 5.0, stats.Median("CRP", 5.0))
	assert.Equal(t, 3.0, stats.Median("NLR", 3.0))
}
