package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Канонический порядок, зафиксированный при обучении модели
var wantFeatureOrder = []string{
	"log_MLR",
	"log_CRP",
	"log_triglycerides",
	"log_NLR",
	"IJVC",
	"sex",
	"log_MLR*log_CRP",
	"log_MLR*log_triglycerides",
	"log_MLR*log_NLR",
	"log_MLR*IJVC",
	"log_MLR*sex",
	"log_CRP*log_triglycerides",
	"log_CRP*log_NLR",
	"log_CRP*IJVC",
	"log_CRP*sex",
	"log_triglycerides*log_NLR",
	"log_triglycerides*IJVC",
	"log_triglycerides*sex",
	"log_NLR*IJVC",
	"log_NLR*sex",
	"IJVC*sex",
}

func TestFeatureNamesCanonicalOrder(t *testing.T) {
	assert.Equal(t, wantFeatureOrder, FeatureNames())
}

func TestFeatureNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range FeatureNames() {
		assert.False(t, seen[name], "дубликат имени фичи: %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, FeatureDim)
}

func TestFeatureNamesReturnsCopy(t *testing.T) {
	names := FeatureNames()
	names[0] = "mutated"
	assert.Equal(t, "log_MLR", FeatureNames()[0])
}

func TestExpandDimensionAndOrder(t *testing.T) {
	fv := Expand(CoreFeatures{
		LogMLR:           0.1,
		LogCRP:           0.2,
		LogTriglycerides: 0.3,
		LogNLR:           0.4,
		IJVC:             2,
		Sex:              1,
	})

	require.Len(t, fv.Values, FeatureDim)
	require.Equal(t, wantFeatureOrder, fv.Names)

	// Главные эффекты в первых шести позициях
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4, 2, 1}, fv.Values[:6])

	// Взаимодействия - произведения пар в порядке вложенного перебора
	assert.InDelta(t, 0.1*0.2, fv.Values[6], 1e-15)  // log_MLR*log_CRP
	assert.InDelta(t, 0.1*0.3, fv.Values[7], 1e-15)  // log_MLR*log_triglycerides
	assert.InDelta(t, 0.1*1, fv.Values[10], 1e-15)   // log_MLR*sex
	assert.InDelta(t, 0.2*0.3, fv.Values[11], 1e-15) // log_CRP*log_triglycerides
	assert.InDelta(t, 0.4*1, fv.Values[19], 1e-15)   // log_NLR*sex
	assert.InDelta(t, 2*1, fv.Values[20], 1e-15)     // IJVC*sex
}

func TestExpandDeterministic(t *testing.T) {
	cf := CoreFeatures{LogMLR: 0.33, LogCRP: 1.79, LogTriglycerides: 0.91, LogNLR: 1.38, IJVC: 2, Sex: 1}

	first := Expand(cf)
	second := Expand(cf)

	assert.Equal(t, first.Names, second.Names)
	assert.Equal(t, first.Values, second.Values)
}
