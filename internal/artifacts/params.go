package artifacts

import "strings"

// ModelParams коэффициенты обученной логистической модели.
// Порядок feature_names совпадает с порядком коэффициентов и задает
// выравнивание с вектором фич. После загрузки не изменяется.
type ModelParams struct {
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// ScalerParams параметры стандартизации: по одному mean/scale на фичу,
// в том же порядке, что и у модели
type ScalerParams struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// WinsorBounds границы винзоризации одной переменной
type WinsorBounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// WinsorLimits границы винзоризации по имени переменной
type WinsorLimits map[string]WinsorBounds

// Lookup ищет границы по имени без учета регистра и пробелов по краям
func (wl WinsorLimits) Lookup(variable string) (WinsorBounds, bool) {
	want := strings.ToLower(strings.TrimSpace(variable))
	for name, bounds := range wl {
		if strings.ToLower(strings.TrimSpace(name)) == want {
			return bounds, true
		}
	}
	return WinsorBounds{}, false
}

// DescriptiveStats описательная статистика обучающей выборки по переменным.
// Ключи второго уровня - как у pandas describe ("50%" - медиана).
type DescriptiveStats map[string]map[string]float64

// Median возвращает медиану переменной или fallback, если статистики нет
func (ds DescriptiveStats) Median(variable string, fallback float64) float64 {
	if stats, ok := ds[variable]; ok {
		if median, ok := stats["50%"]; ok {
			return median
		}
	}
	return fallback
}
