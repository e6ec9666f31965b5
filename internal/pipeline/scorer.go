package pipeline

import (
	"math"

	"github.com/rqsm520/AVF-Guardian/internal/artifacts"
	"github.com/rqsm520/AVF-Guardian/pkg/utils"
)

// LinearPredictor вычисляет линейный предиктор z = intercept + Σ coef*x
func LinearPredictor(scaled []float64, model *artifacts.ModelParams) (float64, error) {
	if len(scaled) != len(model.Coefficients) {
		return 0, &FeatureShapeError{Stage: "scorer", Got: len(scaled), Want: len(model.Coefficients)}
	}

	return model.Intercept + utils.Dot(model.Coefficients, scaled), nil
}

// Score применяет логистическую модель к стандартизованному вектору
// и возвращает вероятность дисфункции в [0, 1]
func Score(scaled []float64, model *artifacts.ModelParams) (float64, error) {
	z, err := LinearPredictor(scaled, model)
	if err != nil {
		return 0, err
	}

	return sigmoid(z), nil
}

// sigmoid численно устойчивая логистическая функция.
// Ветвление по знаку z исключает переполнение exp при больших |z|.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
