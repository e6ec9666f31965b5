package pipeline

import (
	"github.com/rqsm520/AVF-Guardian/internal/artifacts"
)

// Standardize приводит вектор фич к безразмерному виду: (x - mean) / scale.
// Размерность вектора обязана совпадать с параметрами скейлера, иначе
// возвращается FeatureShapeError - несовпадение означает устаревшие или
// чужие артефакты, и его нельзя маскировать.
func Standardize(fv FeatureVector, params *artifacts.ScalerParams) ([]float64, error) {
	if len(fv.Values) != len(params.Mean) {
		return nil, &FeatureShapeError{Stage: "scaler", Got: len(fv.Values), Want: len(params.Mean)}
	}

	scaled := make([]float64, len(fv.Values))
	for i, v := range fv.Values {
		scaled[i] = (v - params.Mean[i]) / params.Scale[i]
	}

	return scaled, nil
}
