package pipeline

import (
	"sort"

	"github.com/rqsm520/AVF-Guardian/internal/artifacts"
	"github.com/rqsm520/AVF-Guardian/pkg/utils"
)

// Contribution вклад одной фичи в линейный предиктор.
// Положительный вклад повышает предсказанный риск, отрицательный - защитный.
// Это соглашение о знаке - контракт со слоем отображения.
type Contribution struct {
	Feature string  `json:"feature"`
	Label   string  `json:"label"`
	Impact  float64 `json:"impact"`
}

// ReadableLabels отображаемые названия факторов риска.
// Для остальных фич используется сырое имя.
var ReadableLabels = map[string]string{
	"log_MLR":                   "MLR (Inflammation)",
	"log_CRP":                   "CRP (Inflammation)",
	"log_triglycerides":         "Triglycerides (Lipids)",
	"log_NLR":                   "NLR (Inflammation)",
	"IJVC":                      "Hx of IJV Cannulation",
	"sex":                       "Sex",
	"log_MLR*log_CRP":           "Interaction: MLR x CRP",
	"log_MLR*log_triglycerides": "Interaction: MLR x TG",
	"log_MLR*log_NLR":           "Interaction: MLR x NLR",
}

// Explain раскладывает линейный предиктор на вклады фич: coef * scaled.
// Сумма вкладов плюс intercept равна z. Список отсортирован по убыванию
// модуля вклада; при равенстве сохраняется канонический порядок фич.
func Explain(scaled []float64, model *artifacts.ModelParams, labels map[string]string) ([]Contribution, error) {
	if len(scaled) != len(model.Coefficients) {
		return nil, &FeatureShapeError{Stage: "explainer", Got: len(scaled), Want: len(model.Coefficients)}
	}

	contributions := make([]Contribution, len(scaled))
	for i, v := range scaled {
		name := model.FeatureNames[i]
		label, ok := labels[name]
		if !ok {
			label = name
		}
		contributions[i] = Contribution{
			Feature: name,
			Label:   label,
			Impact:  model.Coefficients[i] * v,
		}
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return utils.Abs(contributions[i].Impact) > utils.Abs(contributions[j].Impact)
	})

	return contributions, nil
}
