package models

import (
	"time"

	"github.com/rqsm520/AVF-Guardian/internal/pipeline"
)

// RiskThresholds справочные пороги категорий риска для слоя отображения.
// Сервис возвращает только вероятность; разбиение на категории - забота UI.
type RiskThresholds struct {
	Moderate float64 `json:"moderate" example:"0.2"`
	High     float64 `json:"high" example:"0.5"`
}

// PredictionResponse результат оценки риска дисфункции АВФ
type PredictionResponse struct {
	RequestID   string                  `json:"request_id" example:"550e8400-e29b-41d4-a716-446655440001"` // UUID запроса
	Probability float64                 `json:"probability" example:"0.34"`                                // Вероятность дисфункции, [0, 1]
	Thresholds  RiskThresholds          `json:"thresholds"`                                                // Справочные пороги категорий
	RiskFactors []pipeline.Contribution `json:"risk_factors"`                                              // Вклады факторов по убыванию модуля
	ComputedAt  time.Time               `json:"computed_at" example:"2023-09-01T10:00:00Z"`                // Время расчета
}

// CardPredictionResponse результат оценки по сохраненным анализам
type CardPredictionResponse struct {
	CardID     string             `json:"card_id" example:"550e8400-e29b-41d4-a716-446655440000"` // UUID медицинской карты
	LabTakenAt time.Time          `json:"lab_taken_at" example:"2023-08-28T08:30:00Z"`            // Дата панели анализов
	Prediction PredictionResponse `json:"prediction"`                                             // Результат оценки
}

// FeaturesResponse развернутый (нестандартизованный) вектор фич.
// Служит для отладки выравнивания артефактов.
type FeaturesResponse struct {
	RequestID string                 `json:"request_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Features  pipeline.FeatureVector `json:"features"`
}

// DefaultsResponse значения по умолчанию для формы ввода:
// медианы обучающей выборки либо захардкоженные дефолты
type DefaultsResponse struct {
	MLR           float64 `json:"mlr" example:"0.4"`
	CRP           float64 `json:"crp" example:"5.0"`
	Triglycerides float64 `json:"triglycerides" example:"1.5"`
	NLR           float64 `json:"nlr" example:"3.0"`
}
