package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rqsm520/AVF-Guardian/internal/artifacts"
	"github.com/rqsm520/AVF-Guardian/internal/models"
	"github.com/rqsm520/AVF-Guardian/internal/pipeline"
)

// Захардкоженные дефолты формы ввода на случай отсутствия data_stats.json
const (
	defaultMLR = 0.4
	defaultCRP = 5.0
	defaultTG  = 1.5
	defaultNLR = 3.0
)

// Имена переменных для поиска границ винзоризации
const (
	varMLR = "MLR"
	varCRP = "CRP"
	varTG  = "triglycerides"
	varNLR = "NLR"
)

// PredictService выполняет пайплайн оценки риска дисфункции АВФ:
// препроцессинг -> развертка фич -> стандартизация -> скоринг -> вклады.
// Артефакты только читаются, все промежуточные векторы создаются на запрос.
type PredictService struct {
	store       *artifacts.Store
	dataService *DataService
	labels      map[string]string
}

// NewPredictService создает сервис оценки риска и сверяет выравнивание
// артефактов с каноническим порядком фич. dataService может быть nil -
// тогда недоступна только оценка по сохраненным анализам.
func NewPredictService(store *artifacts.Store, dataService *DataService) (*PredictService, error) {
	if err := store.Validate(pipeline.FeatureNames()); err != nil {
		return nil, err
	}

	return &PredictService{
		store:       store,
		dataService: dataService,
		labels:      pipeline.ReadableLabels,
	}, nil
}

// Predict оценивает вероятность дисфункции АВФ по шести переменным
func (ps *PredictService) Predict(req *models.PredictRequest) (*models.PredictionResponse, error) {
	requestID := uuid.New().String()

	scaled, err := ps.scaledVector(req)
	if err != nil {
		return nil, err
	}

	probability, err := pipeline.Score(scaled, ps.store.Model)
	if err != nil {
		return nil, err
	}

	riskFactors, err := pipeline.Explain(scaled, ps.store.Model, ps.labels)
	if err != nil {
		return nil, err
	}

	slog.Info("Оценка риска выполнена",
		"request_id", requestID,
		"probability", probability,
	)

	return &models.PredictionResponse{
		RequestID:   requestID,
		Probability: probability,
		Thresholds:  models.RiskThresholds{Moderate: 0.2, High: 0.5},
		RiskFactors: riskFactors,
		ComputedAt:  time.Now().UTC(),
	}, nil
}

// PredictByCard оценивает риск по последней полной панели анализов карты
func (ps *PredictService) PredictByCard(cardID string) (*models.CardPredictionResponse, error) {
	if ps.dataService == nil {
		return nil, fmt.Errorf("база анализов не подключена")
	}

	lab, err := ps.dataService.GetLatestLabs(cardID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения анализов: %w", err)
	}

	prediction, err := ps.Predict(lab.ToPredictRequest())
	if err != nil {
		return nil, err
	}

	return &models.CardPredictionResponse{
		CardID:     cardID,
		LabTakenAt: lab.TakenAt,
		Prediction: *prediction,
	}, nil
}

// ExpandFeatures возвращает развернутый вектор фич без стандартизации
func (ps *PredictService) ExpandFeatures(req *models.PredictRequest) (*models.FeaturesResponse, error) {
	core, err := ps.preprocess(req)
	if err != nil {
		return nil, err
	}

	return &models.FeaturesResponse{
		RequestID: uuid.New().String(),
		Features:  pipeline.Expand(core),
	}, nil
}

// Defaults значения по умолчанию для формы ввода: медианы выборки
// либо захардкоженные дефолты
func (ps *PredictService) Defaults() models.DefaultsResponse {
	return models.DefaultsResponse{
		MLR:           ps.store.Stats.Median(varMLR, defaultMLR),
		CRP:           ps.store.Stats.Median(varCRP, defaultCRP),
		Triglycerides: ps.store.Stats.Median(varTG, defaultTG),
		NLR:           ps.store.Stats.Median(varNLR, defaultNLR),
	}
}

// scaledVector выполняет шаги пайплайна до стандартизованного вектора
func (ps *PredictService) scaledVector(req *models.PredictRequest) ([]float64, error) {
	core, err := ps.preprocess(req)
	if err != nil {
		return nil, err
	}

	return pipeline.Standardize(pipeline.Expand(core), ps.store.Scaler)
}

// preprocess винзоризирует и лог-преобразует числовые переменные;
// категориальные проходят без изменений
func (ps *PredictService) preprocess(req *models.PredictRequest) (pipeline.CoreFeatures, error) {
	var core pipeline.CoreFeatures
	var err error

	if core.LogMLR, err = pipeline.ClampAndTransform(req.MLR, varMLR, ps.store.Winsor); err != nil {
		return core, err
	}
	if core.LogCRP, err = pipeline.ClampAndTransform(req.CRP, varCRP, ps.store.Winsor); err != nil {
		return core, err
	}
	if core.LogTriglycerides, err = pipeline.ClampAndTransform(req.Triglycerides, varTG, ps.store.Winsor); err != nil {
		return core, err
	}
	if core.LogNLR, err = pipeline.ClampAndTransform(req.NLR, varNLR, ps.store.Winsor); err != nil {
		return core, err
	}

	core.IJVC = float64(req.IJVC)
	core.Sex = float64(req.Sex)

	return core, nil
}
