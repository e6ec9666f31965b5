package models

// PredictRequest шесть клинических переменных для оценки риска.
// Диапазоны в binding - правдоподобные границы ввода UI; внутри пайплайна
// выбросы дополнительно ограничиваются винзоризацией.
type PredictRequest struct {
	MLR           float64 `json:"mlr" binding:"gte=0,lte=10" example:"0.4"`            // Отношение моноцитов к лимфоцитам
	CRP           float64 `json:"crp" binding:"gte=0,lte=200" example:"5.0"`           // C-реактивный белок, мг/л
	Triglycerides float64 `json:"triglycerides" binding:"gte=0,lte=20" example:"1.5"`  // Триглицериды, ммоль/л
	NLR           float64 `json:"nlr" binding:"gte=0,lte=50" example:"3.0"`            // Отношение нейтрофилов к лимфоцитам
	IJVC          int     `json:"ijvc" binding:"required,oneof=1 2" example:"2"`       // Катетеризация ВЯВ на стороне фистулы: 1=да, 2=нет
	Sex           int     `json:"sex" binding:"required,oneof=1 2" example:"1"`        // Пол: 1=мужской, 2=женский
}

// CardPredictRequest запрос оценки риска по сохраненным анализам карты
type CardPredictRequest struct {
	CardID string `json:"card_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"` // UUID медицинской карты
}

// CreateLabRequest сохранение панели анализов пациента
type CreateLabRequest struct {
	CardID        string   `json:"card_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	MLR           *float64 `json:"mlr" binding:"omitempty,gte=0,lte=10" example:"0.4"`
	CRP           *float64 `json:"crp" binding:"omitempty,gte=0,lte=200" example:"5.0"`
	Triglycerides *float64 `json:"triglycerides" binding:"omitempty,gte=0,lte=20" example:"1.5"`
	NLR           *float64 `json:"nlr" binding:"omitempty,gte=0,lte=50" example:"3.0"`
	IJVC          int      `json:"ijvc" binding:"required,oneof=1 2" example:"2"`
	Sex           int      `json:"sex" binding:"required,oneof=1 2" example:"1"`
}
