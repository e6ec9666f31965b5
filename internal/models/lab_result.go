package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NullFloat64 для обработки пустых строк в float64 полях.
// Лабораторные выгрузки нередко содержат пустые значения вместо NULL.
type NullFloat64 struct {
	sql.NullFloat64
}

// Scan реализует интерфейс Scanner для обработки пустых строк
func (nf *NullFloat64) Scan(value interface{}) error {
	if value == nil {
		nf.NullFloat64.Float64, nf.NullFloat64.Valid = 0.0, false
		return nil
	}

	switch v := value.(type) {
	case float64:
		nf.NullFloat64.Float64, nf.NullFloat64.Valid = v, true
		return nil
	case string:
		return nf.scanString(v)
	case []byte:
		return nf.scanString(string(v))
	}

	return fmt.Errorf("не удается конвертировать %T в NullFloat64", value)
}

func (nf *NullFloat64) scanString(s string) error {
	if s == "" {
		nf.NullFloat64.Float64, nf.NullFloat64.Valid = 0.0, false
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		nf.NullFloat64.Float64, nf.NullFloat64.Valid = 0.0, false
		return nil
	}
	nf.NullFloat64.Float64, nf.NullFloat64.Valid = f, true
	return nil
}

// Value реализует интерфейс Valuer
func (nf NullFloat64) Value() (driver.Value, error) {
	if !nf.Valid {
		return nil, nil
	}
	return nf.Float64, nil
}

// MarshalJSON для корректной сериализации в JSON
func (nf NullFloat64) MarshalJSON() ([]byte, error) {
	if !nf.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nf.Float64)
}

// LabResult панель анализов пациента в базе данных.
// Числовые показатели допускают NULL: панель могла быть импортирована
// не полностью, такая панель для оценки риска не используется.
type LabResult struct {
	ID            string      `gorm:"type:uuid;primary_key" json:"id"`
	CardID        string      `gorm:"type:uuid;not null;index" json:"card_id"`
	TakenAt       time.Time   `gorm:"not null;index" json:"taken_at"`
	MLR           NullFloat64 `json:"mlr"`
	CRP           NullFloat64 `json:"crp"`
	Triglycerides NullFloat64 `json:"triglycerides"`
	NLR           NullFloat64 `json:"nlr"`
	Sex           int         `gorm:"not null" json:"sex"`
	IJVC          int         `gorm:"not null" json:"ijvc"`
	CreatedAt     time.Time   `json:"created_at"`
}

// TableName устанавливает имя таблицы
func (LabResult) TableName() string {
	return "lab_results"
}

// BeforeCreate устанавливает ID перед созданием
func (lr *LabResult) BeforeCreate(tx *gorm.DB) error {
	if lr.ID == "" {
		lr.ID = uuid.New().String()
	}
	return nil
}

// Complete проверяет, что все четыре числовых показателя заполнены
func (lr *LabResult) Complete() bool {
	return lr.MLR.Valid && lr.CRP.Valid && lr.Triglycerides.Valid && lr.NLR.Valid
}

// ToPredictRequest собирает запрос оценки риска из панели анализов
func (lr *LabResult) ToPredictRequest() *PredictRequest {
	return &PredictRequest{
		MLR:           lr.MLR.Float64,
		CRP:           lr.CRP.Float64,
		Triglycerides: lr.Triglycerides.Float64,
		NLR:           lr.NLR.Float64,
		IJVC:          lr.IJVC,
		Sex:           lr.Sex,
	}
}
