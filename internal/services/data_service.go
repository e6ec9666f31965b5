package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/rqsm520/AVF-Guardian/internal/models"
)

// Сколько последних панелей просматривается в поисках полной
const recentLabsLimit = 20

// DataService отвечает за работу с сохраненными анализами
type DataService struct {
	db *gorm.DB
}

// NewDataService создает новый сервис для работы с данными
func NewDataService(db *gorm.DB) *DataService {
	return &DataService{db: db}
}

// GetLatestLabs возвращает самую свежую полную панель анализов карты.
// Панели с незаполненными показателями пропускаются: дорисовывать
// недостающие значения для оценки риска нельзя.
func (ds *DataService) GetLatestLabs(cardID string) (*models.LabResult, error) {
	var labs []models.LabResult
	err := ds.db.Where("card_id = ?", cardID).
		Order("taken_at DESC").
		Limit(recentLabsLimit).
		Find(&labs).Error

	if err != nil {
		return nil, fmt.Errorf("ошибка чтения анализов: %w", err)
	}

	if len(labs) == 0 {
		return nil, fmt.Errorf("анализы для карты %s не найдены", cardID)
	}

	for i := range labs {
		if labs[i].Complete() {
			slog.Info("Найдена полная панель анализов",
				"card_id", cardID,
				"lab_id", labs[i].ID,
				"taken_at", labs[i].TakenAt,
			)
			return &labs[i], nil
		}
		slog.Warn("Панель анализов неполная, пропущена",
			"card_id", cardID,
			"lab_id", labs[i].ID,
		)
	}

	return nil, fmt.Errorf("полная панель анализов для карты %s не найдена", cardID)
}

// CreateLabResult сохраняет панель анализов пациента
func (ds *DataService) CreateLabResult(req *models.CreateLabRequest) (*models.LabResult, error) {
	lab := &models.LabResult{
		CardID:        req.CardID,
		TakenAt:       time.Now().UTC(),
		MLR:           toNullFloat(req.MLR),
		CRP:           toNullFloat(req.CRP),
		Triglycerides: toNullFloat(req.Triglycerides),
		NLR:           toNullFloat(req.NLR),
		Sex:           req.Sex,
		IJVC:          req.IJVC,
	}

	if err := ds.db.Create(lab).Error; err != nil {
		return nil, fmt.Errorf("ошибка сохранения анализов: %w", err)
	}

	return lab, nil
}

// GetLabHistory возвращает все панели анализов карты по убыванию даты
func (ds *DataService) GetLabHistory(cardID string) ([]models.LabResult, error) {
	var labs []models.LabResult
	err := ds.db.Where("card_id = ?", cardID).
		Order("taken_at DESC").
		Find(&labs).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ошибка чтения истории анализов: %w", err)
	}

	return labs, nil
}

// toNullFloat конвертирует опциональное поле запроса в NullFloat64
func toNullFloat(v *float64) models.NullFloat64 {
	var nf models.NullFloat64
	if v != nil {
		nf.Float64, nf.Valid = *v, true
	}
	return nf
}
