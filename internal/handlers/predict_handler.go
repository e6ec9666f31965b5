package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rqsm520/AVF-Guardian/internal/models"
	"github.com/rqsm520/AVF-Guardian/internal/pipeline"
	"github.com/rqsm520/AVF-Guardian/internal/services"
)

// PredictHandler обрабатывает HTTP запросы оценки риска
type PredictHandler struct {
	predictService *services.PredictService
	dataService    *services.DataService
}

// NewPredictHandler создает новый обработчик запросов оценки риска
func NewPredictHandler(predictService *services.PredictService, dataService *services.DataService) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
		dataService:    dataService,
	}
}

// Predict оценивает вероятность дисфункции АВФ
// @Summary Оценка риска дисфункции АВФ
// @Description Вычисляет вероятность дисфункции артериовенозной фистулы по 6 клиническим переменным и раскладывает результат на вклады факторов
// @Tags avf
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Клинические переменные пациента"
// @Success 200 {object} models.PredictionResponse "Результат оценки"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /avf/predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	response, err := h.predictService.Predict(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// PredictByCard оценивает риск по сохраненным анализам карты
// @Summary Оценка риска по медицинской карте
// @Description Берет последнюю полную панель анализов карты из базы и выполняет оценку риска
// @Tags avf
// @Accept json
// @Produce json
// @Param request body models.CardPredictRequest true "Идентификатор карты"
// @Success 200 {object} models.CardPredictionResponse "Результат оценки"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /avf/predict/card [post]
func (h *PredictHandler) PredictByCard(c *gin.Context) {
	var req models.CardPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	response, err := h.predictService.PredictByCard(req.CardID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CalculateFeatures возвращает развернутый вектор фич без стандартизации
// @Summary Развертка вектора фич
// @Description Возвращает 21 фичу (6 главных эффектов и 15 взаимодействий) в каноническом порядке, до стандартизации
// @Tags avf
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Клинические переменные пациента"
// @Success 200 {object} models.FeaturesResponse "Вектор фич"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /avf/features [post]
func (h *PredictHandler) CalculateFeatures(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	features, err := h.predictService.ExpandFeatures(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, features)
}

// Defaults возвращает значения формы ввода по умолчанию
// @Summary Значения по умолчанию
// @Description Возвращает медианы обучающей выборки (или захардкоженные дефолты) для предзаполнения формы
// @Tags avf
// @Produce json
// @Success 200 {object} models.DefaultsResponse "Значения по умолчанию"
// @Router /avf/defaults [get]
func (h *PredictHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, h.predictService.Defaults())
}

// CreateLab сохраняет панель анализов пациента
// @Summary Сохранение панели анализов
// @Description Сохраняет панель анализов пациента; незаполненные показатели допускаются, но такая панель не участвует в оценке риска
// @Tags labs
// @Accept json
// @Produce json
// @Param request body models.CreateLabRequest true "Панель анализов"
// @Success 201 {object} models.LabResult "Сохраненная панель"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /avf/labs [post]
func (h *PredictHandler) CreateLab(c *gin.Context) {
	if h.dataService == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: "база анализов не подключена",
		})
		return
	}

	var req models.CreateLabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	lab, err := h.dataService.CreateLabResult(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "lab storage error",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, lab)
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса
// @Description Возвращает статус работы сервиса оценки риска
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис работает"
// @Router /avf/health [get]
func (h *PredictHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// writeError транслирует ошибки пайплайна в HTTP статусы.
// Ошибки области определения - проблема входных данных (400); ошибки
// размерности - рассинхронизация артефактов, логируются громко (500).
func (h *PredictHandler) writeError(c *gin.Context, err error) {
	var domainErr *pipeline.NumericDomainError
	if errors.As(err, &domainErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "numeric domain error",
			Details: err.Error(),
		})
		return
	}

	var shapeErr *pipeline.FeatureShapeError
	if errors.As(err, &shapeErr) {
		slog.Error("Рассинхронизация артефактов и пайплайна",
			"stage", shapeErr.Stage,
			"got", shapeErr.Got,
			"want", shapeErr.Want,
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "feature shape error",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "prediction error",
		Details: err.Error(),
	})
}
