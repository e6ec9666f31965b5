package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rqsm520/AVF-Guardian/config"
	_ "github.com/rqsm520/AVF-Guardian/docs"
	"github.com/rqsm520/AVF-Guardian/internal/artifacts"
	"github.com/rqsm520/AVF-Guardian/internal/database"
	"github.com/rqsm520/AVF-Guardian/internal/handlers"
	"github.com/rqsm520/AVF-Guardian/internal/middleware"
	"github.com/rqsm520/AVF-Guardian/internal/services"
)

// @title AVF Guardian API
// @version 1.0
// @description API оценки риска дисфункции артериовенозной фистулы

// @host localhost:8053
// @BasePath /api/v1

// @tag.name avf
// @tag.description Оценка риска дисфункции АВФ

// @tag.name labs
// @tag.description Панели анализов пациентов

// @tag.name health
// @tag.description Мониторинг состояния сервиса

func main() {
	// Загрузка конфигурации
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel)

	// Загрузка артефактов модели - без них сервис не стартует
	store, err := artifacts.Load(cfg.Models.Dirs)
	if err != nil {
		log.Fatalf("Ошибка загрузки артефактов модели: %v", err)
	}

	// Подключение к БД (опционально: пустой DB_HOST отключает базу анализов)
	var dataService *services.DataService
	if cfg.Database.Host != "" {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("Ошибка подключения к БД: %v", err)
		}
		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("Ошибка миграций: %v", err)
		}
		dataService = services.NewDataService(db)
	} else {
		log.Println("DB_HOST не задан, оценка по сохраненным анализам недоступна")
	}

	// Инициализация сервисов
	predictService, err := services.NewPredictService(store, dataService)
	if err != nil {
		log.Fatalf("Ошибка выравнивания артефактов: %v", err)
	}

	// Инициализация обработчиков
	predictHandler := handlers.NewPredictHandler(predictService, dataService)

	// Настройка роутера
	router := gin.Default()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// API endpoints
	api := router.Group("/api/v1")
	if cfg.Auth.Secret != "" {
		authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.Secret)
		api.Use(authMiddleware.RequireAuth())
	}
	{
		api.POST("/avf/predict", predictHandler.Predict)
		api.POST("/avf/predict/card", predictHandler.PredictByCard)
		api.POST("/avf/features", predictHandler.CalculateFeatures)
		api.POST("/avf/labs", predictHandler.CreateLab)
		api.GET("/avf/defaults", predictHandler.Defaults)
		api.GET("/avf/health", predictHandler.Health)
	}

	log.Printf("Запуск сервиса оценки риска АВФ на порту %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
