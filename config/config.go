package config

import (
	"os"
	"strings"
)

type Config struct {
	Port     string
	LogLevel string
	Models   ModelsConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ModelsConfig struct {
	// Каталоги-кандидаты с артефактами модели; используется первый существующий
	Dirs []string
}

type DatabaseConfig struct {
	Host     string // пустой Host отключает работу с базой анализов
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	// Секрет подписи токенов; пустой секрет отключает авторизацию
	Secret string
}

func Load() *Config {
	return &Config{
		Port:     getEnv("HTTP_PORT", "8053"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Models: ModelsConfig{
			Dirs: splitList(getEnv("MODEL_DIRS", "models,../models")),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "avf_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Auth: AuthConfig{
			Secret: getEnv("AUTH_SECRET", ""),
		},
	}
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList разбивает список, разделенный запятыми
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
