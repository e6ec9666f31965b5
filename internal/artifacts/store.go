package artifacts

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Имена файлов артефактов в каталоге моделей.
// Это JSON-выгрузки артефактов обучения; data_stats.json опционален.
const (
	modelFile  = "lr_model.json"
	scalerFile = "scaler.json"
	winsorFile = "winsor_limits.json"
	statsFile  = "data_stats.json"
)

// ConfigError фатальная ошибка конфигурации: обязательный артефакт
// отсутствует или не парсится. Сервис с такой ошибкой не стартует.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ошибка загрузки артефактов (%s): %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Store хранит загруженные артефакты модели.
// Загружается один раз при старте, после этого только читается,
// поэтому безопасно разделяется между параллельными запросами.
type Store struct {
	Model  *ModelParams
	Scaler *ScalerParams
	Winsor WinsorLimits
	Stats  DescriptiveStats
}

// Load загружает артефакты из первого существующего каталога-кандидата.
// Отсутствие всех кандидатов или обязательного файла - ConfigError.
// Отсутствие data_stats.json не фатально: вернется Store без статистики.
func Load(dirs []string) (*Store, error) {
	basePath := ""
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			basePath = dir
			break
		}
	}

	if basePath == "" {
		return nil, &ConfigError{
			Path: fmt.Sprintf("%v", dirs),
			Err:  fmt.Errorf("каталог моделей не найден"),
		}
	}

	store := &Store{}

	if err := loadJSON(filepath.Join(basePath, modelFile), &store.Model); err != nil {
		return nil, &ConfigError{Path: filepath.Join(basePath, modelFile), Err: err}
	}

	if err := loadJSON(filepath.Join(basePath, scalerFile), &store.Scaler); err != nil {
		return nil, &ConfigError{Path: filepath.Join(basePath, scalerFile), Err: err}
	}

	if err := loadJSON(filepath.Join(basePath, winsorFile), &store.Winsor); err != nil {
		return nil, &ConfigError{Path: filepath.Join(basePath, winsorFile), Err: err}
	}

	if err := store.checkShapes(); err != nil {
		return nil, &ConfigError{Path: basePath, Err: err}
	}

	// Статистика опциональна - при отсутствии работаем на захардкоженных дефолтах
	if err := loadJSON(filepath.Join(basePath, statsFile), &store.Stats); err != nil {
		slog.Warn("Статистика выборки недоступна, используются дефолты", "path", basePath, "error", err)
		store.Stats = nil
	}

	slog.Info("Артефакты модели загружены", "path", basePath, "features", len(store.Model.FeatureNames))

	return store, nil
}

// Validate сверяет порядок имен фич модели и скейлера с ожидаемым
// каноническим порядком пайплайна. Любое расхождение - ConfigError:
// молчаливая рассинхронизация дала бы бессмысленные вероятности.
func (s *Store) Validate(expected []string) error {
	if err := checkOrder("model", s.Model.FeatureNames, expected); err != nil {
		return &ConfigError{Path: modelFile, Err: err}
	}
	if err := checkOrder("scaler", s.Scaler.FeatureNames, expected); err != nil {
		return &ConfigError{Path: scalerFile, Err: err}
	}
	return nil
}

// checkShapes проверяет внутреннюю согласованность массивов артефактов
func (s *Store) checkShapes() error {
	if len(s.Model.Coefficients) != len(s.Model.FeatureNames) {
		return fmt.Errorf("модель: %d коэффициентов при %d именах фич",
			len(s.Model.Coefficients), len(s.Model.FeatureNames))
	}
	if len(s.Scaler.Mean) != len(s.Scaler.FeatureNames) || len(s.Scaler.Scale) != len(s.Scaler.FeatureNames) {
		return fmt.Errorf("скейлер: mean=%d, scale=%d при %d именах фич",
			len(s.Scaler.Mean), len(s.Scaler.Scale), len(s.Scaler.FeatureNames))
	}
	for i, scale := range s.Scaler.Scale {
		if scale == 0 {
			return fmt.Errorf("скейлер: нулевой scale у фичи %q", s.Scaler.FeatureNames[i])
		}
	}
	return nil
}

func checkOrder(what string, got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%s: %d фич вместо ожидаемых %d", what, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%s: фича %d = %q, ожидалась %q", what, i, got[i], want[i])
		}
	}
	return nil
}

// loadJSON читает и парсит JSON-файл артефакта
func loadJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("ошибка парсинга %s: %w", filepath.Base(path), err)
	}
	return nil
}
