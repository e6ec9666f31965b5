package pipeline

import (
	"math"

	"github.com/rqsm520/AVF-Guardian/internal/artifacts"
	"github.com/rqsm520/AVF-Guardian/pkg/utils"
)

// ClampAndTransform винзоризирует значение и применяет log1p.
// Границы ищутся по имени переменной без учета регистра; если границ нет,
// значение не ограничивается и преобразуется как есть. Значение меньше -1
// дает NumericDomainError вместо тихого NaN.
func ClampAndTransform(value float64, variable string, limits artifacts.WinsorLimits) (float64, error) {
	if bounds, ok := limits.Lookup(variable); ok {
		value = utils.Clamp(value, bounds.Lower, bounds.Upper)
	}

	if value < -1 {
		return 0, &NumericDomainError{Variable: variable, Value: value}
	}

	return math.Log1p(value), nil
}
