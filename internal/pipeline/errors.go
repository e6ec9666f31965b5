package pipeline

import "fmt"

// NumericDomainError - значение вне области определения преобразования.
// Возникает, если после винзоризации значение всё ещё меньше -1 и log1p
// дал бы NaN. Ошибка поднимается наверх, а не маскируется.
type NumericDomainError struct {
	Variable string
	Value    float64
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("значение %s=%g вне области log1p (требуется >= -1)", e.Variable, e.Value)
}

// FeatureShapeError - несовпадение размерности вектора фич и параметров
// модели или скейлера. Означает рассинхронизацию артефактов и пайплайна,
// запрос завершается ошибкой без усечения или дополнения вектора.
type FeatureShapeError struct {
	Stage string
	Got   int
	Want  int
}

func (e *FeatureShapeError) Error() string {
	return fmt.Sprintf("%s: размерность вектора %d не совпадает с параметрами %d", e.Stage, e.Got, e.Want)
}
