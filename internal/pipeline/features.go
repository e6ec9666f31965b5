package pipeline

// Канонический порядок главных эффектов. Зафиксирован при обучении модели:
// сначала четыре лог-преобразованные числовые переменные, затем две
// категориальные. Менять порядок нельзя - коэффициенты модели и параметры
// скейлера выровнены именно по нему.
var coreFeatureNames = [6]string{
	"log_MLR",
	"log_CRP",
	"log_triglycerides",
	"log_NLR",
	"IJVC",
	"sex",
}

// FeatureDim полная размерность вектора фич: 6 главных эффектов + C(6,2)=15 взаимодействий
const FeatureDim = 21

// featureNames полный список из 21 имени в каноническом порядке
var featureNames = buildFeatureNames()

// buildFeatureNames строит полный порядок фич: главные эффекты, затем все
// парные произведения в порядке вложенного перебора (i < j)
func buildFeatureNames() []string {
	names := make([]string, 0, FeatureDim)
	names = append(names, coreFeatureNames[:]...)

	for i := 0; i < len(coreFeatureNames); i++ {
		for j := i + 1; j < len(coreFeatureNames); j++ {
			names = append(names, coreFeatureNames[i]+"*"+coreFeatureNames[j])
		}
	}

	return names
}

// FeatureNames возвращает копию канонического порядка из 21 имени фичи
func FeatureNames() []string {
	names := make([]string, FeatureDim)
	copy(names, featureNames)
	return names
}

// CoreFeatures шесть главных эффектов после препроцессинга
type CoreFeatures struct {
	LogMLR           float64
	LogCRP           float64
	LogTriglycerides float64
	LogNLR           float64
	IJVC             float64
	Sex              float64
}

// values возвращает главные эффекты в каноническом порядке
func (cf CoreFeatures) values() [6]float64 {
	return [6]float64{cf.LogMLR, cf.LogCRP, cf.LogTriglycerides, cf.LogNLR, cf.IJVC, cf.Sex}
}

// FeatureVector именованный вектор фич в каноническом порядке.
// Создается заново на каждый запрос и между запросами не разделяется.
type FeatureVector struct {
	Names  []string  `json:"names"`
	Values []float64 `json:"values"`
}

// Expand разворачивает 6 главных эффектов в полный вектор из 21 фичи:
// сначала сами эффекты, затем их парные произведения. Чистая функция,
// результат всегда ровно FeatureDim значений.
func Expand(cf CoreFeatures) FeatureVector {
	base := cf.values()

	values := make([]float64, 0, FeatureDim)
	values = append(values, base[:]...)

	for i := 0; i < len(base); i++ {
		for j := i + 1; j < len(base); j++ {
			values = append(values, base[i]*base[j])
		}
	}

	return FeatureVector{
		Names:  FeatureNames(),
		Values: values,
	}
}
