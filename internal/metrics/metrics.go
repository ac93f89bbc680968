package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationsTotal счетчик вызовов калькуляторов.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculations_total",
			Help: "Общее количество вызовов калькуляторов",
		},
		[]string{"calculator", "status"},
	)

	// GoalEvaluationsTotal счетчик оценок целей накопления.
	GoalEvaluationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "goal_evaluations_total",
			Help: "Количество оценок статуса целей накопления",
		},
	)

	// InputCacheHits счетчик обращений к кэшу входных параметров.
	InputCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "input_cache_requests_total",
			Help: "Обращения к кэшу сохраненных параметров",
		},
		[]string{"result"},
	)
)

// ObserveCalculation фиксирует вызов калькулятора с итоговым статусом.
func ObserveCalculation(calculator, status string) {
	CalculationsTotal.WithLabelValues(calculator, status).Inc()
}

// ObserveCacheLookup фиксирует попадание или промах кэша.
func ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	InputCacheHits.WithLabelValues(result).Inc()
}
