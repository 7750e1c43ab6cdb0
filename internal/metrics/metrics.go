package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "safety"

// Metrics - метрики пересчета оценок. Все методы безопасны для nil-получателя.
type Metrics struct {
	// Длительность пересчета по типу: incident, region
	RecomputeDuration *prometheus.HistogramVec

	// Количество пересчетов по типу и результату
	RecomputeTotal *prometheus.CounterVec

	// Принятые аудиты по роли аудитора и уровню риска
	AuditsSubmitted *prometheus.CounterVec

	// Изменения отметок валидации
	ValidationsSet *prometheus.CounterVec

	// Регионы, поставленные в очередь на пересчет
	RegionsMarked prometheus.Counter

	// Распределение оценок безопасности по пересчетам регионов
	SafetyScores prometheus.Histogram
}

// New регистрирует метрики в reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecomputeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recompute_duration_seconds",
			Help:      "Duration of score recomputation by kind",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"kind"}),

		RecomputeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recompute_total",
			Help:      "Total score recomputations by kind and outcome",
		}, []string{"kind", "outcome"}),

		AuditsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audits_submitted_total",
			Help:      "Total environmental audits by auditor role and risk level",
		}, []string{"role", "risk_level"}),

		ValidationsSet: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_set_total",
			Help:      "Total validation flag changes by role and value",
		}, []string{"role", "validated"}),

		RegionsMarked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "regions_marked_total",
			Help:      "Total regions marked for safety score recomputation",
		}),

		SafetyScores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "region_safety_score",
			Help:      "Distribution of region safety scores produced by recomputation",
			Buckets:   []float64{1, 2, 4, 6, 8, 10},
		}),
	}
}

// ObserveRecompute записывает длительность и результат пересчета
func (m *Metrics) ObserveRecompute(kind string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.RecomputeDuration.WithLabelValues(kind).Observe(d.Seconds())
	m.RecomputeTotal.WithLabelValues(kind, outcome).Inc()
}

// IncrementAudit учитывает принятый аудит
func (m *Metrics) IncrementAudit(role, riskLevel string) {
	if m != nil {
		m.AuditsSubmitted.WithLabelValues(role, riskLevel).Inc()
	}
}

// IncrementValidation учитывает изменение отметки валидации
func (m *Metrics) IncrementValidation(role string, validated bool) {
	if m == nil {
		return
	}
	value := "false"
	if validated {
		value = "true"
	}
	m.ValidationsSet.WithLabelValues(role, value).Inc()
}

// AddMarked учитывает регионы, отправленные в очередь
func (m *Metrics) AddMarked(n int) {
	if m != nil {
		m.RegionsMarked.Add(float64(n))
	}
}

// ObserveSafetyScore добавляет оценку пересчитанного региона в распределение
func (m *Metrics) ObserveSafetyScore(score float64) {
	if m != nil {
		m.SafetyScores.Observe(score)
	}
}
