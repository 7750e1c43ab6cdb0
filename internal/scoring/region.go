package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shopspring/decimal"
)

// IncidentScore - вклад одного инцидента, посчитанный при агрегации региона
type IncidentScore struct {
	IncidentID uuid.UUID
	Derived    models.DerivedScore
	// Counted ложно для решенных и отклоненных инцидентов
	Counted bool
}

// RegionAggregate - результат пересчета региона
type RegionAggregate struct {
	Score     models.RegionScore
	Incidents []IncidentScore
}

// SafetyScore переводит вклады инцидентов в оценку безопасности [0, 10].
// Вклады суммируются в отсортированном порядке, поэтому результат не зависит от порядка входа.
func (e *Engine) SafetyScore(contributions []float64, clusterFactor float64) (score, riskSum float64, err error) {
	if math.IsNaN(clusterFactor) || clusterFactor < 0 {
		return 0, 0, &models.InvalidInputError{Field: "cluster_factor", Reason: "must be non-negative"}
	}

	sorted := make([]float64, len(contributions))
	copy(sorted, contributions)
	sort.Float64s(sorted)

	sum := 0.0
	for _, c := range sorted {
		if math.IsNaN(c) || c < 0 {
			return 0, 0, &models.InconsistentStateError{Quantity: "contribution_score", Value: c}
		}
		sum += c
	}

	riskSum = clusterFactor * sum
	if riskSum == 0 {
		return models.MaxSafetyScore, 0, nil
	}
	score = models.MaxSafetyScore * math.Exp(-riskSum/e.cfg.SaturationK)
	return clamp(score, 0, models.MaxSafetyScore), riskSum, nil
}

// AggregateRegion пересчитывает регион по полному текущему набору его инцидентов.
// История аудитов берется из inc.Audits.
func (e *Engine) AggregateRegion(incidents []*models.Incident, clusterFactor float64, at time.Time) (RegionAggregate, error) {
	agg := RegionAggregate{
		Score: models.RegionScore{
			IncidentCount: len(incidents),
			IncidentTypes: make(map[models.IncidentType]int),
			EvaluatedAt:   at,
		},
		Incidents: make([]IncidentScore, 0, len(incidents)),
	}

	contributions := make([]float64, 0, len(incidents))
	rankSum := 0
	for _, inc := range incidents {
		derived, err := e.Contribution(inc, inc.Audits, at)
		if err != nil {
			return RegionAggregate{}, err
		}
		counted := inc.Status.CountsTowardRisk()
		if counted {
			contributions = append(contributions, derived.ContributionScore)
		}
		agg.Incidents = append(agg.Incidents, IncidentScore{IncidentID: inc.ID, Derived: derived, Counted: counted})

		rankSum += inc.Severity.Rank()
		if inc.Severity == models.SeverityHigh || inc.Severity == models.SeverityCritical {
			agg.Score.HighSeverityCount++
		}
		agg.Score.IncidentTypes[inc.IncidentType]++
	}

	score, riskSum, err := e.SafetyScore(contributions, clusterFactor)
	if err != nil {
		return RegionAggregate{}, err
	}
	agg.Score.SafetyScore = score
	agg.Score.RiskSum = riskSum
	if len(incidents) > 0 {
		agg.Score.AverageSeverity = averageSeverity(float64(rankSum) / float64(len(incidents)))
	}
	return agg, nil
}

// RoundScore округляет оценку до десятых для отображения
func RoundScore(score float64) float64 {
	return decimal.NewFromFloat(score).Round(1).InexactFloat64()
}

func averageSeverity(meanRank float64) models.Severity {
	switch {
	case meanRank <= 1.5:
		return models.SeverityLow
	case meanRank <= 2.5:
		return models.SeverityMedium
	case meanRank <= 3.5:
		return models.SeverityHigh
	default:
		return models.SeverityCritical
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
