package scoring

import (
	"math"
	"time"

	"github.com/shenikar/safety_scoring_system/internal/models"
)

const hoursPerDay = 24.0

// InitialWeight возвращает базовый вес инцидента по уровню серьезности
func (e *Engine) InitialWeight(sev models.Severity) (float64, error) {
	if sev == "" {
		return 0, &models.InvalidInputError{Field: "severity", Reason: "is required"}
	}
	w, ok := e.cfg.SeverityWeights[sev]
	if !ok {
		return 0, &models.InvalidInputError{Field: "severity", Reason: "is unknown"}
	}
	return w, nil
}

// TimeDecayFactor вычисляет коэффициент затухания на момент at.
// Коэффициент не опускается ниже DecayFloor: старые отчеты все еще немного учитываются.
func (e *Engine) TimeDecayFactor(createdAt, at time.Time) (float64, error) {
	if createdAt.IsZero() {
		return 0, &models.InvalidInputError{Field: "created_at", Reason: "is required"}
	}
	age := at.Sub(createdAt)
	if age < 0 {
		return 0, &models.InvalidInputError{Field: "created_at", Reason: "is after the evaluation time"}
	}
	ageDays := age.Hours() / hoursPerDay

	var factor float64
	switch e.cfg.DecayModel {
	case DecayExponential:
		factor = math.Pow(0.5, ageDays/e.cfg.HalfLifeDays)
	default:
		factor = 1 - ageDays/e.cfg.HalfLifeDays
	}
	return math.Max(e.cfg.DecayFloor, factor), nil
}

// Contribution вычисляет вклад инцидента в риск региона на момент at.
// audits - история аудитов инцидента; inc.Audits не используется.
func (e *Engine) Contribution(inc *models.Incident, audits []models.Audit, at time.Time) (models.DerivedScore, error) {
	initial, err := e.InitialWeight(inc.Severity)
	if err != nil {
		return models.DerivedScore{}, err
	}
	decay, err := e.TimeDecayFactor(inc.CreatedAt, at)
	if err != nil {
		return models.DerivedScore{}, err
	}
	multiplier, err := e.EffectiveMultiplier(inc.AdminValidation.Validated, inc.NGOValidation.Validated, audits)
	if err != nil {
		return models.DerivedScore{}, err
	}

	contribution := initial * decay * multiplier
	if math.IsNaN(contribution) || math.IsInf(contribution, 0) || contribution < 0 {
		return models.DerivedScore{}, &models.InconsistentStateError{Quantity: "contribution_score", Value: contribution}
	}

	return models.DerivedScore{
		InitialWeight:       initial,
		TimeDecayFactor:     decay,
		EffectiveMultiplier: multiplier,
		ContributionScore:   contribution,
		EvaluatedAt:         at,
	}, nil
}
