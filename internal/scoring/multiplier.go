package scoring

import (
	"math"

	"github.com/shenikar/safety_scoring_system/internal/models"
)

// EffectiveMultiplier вычисляет множитель инцидента по отметкам валидации и аудитам.
// Результат ограничен сверху MultiplierCeiling.
func (e *Engine) EffectiveMultiplier(adminValidated, ngoValidated bool, audits []models.Audit) (float64, error) {
	multiplier := 1.0
	if adminValidated {
		multiplier *= e.cfg.AdminValidationFactor
	}
	if ngoValidated {
		multiplier *= e.cfg.NGOValidationFactor
	}

	if len(audits) > 0 {
		maxSEnv, err := worstSEnv(audits)
		if err != nil {
			return 0, err
		}
		multiplier *= 1 + maxSEnv
	}

	if math.IsNaN(multiplier) || multiplier < 1 {
		return 0, &models.InconsistentStateError{Quantity: "effective_multiplier", Value: multiplier}
	}
	return math.Min(multiplier, e.cfg.MultiplierCeiling), nil
}

func worstSEnv(audits []models.Audit) (float64, error) {
	maxSEnv := 0.0
	for _, a := range audits {
		if math.IsNaN(a.SEnv) || a.SEnv < 0 || a.SEnv > 1 {
			return 0, &models.InvalidInputError{Field: "s_env", Reason: "must be within [0, 1]"}
		}
		maxSEnv = math.Max(maxSEnv, a.SEnv)
	}
	return maxSEnv, nil
}
