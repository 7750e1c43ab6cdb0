// Package scoring вычисляет вклад инцидентов и оценку безопасности регионов.
// Все функции пакета чистые: они не обращаются к хранилищу и не имеют побочных эффектов.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shenikar/safety_scoring_system/internal/models"
)

// DecayModel - модель затухания вклада инцидента во времени
type DecayModel string

const (
	DecayLinear      DecayModel = "linear"
	DecayExponential DecayModel = "exponential"
)

// Значения по умолчанию
const (
	DefaultAdminValidationFactor = 5.0
	DefaultNGOValidationFactor   = 5.0
	DefaultMultiplierCeiling     = 10.0
	DefaultHalfLifeDays          = 90.0
	DefaultDecayFloor            = 0.1
	DefaultSaturationK           = 4.0
)

// SeverityWeights - начальный вес инцидента для каждого уровня серьезности
type SeverityWeights map[models.Severity]float64

// DefaultSeverityWeights возвращает таблицу весов по умолчанию
func DefaultSeverityWeights() SeverityWeights {
	return SeverityWeights{
		models.SeverityLow:      1.0,
		models.SeverityMedium:   2.0,
		models.SeverityHigh:     3.0,
		models.SeverityCritical: 4.0,
	}
}

// ParseSeverityWeights разбирает строку вида "low=1,medium=2,high=3,critical=4".
// Незаданные уровни берутся из таблицы по умолчанию.
func ParseSeverityWeights(raw string) (SeverityWeights, error) {
	weights := DefaultSeverityWeights()
	if strings.TrimSpace(raw) == "" {
		return weights, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("severity weight %q must look like level=value", pair)
		}
		sev := models.Severity(strings.ToLower(strings.TrimSpace(key)))
		if sev.Rank() == 0 {
			return nil, fmt.Errorf("unknown severity level %q", key)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("severity weight for %s: %w", sev, err)
		}
		weights[sev] = w
	}
	return weights, nil
}

// Config - настраиваемые константы алгоритма
type Config struct {
	SeverityWeights       SeverityWeights
	AdminValidationFactor float64
	NGOValidationFactor   float64
	MultiplierCeiling     float64
	HalfLifeDays          float64
	DecayFloor            float64
	DecayModel            DecayModel
	SaturationK           float64
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() Config {
	return Config{
		SeverityWeights:       DefaultSeverityWeights(),
		AdminValidationFactor: DefaultAdminValidationFactor,
		NGOValidationFactor:   DefaultNGOValidationFactor,
		MultiplierCeiling:     DefaultMultiplierCeiling,
		HalfLifeDays:          DefaultHalfLifeDays,
		DecayFloor:            DefaultDecayFloor,
		DecayModel:            DecayLinear,
		SaturationK:           DefaultSaturationK,
	}
}

// Validate проверяет, что конфигурация сохраняет инварианты алгоритма
func (c Config) Validate() error {
	prev := 0.0
	for _, sev := range models.Severities {
		w, ok := c.SeverityWeights[sev]
		if !ok {
			return fmt.Errorf("severity weight for %s is missing", sev)
		}
		if !isFinite(w) || w <= prev {
			return fmt.Errorf("severity weights must be positive and strictly increasing, got %s=%v", sev, w)
		}
		prev = w
	}
	if !isFinite(c.AdminValidationFactor) || c.AdminValidationFactor < 1 {
		return fmt.Errorf("admin validation factor must be >= 1, got %v", c.AdminValidationFactor)
	}
	if !isFinite(c.NGOValidationFactor) || c.NGOValidationFactor < 1 {
		return fmt.Errorf("ngo validation factor must be >= 1, got %v", c.NGOValidationFactor)
	}
	if !isFinite(c.MultiplierCeiling) || c.MultiplierCeiling < 1 {
		return fmt.Errorf("multiplier ceiling must be >= 1, got %v", c.MultiplierCeiling)
	}
	if !isFinite(c.HalfLifeDays) || c.HalfLifeDays <= 0 {
		return fmt.Errorf("decay half-life must be positive, got %v", c.HalfLifeDays)
	}
	if !isFinite(c.DecayFloor) || c.DecayFloor <= 0 || c.DecayFloor > 1 {
		return fmt.Errorf("decay floor must be within (0, 1], got %v", c.DecayFloor)
	}
	switch c.DecayModel {
	case DecayLinear, DecayExponential:
	default:
		return fmt.Errorf("unknown decay model %q", c.DecayModel)
	}
	if !isFinite(c.SaturationK) || c.SaturationK <= 0 {
		return fmt.Errorf("saturation constant k must be positive, got %v", c.SaturationK)
	}
	return nil
}

// String используется в логах при старте
func (w SeverityWeights) String() string {
	parts := make([]string, 0, len(w))
	for sev, weight := range w {
		parts = append(parts, fmt.Sprintf("%s=%g", sev, weight))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
