package scoring

import (
	"math"

	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shopspring/decimal"
)

// Веса параметров аудита. В сумме дают 1.0, поэтому s_env всегда в [0, 1].
const (
	WeightLighting           = 0.25
	WeightVisibility         = 0.15
	WeightCrowdActivity      = 0.15
	WeightWalkpath           = 0.15
	WeightTransportAccess    = 0.15
	WeightCCTVPolicePresence = 0.15
)

// Пороги уровней риска
const (
	lowRiskBelow    = 0.3
	mediumRiskBelow = 0.6
)

// AuditParams - оценки аудитора, каждая в [0, 1], где 0 - лучшее состояние.
// nil означает, что параметр не передан.
type AuditParams struct {
	Lighting           *float64
	Visibility         *float64
	CrowdActivity      *float64
	Walkpath           *float64
	TransportAccess    *float64
	CCTVPolicePresence *float64
}

type weightedParam struct {
	name   string
	value  *float64
	weight float64
}

func (p AuditParams) weighted() []weightedParam {
	return []weightedParam{
		{"lighting", p.Lighting, WeightLighting},
		{"visibility", p.Visibility, WeightVisibility},
		{"crowd_activity", p.CrowdActivity, WeightCrowdActivity},
		{"walkpath", p.Walkpath, WeightWalkpath},
		{"transport_access", p.TransportAccess, WeightTransportAccess},
		{"cctv_police_presence", p.CCTVPolicePresence, WeightCCTVPolicePresence},
	}
}

// ComputeSEnv вычисляет взвешенную оценку риска окружающей среды, округленную до сотых
func ComputeSEnv(p AuditParams) (float64, error) {
	sum := 0.0
	for _, param := range p.weighted() {
		if param.value == nil {
			return 0, &models.InvalidInputError{Field: param.name, Reason: "is required"}
		}
		v := *param.value
		if math.IsNaN(v) || v < 0 || v > 1 {
			return 0, &models.InvalidInputError{Field: param.name, Reason: "must be within [0, 1]"}
		}
		sum += v * param.weight
	}
	return decimal.NewFromFloat(sum).Round(2).InexactFloat64(), nil
}

// ClassifyRisk относит s_env к уровню риска для отображения
func ClassifyRisk(sEnv float64) models.RiskLevel {
	switch {
	case sEnv < lowRiskBelow:
		return models.RiskLow
	case sEnv < mediumRiskBelow:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}
