package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRegionName используется, если администратор не задал имя
const DefaultRegionName = "Unnamed Region"

// MaxSafetyScore - оценка региона без инцидентов
const MaxSafetyScore = 10.0

type Region struct {
	ID                uuid.UUID            `json:"id"`
	Name              string               `json:"name"`
	Coordinates       Geometry             `json:"coordinates"`
	ClusterFactor     float64              `json:"cluster_factor"`
	SafetyScore       float64              `json:"safety_score"`
	RiskSum           float64              `json:"risk_sum"`
	IncidentCount     int                  `json:"incident_count"`
	AverageSeverity   Severity             `json:"average_severity,omitempty"`
	HighSeverityCount int                  `json:"high_severity_count"`
	IncidentTypes     map[IncidentType]int `json:"incident_types"`
	ScoredAt          *time.Time           `json:"scored_at,omitempty"`
	Comments          []Comment            `json:"comments,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// RegionScore - результат агрегации, записываемый в регион целиком
type RegionScore struct {
	SafetyScore       float64
	RiskSum           float64
	IncidentCount     int
	AverageSeverity   Severity
	HighSeverityCount int
	IncidentTypes     map[IncidentType]int
	EvaluatedAt       time.Time
}

// Apply переносит результат агрегации в модель региона
func (r *Region) Apply(score RegionScore) {
	r.SafetyScore = score.SafetyScore
	r.RiskSum = score.RiskSum
	r.IncidentCount = score.IncidentCount
	r.AverageSeverity = score.AverageSeverity
	r.HighSeverityCount = score.HighSeverityCount
	r.IncidentTypes = score.IncidentTypes
	evaluatedAt := score.EvaluatedAt
	r.ScoredAt = &evaluatedAt
}
