package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// IncidentType - категория инцидента, выбранная автором отчета
type IncidentType string

const (
	IncidentTypeGBV        IncidentType = "gbv"
	IncidentTypeUnsafeArea IncidentType = "unsafe_area"
	IncidentTypeNoLights   IncidentType = "no_lights"
	IncidentTypeOther      IncidentType = "other"
)

// Valid сообщает, входит ли тип в известный набор
func (t IncidentType) Valid() bool {
	switch t {
	case IncidentTypeGBV, IncidentTypeUnsafeArea, IncidentTypeNoLights, IncidentTypeOther:
		return true
	}
	return false
}

// Severity - уровень серьезности инцидента
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities перечисляет уровни серьезности по возрастанию
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Rank возвращает порядковый номер уровня (1..4) или 0 для неизвестного значения
func (s Severity) Rank() int {
	for i, sev := range Severities {
		if sev == s {
			return i + 1
		}
	}
	return 0
}

// IncidentStatus - статус рассмотрения инцидента
type IncidentStatus string

const (
	StatusPending  IncidentStatus = "pending"
	StatusVerified IncidentStatus = "verified"
	StatusResolved IncidentStatus = "resolved"
	StatusInvalid  IncidentStatus = "invalid"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusResolved, StatusInvalid:
		return true
	}
	return false
}

// CountsTowardRisk сообщает, учитывается ли инцидент в риске региона.
// Решенные и отклоненные инциденты остаются в статистике, но не в сумме риска.
func (s IncidentStatus) CountsTowardRisk() bool {
	return s != StatusResolved && s != StatusInvalid
}

// Geometry - геометрия в формате GeoJSON (Point, Polygon, MultiPolygon)
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Validation - отметка о проверке инцидента администратором или НКО
type Validation struct {
	Validated   bool       `json:"validated"`
	ValidatedBy string     `json:"validated_by,omitempty"`
	Note        string     `json:"note,omitempty"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
}

// DerivedScore - вычисляемые поля инцидента, кешируемые в бд
type DerivedScore struct {
	InitialWeight       float64   `json:"initial_weight"`
	TimeDecayFactor     float64   `json:"time_decay_factor"`
	EffectiveMultiplier float64   `json:"effective_multiplier"`
	ContributionScore   float64   `json:"contribution_score"`
	EvaluatedAt         time.Time `json:"evaluated_at"`
}

type Incident struct {
	ID              uuid.UUID      `json:"id"`
	ReporterID      string         `json:"reporter_id"`
	IncidentType    IncidentType   `json:"incident_type"`
	Severity        Severity       `json:"severity"`
	Description     string         `json:"description"`
	Images          []string       `json:"images"`
	Coordinates     Geometry       `json:"coordinates"`
	Status          IncidentStatus `json:"status"`
	AdminValidation Validation     `json:"admin_validation"`
	NGOValidation   Validation     `json:"ngo_validation"`
	Audits          []Audit        `json:"audits,omitempty"`
	Comments        []Comment      `json:"comments,omitempty"`
	Derived         *DerivedScore  `json:"derived,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// IncidentFilter - параметры выборки списка инцидентов
type IncidentFilter struct {
	Status       IncidentStatus
	IncidentType IncidentType
	Page         int
	PageSize     int
}
