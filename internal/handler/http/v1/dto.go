package v1

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GeometryDTO геометрия GeoJSON
// @Description Геометрия GeoJSON (Point, Polygon, MultiPolygon)
type GeometryDTO struct {
	Type        string          `json:"type" validate:"required,oneof=Point Polygon MultiPolygon"`
	Coordinates json.RawMessage `json:"coordinates" validate:"required" swaggertype:"array,number"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	IncidentType string      `json:"incident_type" validate:"required,oneof=gbv unsafe_area no_lights other"`
	Severity     string      `json:"severity" validate:"required,oneof=low medium high critical"`
	Description  string      `json:"description,omitempty" validate:"max=5000"`
	Images       []string    `json:"images,omitempty" validate:"max=10,dive,url"`
	Coordinates  GeometryDTO `json:"coordinates" validate:"required"`
}

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending verified resolved invalid"`
}

// CommentRequest DTO для добавления комментария
// @Description DTO для добавления комментария
type CommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// AuditRequest DTO с параметрами аудита окружающей среды (0 - безопасно, 1 - опасно)
// @Description DTO с параметрами аудита окружающей среды
type AuditRequest struct {
	Lighting           *float64 `json:"lighting" validate:"required,gte=0,lte=1"`
	Visibility         *float64 `json:"visibility" validate:"required,gte=0,lte=1"`
	CrowdActivity      *float64 `json:"crowd_activity" validate:"required,gte=0,lte=1"`
	Walkpath           *float64 `json:"walkpath" validate:"required,gte=0,lte=1"`
	TransportAccess    *float64 `json:"transport_access" validate:"required,gte=0,lte=1"`
	CCTVPolicePresence *float64 `json:"cctv_police_presence" validate:"required,gte=0,lte=1"`
	Notes              string   `json:"notes,omitempty" validate:"max=2000"`
}

// ValidationRequest DTO для отметки валидации
// @Description DTO для отметки валидации
type ValidationRequest struct {
	Validated *bool  `json:"validated" validate:"required"`
	Note      string `json:"note,omitempty" validate:"max=2000"`
}

// CreateRegionRequest DTO для создания региона
// @Description DTO для создания региона
type CreateRegionRequest struct {
	Name          string      `json:"name,omitempty" validate:"max=255"`
	Coordinates   GeometryDTO `json:"coordinates" validate:"required"`
	ClusterFactor *float64    `json:"cluster_factor,omitempty" validate:"omitempty,gte=0"`
}

// LocateRegionsQuery параметры поиска регионов по точке
type LocateRegionsQuery struct {
	Lat *float64 `form:"lat" validate:"required,latitude"`
	Lon *float64 `form:"lon" validate:"required,longitude"`
}

// ValidationResponse DTO отметки валидации
type ValidationResponse struct {
	Validated   bool       `json:"validated"`
	ValidatedBy string     `json:"validated_by,omitempty"`
	Note        string     `json:"note,omitempty"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
}

// ScoreResponse DTO вклада инцидента
// @Description Вклад инцидента в риск региона на момент evaluated_at
type ScoreResponse struct {
	InitialWeight       float64   `json:"initial_weight"`
	TimeDecayFactor     float64   `json:"time_decay_factor"`
	EffectiveMultiplier float64   `json:"effective_multiplier"`
	ContributionScore   float64   `json:"contribution_score"`
	EvaluatedAt         time.Time `json:"evaluated_at"`
}

// AuditResponse DTO аудита
type AuditResponse struct {
	ID          uuid.UUID `json:"id"`
	IncidentID  uuid.UUID `json:"incident_id"`
	AuditorID   string    `json:"auditor_id"`
	AuditorRole string    `json:"auditor_role"`
	SEnv        float64   `json:"s_env"`
	RiskLevel   string    `json:"risk_level"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuditPreviewResponse DTO предварительной оценки аудита
type AuditPreviewResponse struct {
	SEnv      float64 `json:"s_env"`
	RiskLevel string  `json:"risk_level"`
}

// CommentResponse DTO комментария
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID              uuid.UUID          `json:"id"`
	ReporterID      string             `json:"reporter_id"`
	IncidentType    string             `json:"incident_type"`
	Severity        string             `json:"severity"`
	Description     string             `json:"description,omitempty"`
	Images          []string           `json:"images"`
	Coordinates     GeometryDTO        `json:"coordinates"`
	Status          string             `json:"status"`
	AdminValidation ValidationResponse `json:"admin_validation"`
	NGOValidation   ValidationResponse `json:"ngo_validation"`
	Score           *ScoreResponse     `json:"score,omitempty"`
	Audits          []AuditResponse    `json:"audits,omitempty"`
	Comments        []CommentResponse  `json:"comments,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// RegionResponse DTO для ответа с информацией о регионе
// @Description DTO для ответа с информацией о регионе
type RegionResponse struct {
	ID                uuid.UUID         `json:"id"`
	Name              string            `json:"name"`
	Coordinates       GeometryDTO       `json:"coordinates"`
	ClusterFactor     float64           `json:"cluster_factor"`
	SafetyScore       float64           `json:"safety_score"`
	DisplayScore      float64           `json:"display_score"`
	RiskSum           float64           `json:"risk_sum"`
	IncidentCount     int               `json:"incident_count"`
	AverageSeverity   string            `json:"average_severity,omitempty"`
	HighSeverityCount int               `json:"high_severity_count"`
	IncidentTypes     map[string]int    `json:"incident_types"`
	ScoredAt          *time.Time        `json:"scored_at,omitempty"`
	Comments          []CommentResponse `json:"comments,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// RecomputeAllResponse DTO результата постановки регионов в очередь
type RecomputeAllResponse struct {
	Queued int `json:"queued"`
}

// HealthResponse DTO состояния сервиса
type HealthResponse struct {
	Status           string `json:"status"`
	PendingRecompute *int64 `json:"pending_recompute,omitempty"`
}

// ErrorResponse DTO ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}
