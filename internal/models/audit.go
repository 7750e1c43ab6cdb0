package models

import (
	"time"

	"github.com/google/uuid"
)

// Role - роль участника запроса
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleNGO   Role = "ngo"
)

// CanAudit сообщает, может ли роль проводить аудит и валидацию
func (r Role) CanAudit() bool {
	return r == RoleAdmin || r == RoleNGO
}

// RiskLevel - уровень риска по результату аудита
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Audit - запись об оценке окружающей среды. После создания не изменяется.
type Audit struct {
	ID          uuid.UUID `json:"id"`
	IncidentID  uuid.UUID `json:"incident_id"`
	AuditorID   string    `json:"auditor_id"`
	AuditorRole Role      `json:"auditor_role"`
	SEnv        float64   `json:"s_env"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Comment - комментарий к инциденту или региону
type Comment struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor - участник, от имени которого выполняется запрос
type Actor struct {
	ID   string
	Role Role
}
