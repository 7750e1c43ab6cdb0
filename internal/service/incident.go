package service

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/scoring"
	"github.com/shenikar/safety_scoring_system/pkg/requestcontext"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize  = 20
	maxPageSize      = 100
	maxCommentLength = 2000
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) error
	GetAudits(ctx context.Context, incidentID uuid.UUID) ([]models.Audit, error)
	CreateAudit(ctx context.Context, audit *models.Audit) error
	SetValidation(ctx context.Context, incidentID uuid.UUID, role models.Role, validation models.Validation) error
	SaveIncidentDerived(ctx context.Context, incidentID uuid.UUID, score models.DerivedScore) error
	AddComment(ctx context.Context, incidentID uuid.UUID, comment *models.Comment) error
	ListComments(ctx context.Context, incidentID uuid.UUID) ([]models.Comment, error)
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	AddComment(ctx context.Context, incidentID uuid.UUID, text string) (*models.Comment, error)
	UpdateStatus(ctx context.Context, incidentID uuid.UUID, status models.IncidentStatus) error
}

type incidentService struct {
	repo   IncidentRepository
	scorer ScoringService
	engine *scoring.Engine
	logger *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, scorer ScoringService, engine *scoring.Engine, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:   repo,
		scorer: scorer,
		engine: engine,
		logger: logger,
	}
}

// CreateIncident сохраняет отчет об инциденте и сразу считает его вклад
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "CreateIncident",
		"incident_type": incident.IncidentType,
		"severity":      incident.Severity,
	})
	log.Info("Attempting to create a new incident")

	actor, ok := requestcontext.Actor(ctx)
	if !ok {
		return fmt.Errorf("service: reporter identity is required: %w", models.ErrForbidden)
	}
	if err := validateIncident(incident); err != nil {
		log.WithError(err).Warn("Rejected incident report")
		return fmt.Errorf("service: %w", err)
	}

	incident.ReporterID = actor.ID
	incident.Status = models.StatusPending
	incident.AdminValidation = models.Validation{}
	incident.NGOValidation = models.Validation{}
	incident.CreatedAt = requestcontext.Now(ctx).Truncate(time.Microsecond)
	incident.UpdatedAt = incident.CreatedAt

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	log = log.WithField("incident_id", incident.ID)
	log.Info("Incident created successfully")

	derived, err := s.scorer.RecomputeIncident(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to score new incident")
		return nil
	}
	incident.Derived = derived
	return nil
}

// GetIncident получает инцидент с аудитами, комментариями и оценкой на момент запроса
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident.Audits, err = s.repo.GetAudits(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get audits: %w", err)
	}
	if incident.Comments, err = s.repo.ListComments(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get comments: %w", err)
	}

	// Сохраненная оценка могла устареть из-за затухания, поэтому считаем заново без записи
	derived, err := s.engine.Contribution(incident, incident.Audits, requestcontext.Now(ctx))
	if err != nil {
		log.WithError(err).Warn("Failed to evaluate incident score, returning stored value")
	} else {
		incident.Derived = &derived
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListIncidents возвращает страницу инцидентов с фильтрами
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("service: %w", &models.InvalidInputError{Field: "status", Reason: "is unknown"})
	}
	if filter.IncidentType != "" && !filter.IncidentType.Valid() {
		return nil, fmt.Errorf("service: %w", &models.InvalidInputError{Field: "incident_type", Reason: "is unknown"})
	}
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize)

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// AddComment добавляет комментарий к инциденту
func (s *incidentService) AddComment(ctx context.Context, incidentID uuid.UUID, text string) (*models.Comment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AddComment",
		"incident_id": incidentID,
	})

	comment, err := newComment(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := s.repo.AddComment(ctx, incidentID, comment); err != nil {
		log.WithError(err).Warn("Failed to add comment in repository")
		return nil, fmt.Errorf("service: could not add comment: %w", err)
	}

	log.WithField("comment_id", comment.ID).Info("Comment added successfully")
	return comment, nil
}

// UpdateStatus меняет статус рассмотрения инцидента. Доступно только администратору.
func (s *incidentService) UpdateStatus(ctx context.Context, incidentID uuid.UUID, status models.IncidentStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": incidentID,
		"status":      status,
	})

	actor, ok := requestcontext.Actor(ctx)
	if !ok || actor.Role != models.RoleAdmin {
		log.Warn("Status change attempted by non-admin actor")
		return fmt.Errorf("service: only admin can change incident status: %w", models.ErrForbidden)
	}
	if !status.Valid() {
		return fmt.Errorf("service: %w", &models.InvalidInputError{Field: "status", Reason: "is unknown"})
	}

	if err := s.repo.UpdateStatus(ctx, incidentID, status); err != nil {
		log.WithError(err).Warn("Failed to update status in repository")
		return fmt.Errorf("service: could not update status: %w", err)
	}
	log.Info("Incident status updated successfully")

	// Статус влияет на сумму риска регионов
	if _, err := s.scorer.RecomputeIncident(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to recompute incident after status change")
	}
	return nil
}

func validateIncident(incident *models.Incident) error {
	if !incident.IncidentType.Valid() {
		return &models.InvalidInputError{Field: "incident_type", Reason: "is unknown"}
	}
	if incident.Severity.Rank() == 0 {
		return &models.InvalidInputError{Field: "severity", Reason: "is unknown"}
	}
	switch incident.Coordinates.Type {
	case "Point", "Polygon", "MultiPolygon":
	default:
		return &models.InvalidInputError{Field: "coordinates", Reason: "must be a GeoJSON Point, Polygon or MultiPolygon"}
	}
	if len(incident.Coordinates.Coordinates) == 0 {
		return &models.InvalidInputError{Field: "coordinates", Reason: "is required"}
	}
	return nil
}

// newComment собирает комментарий от имени участника запроса
func newComment(ctx context.Context, text string) (*models.Comment, error) {
	actor, ok := requestcontext.Actor(ctx)
	if !ok {
		return nil, fmt.Errorf("author identity is required: %w", models.ErrForbidden)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &models.InvalidInputError{Field: "text", Reason: "is required"}
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return nil, &models.InvalidInputError{Field: "text", Reason: fmt.Sprintf("must be at most %d characters", maxCommentLength)}
	}
	return &models.Comment{
		AuthorID:  actor.ID,
		Text:      text,
		CreatedAt: requestcontext.Now(ctx).Truncate(time.Microsecond),
	}, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
