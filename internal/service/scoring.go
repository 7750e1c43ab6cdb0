package service

//go:generate mockgen -source=scoring.go -destination=mocks/mock_scoring.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_scoring_system/internal/metrics"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/scoring"
	"github.com/shenikar/safety_scoring_system/pkg/requestcontext"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// auditFetchLimit ограничивает число параллельных запросов аудитов при пересчете региона
const auditFetchLimit = 8

// RegionMarker ставит регионы в очередь на пересчет оценки безопасности
type RegionMarker interface {
	MarkRegions(ctx context.Context, regionIDs []uuid.UUID) error
}

// ScoringService определяет контракт пересчета вкладов инцидентов и оценок регионов
type ScoringService interface {
	PreviewAudit(params scoring.AuditParams) (float64, models.RiskLevel, error)
	SubmitAudit(ctx context.Context, incidentID uuid.UUID, params scoring.AuditParams, notes string) (*models.Audit, error)
	SetValidation(ctx context.Context, incidentID uuid.UUID, role models.Role, validated bool, note string) error
	RecomputeIncident(ctx context.Context, incidentID uuid.UUID) (*models.DerivedScore, error)
	RecomputeRegion(ctx context.Context, regionID uuid.UUID) (*models.Region, error)
	RecomputeAll(ctx context.Context) (int, error)
}

type scoringService struct {
	incidents IncidentRepository
	regions   RegionRepository
	marker    RegionMarker
	engine    *scoring.Engine
	logger    *logrus.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

func NewScoringService(
	incidents IncidentRepository,
	regions RegionRepository,
	marker RegionMarker,
	engine *scoring.Engine,
	logger *logrus.Logger,
	m *metrics.Metrics,
) ScoringService {
	return &scoringService{
		incidents: incidents,
		regions:   regions,
		marker:    marker,
		engine:    engine,
		logger:    logger,
		metrics:   m,
		tracer:    otel.Tracer("safety-scoring"),
	}
}

// PreviewAudit вычисляет s_env без сохранения аудита
func (s *scoringService) PreviewAudit(params scoring.AuditParams) (float64, models.RiskLevel, error) {
	sEnv, err := scoring.ComputeSEnv(params)
	if err != nil {
		return 0, "", err
	}
	return sEnv, scoring.ClassifyRisk(sEnv), nil
}

// SubmitAudit сохраняет аудит инцидента и пересчитывает его вклад
func (s *scoringService) SubmitAudit(ctx context.Context, incidentID uuid.UUID, params scoring.AuditParams, notes string) (*models.Audit, error) {
	ctx, span := s.tracer.Start(ctx, "scoring.submit_audit",
		trace.WithAttributes(attribute.String("incident_id", incidentID.String())),
	)
	defer span.End()

	log := s.logger.WithFields(logrus.Fields{
		"service":     "scoring",
		"method":      "SubmitAudit",
		"incident_id": incidentID,
	})

	actor, ok := requestcontext.Actor(ctx)
	if !ok || !actor.Role.CanAudit() {
		log.Warn("Audit submitted by actor without auditor role")
		return nil, fmt.Errorf("service: only admin or ngo can submit audits: %w", models.ErrForbidden)
	}

	sEnv, err := scoring.ComputeSEnv(params)
	if err != nil {
		log.WithError(err).Warn("Rejected audit parameters")
		return nil, fmt.Errorf("service: could not score audit: %w", err)
	}

	if _, err := s.incidents.GetByID(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Attempted to audit a non-existent incident")
		return nil, fmt.Errorf("service: could not get incident for audit: %w", err)
	}

	audit := &models.Audit{
		IncidentID:  incidentID,
		AuditorID:   actor.ID,
		AuditorRole: actor.Role,
		SEnv:        sEnv,
		RiskLevel:   scoring.ClassifyRisk(sEnv),
		Notes:       notes,
		CreatedAt:   requestcontext.Now(ctx).Truncate(time.Microsecond),
	}
	if err := s.incidents.CreateAudit(ctx, audit); err != nil {
		log.WithError(err).Error("Failed to create audit in repository")
		return nil, fmt.Errorf("service: could not create audit: %w", err)
	}
	s.metrics.IncrementAudit(string(actor.Role), string(audit.RiskLevel))
	log.WithFields(logrus.Fields{"audit_id": audit.ID, "s_env": sEnv}).Info("Audit created successfully")

	// Аудит уже сохранен: ошибка пересчета исправится при следующем плановом пересчете
	if _, err := s.RecomputeIncident(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to recompute incident after audit")
	}
	return audit, nil
}

// SetValidation устанавливает или снимает отметку валидации от имени роли участника
func (s *scoringService) SetValidation(ctx context.Context, incidentID uuid.UUID, role models.Role, validated bool, note string) error {
	ctx, span := s.tracer.Start(ctx, "scoring.set_validation",
		trace.WithAttributes(
			attribute.String("incident_id", incidentID.String()),
			attribute.String("role", string(role)),
			attribute.Bool("validated", validated),
		),
	)
	defer span.End()

	log := s.logger.WithFields(logrus.Fields{
		"service":     "scoring",
		"method":      "SetValidation",
		"incident_id": incidentID,
		"role":        role,
		"validated":   validated,
	})

	if !role.CanAudit() {
		return fmt.Errorf("service: %w", &models.InvalidInputError{Field: "role", Reason: "must be admin or ngo"})
	}
	actor, ok := requestcontext.Actor(ctx)
	if !ok || actor.Role != role {
		log.Warn("Validation attempted by actor with a different role")
		return fmt.Errorf("service: only %s can set %s validation: %w", role, role, models.ErrForbidden)
	}

	now := requestcontext.Now(ctx).Truncate(time.Microsecond)
	validation := models.Validation{
		Validated:   validated,
		ValidatedBy: actor.ID,
		Note:        note,
		ValidatedAt: &now,
	}
	if err := s.incidents.SetValidation(ctx, incidentID, role, validation); err != nil {
		log.WithError(err).Warn("Failed to set validation in repository")
		return fmt.Errorf("service: could not set validation: %w", err)
	}
	s.metrics.IncrementValidation(string(role), validated)
	log.Info("Validation updated successfully")

	if _, err := s.RecomputeIncident(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to recompute incident after validation")
	}
	return nil
}

// RecomputeIncident пересчитывает вклад инцидента на время запроса, сохраняет его
// и помечает содержащие инцидент регионы для пересчета
func (s *scoringService) RecomputeIncident(ctx context.Context, incidentID uuid.UUID) (derived *models.DerivedScore, err error) {
	ctx, span := s.tracer.Start(ctx, "scoring.recompute_incident",
		trace.WithAttributes(attribute.String("incident_id", incidentID.String())),
	)
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.ObserveRecompute("incident", time.Since(start), err) }()

	log := s.logger.WithFields(logrus.Fields{
		"service":     "scoring",
		"method":      "RecomputeIncident",
		"incident_id": incidentID,
	})

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	audits, err := s.incidents.GetAudits(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get audits: %w", err)
	}

	score, err := s.engine.Contribution(incident, audits, requestcontext.Now(ctx))
	if err != nil {
		s.logComputeError(log, err)
		return nil, fmt.Errorf("service: could not compute contribution: %w", err)
	}

	if err := s.incidents.SaveIncidentDerived(ctx, incidentID, score); err != nil {
		log.WithError(err).Error("Failed to save derived score")
		return nil, fmt.Errorf("service: could not save derived score: %w", err)
	}
	span.SetAttributes(attribute.Float64("contribution_score", score.ContributionScore))

	s.markRegionsForIncident(ctx, log, incidentID)
	log.WithField("contribution_score", score.ContributionScore).Debug("Incident recomputed")
	return &score, nil
}

// RecomputeRegion пересчитывает оценку региона по полному текущему набору инцидентов
func (s *scoringService) RecomputeRegion(ctx context.Context, regionID uuid.UUID) (region *models.Region, err error) {
	ctx, span := s.tracer.Start(ctx, "scoring.recompute_region",
		trace.WithAttributes(attribute.String("region_id", regionID.String())),
	)
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.ObserveRecompute("region", time.Since(start), err) }()

	log := s.logger.WithFields(logrus.Fields{
		"service":   "scoring",
		"method":    "RecomputeRegion",
		"region_id": regionID,
	})

	region, err = s.regions.GetByID(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get region: %w", err)
	}
	incidents, err := s.regions.GetIncidentsForRegion(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incidents for region: %w", err)
	}
	if err := s.loadAudits(ctx, incidents); err != nil {
		return nil, fmt.Errorf("service: could not load audits for region: %w", err)
	}

	agg, err := s.engine.AggregateRegion(incidents, region.ClusterFactor, requestcontext.Now(ctx))
	if err != nil {
		s.logComputeError(log, err)
		return nil, fmt.Errorf("service: could not aggregate region: %w", err)
	}

	for _, inc := range agg.Incidents {
		if err := s.incidents.SaveIncidentDerived(ctx, inc.IncidentID, inc.Derived); err != nil {
			return nil, fmt.Errorf("service: could not save derived score for incident %s: %w", inc.IncidentID, err)
		}
	}
	if err := s.regions.SaveRegionSafetyScore(ctx, regionID, agg.Score); err != nil {
		log.WithError(err).Error("Failed to save region safety score")
		return nil, fmt.Errorf("service: could not save region safety score: %w", err)
	}
	if err := s.regions.InvalidateRegionCache(ctx, regionID); err != nil {
		log.WithError(err).Warn("Failed to invalidate region cache")
	}

	region.Apply(agg.Score)
	s.metrics.ObserveSafetyScore(agg.Score.SafetyScore)
	span.SetAttributes(attribute.Float64("safety_score", agg.Score.SafetyScore))
	log.WithFields(logrus.Fields{
		"safety_score":   agg.Score.SafetyScore,
		"incident_count": agg.Score.IncidentCount,
	}).Info("Region safety score recomputed")
	return region, nil
}

// RecomputeAll ставит все регионы в очередь на пересчет (плановое затухание)
func (s *scoringService) RecomputeAll(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "scoring",
		"method":  "RecomputeAll",
	})

	ids, err := s.regions.ListIDs(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list regions")
		return 0, fmt.Errorf("service: could not list regions: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := s.marker.MarkRegions(ctx, ids); err != nil {
		log.WithError(err).Error("Failed to mark regions for recomputation")
		return 0, fmt.Errorf("service: could not mark regions: %w", err)
	}
	s.metrics.AddMarked(len(ids))
	log.WithField("count", len(ids)).Info("All regions marked for recomputation")
	return len(ids), nil
}

// loadAudits параллельно загружает историю аудитов каждого инцидента
func (s *scoringService) loadAudits(ctx context.Context, incidents []*models.Incident) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(auditFetchLimit)
	for _, inc := range incidents {
		g.Go(func() error {
			audits, err := s.incidents.GetAudits(ctx, inc.ID)
			if err != nil {
				return fmt.Errorf("incident %s: %w", inc.ID, err)
			}
			inc.Audits = audits
			return nil
		})
	}
	return g.Wait()
}

func (s *scoringService) markRegionsForIncident(ctx context.Context, log *logrus.Entry, incidentID uuid.UUID) {
	ids, err := s.regions.GetRegionIDsForIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to find regions for incident")
		return
	}
	if len(ids) == 0 {
		return
	}
	if err := s.marker.MarkRegions(ctx, ids); err != nil {
		log.WithError(err).Warn("Failed to mark regions for recomputation")
		return
	}
	s.metrics.AddMarked(len(ids))
}

// logComputeError пишет нарушение инварианта как ошибку программы, остальное как отказ во входных данных
func (s *scoringService) logComputeError(log *logrus.Entry, err error) {
	if errors.Is(err, models.ErrInconsistentState) {
		log.WithError(err).Error("Score computation produced inconsistent state")
		return
	}
	log.WithError(err).Warn("Score computation rejected input")
}
