package service

//go:generate mockgen -source=region.go -destination=mocks/mock_region.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/pkg/requestcontext"
	"github.com/sirupsen/logrus"
)

// RegionRepository определяет контракт для работы с бд и кешем регионов
type RegionRepository interface {
	Create(ctx context.Context, region *models.Region) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error)
	ListRegions(ctx context.Context, page, pageSize int) ([]*models.Region, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	FindByLocation(ctx context.Context, lat, lon float64) ([]*models.Region, error)
	GetIncidentsForRegion(ctx context.Context, regionID uuid.UUID) ([]*models.Incident, error)
	GetRegionIDsForIncident(ctx context.Context, incidentID uuid.UUID) ([]uuid.UUID, error)
	SaveRegionSafetyScore(ctx context.Context, regionID uuid.UUID, score models.RegionScore) error
	AddComment(ctx context.Context, regionID uuid.UUID, comment *models.Comment) error
	ListComments(ctx context.Context, regionID uuid.UUID) ([]models.Comment, error)
	GetRegionFromCache(ctx context.Context, id uuid.UUID) (*models.Region, error)
	RegionCacheVersion(ctx context.Context, id uuid.UUID) (int64, error)
	SetRegionCache(ctx context.Context, region *models.Region, version int64) error
	InvalidateRegionCache(ctx context.Context, id uuid.UUID) error
}

// RegionService определяет контракт для бизнес-логики регионов
type RegionService interface {
	CreateRegion(ctx context.Context, region *models.Region) error
	GetRegion(ctx context.Context, id uuid.UUID) (*models.Region, error)
	ListRegions(ctx context.Context, page, pageSize int) ([]*models.Region, error)
	ListRegionIncidents(ctx context.Context, regionID uuid.UUID) ([]*models.Incident, error)
	AddComment(ctx context.Context, regionID uuid.UUID, text string) (*models.Comment, error)
	LocateRegions(ctx context.Context, lat, lon float64) ([]*models.Region, error)
}

type regionService struct {
	repo   RegionRepository
	scorer ScoringService
	logger *logrus.Logger
}

func NewRegionService(repo RegionRepository, scorer ScoringService, logger *logrus.Logger) RegionService {
	return &regionService{
		repo:   repo,
		scorer: scorer,
		logger: logger,
	}
}

// CreateRegion создает регион и сразу считает его оценку. Доступно только администратору.
func (s *regionService) CreateRegion(ctx context.Context, region *models.Region) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "region",
		"method":  "CreateRegion",
	})

	actor, ok := requestcontext.Actor(ctx)
	if !ok || actor.Role != models.RoleAdmin {
		log.Warn("Region creation attempted by non-admin actor")
		return fmt.Errorf("service: only admin can create regions: %w", models.ErrForbidden)
	}

	region.Name = strings.TrimSpace(region.Name)
	if region.Name == "" {
		region.Name = models.DefaultRegionName
	}
	switch {
	case math.IsNaN(region.ClusterFactor) || math.IsInf(region.ClusterFactor, 0) || region.ClusterFactor < 0:
		return fmt.Errorf("service: %w", &models.InvalidInputError{Field: "cluster_factor", Reason: "must be a non-negative number"})
	case region.ClusterFactor == 0:
		region.ClusterFactor = 1
	}
	if region.Coordinates.Type != "Polygon" && region.Coordinates.Type != "MultiPolygon" {
		return fmt.Errorf("service: %w", &models.InvalidInputError{Field: "coordinates", Reason: "must be a GeoJSON Polygon or MultiPolygon"})
	}
	if len(region.Coordinates.Coordinates) == 0 {
		return fmt.Errorf("service: %w", &models.InvalidInputError{Field: "coordinates", Reason: "is required"})
	}

	region.SafetyScore = models.MaxSafetyScore
	region.RiskSum = 0
	region.IncidentCount = 0
	region.HighSeverityCount = 0
	region.IncidentTypes = map[models.IncidentType]int{}
	region.CreatedAt = requestcontext.Now(ctx).Truncate(time.Microsecond)
	region.UpdatedAt = region.CreatedAt

	if err := s.repo.Create(ctx, region); err != nil {
		log.WithError(err).Error("Failed to create region in repository")
		return fmt.Errorf("service: could not create region: %w", err)
	}
	log = log.WithField("region_id", region.ID)
	log.Info("Region created successfully")

	scored, err := s.scorer.RecomputeRegion(ctx, region.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to score new region")
		return nil
	}
	*region = *scored
	return nil
}

// GetRegion получает регион, сначала из кеша
func (s *regionService) GetRegion(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "GetRegion",
		"region_id": id,
	})

	cached, err := s.repo.GetRegionFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get region from cache")
	}
	if cached != nil {
		log.Debug("Region found in cache")
		return cached, nil
	}

	// Версия снимается до чтения из бд: пересчет между чтением и записью в кеш ее увеличит
	version, versionErr := s.repo.RegionCacheVersion(ctx, id)
	if versionErr != nil {
		log.WithError(versionErr).Warn("Failed to get region cache version")
	}

	region, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get region from repository")
		return nil, fmt.Errorf("service: could not get region: %w", err)
	}
	if region.Comments, err = s.repo.ListComments(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get region comments: %w", err)
	}

	if versionErr == nil {
		if err := s.repo.SetRegionCache(ctx, region, version); err != nil {
			log.WithError(err).Warn("Failed to set region cache")
		}
	}
	log.Info("Region fetched successfully")
	return region, nil
}

// ListRegions возвращает страницу регионов
func (s *regionService) ListRegions(ctx context.Context, page, pageSize int) ([]*models.Region, error) {
	page, pageSize = normalizePage(page, pageSize)
	regions, err := s.repo.ListRegions(ctx, page, pageSize)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "region",
			"method":  "ListRegions",
		}).WithError(err).Error("Failed to list regions from repository")
		return nil, fmt.Errorf("service: could not list regions: %w", err)
	}
	return regions, nil
}

// ListRegionIncidents возвращает инциденты, пересекающие регион
func (s *regionService) ListRegionIncidents(ctx context.Context, regionID uuid.UUID) ([]*models.Incident, error) {
	if _, err := s.repo.GetByID(ctx, regionID); err != nil {
		return nil, fmt.Errorf("service: could not get region: %w", err)
	}
	incidents, err := s.repo.GetIncidentsForRegion(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incidents for region: %w", err)
	}
	return incidents, nil
}

// AddComment добавляет комментарий к региону и сбрасывает его кеш
func (s *regionService) AddComment(ctx context.Context, regionID uuid.UUID, text string) (*models.Comment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "AddComment",
		"region_id": regionID,
	})

	comment, err := newComment(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := s.repo.AddComment(ctx, regionID, comment); err != nil {
		log.WithError(err).Warn("Failed to add comment in repository")
		return nil, fmt.Errorf("service: could not add comment: %w", err)
	}
	if err := s.repo.InvalidateRegionCache(ctx, regionID); err != nil {
		log.WithError(err).Warn("Failed to invalidate region cache")
	}

	log.WithField("comment_id", comment.ID).Info("Comment added successfully")
	return comment, nil
}

// LocateRegions возвращает регионы, содержащие точку
func (s *regionService) LocateRegions(ctx context.Context, lat, lon float64) ([]*models.Region, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "region",
		"method":  "LocateRegions",
		"lat":     lat,
		"lon":     lon,
	})

	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("service: %w", &models.InvalidInputError{Field: "lat", Reason: "must be within [-90, 90]"})
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: %w", &models.InvalidInputError{Field: "lon", Reason: "must be within [-180, 180]"})
	}

	regions, err := s.repo.FindByLocation(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Error("Failed to find regions by location")
		return nil, fmt.Errorf("service: could not find regions by location: %w", err)
	}

	log.WithField("found_count", len(regions)).Info("Location lookup finished")
	return regions, nil
}
