//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/repository"
	"github.com/shenikar/safety_scoring_system/internal/service"
	"github.com/shenikar/safety_scoring_system/pkg/testutil/containers"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type RepositorySuite struct {
	suite.Suite
	postgres  *containers.PostgresContainer
	redis     *containers.RedisContainer
	incidents service.IncidentRepository
	regions   service.RegionRepository
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.redis = containers.NewRedisContainer(s.T())
	s.incidents = repository.NewIncidentRepository(s.postgres.DB)
	s.regions = repository.NewRegionRepository(s.postgres.DB, s.redis.Client, time.Minute)
}

func (s *RepositorySuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "comments", "audits", "incidents", "regions"))
	s.Require().NoError(s.redis.FlushAll(ctx))
}

// Квадрат 0.2x0.2 градуса вокруг центра Найроби
func (s *RepositorySuite) createRegion(ctx context.Context) *models.Region {
	region := &models.Region{
		Name:          "Central",
		ClusterFactor: 1,
		SafetyScore:   models.MaxSafetyScore,
		Coordinates: models.Geometry{
			Type:        "Polygon",
			Coordinates: []byte(`[[[36.7,-1.4],[36.9,-1.4],[36.9,-1.2],[36.7,-1.2],[36.7,-1.4]]]`),
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	s.Require().NoError(s.regions.Create(ctx, region))
	return region
}

func (s *RepositorySuite) createIncident(ctx context.Context, lon, lat string) *models.Incident {
	incident := &models.Incident{
		ReporterID:   "reporter-1",
		IncidentType: models.IncidentTypeNoLights,
		Severity:     models.SeverityHigh,
		Description:  "street lights out",
		Coordinates:  models.Geometry{Type: "Point", Coordinates: []byte(`[` + lon + `,` + lat + `]`)},
		Status:       models.StatusPending,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	s.Require().NoError(s.incidents.Create(ctx, incident))
	return incident
}

func (s *RepositorySuite) TestIncidentRoundTrip() {
	ctx := context.Background()
	created := s.createIncident(ctx, "36.8", "-1.3")

	got, err := s.incidents.GetByID(ctx, created.ID)

	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
	s.Equal(models.SeverityHigh, got.Severity)
	s.Equal("Point", got.Coordinates.Type)
	s.Empty(got.Images)
	s.Nil(got.Derived)
	s.True(created.CreatedAt.Equal(got.CreatedAt))
}

func (s *RepositorySuite) TestGetByID_NotFound() {
	_, err := s.incidents.GetByID(context.Background(), uuid.New())

	s.ErrorIs(err, models.ErrNotFound)
}

func (s *RepositorySuite) TestAuditsAndValidation() {
	ctx := context.Background()
	incident := s.createIncident(ctx, "36.8", "-1.3")
	now := time.Now().UTC().Truncate(time.Microsecond)

	audit := &models.Audit{
		IncidentID:  incident.ID,
		AuditorID:   "ngo-1",
		AuditorRole: models.RoleNGO,
		SEnv:        0.75,
		RiskLevel:   models.RiskHigh,
		CreatedAt:   now,
	}
	s.Require().NoError(s.incidents.CreateAudit(ctx, audit))
	s.NotEqual(uuid.Nil, audit.ID)

	s.Require().NoError(s.incidents.SetValidation(ctx, incident.ID, models.RoleAdmin, models.Validation{
		Validated:   true,
		ValidatedBy: "admin-1",
		ValidatedAt: &now,
	}))

	audits, err := s.incidents.GetAudits(ctx, incident.ID)
	s.Require().NoError(err)
	s.Require().Len(audits, 1)
	s.Equal(0.75, audits[0].SEnv)

	got, err := s.incidents.GetByID(ctx, incident.ID)
	s.Require().NoError(err)
	s.True(got.AdminValidation.Validated)
	s.Equal("admin-1", got.AdminValidation.ValidatedBy)
	s.False(got.NGOValidation.Validated)
}

func (s *RepositorySuite) TestConcurrentAppendsAreAllKept() {
	ctx := context.Background()
	incident := s.createIncident(ctx, "36.8", "-1.3")
	now := time.Now().UTC().Truncate(time.Microsecond)
	const writers = 12

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			return s.incidents.CreateAudit(gctx, &models.Audit{
				IncidentID:  incident.ID,
				AuditorID:   fmt.Sprintf("ngo-%d", i),
				AuditorRole: models.RoleNGO,
				SEnv:        0.5,
				RiskLevel:   models.RiskMedium,
				CreatedAt:   now,
			})
		})
		g.Go(func() error {
			return s.incidents.AddComment(gctx, incident.ID, &models.Comment{
				AuthorID:  fmt.Sprintf("user-%d", i),
				Text:      fmt.Sprintf("comment %d", i),
				CreatedAt: now,
			})
		})
	}
	s.Require().NoError(g.Wait())

	audits, err := s.incidents.GetAudits(ctx, incident.ID)
	s.Require().NoError(err)
	s.Len(audits, writers)
	auditIDs := make(map[uuid.UUID]struct{}, len(audits))
	for _, a := range audits {
		auditIDs[a.ID] = struct{}{}
	}
	s.Len(auditIDs, writers)

	comments, err := s.incidents.ListComments(ctx, incident.ID)
	s.Require().NoError(err)
	s.Len(comments, writers)
	commentIDs := make(map[uuid.UUID]struct{}, len(comments))
	for _, c := range comments {
		commentIDs[c.ID] = struct{}{}
	}
	s.Len(commentIDs, writers)
}

func (s *RepositorySuite) TestSetValidationAndDerivedWriteBackDoNotOverwriteEachOther() {
	ctx := context.Background()
	incident := s.createIncident(ctx, "36.8", "-1.3")
	now := time.Now().UTC().Truncate(time.Microsecond)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.incidents.SetValidation(gctx, incident.ID, models.RoleNGO, models.Validation{
			Validated:   true,
			ValidatedBy: "ngo-1",
			ValidatedAt: &now,
		})
	})
	g.Go(func() error {
		return s.incidents.SaveIncidentDerived(gctx, incident.ID, models.DerivedScore{
			InitialWeight:       3,
			TimeDecayFactor:     1,
			EffectiveMultiplier: 1,
			ContributionScore:   3,
			EvaluatedAt:         now,
		})
	})
	s.Require().NoError(g.Wait())

	got, err := s.incidents.GetByID(ctx, incident.ID)
	s.Require().NoError(err)
	s.True(got.NGOValidation.Validated)
	s.Equal("ngo-1", got.NGOValidation.ValidatedBy)
	s.Require().NotNil(got.Derived)
	s.Equal(3.0, got.Derived.ContributionScore)
}

func (s *RepositorySuite) TestCreateAudit_UnknownIncident() {
	err := s.incidents.CreateAudit(context.Background(), &models.Audit{
		IncidentID:  uuid.New(),
		AuditorID:   "ngo-1",
		AuditorRole: models.RoleNGO,
		RiskLevel:   models.RiskLow,
		CreatedAt:   time.Now().UTC(),
	})

	s.ErrorIs(err, models.ErrNotFound)
}

func (s *RepositorySuite) TestSaveIncidentDerived() {
	ctx := context.Background()
	incident := s.createIncident(ctx, "36.8", "-1.3")
	score := models.DerivedScore{
		InitialWeight:       3,
		TimeDecayFactor:     0.5,
		EffectiveMultiplier: 2,
		ContributionScore:   3,
		EvaluatedAt:         time.Now().UTC().Truncate(time.Microsecond),
	}

	s.Require().NoError(s.incidents.SaveIncidentDerived(ctx, incident.ID, score))

	got, err := s.incidents.GetByID(ctx, incident.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.Derived)
	s.Equal(3.0, got.Derived.ContributionScore)
	s.True(score.EvaluatedAt.Equal(got.Derived.EvaluatedAt))
}

func (s *RepositorySuite) TestListIncidents_Filters() {
	ctx := context.Background()
	first := s.createIncident(ctx, "36.8", "-1.3")
	s.createIncident(ctx, "36.81", "-1.31")
	s.Require().NoError(s.incidents.UpdateStatus(ctx, first.ID, models.StatusResolved))

	resolved, err := s.incidents.ListIncidents(ctx, models.IncidentFilter{Status: models.StatusResolved, Page: 1, PageSize: 20})
	s.Require().NoError(err)
	s.Require().Len(resolved, 1)
	s.Equal(first.ID, resolved[0].ID)

	all, err := s.incidents.ListIncidents(ctx, models.IncidentFilter{Page: 1, PageSize: 20})
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *RepositorySuite) TestRegionSpatialQueries() {
	ctx := context.Background()
	region := s.createRegion(ctx)
	inside := s.createIncident(ctx, "36.8", "-1.3")
	outside := s.createIncident(ctx, "37.5", "-0.5")

	incidents, err := s.regions.GetIncidentsForRegion(ctx, region.ID)
	s.Require().NoError(err)
	s.Require().Len(incidents, 1)
	s.Equal(inside.ID, incidents[0].ID)

	ids, err := s.regions.GetRegionIDsForIncident(ctx, inside.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{region.ID}, ids)

	ids, err = s.regions.GetRegionIDsForIncident(ctx, outside.ID)
	s.Require().NoError(err)
	s.Empty(ids)

	found, err := s.regions.FindByLocation(ctx, -1.3, 36.8)
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(region.ID, found[0].ID)
}

func (s *RepositorySuite) TestSaveRegionSafetyScore() {
	ctx := context.Background()
	region := s.createRegion(ctx)
	evaluatedAt := time.Now().UTC().Truncate(time.Microsecond)

	err := s.regions.SaveRegionSafetyScore(ctx, region.ID, models.RegionScore{
		SafetyScore:       4.72,
		RiskSum:           3,
		IncidentCount:     2,
		AverageSeverity:   models.SeverityHigh,
		HighSeverityCount: 2,
		IncidentTypes:     map[models.IncidentType]int{models.IncidentTypeNoLights: 2},
		EvaluatedAt:       evaluatedAt,
	})
	s.Require().NoError(err)

	got, err := s.regions.GetByID(ctx, region.ID)
	s.Require().NoError(err)
	s.Equal(4.72, got.SafetyScore)
	s.Equal(models.SeverityHigh, got.AverageSeverity)
	s.Equal(2, got.IncidentTypes[models.IncidentTypeNoLights])
	s.Require().NotNil(got.ScoredAt)
	s.True(evaluatedAt.Equal(*got.ScoredAt))

	err = s.regions.SaveRegionSafetyScore(ctx, uuid.New(), models.RegionScore{})
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *RepositorySuite) TestRegionCache() {
	ctx := context.Background()
	region := s.createRegion(ctx)

	cached, err := s.regions.GetRegionFromCache(ctx, region.ID)
	s.Require().NoError(err)
	s.Nil(cached)

	version, err := s.regions.RegionCacheVersion(ctx, region.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), version)

	s.Require().NoError(s.regions.SetRegionCache(ctx, region, version))
	cached, err = s.regions.GetRegionFromCache(ctx, region.ID)
	s.Require().NoError(err)
	s.Require().NotNil(cached)
	s.Equal(region.Name, cached.Name)

	s.Require().NoError(s.regions.InvalidateRegionCache(ctx, region.ID))
	cached, err = s.regions.GetRegionFromCache(ctx, region.ID)
	s.Require().NoError(err)
	s.Nil(cached)

	version, err = s.regions.RegionCacheVersion(ctx, region.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), version)
}

func (s *RepositorySuite) TestRegionCache_StaleFillAfterInvalidationIsDropped() {
	ctx := context.Background()
	region := s.createRegion(ctx)

	// Чтение снимает версию и старую строку из бд
	version, err := s.regions.RegionCacheVersion(ctx, region.ID)
	s.Require().NoError(err)
	stale, err := s.regions.GetByID(ctx, region.ID)
	s.Require().NoError(err)

	// Пересчет сохраняет новую оценку и инвалидирует кеш
	s.Require().NoError(s.regions.SaveRegionSafetyScore(ctx, region.ID, models.RegionScore{
		SafetyScore:   2.5,
		IncidentTypes: map[models.IncidentType]int{},
		EvaluatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}))
	s.Require().NoError(s.regions.InvalidateRegionCache(ctx, region.ID))

	// Запоздалая запись старой строки не должна попасть в кеш
	s.Require().NoError(s.regions.SetRegionCache(ctx, stale, version))
	cached, err := s.regions.GetRegionFromCache(ctx, region.ID)
	s.Require().NoError(err)
	s.Nil(cached)

	fresh, err := s.regions.GetByID(ctx, region.ID)
	s.Require().NoError(err)
	current, err := s.regions.RegionCacheVersion(ctx, region.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.regions.SetRegionCache(ctx, fresh, current))
	cached, err = s.regions.GetRegionFromCache(ctx, region.ID)
	s.Require().NoError(err)
	s.Require().NotNil(cached)
	s.Equal(2.5, cached.SafetyScore)
}

func (s *RepositorySuite) TestComments() {
	ctx := context.Background()
	region := s.createRegion(ctx)
	incident := s.createIncident(ctx, "36.8", "-1.3")
	now := time.Now().UTC().Truncate(time.Microsecond)

	s.Require().NoError(s.regions.AddComment(ctx, region.ID, &models.Comment{AuthorID: "u1", Text: "region note", CreatedAt: now}))
	s.Require().NoError(s.incidents.AddComment(ctx, incident.ID, &models.Comment{AuthorID: "u2", Text: "incident note", CreatedAt: now}))

	regionComments, err := s.regions.ListComments(ctx, region.ID)
	s.Require().NoError(err)
	s.Require().Len(regionComments, 1)
	s.Equal("region note", regionComments[0].Text)

	incidentComments, err := s.incidents.ListComments(ctx, incident.ID)
	s.Require().NoError(err)
	s.Require().Len(incidentComments, 1)
	s.Equal("incident note", incidentComments[0].Text)

	err = s.regions.AddComment(ctx, uuid.New(), &models.Comment{AuthorID: "u1", Text: "x", CreatedAt: now})
	s.ErrorIs(err, models.ErrNotFound)
}
