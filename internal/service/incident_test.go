package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockScoringService) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	scorerMock := mocks.NewMockScoringService(ctrl)

	service := NewIncidentService(repoMock, scorerMock, newTestEngine(t), newTestLogger())
	return service.(*incidentService), repoMock, scorerMock
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, scorerMock := newTestIncidentService(t)
	ctx := actorContext("user-42", models.RoleUser)
	incident := mediumIncident(uuid.Nil)
	incident.ReporterID = ""
	incident.Status = models.StatusVerified
	incident.AdminValidation = models.Validation{Validated: true}
	newID := uuid.New()
	derived := &models.DerivedScore{InitialWeight: 2, TimeDecayFactor: 1, EffectiveMultiplier: 1, ContributionScore: 2}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, incident).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = newID
			return nil
		})
	scorerMock.EXPECT().RecomputeIncident(ctx, newID).Return(derived, nil)

	// Действие
	err := service.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "user-42", incident.ReporterID)
	assert.Equal(t, models.StatusPending, incident.Status)
	assert.False(t, incident.AdminValidation.Validated)
	assert.Equal(t, evalTime, incident.CreatedAt)
	assert.Equal(t, derived, incident.Derived)
}

func TestCreateIncident_ScoringFailureStillSucceeds(t *testing.T) {
	service, repoMock, scorerMock := newTestIncidentService(t)
	ctx := actorContext("user-42", models.RoleUser)
	incident := mediumIncident(uuid.New())

	repoMock.EXPECT().Create(ctx, incident).Return(nil)
	scorerMock.EXPECT().RecomputeIncident(ctx, incident.ID).Return(nil, errors.New("redis down"))

	err := service.CreateIncident(ctx, incident)

	require.NoError(t, err)
	assert.Nil(t, incident.Derived)
}

func TestCreateIncident_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(inc *models.Incident)
		field string
	}{
		{name: "unknown severity", mut: func(inc *models.Incident) { inc.Severity = "extreme" }, field: "severity"},
		{name: "missing severity", mut: func(inc *models.Incident) { inc.Severity = "" }, field: "severity"},
		{name: "unknown type", mut: func(inc *models.Incident) { inc.IncidentType = "theft" }, field: "incident_type"},
		{name: "line geometry", mut: func(inc *models.Incident) { inc.Coordinates.Type = "LineString" }, field: "coordinates"},
		{name: "empty coordinates", mut: func(inc *models.Incident) { inc.Coordinates.Coordinates = nil }, field: "coordinates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestIncidentService(t)
			incident := mediumIncident(uuid.Nil)
			tt.mut(incident)

			err := service.CreateIncident(actorContext("user-1", models.RoleUser), incident)

			require.Error(t, err)
			var inputErr *models.InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestCreateIncident_AnonymousForbidden(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	err := service.CreateIncident(context.Background(), mediumIncident(uuid.Nil))

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestGetIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := actorContext("user-1", models.RoleUser)
	incident := mediumIncident(uuid.New())
	incident.CreatedAt = evalTime.Add(-30 * 24 * time.Hour)
	audits := []models.Audit{{ID: uuid.New(), IncidentID: incident.ID, SEnv: 0.5}}
	comments := []models.Comment{{ID: uuid.New(), AuthorID: "ngo-1", Text: "seen it too"}}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil)
	repoMock.EXPECT().GetAudits(ctx, incident.ID).Return(audits, nil)
	repoMock.EXPECT().ListComments(ctx, incident.ID).Return(comments, nil)

	// Действие
	result, err := service.GetIncident(ctx, incident.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, audits, result.Audits)
	assert.Equal(t, comments, result.Comments)
	require.NotNil(t, result.Derived)
	// 30 из 90 дней линейного затухания, аудит 0.5
	assert.InDelta(t, 2.0/3.0, result.Derived.TimeDecayFactor, 1e-9)
	assert.InDelta(t, 1.5, result.Derived.EffectiveMultiplier, 1e-9)
	assert.InDelta(t, 2.0, result.Derived.ContributionScore, 1e-9)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, &models.NotFoundError{Entity: "incident", ID: incidentID.String()}).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListIncidents_NormalizesPagination(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		expectedPage     int
		expectedPageSize int
	}{
		{name: "defaults", page: 0, pageSize: 0, expectedPage: 1, expectedPageSize: 20},
		{name: "capped", page: 3, pageSize: 500, expectedPage: 3, expectedPageSize: 100},
		{name: "kept", page: 2, pageSize: 50, expectedPage: 2, expectedPageSize: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _ := newTestIncidentService(t)
			ctx := context.Background()
			filter := models.IncidentFilter{Status: models.StatusPending, Page: tt.page, PageSize: tt.pageSize}
			expected := models.IncidentFilter{Status: models.StatusPending, Page: tt.expectedPage, PageSize: tt.expectedPageSize}

			repoMock.EXPECT().ListIncidents(ctx, expected).Return([]*models.Incident{}, nil)

			_, err := service.ListIncidents(ctx, filter)
			require.NoError(t, err)
		})
	}
}

func TestListIncidents_UnknownStatus(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	_, err := service.ListIncidents(context.Background(), models.IncidentFilter{Status: "archived"})

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAddComment_Success(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := actorContext("user-9", models.RoleUser)
	incidentID := uuid.New()

	repoMock.EXPECT().
		AddComment(ctx, incidentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, c *models.Comment) error {
			c.ID = uuid.New()
			return nil
		})

	comment, err := service.AddComment(ctx, incidentID, "  dark corner near the market  ")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, comment.ID)
	assert.Equal(t, "user-9", comment.AuthorID)
	assert.Equal(t, "dark corner near the market", comment.Text)
	assert.Equal(t, evalTime, comment.CreatedAt)
}

func TestAddComment_InvalidText(t *testing.T) {
	service, _, _ := newTestIncidentService(t)
	ctx := actorContext("user-9", models.RoleUser)

	_, err := service.AddComment(ctx, uuid.New(), "   ")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = service.AddComment(ctx, uuid.New(), strings.Repeat("a", maxCommentLength+1))
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAddComment_IncidentNotFound(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := actorContext("user-9", models.RoleUser)
	incidentID := uuid.New()

	repoMock.EXPECT().
		AddComment(ctx, incidentID, gomock.Any()).
		Return(&models.NotFoundError{Entity: "incident", ID: incidentID.String()})

	_, err := service.AddComment(ctx, incidentID, "hello")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateStatus_Success(t *testing.T) {
	service, repoMock, scorerMock := newTestIncidentService(t)
	ctx := actorContext("admin-1", models.RoleAdmin)
	incidentID := uuid.New()

	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.StatusResolved).Return(nil)
	scorerMock.EXPECT().RecomputeIncident(ctx, incidentID).Return(&models.DerivedScore{}, nil)

	err := service.UpdateStatus(ctx, incidentID, models.StatusResolved)

	require.NoError(t, err)
}

func TestUpdateStatus_Forbidden(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	err := service.UpdateStatus(actorContext("ngo-1", models.RoleNGO), uuid.New(), models.StatusVerified)

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	err := service.UpdateStatus(actorContext("admin-1", models.RoleAdmin), uuid.New(), "archived")

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
