package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/safety_scoring_system/internal/config"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/scoring"
	"github.com/shenikar/safety_scoring_system/internal/service/mocks"
	"github.com/shenikar/safety_scoring_system/pkg/requestcontext"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	incidents *mocks.MockIncidentService
	regions   *mocks.MockRegionService
	scoring   *mocks.MockScoringService
}

type fakeQueue struct {
	pending int64
	err     error
}

func (q fakeQueue) Pending(context.Context) (int64, error) { return q.pending, q.err }

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		regions:   mocks.NewMockRegionService(ctrl),
		scoring:   mocks.NewMockScoringService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.incidents, m.regions, m.scoring, fakeQueue{pending: 3}, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func actorHeaders(id string, role models.Role) map[string]string {
	return map[string]string{
		"X-API-Key":   "test-api-key",
		"X-User-ID":   id,
		"X-User-Role": string(role),
	}
}

var apiKeyOnly = map[string]string{"X-API-Key": "test-api-key"}

func f(v float64) *float64 { return &v }

func validAuditRequest() AuditRequest {
	return AuditRequest{
		Lighting:           f(1),
		Visibility:         f(0.5),
		CrowdActivity:      f(0),
		Walkpath:           f(0.2),
		TransportAccess:    f(0.4),
		CCTVPolicePresence: f(0.6),
	}
}

func validIncidentRequest() CreateIncidentRequest {
	return CreateIncidentRequest{
		IncidentType: "no_lights",
		Severity:     "medium",
		Description:  "street lights out",
		Coordinates:  GeometryDTO{Type: "Point", Coordinates: json.RawMessage(`[36.82,-1.29]`)},
	}
}

func TestHealthCheck_NoAPIKeyRequired(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.PendingRecompute)
	assert.Equal(t, int64(3), *resp.PendingRecompute)
}

func TestAuth_MissingAndInvalidAPIKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return([]*models.Incident{}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentity_UnknownRole(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, actorHeaders("u1", "superuser"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown user role")
}

func TestCreateIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	now := time.Now().UTC()

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
			actor, ok := requestcontext.Actor(ctx)
			require.True(t, ok)
			assert.Equal(t, "user-1", actor.ID)
			assert.Equal(t, models.RoleUser, actor.Role)
			assert.Equal(t, models.SeverityMedium, inc.Severity)
			assert.Equal(t, "Point", inc.Coordinates.Type)

			inc.ID = incidentID
			inc.ReporterID = actor.ID
			inc.Status = models.StatusPending
			inc.CreatedAt = now
			inc.Derived = &models.DerivedScore{InitialWeight: 2, TimeDecayFactor: 1, EffectiveMultiplier: 1, ContributionScore: 2, EvaluatedAt: now}
			return nil
		}).Times(1)

	headers := map[string]string{"X-API-Key": "test-api-key", "X-User-ID": "user-1"}
	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, validIncidentRequest()), headers)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, resp.Score)
	assert.Equal(t, 2.0, resp.Score.ContributionScore)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"severity": "low"`), actorHeaders("u1", models.RoleUser))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := validIncidentRequest()
	reqBody.Severity = "extreme"

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), actorHeaders("u1", models.RoleUser))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Severity' failed on the 'oneof' tag")
}

func TestCreateIncident_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "anonymous", err: fmt.Errorf("service: reporter identity is required: %w", models.ErrForbidden), expected: http.StatusForbidden},
		{name: "invalid geometry", err: fmt.Errorf("service: %w", &models.InvalidInputError{Field: "coordinates", Reason: "is required"}), expected: http.StatusBadRequest},
		{name: "inconsistent state", err: &models.InconsistentStateError{Quantity: "contribution_score", Value: -1}, expected: http.StatusInternalServerError},
		{name: "database", err: errors.New("connection refused"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(tt.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, validIncidentRequest()), apiKeyOnly)

			assert.Equal(t, tt.expected, w.Code)
			if tt.expected == http.StatusInternalServerError {
				assert.Contains(t, w.Body.String(), "internal server error")
			}
		})
	}
}

func TestListIncidents_PassesFilter(t *testing.T) {
	m, router := newTestHandler(t)
	expected := models.IncidentFilter{
		Status:       models.StatusVerified,
		IncidentType: models.IncidentTypeGBV,
		Page:         2,
		PageSize:     5,
	}

	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), expected).
		Return([]*models.Incident{{ID: uuid.New(), Status: models.StatusVerified}}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents?status=verified&incident_type=gbv&page=2&page_size=5", nil, apiKeyOnly)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents/not-a-uuid", nil, apiKeyOnly)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.incidents.EXPECT().
		GetIncident(gomock.Any(), id).
		Return(nil, fmt.Errorf("service: could not get incident: %w", &models.NotFoundError{Entity: "incident", ID: id.String()}))

	w := makeRequest(router, "GET", "/api/v1/incidents/"+id.String(), nil, apiKeyOnly)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident with id "+id.String()+" not found")
}

func TestGetIncident_WithAuditsAndComments(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	incident := &models.Incident{
		ID:       id,
		Severity: models.SeverityHigh,
		Status:   models.StatusVerified,
		Audits:   []models.Audit{{ID: uuid.New(), IncidentID: id, SEnv: 0.7, RiskLevel: models.RiskHigh}},
		Comments: []models.Comment{{ID: uuid.New(), Text: "confirmed"}},
	}

	m.incidents.EXPECT().GetIncident(gomock.Any(), id).Return(incident, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+id.String(), nil, apiKeyOnly)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Audits, 1)
	assert.Equal(t, "high", resp.Audits[0].RiskLevel)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, []string{}, resp.Images)
}

func TestUpdateIncidentStatus(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.incidents.EXPECT().UpdateStatus(gomock.Any(), id, models.StatusResolved).Return(nil)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/"+id.String()+"/status",
		jsonBody(t, UpdateStatusRequest{Status: "resolved"}), actorHeaders("admin-1", models.RoleAdmin))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAddIncidentComment(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.incidents.EXPECT().
		AddComment(gomock.Any(), id, "be careful here").
		Return(&models.Comment{ID: uuid.New(), AuthorID: "u1", Text: "be careful here"}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+id.String()+"/comments",
		jsonBody(t, CommentRequest{Text: "be careful here"}), actorHeaders("u1", models.RoleUser))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "be careful here")
}

func TestSubmitAudit_Success(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	reqBody := validAuditRequest()
	reqBody.Notes = "dark underpass"

	m.scoring.EXPECT().
		SubmitAudit(gomock.Any(), id, gomock.Any(), "dark underpass").
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, params scoring.AuditParams, _ string) (*models.Audit, error) {
			actor, ok := requestcontext.Actor(ctx)
			require.True(t, ok)
			assert.Equal(t, models.RoleNGO, actor.Role)
			require.NotNil(t, params.Lighting)
			assert.Equal(t, 1.0, *params.Lighting)
			return &models.Audit{ID: uuid.New(), IncidentID: id, AuditorID: actor.ID, AuditorRole: actor.Role, SEnv: 0.48, RiskLevel: models.RiskMedium}, nil
		})

	w := makeRequest(router, "POST", "/api/v1/incidents/"+id.String()+"/audits", jsonBody(t, reqBody), actorHeaders("ngo-1", models.RoleNGO))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AuditResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.48, resp.SEnv)
	assert.Equal(t, "medium", resp.RiskLevel)
}

func TestSubmitAudit_InvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		mut  func(r *AuditRequest)
		tag  string
	}{
		{name: "missing", mut: func(r *AuditRequest) { r.Walkpath = nil }, tag: "'Walkpath' failed on the 'required' tag"},
		{name: "above range", mut: func(r *AuditRequest) { r.Lighting = f(1.5) }, tag: "'Lighting' failed on the 'lte' tag"},
		{name: "below range", mut: func(r *AuditRequest) { r.Visibility = f(-0.1) }, tag: "'Visibility' failed on the 'gte' tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			reqBody := validAuditRequest()
			tt.mut(&reqBody)

			m.scoring.EXPECT().SubmitAudit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "POST", "/api/v1/incidents/"+uuid.NewString()+"/audits", jsonBody(t, reqBody), actorHeaders("ngo-1", models.RoleNGO))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.tag)
		})
	}
}

func TestSubmitAudit_Forbidden(t *testing.T) {
	m, router := newTestHandler(t)

	m.scoring.EXPECT().
		SubmitAudit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: only admin or ngo can submit audits: %w", models.ErrForbidden))

	w := makeRequest(router, "POST", "/api/v1/incidents/"+uuid.NewString()+"/audits", jsonBody(t, validAuditRequest()), actorHeaders("u1", models.RoleUser))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPreviewAudit(t *testing.T) {
	m, router := newTestHandler(t)

	m.scoring.EXPECT().PreviewAudit(gomock.Any()).Return(0.48, models.RiskMedium, nil)

	w := makeRequest(router, "POST", "/api/v1/audits/preview", jsonBody(t, validAuditRequest()), apiKeyOnly)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AuditPreviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.48, resp.SEnv)
	assert.Equal(t, "medium", resp.RiskLevel)
}

func TestSetValidation(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	validated := true

	m.scoring.EXPECT().SetValidation(gomock.Any(), id, models.RoleNGO, true, "seen by our team").Return(nil)

	w := makeRequest(router, "PUT", "/api/v1/incidents/"+id.String()+"/validations/ngo",
		jsonBody(t, ValidationRequest{Validated: &validated, Note: "seen by our team"}), actorHeaders("ngo-1", models.RoleNGO))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSetValidation_MissingFlag(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "PUT", "/api/v1/incidents/"+uuid.NewString()+"/validations/admin",
		bytes.NewBufferString(`{"note":"x"}`), actorHeaders("admin-1", models.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetValidation_RoleMismatch(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	validated := true

	m.scoring.EXPECT().
		SetValidation(gomock.Any(), id, models.RoleAdmin, true, "").
		Return(fmt.Errorf("service: only admin can set admin validation: %w", models.ErrForbidden))

	w := makeRequest(router, "PUT", "/api/v1/incidents/"+id.String()+"/validations/admin",
		jsonBody(t, ValidationRequest{Validated: &validated}), actorHeaders("ngo-1", models.RoleNGO))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRecomputeIncident(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.scoring.EXPECT().
		RecomputeIncident(gomock.Any(), id).
		Return(&models.DerivedScore{InitialWeight: 3, TimeDecayFactor: 0.5, EffectiveMultiplier: 2, ContributionScore: 3}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+id.String()+"/recompute", nil, apiKeyOnly)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3.0, resp.ContributionScore)
}

func TestRecomputeIncident_NotReachableByGet(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.scoring.EXPECT().RecomputeIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/"+id.String()+"/recompute", nil, apiKeyOnly)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, "GET", "/api/v1/incidents/"+id.String()+"/score", nil, apiKeyOnly)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRegion(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	reqBody := CreateRegionRequest{
		Name:          "Kibera",
		ClusterFactor: f(1.5),
		Coordinates: GeometryDTO{
			Type:        "Polygon",
			Coordinates: json.RawMessage(`[[[36.7,-1.4],[36.9,-1.4],[36.9,-1.2],[36.7,-1.4]]]`),
		},
	}

	m.regions.EXPECT().
		CreateRegion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Region) error {
			assert.Equal(t, 1.5, r.ClusterFactor)
			r.ID = id
			r.SafetyScore = 6.0653065971
			return nil
		})

	w := makeRequest(router, "POST", "/api/v1/regions", jsonBody(t, reqBody), actorHeaders("admin-1", models.RoleAdmin))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp RegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, 6.1, resp.DisplayScore)
}

func TestLocateRegions(t *testing.T) {
	m, router := newTestHandler(t)

	m.regions.EXPECT().
		LocateRegions(gomock.Any(), -1.31, 36.78).
		Return([]*models.Region{{ID: uuid.New(), Name: "Kibera", SafetyScore: 4.2}}, nil)

	w := makeRequest(router, "GET", "/api/v1/regions/lookup?lat=-1.31&lon=36.78", nil, apiKeyOnly)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kibera")
}

func TestLocateRegions_MissingCoordinates(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/regions/lookup?lat=-1.31", nil, apiKeyOnly)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRegion(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.regions.EXPECT().
		GetRegion(gomock.Any(), id).
		Return(&models.Region{ID: id, Name: "Central", SafetyScore: 10, IncidentTypes: map[models.IncidentType]int{}}, nil)

	w := makeRequest(router, "GET", "/api/v1/regions/"+id.String(), nil, apiKeyOnly)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10.0, resp.DisplayScore)
}

func TestListRegionIncidents_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.regions.EXPECT().
		ListRegionIncidents(gomock.Any(), id).
		Return(nil, &models.NotFoundError{Entity: "region", ID: id.String()})

	w := makeRequest(router, "GET", "/api/v1/regions/"+id.String()+"/incidents", nil, apiKeyOnly)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddRegionComment(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.regions.EXPECT().
		AddComment(gomock.Any(), id, "new lights installed").
		Return(&models.Comment{ID: uuid.New(), Text: "new lights installed"}, nil)

	w := makeRequest(router, "POST", "/api/v1/regions/"+id.String()+"/comments",
		jsonBody(t, CommentRequest{Text: "new lights installed"}), actorHeaders("u1", models.RoleUser))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRecomputeRegion_RequiresAdmin(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.scoring.EXPECT().RecomputeRegion(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/regions/"+id.String()+"/recompute", nil, actorHeaders("ngo-1", models.RoleNGO))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRecomputeRegion(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.scoring.EXPECT().RecomputeRegion(gomock.Any(), id).Return(&models.Region{ID: id, SafetyScore: 0.8208}, nil)

	w := makeRequest(router, "POST", "/api/v1/regions/"+id.String()+"/recompute", nil, actorHeaders("admin-1", models.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.8, resp.DisplayScore)
}

func TestRecomputeAllRegions(t *testing.T) {
	m, router := newTestHandler(t)

	m.scoring.EXPECT().RecomputeAll(gomock.Any()).Return(7, nil)

	w := makeRequest(router, "POST", "/api/v1/regions/recompute", nil, actorHeaders("admin-1", models.RoleAdmin))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"queued":7}`, w.Body.String())
}
