package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/safety_scoring_system/internal/config"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/service"
	"github.com/shenikar/safety_scoring_system/pkg/requestcontext"
	"github.com/sirupsen/logrus"
)

// QueueStats сообщает глубину очереди пересчета для health-check
type QueueStats interface {
	Pending(ctx context.Context) (int64, error)
}

type Handler struct {
	incidentService service.IncidentService
	regionService   service.RegionService
	scoringService  service.ScoringService
	queue           QueueStats
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	regionService service.RegionService,
	scoringService service.ScoringService,
	queue QueueStats,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		regionService:   regionService,
		scoringService:  scoringService,
		queue:           queue,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bindJSON читает и валидирует тело запроса; при ошибке отвечает 400 и возвращает false
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// parseID разбирает UUID из параметра пути
func parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// requireAdmin отвечает 403, если участник запроса не администратор
func requireAdmin(c *gin.Context) bool {
	actor, ok := requestcontext.Actor(c.Request.Context())
	if !ok || actor.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "admin role required"})
		return false
	}
	return true
}

// writeError переводит ошибку сервиса в HTTP-ответ
func writeError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		inputErr    *models.InvalidInputError
		notFoundErr *models.NotFoundError
	)
	switch {
	case errors.As(err, &inputErr):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: inputErr.Error()})
	case errors.Is(err, models.ErrInvalidInput):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrForbidden):
		log.WithError(err).Warn("Forbidden request")
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.As(err, &notFoundErr):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundErr.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application and the recompute queue depth
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if h.queue != nil {
		pending, err := h.queue.Pending(c.Request.Context())
		if err != nil {
			h.logger.WithError(err).Warn("Failed to read recompute queue depth")
			resp.Status = "degraded"
		} else {
			resp.PendingRecompute = &pending
		}
	}
	c.JSON(http.StatusOK, resp)
}
