package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_scoring_system/internal/models"
)

// @Summary Report a new incident
// @Description Create an incident report on behalf of X-User-ID. The incident is scored immediately.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Reporter ID"
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Reporter identity missing"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, optionally filtered by status and type.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status filter" Enums(pending, verified, resolved, invalid)
// @Param incident_type query string false "Type filter" Enums(gbv, unsafe_area, no_lights, other)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := models.IncidentFilter{
		Status:       models.IncidentStatus(c.Query("status")),
		IncidentType: models.IncidentType(c.Query("incident_type")),
		Page:         page,
		PageSize:     pageSize,
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get an incident with its audits, comments and a score evaluated at request time.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Change incident status
// @Description Set the review status of an incident. Admin only.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid incident ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.incidentService.UpdateStatus(c.Request.Context(), id, models.IncidentStatus(input.Status)); err != nil {
		writeError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Comment on an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param comment body CommentRequest true "Comment"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} ErrorResponse "Invalid incident ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Author identity missing"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/comments [post]
func (h *Handler) addIncidentComment(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "addIncidentComment").WithField("id", id)

	var input CommentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	comment, err := h.incidentService.AddComment(c.Request.Context(), id, input.Text)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCommentResponse(comment))
}

// @Summary Submit an environmental audit
// @Description Record an audit of an incident location. Admin or NGO only.
// @Tags Audits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param audit body AuditRequest true "Audit parameters, 0 is safest and 1 is riskiest"
// @Success 201 {object} AuditResponse
// @Failure 400 {object} ErrorResponse "Invalid incident ID or audit parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Auditor role required"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/audits [post]
func (h *Handler) submitAudit(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "submitAudit").WithField("id", id)

	var input AuditRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	audit, err := h.scoringService.SubmitAudit(c.Request.Context(), id, DTOToAuditParams(input), input.Notes)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAuditResponse(audit))
}

// @Summary Preview an audit score
// @Description Compute s_env and risk level for audit parameters without saving anything.
// @Tags Audits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param audit body AuditRequest true "Audit parameters"
// @Success 200 {object} AuditPreviewResponse
// @Failure 400 {object} ErrorResponse "Invalid audit parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /audits/preview [post]
func (h *Handler) previewAudit(c *gin.Context) {
	log := h.logger.WithField("method", "previewAudit")

	var input AuditRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	sEnv, risk, err := h.scoringService.PreviewAudit(DTOToAuditParams(input))
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AuditPreviewResponse{SEnv: sEnv, RiskLevel: string(risk)})
}

// @Summary Set or clear a validation flag
// @Description Set the admin or ngo validation of an incident. The actor role must match the path role.
// @Tags Audits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param role path string true "Validation role" Enums(admin, ngo)
// @Param validation body ValidationRequest true "Validation flag"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid incident ID, role or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Actor role does not match"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/validations/{role} [put]
func (h *Handler) setValidation(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	role := models.Role(c.Param("role"))
	log := h.logger.WithField("method", "setValidation").WithField("id", id).WithField("role", role)

	var input ValidationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.scoringService.SetValidation(c.Request.Context(), id, role, *input.Validated, input.Note); err != nil {
		writeError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Recompute incident score
// @Description Recompute the incident contribution at request time, store it and queue affected regions. GET /incidents/{id} returns a fresh score without storing it.
// @Tags Audits
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} ScoreResponse
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/recompute [post]
func (h *Handler) recomputeIncident(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "recomputeIncident").WithField("id", id)

	score, err := h.scoringService.RecomputeIncident(c.Request.Context(), id)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToScoreResponse(score))
}
