package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Create a region
// @Description Create a region polygon. Admin only. The region is scored immediately.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param region body CreateRegionRequest true "Region creation request"
// @Success 201 {object} RegionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /regions [post]
func (h *Handler) createRegion(c *gin.Context) {
	var input CreateRegionRequest
	log := h.logger.WithField("method", "createRegion")

	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToRegionModel(input)
	if err := h.regionService.CreateRegion(c.Request.Context(), model); err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToRegionResponse(model))
}

// @Summary Get a list of regions
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {array} RegionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /regions [get]
func (h *Handler) listRegions(c *gin.Context) {
	log := h.logger.WithField("method", "listRegions")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	regions, err := h.regionService.ListRegions(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionResponses(regions))
}

// @Summary Find regions containing a point
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {array} RegionResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /regions/lookup [get]
func (h *Handler) locateRegions(c *gin.Context) {
	var query LocateRegionsQuery
	log := h.logger.WithField("method", "locateRegions")

	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid coordinates"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	regions, err := h.regionService.LocateRegions(c.Request.Context(), *query.Lat, *query.Lon)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionResponses(regions))
}

// @Summary Get region by ID
// @Description Get a region with its safety score and comments.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Success 200 {object} RegionResponse
// @Failure 400 {object} ErrorResponse "Invalid region ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Region not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /regions/{id} [get]
func (h *Handler) getRegion(c *gin.Context) {
	id, ok := parseID(c, "region")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getRegion").WithField("id", id)

	region, err := h.regionService.GetRegion(c.Request.Context(), id)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRegionResponse(region))
}

// @Summary List incidents inside a region
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid region ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Region not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /regions/{id}/incidents [get]
func (h *Handler) listRegionIncidents(c *gin.Context) {
	id, ok := parseID(c, "region")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listRegionIncidents").WithField("id", id)

	incidents, err := h.regionService.ListRegionIncidents(c.Request.Context(), id)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Comment on a region
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Param comment body CommentRequest true "Comment"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} ErrorResponse "Invalid region ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Author identity missing"
// @Failure 404 {object} ErrorResponse "Region not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /regions/{id}/comments [post]
func (h *Handler) addRegionComment(c *gin.Context) {
	id, ok := parseID(c, "region")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "addRegionComment").WithField("id", id)

	var input CommentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	comment, err := h.regionService.AddComment(c.Request.Context(), id, input.Text)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCommentResponse(comment))
}

// @Summary Recompute a region now
// @Description Recompute the safety score of a region synchronously. Admin only.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Success 200 {object} RegionResponse
// @Failure 400 {object} ErrorResponse "Invalid region ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Region not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /regions/{id}/recompute [post]
func (h *Handler) recomputeRegion(c *gin.Context) {
	id, ok := parseID(c, "region")
	if !ok {
		return
	}
	if !requireAdmin(c) {
		return
	}
	log := h.logger.WithField("method", "recomputeRegion").WithField("id", id)

	region, err := h.scoringService.RecomputeRegion(c.Request.Context(), id)
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRegionResponse(region))
}

// @Summary Queue all regions for recomputation
// @Description Mark every region for asynchronous recomputation. Admin only.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 202 {object} RecomputeAllResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /regions/recompute [post]
func (h *Handler) recomputeAllRegions(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	log := h.logger.WithField("method", "recomputeAllRegions")

	count, err := h.scoringService.RecomputeAll(c.Request.Context())
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, RecomputeAllResponse{Queued: count})
}
