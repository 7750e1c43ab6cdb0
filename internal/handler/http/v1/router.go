package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger), IdentityMiddleware(h.logger))

	// Маршруты для инцидентов, аудитов и валидации
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id/status", h.updateIncidentStatus)
		incidents.POST("/:id/comments", h.addIncidentComment)
		incidents.POST("/:id/audits", h.submitAudit)
		incidents.PUT("/:id/validations/:role", h.setValidation)
		incidents.POST("/:id/recompute", h.recomputeIncident)
	}

	protected.POST("/audits/preview", h.previewAudit)

	// Маршруты для регионов
	regions := protected.Group("/regions")
	{
		regions.POST("", h.createRegion)
		regions.GET("", h.listRegions)
		regions.GET("/lookup", h.locateRegions)
		regions.POST("/recompute", h.recomputeAllRegions)
		regions.GET("/:id", h.getRegion)
		regions.GET("/:id/incidents", h.listRegionIncidents)
		regions.POST("/:id/comments", h.addRegionComment)
		regions.POST("/:id/recompute", h.recomputeRegion)
	}
}
