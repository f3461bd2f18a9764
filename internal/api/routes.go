package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/themes", h.themes)
		api.POST("/visual", h.visual)
		api.GET("/share/:platform", h.shareLink)
		api.GET("/share/:platform/qr", h.shareQR)
	}
}
