package auth

import (
	"github.com/miguelF21/Facepay/internal/metrics"
	"github.com/miguelF21/Facepay/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, m *metrics.Metrics) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", middleware.RequireIdentity(m), handler.Me)
	}
}
