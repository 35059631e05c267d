package auditlog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	logs := r.Group("/audit-logs")
	{
		logs.GET("", handler.GetAll)
		logs.GET("/:id", handler.GetByID)
		logs.POST("", handler.Create)
		logs.PUT("/:id", handler.Update)
		logs.PATCH("/:id", handler.Update)
		logs.DELETE("/:id", handler.Delete)
	}
}
