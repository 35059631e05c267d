package report

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	{
		reports.GET("", handler.GetAll)
		reports.GET("/:id", handler.GetByID)
		reports.POST("", handler.Create)
		reports.PUT("/:id", handler.Update)
		reports.PATCH("/:id", handler.Update)
		reports.DELETE("/:id", handler.Delete)
	}
}
