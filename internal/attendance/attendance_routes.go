package attendance

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	records := r.Group("/attendance-records")
	{
		records.GET("", handler.GetAll)
		records.GET("/:id", handler.GetByID)
		records.POST("", handler.Create)
		records.PUT("/:id", handler.Update)
		records.PATCH("/:id", handler.Patch)
		records.DELETE("/:id", handler.Delete)
	}
}
