package recognition

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	results := r.Group("/recognition-results")
	{
		results.GET("", handler.GetAll)
		results.GET("/:id", handler.GetByID)
		results.POST("", handler.Create)
		results.PUT("/:id", handler.Update)
		results.PATCH("/:id", handler.Patch)
		results.DELETE("/:id", handler.Delete)
	}
}
