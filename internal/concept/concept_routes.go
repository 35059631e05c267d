package concept

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	concepts := r.Group("/concepts")
	{
		concepts.GET("", handler.GetAll)
		concepts.GET("/:id", handler.GetByID)
		concepts.POST("", handler.Create)
		concepts.PUT("/:id", handler.Update)
		concepts.PATCH("/:id", handler.Patch)
		concepts.DELETE("/:id", handler.Delete)
	}
}
