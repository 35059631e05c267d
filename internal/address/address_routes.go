package address

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	addresses := r.Group("/addresses")
	{
		addresses.GET("", handler.GetAll)
		addresses.GET("/:id", handler.GetByID)
		addresses.POST("", handler.Create)
		addresses.PUT("/:id", handler.Update)
		addresses.PATCH("/:id", handler.Update)
		addresses.DELETE("/:id", handler.Delete)
	}
}
