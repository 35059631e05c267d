package accessattempt

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	attempts := r.Group("/access-attempts")
	{
		attempts.GET("", handler.GetAll)
		attempts.GET("/:id", handler.GetByID)
		attempts.POST("", handler.Create)
		attempts.PUT("/:id", handler.Update)
		attempts.PATCH("/:id", handler.Update)
		attempts.DELETE("/:id", handler.Delete)
	}
}
