package authtoken

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	tokens := r.Group("/auth-tokens")
	{
		tokens.GET("", handler.GetAll)
		tokens.GET("/:id", handler.GetByID)
		tokens.POST("", handler.Create)
		tokens.PUT("/:id", handler.Update)
		tokens.PATCH("/:id", handler.Patch)
		tokens.DELETE("/:id", handler.Delete)
	}
}
