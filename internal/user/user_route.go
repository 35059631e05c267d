package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	{
		users.GET("", handler.GetAll)
		users.GET("/:id", handler.GetByID)
		users.POST("", handler.Create)
		users.PUT("/:id", handler.Update)
		users.PATCH("/:id", handler.Patch)
		users.DELETE("/:id", handler.Delete)
	}
}
