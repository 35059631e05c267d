package terminal

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	terminals := r.Group("/terminals")
	{
		terminals.GET("", handler.GetAll)
		terminals.GET("/:id", handler.GetByID)
		terminals.POST("", handler.Create)
		terminals.PUT("/:id", handler.Update)
		terminals.PATCH("/:id", handler.Update)
		terminals.DELETE("/:id", handler.Delete)
	}
}
