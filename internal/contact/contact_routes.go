package contact

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	contacts := r.Group("/contacts")
	{
		contacts.GET("", handler.GetAll)
		contacts.GET("/:id", handler.GetByID)
		contacts.POST("", handler.Create)
		contacts.PUT("/:id", handler.Update)
		contacts.PATCH("/:id", handler.Update)
		contacts.DELETE("/:id", handler.Delete)
	}
}
