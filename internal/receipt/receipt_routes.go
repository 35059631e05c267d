package receipt

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	receipts := r.Group("/pay-receipts")
	{
		receipts.GET("", handler.GetAll)
		receipts.GET("/:id", handler.GetByID)
		receipts.POST("", handler.Create)
		receipts.PUT("/:id", handler.Update)
		receipts.PATCH("/:id", handler.Patch)
		receipts.DELETE("/:id", handler.Delete)
	}
}
