package sysconfig

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	configs := r.Group("/system-config")
	{
		configs.GET("", handler.GetAll)
		configs.GET("/:id", handler.GetByID)
		configs.POST("", handler.Create)
		configs.PUT("/:id", handler.Update)
		configs.PATCH("/:id", handler.Update)
		configs.DELETE("/:id", handler.Delete)
	}
}
