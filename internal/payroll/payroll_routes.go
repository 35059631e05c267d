package payroll

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payrolls := r.Group("/payroll-records")
	{
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/:id", handler.GetByID)
		payrolls.POST("", handler.Create)
		payrolls.PUT("/:id", handler.Update)
		payrolls.PATCH("/:id", handler.Patch)
		payrolls.DELETE("/:id", handler.Delete)
	}
}
