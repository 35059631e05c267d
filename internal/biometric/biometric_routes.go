package biometric

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	biometrics := r.Group("/biometric-data")
	{
		biometrics.GET("", handler.GetAll)
		biometrics.GET("/:id", handler.GetByID)
		biometrics.POST("", handler.Create)
		biometrics.PUT("/:id", handler.Update)
		biometrics.PATCH("/:id", handler.Patch)
		biometrics.DELETE("/:id", handler.Delete)
	}
}
