package department

import (
	"employee-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	departments := r.Group("/departments")
	departments.Use(middleware.ContextLogger(logger))
	departments.Use(middleware.RateLimitByIP(50, 100))
	{
		departments.GET("", handler.GetAll)
		departments.GET("/:id", handler.GetById)
		departments.POST("", handler.Create)
		departments.PUT("/:id", handler.Update)
		departments.DELETE("/:id", handler.Delete)
	}
}
