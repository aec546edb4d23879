package routes

import (
	"convoy_tracker/internal/controllers"
	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.Engine, dashboard *controllers.DashboardController) {
	r.GET("/", dashboard.Index)
	r.GET(healthPath, controllers.HealthCheck)
}
