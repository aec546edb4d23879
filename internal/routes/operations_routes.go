package routes

import (
	"convoy_tracker/internal/controllers"
	"github.com/gin-gonic/gin"
)

func OperationsRoutes(r *gin.Engine, fleet *controllers.FleetController) {
	api := r.Group("/api")
	{
		api.GET("/fleet-status/", fleet.FleetStatus)
		api.GET("/active-convoys/", fleet.ActiveConvoys)
	}
}
