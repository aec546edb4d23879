package routes

import (
	"convoy_tracker/internal/controllers"
	"github.com/gin-gonic/gin"
)

// NavigationRoutes mounts the navigation API under /api and again under
// /navigation/api, the prefix the bundled front-end calls.
func NavigationRoutes(r *gin.Engine, nav *controllers.NavigationController) {
	for _, prefix := range []string{"/api", "/navigation/api"} {
		g := r.Group(prefix)
		{
			g.POST("/get-smart-route/", nav.GetSmartRoute)
			g.GET("/offline-data/", nav.OfflineData)
			g.POST("/sync/", nav.Sync)
		}
	}
}
