package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"convoy_tracker/internal/controllers"
	"convoy_tracker/internal/middleware"
)

const healthPath = "/api/health-check/"

// Handlers bundles the controllers the router mounts.
type Handlers struct {
	Navigation *controllers.NavigationController
	Fleet      *controllers.FleetController
	Dashboard  *controllers.DashboardController
}

func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()

	// Recovery middleware
	r.Use(gin.Recovery())
	// Request logging middleware, written through logrus so access lines
	// land in the same rotated file as everything else
	r.Use(ginlog.SetLogger(
		ginlog.WithWriter(logrus.StandardLogger().WriterLevel(logrus.InfoLevel)),
		ginlog.WithUTC(true),
		ginlog.WithSkipPath([]string{healthPath}),
	))
	r.Use(middleware.APIVersion(controllers.APIVersion))

	r.SetHTMLTemplate(controllers.Templates())

	DashboardRoutes(r, h.Dashboard)
	OperationsRoutes(r, h.Fleet)
	NavigationRoutes(r, h.Navigation)

	return r
}
