package controllers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"convoy_tracker/internal/models"
	"convoy_tracker/internal/repository"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded HTML templates for gin.Engine.SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type DashboardController struct {
	navigation *repository.NavigationRepository
	fleet      *repository.FleetRepository
}

func NewDashboardController(navigation *repository.NavigationRepository, fleet *repository.FleetRepository) *DashboardController {
	return &DashboardController{navigation: navigation, fleet: fleet}
}

// HealthCheck is the liveness probe. It checks no dependencies.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (d *DashboardController) Index(c *gin.Context) {
	ctx := c.Request.Context()

	checkpoints, err := d.navigation.ListCheckpoints(ctx)
	if err != nil {
		logrus.WithError(err).Error("Dashboard: could not list checkpoints")
		c.String(http.StatusInternalServerError, "dashboard unavailable")
		return
	}
	vehicles, err := d.fleet.CountVehicles(ctx)
	if err != nil {
		logrus.WithError(err).Error("Dashboard: could not count vehicles")
		c.String(http.StatusInternalServerError, "dashboard unavailable")
		return
	}
	enRoute, err := d.fleet.CountConvoysByStatus(ctx, models.ConvoyEnRoute)
	if err != nil {
		logrus.WithError(err).Error("Dashboard: could not count convoys")
		c.String(http.StatusInternalServerError, "dashboard unavailable")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Checkpoints":  checkpoints,
		"VehicleCount": vehicles,
		"EnRouteCount": enRoute,
	})
}
