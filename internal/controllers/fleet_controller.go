package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"convoy_tracker/internal/repository"
)

type FleetController struct {
	fleet *repository.FleetRepository
}

func NewFleetController(fleet *repository.FleetRepository) *FleetController {
	return &FleetController{fleet: fleet}
}

// FleetStatus lists every vehicle in the fleet.
func (f *FleetController) FleetStatus(c *gin.Context) {
	vehicles, err := f.fleet.ListVehicles(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("FleetStatus: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles"})
		return
	}
	c.JSON(http.StatusOK, toVehicleResponses(vehicles))
}

// ActiveConvoys lists every convoy with its vehicles. Convoys are not
// filtered by status.
func (f *FleetController) ActiveConvoys(c *gin.Context) {
	convoys, err := f.fleet.ListConvoys(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ActiveConvoys: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing convoys"})
		return
	}
	c.JSON(http.StatusOK, toConvoyResponses(convoys))
}
