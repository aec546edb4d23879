package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"convoy_tracker/internal/services"
)

type NavigationController struct {
	navigation *services.NavigationService
	sync       *services.SyncService
}

func NewNavigationController(navigation *services.NavigationService, sync *services.SyncService) *NavigationController {
	return &NavigationController{navigation: navigation, sync: sync}
}

type smartRouteInput struct {
	StartCheckpointID string `json:"start_checkpoint_id" binding:"required"`
	EndCheckpointID   string `json:"end_checkpoint_id" binding:"required"`
}

// GetSmartRoute synthesizes a route between two stored checkpoints.
// Unknown checkpoints answer 404 with an error body.
func (n *NavigationController) GetSmartRoute(c *gin.Context) {
	var input smartRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("GetSmartRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both start_checkpoint_id and end_checkpoint_id are required."})
		return
	}

	route, err := n.navigation.SmartRoute(c.Request.Context(), input.StartCheckpointID, input.EndCheckpointID)
	if err != nil {
		if errors.Is(err, services.ErrCheckpointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).Error("GetSmartRoute: route synthesis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate route"})
		return
	}

	c.JSON(http.StatusOK, route)
}

// OfflineData returns every checkpoint and route for client-side caching.
func (n *NavigationController) OfflineData(c *gin.Context) {
	data, err := n.navigation.OfflineData(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("OfflineData: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load offline data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkpoints": toCheckpointResponses(data.Checkpoints),
		"routes":      toRouteResponses(data.Routes),
	})
}

type syncInput struct {
	LastSyncTimestamp string `json:"last_sync_timestamp" binding:"required"`
}

// Sync returns rows changed after last_sync_timestamp along with the
// server time the client must send on its next call.
func (n *NavigationController) Sync(c *gin.Context) {
	var input syncInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "last_sync_timestamp is required."})
		return
	}

	result, err := n.sync.Delta(c.Request.Context(), input.LastSyncTimestamp)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTimestamp) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timestamp format. Use ISO 8601."})
			return
		}
		logrus.WithError(err).Error("Sync: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load changes"})
		return
	}

	logrus.WithFields(logrus.Fields{
		"since":       input.LastSyncTimestamp,
		"checkpoints": len(result.Checkpoints),
		"routes":      len(result.Routes),
	}).Debug("delta sync served")

	c.JSON(http.StatusOK, gin.H{
		"updated_checkpoints": toCheckpointResponses(result.Checkpoints),
		"updated_routes":      toRouteResponses(result.Routes),
		"current_server_time": result.ServerTime,
	})
}
