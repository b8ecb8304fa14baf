package delivery

import (
	"net/http"
	"time"

	"reengage-backend/internal/tracking/repository"
	"reengage-backend/internal/tracking/usecase"

	"github.com/gin-gonic/gin"
)

// TrackingHandler handles tracking-related HTTP requests
type TrackingHandler struct {
	reconciler   usecase.Reconciler
	trackingRepo repository.TrackingRepository
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(reconciler usecase.Reconciler, trackingRepo repository.TrackingRepository) *TrackingHandler {
	return &TrackingHandler{
		reconciler:   reconciler,
		trackingRepo: trackingRepo,
	}
}

// TriggerReconcile runs one reconciliation pass for an activity on demand.
// External schedulers use this instead of the in-process ticker.
// POST /api/activities/:id/reconcile
func (h *TrackingHandler) TriggerReconcile(c *gin.Context) {
	activityID := c.Param("id")

	if err := h.reconciler.Run(c.Request.Context(), activityID, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reconciled", "activity_id": activityID})
}

// GetTracking lists the tracking records of one activity
// GET /api/activities/:id/tracking
func (h *TrackingHandler) GetTracking(c *gin.Context) {
	trackings, err := h.trackingRepo.FindByActivity(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tracking": trackings,
		"total":    len(trackings),
	})
}
