package delivery

import (
	"net/http"

	"reengage-backend/internal/activity/domain"
	"reengage-backend/internal/activity/repository"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles activity configuration HTTP requests
type ActivityHandler struct {
	activityRepo repository.ActivityRepository
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityRepo repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activityRepo: activityRepo}
}

// CreateActivityRequest represents the request body for creating an activity
type CreateActivityRequest struct {
	CourseID          string `json:"course_id" binding:"required"`
	CourseModuleID    string `json:"course_module_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
	DurationSeconds   int64  `json:"duration_seconds" binding:"required"`
	EmailDelaySeconds int64  `json:"email_delay_seconds"`
	EmailPolicy       string `json:"email_policy"`
	ReminderLimit     int    `json:"reminder_limit"`
	EmailSubject      string `json:"email_subject"`
	EmailBody         string `json:"email_body"`
	EmailRecipient    string `json:"email_recipient"`
	ThirdPartyEmails  string `json:"third_party_emails"`
}

// CreateActivity creates a new activity configuration
// POST /api/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminderLimit := req.ReminderLimit
	if reminderLimit <= 0 {
		reminderLimit = 1
	}

	activity := &domain.Activity{
		CourseID:          req.CourseID,
		CourseModuleID:    req.CourseModuleID,
		Name:              req.Name,
		DurationSeconds:   req.DurationSeconds,
		EmailDelaySeconds: req.EmailDelaySeconds,
		EmailPolicy:       domain.ParseEmailPolicy(req.EmailPolicy),
		ReminderLimit:     reminderLimit,
		EmailSubject:      req.EmailSubject,
		EmailBody:         req.EmailBody,
		EmailRecipient:    domain.ParseRecipient(req.EmailRecipient),
		ThirdPartyEmails:  req.ThirdPartyEmails,
	}

	if err := h.activityRepo.Create(activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// GetActivities returns every configured activity
// GET /api/activities
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	activities, err := h.activityRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"total":      len(activities),
	})
}

// GetActivityByID returns one activity configuration
// GET /api/activities/:id
func (h *ActivityHandler) GetActivityByID(c *gin.Context) {
	activity, err := h.activityRepo.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if activity == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}

	c.JSON(http.StatusOK, activity)
}
