package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jpittelkow/toddler-schedule-app/internal/middleware"
)

// LogActivityRequest is the request body for recording a started activity.
type LogActivityRequest struct {
	ActivityID   string `json:"activity_id"`
	ActivityName string `json:"activity_name" binding:"required"`
	ActivityType string `json:"activity_type"`
}

// LogActivity appends to the activity history. Log-and-continue path: a
// failed insert still returns success so the UI never blocks on telemetry.
func LogActivity(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	log := middleware.GetLogger(c)

	var req LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	err := s.History.Log(c.Request.Context(), req.ActivityID, req.ActivityName, req.ActivityType)
	if err != nil {
		log.Warn("activity log write failed", zap.String("activity", req.ActivityName), zap.Error(err))
	}

	relayEvent(c, "activity_started", gin.H{
		"activity_id":   req.ActivityID,
		"activity_name": req.ActivityName,
		"activity_type": req.ActivityType,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetActivityHistory returns the last 7 days of started activities.
func GetActivityHistory(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	entries, err := s.History.Recent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
