package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpittelkow/toddler-schedule-app/internal/middleware"
)

// RetentionDays is how long schedules and history rows are kept.
const RetentionDays = 30

// Cleanup prunes schedules and history older than the retention window.
func Cleanup(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	schedulesDeleted, err := s.Schedules.DeleteOlderThan(c.Request.Context(), RetentionDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cleanup schedules", "details": err.Error()})
		return
	}

	historyDeleted, err := s.History.DeleteOlderThan(c.Request.Context(), RetentionDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cleanup history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"schedules_deleted": schedulesDeleted,
		"history_deleted":   historyDeleted,
	})
}
