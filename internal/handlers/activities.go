package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jpittelkow/toddler-schedule-app/internal/middleware"
	"github.com/jpittelkow/toddler-schedule-app/internal/models"
	"github.com/jpittelkow/toddler-schedule-app/internal/store"
)

// ListActivities returns the catalog, optionally filtered by ?season=.
func ListActivities(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	season := c.Query("season")
	if season != "" && !models.ValidSeason(season) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown season", "season": season})
		return
	}

	activities, err := s.Activities.List(c.Request.Context(), season)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query activities", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}

// CreateActivity adds a user-defined catalog entry.
func CreateActivity(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var draft models.ActivityDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	activity, err := s.Activities.Create(c.Request.Context(), draft)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason, "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// DeleteActivity removes a user-added entry; default entries are protected.
func DeleteActivity(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID format"})
		return
	}

	err = s.Activities.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
	case errors.Is(err, store.ErrDefaultActivity):
		c.JSON(http.StatusForbidden, gin.H{"error": "Default activities cannot be deleted"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity", "details": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// RateActivityRequest is the request body for rating an activity.
type RateActivityRequest struct {
	Date  string `json:"date" binding:"required"`
	Value int    `json:"value" binding:"required"`
}

// RateActivity records a thumbs up/down for an activity on a date. One
// rating per activity per date: repeating the same value is a no-op, a
// different value flips the counters.
func RateActivity(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID format"})
		return
	}

	var req RateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := s.Ratings.Apply(c.Request.Context(), id, req.Date, req.Value)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason, "field": verr.Field})
		case errors.Is(err, store.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply rating", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRatings returns the votes recorded on one date, keyed by activity id.
func GetRatings(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	date := c.Param("date")
	ratings, err := s.Ratings.ForDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query ratings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    date,
		"ratings": ratings,
	})
}
