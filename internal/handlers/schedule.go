package handlers

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jpittelkow/toddler-schedule-app/internal/middleware"
	"github.com/jpittelkow/toddler-schedule-app/internal/models"
	"github.com/jpittelkow/toddler-schedule-app/internal/schedule"
	"github.com/jpittelkow/toddler-schedule-app/internal/store"
)

const dateLayout = "2006-01-02"

func scheduleKey(c *gin.Context) (date, dayType string, ok bool) {
	date = c.Param("date")
	if _, err := time.Parse(dateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return "", "", false
	}
	dayType = c.Param("type")
	if !models.ValidDayType(dayType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day type. Use school or home"})
		return "", "", false
	}
	return date, dayType, true
}

// GetSchedule returns the schedule for (date, day type), generating and
// persisting one on first request. Repeat requests return the stored
// mapping unchanged, so the displayed day never reshuffles on reload.
func GetSchedule(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	log := middleware.GetLogger(c)

	date, dayType, ok := scheduleKey(c)
	if !ok {
		return
	}

	settings, err := s.Settings.Daily(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings", "details": err.Error()})
		return
	}

	gen := schedule.Generator{Store: s.Schedules, Catalog: s.Activities, Log: log}
	activities, generated, err := gen.GetOrCreate(c.Request.Context(), date, dayType, settings)
	if err != nil {
		var ferr *schedule.FormatError
		if errors.As(err, &ferr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Settings contain an invalid time", "details": ferr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate schedule", "details": err.Error()})
		return
	}

	template, err := schedule.BuildTemplate(settings, dayType == models.DayTypeSchool)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template", "details": err.Error()})
		return
	}

	if generated {
		relayEvent(c, "schedule_generated", gin.H{
			"day_type":   dayType,
			"date":       date,
			"activities": activities,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       date,
		"day_type":   dayType,
		"generated":  generated,
		"activities": activities,
		"schedule":   template.Merge(activities),
	})
}

// DeleteSchedule clears the stored mapping so the next request regenerates.
func DeleteSchedule(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	date, dayType, ok := scheduleKey(c)
	if !ok {
		return
	}

	if err := s.Schedules.Delete(c.Request.Context(), date, dayType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RefreshSlotRequest optionally lists names to exclude beyond the ones
// already in the stored schedule.
type RefreshSlotRequest struct {
	ExcludeNames []string `json:"exclude_names,omitempty"`
}

// RefreshSlot re-picks a single slot's activity (uniform, non-weighted),
// excluding names already in use, and persists just that slot.
func RefreshSlot(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	log := middleware.GetLogger(c)

	date, dayType, ok := scheduleKey(c)
	if !ok {
		return
	}
	slotKey := c.Param("slot")

	var req RefreshSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = RefreshSlotRequest{}
	}

	existing, err := s.Schedules.Read(c.Request.Context(), date, dayType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read schedule", "details": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No schedule stored for this date"})
		return
	}
	if _, found := existing.Activities[slotKey]; !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown slot", "slot": slotKey})
		return
	}

	settings, err := s.Settings.Daily(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings", "details": err.Error()})
		return
	}

	pool, err := s.Activities.List(c.Request.Context(), settings.CurrentSeason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities", "details": err.Error()})
		return
	}

	exclude := map[string]bool{}
	if current, found := existing.Activities[slotKey]; found {
		exclude[current.Name] = true
	}
	for _, name := range req.ExcludeNames {
		exclude[name] = true
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	picked, found := schedule.RefreshOne(rng, pool, exclude)
	if !found {
		c.JSON(http.StatusConflict, gin.H{"error": "No alternative activities available"})
		return
	}

	snapshot := picked.Snapshot()
	if err := s.Schedules.ReplaceSlot(c.Request.Context(), date, dayType, slotKey, snapshot); err != nil {
		if errors.Is(err, store.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No schedule stored for this date"})
			return
		}
		// Non-critical write: hand the caller the pick anyway.
		log.Warn("slot replace failed, returning unsaved pick",
			zap.String("date", date), zap.String("slot", slotKey), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"slot":     slotKey,
		"activity": snapshot,
	})
}

// GetWeek returns stored schedules for 7 consecutive dates; days without a
// stored schedule come back null (listing never generates).
func GetWeek(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	start := c.DefaultQuery("start", time.Now().Format(dateLayout))
	if _, err := time.Parse(dateLayout, start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date. Use YYYY-MM-DD"})
		return
	}
	dayType := c.DefaultQuery("type", models.DayTypeHome)
	if !models.ValidDayType(dayType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day type. Use school or home"})
		return
	}

	week, err := s.Schedules.ListWeek(c.Request.Context(), start, dayType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list week", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"start":    start,
		"day_type": dayType,
		"days":     week,
	})
}
