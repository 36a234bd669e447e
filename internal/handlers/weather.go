package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jpittelkow/toddler-schedule-app/internal/integrations"
	"github.com/jpittelkow/toddler-schedule-app/internal/middleware"
)

var weather = integrations.NewWeather()

// GetWeather returns the forecast for the stored coordinates.
func GetWeather(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	values, err := s.Settings.Values(c.Request.Context(), "latitude", "longitude", "location")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings", "details": err.Error()})
		return
	}

	lat, errLat := strconv.ParseFloat(values["latitude"], 64)
	lon, errLon := strconv.ParseFloat(values["longitude"], 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No location configured. Set one via /api/geocode"})
		return
	}

	forecast, err := weather.Current(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch weather", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location": values["location"],
		"forecast": forecast,
	})
}

// GeocodeRequest is the request body for resolving a location.
type GeocodeRequest struct {
	Address string `json:"address" binding:"required"`
}

// Geocode resolves an address and persists the coordinates for later
// weather lookups.
func Geocode(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}
	log := middleware.GetLogger(c)

	var req GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	place, err := weather.Geocode(c.Request.Context(), req.Address)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to geocode address", "details": err.Error()})
		return
	}
	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results for address", "address": req.Address})
		return
	}

	err = s.Settings.Save(c.Request.Context(), map[string]interface{}{
		"location":  place.Name,
		"latitude":  place.Latitude,
		"longitude": place.Longitude,
	})
	if err != nil {
		// The lookup succeeded; hand the result back even if it didn't stick.
		log.Warn("failed to persist geocoded location", zap.Error(err))
	}

	c.JSON(http.StatusOK, place)
}
