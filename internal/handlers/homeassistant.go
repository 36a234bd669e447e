package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jpittelkow/toddler-schedule-app/internal/integrations"
	"github.com/jpittelkow/toddler-schedule-app/internal/middleware"
)

var homeAssistant = integrations.NewHomeAssistant()

// RelayWebhook forwards the request body to the configured Home Assistant
// webhook. When the integration is disabled this is a success no-op so the
// UI never has to special-case it.
func RelayWebhook(c *gin.Context) {
	s, ok := middleware.GetStores(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	values, err := s.Settings.Values(c.Request.Context(),
		"home_assistant_url", "webhook_id", "enable_home_assistant")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings", "details": err.Error()})
		return
	}

	if values["enable_home_assistant"] != "true" {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Home Assistant disabled"})
		return
	}

	err = homeAssistant.Send(c.Request.Context(), values["home_assistant_url"], values["webhook_id"], payload)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to relay to Home Assistant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// relayEvent ships a server-side event to Home Assistant without holding up
// the request. Failures are logged and swallowed; the relay is telemetry,
// not part of the schedule contract.
func relayEvent(c *gin.Context, event string, data gin.H) {
	s, ok := middleware.GetStores(c)
	if !ok {
		return
	}
	log := middleware.GetLogger(c)

	values, err := s.Settings.Values(c.Request.Context(),
		"home_assistant_url", "webhook_id", "enable_home_assistant",
		"enable_voice_announcements", "enable_light_automations")
	if err != nil {
		log.Warn("failed to load relay settings", zap.Error(err))
		return
	}
	if values["enable_home_assistant"] != "true" {
		return
	}

	payload := gin.H{
		"event":         event,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"enable_voice":  values["enable_voice_announcements"] == "true",
		"enable_lights": values["enable_light_automations"] == "true",
	}
	for k, v := range data {
		payload[k] = v
	}

	baseURL, webhookID := values["home_assistant_url"], values["webhook_id"]
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := homeAssistant.Send(ctx, baseURL, webhookID, payload); err != nil {
			log.Warn("home assistant relay failed", zap.String("event", event), zap.Error(err))
		}
	}()
}
