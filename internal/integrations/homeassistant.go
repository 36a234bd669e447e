// Package integrations holds the outbound HTTP clients: the Home Assistant
// webhook relay and the Open-Meteo weather/geocoding client. Both are
// best-effort collaborators; their failures are logged by callers, never
// turned into schedule failures.
package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HomeAssistant relays events to a Home Assistant webhook.
type HomeAssistant struct {
	client *http.Client
}

// NewHomeAssistant returns a relay with a bounded request timeout.
func NewHomeAssistant() *HomeAssistant {
	return &HomeAssistant{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts the payload to {baseURL}/api/webhook/{webhookID}.
func (h *HomeAssistant) Send(ctx context.Context, baseURL, webhookID string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/webhook/%s", baseURL, webhookID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
