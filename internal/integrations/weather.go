package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	forecastBaseURL = "https://api.open-meteo.com/v1/forecast"
	geocodeBaseURL  = "https://geocoding-api.open-meteo.com/v1/search"
)

// Weather fetches forecasts and geocodes addresses via Open-Meteo, which
// needs no API key.
type Weather struct {
	client      *http.Client
	forecastURL string
	geocodeURL  string
}

// NewWeather returns a client with a bounded request timeout.
func NewWeather() *Weather {
	return &Weather{
		client:      &http.Client{Timeout: 10 * time.Second},
		forecastURL: forecastBaseURL,
		geocodeURL:  geocodeBaseURL,
	}
}

// Forecast is the current-conditions plus daily-range summary the UI shows.
type Forecast struct {
	Temperature  float64 `json:"temperature"`
	WeatherCode  int     `json:"weather_code"`
	WindSpeed    float64 `json:"wind_speed"`
	HighTemp     float64 `json:"high_temp"`
	LowTemp      float64 `json:"low_temp"`
	PrecipChance int     `json:"precip_chance"`
	FetchedAt    string  `json:"fetched_at"`
}

// Place is one geocoding result.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Admin1    string  `json:"admin1,omitempty"`
	Country   string  `json:"country,omitempty"`
}

// Current returns the forecast for the given coordinates, in Fahrenheit.
func (w *Weather) Current(ctx context.Context, lat, lon float64) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current", "temperature_2m,weather_code,wind_speed_10m")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("wind_speed_unit", "mph")
	q.Set("forecast_days", "1")
	q.Set("timezone", "auto")

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
		} `json:"current"`
		Daily struct {
			TempMax      []float64 `json:"temperature_2m_max"`
			TempMin      []float64 `json:"temperature_2m_min"`
			PrecipChance []int     `json:"precipitation_probability_max"`
		} `json:"daily"`
	}
	if err := w.getJSON(ctx, w.forecastURL+"?"+q.Encode(), &payload); err != nil {
		return nil, err
	}

	f := &Forecast{
		Temperature: payload.Current.Temperature,
		WeatherCode: payload.Current.WeatherCode,
		WindSpeed:   payload.Current.WindSpeed,
		FetchedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if len(payload.Daily.TempMax) > 0 {
		f.HighTemp = payload.Daily.TempMax[0]
	}
	if len(payload.Daily.TempMin) > 0 {
		f.LowTemp = payload.Daily.TempMin[0]
	}
	if len(payload.Daily.PrecipChance) > 0 {
		f.PrecipChance = payload.Daily.PrecipChance[0]
	}
	return f, nil
}

// Geocode resolves an address to its best-matching place, or nil when the
// geocoder has no result.
func (w *Weather) Geocode(ctx context.Context, address string) (*Place, error) {
	q := url.Values{}
	q.Set("name", address)
	q.Set("count", "1")

	var payload struct {
		Results []Place `json:"results"`
	}
	if err := w.getJSON(ctx, w.geocodeURL+"?"+q.Encode(), &payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}
	return &payload.Results[0], nil
}

func (w *Weather) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
