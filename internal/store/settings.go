package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpittelkow/toddler-schedule-app/internal/models"
)

// Settings is the key/value settings provider plus the kids list.
type Settings struct {
	pool *pgxpool.Pool
}

// Keys decoded to non-string types on load.
var (
	boolSettingKeys = map[string]bool{
		"enable_home_assistant":      true,
		"enable_voice_announcements": true,
		"enable_light_automations":   true,
	}
	intSettingKeys = map[string]bool{
		"baby_nap_duration":    true,
		"toddler_nap_duration": true,
	}
	floatSettingKeys = map[string]bool{
		"latitude":  true,
		"longitude": true,
	}
	jsonSettingKeys = map[string]bool{
		"school_days": true,
	}
)

// Load returns every setting with values decoded to their natural types,
// plus the kids list under the "kids" key.
func (s *Settings) Load(ctx context.Context) (models.SettingsResponse, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := models.SettingsResponse{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings[key] = decodeSetting(key, value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	kids, err := s.Kids(ctx)
	if err != nil {
		return nil, err
	}
	settings["kids"] = kids

	return settings, nil
}

func decodeSetting(key, value string) interface{} {
	switch {
	case jsonSettingKeys[key]:
		var decoded interface{}
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			return decoded
		}
		return value
	case boolSettingKeys[key]:
		return value == "true"
	case intSettingKeys[key]:
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		return value
	case floatSettingKeys[key]:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		return value
	default:
		return value
	}
}

func encodeSetting(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		// JSON numbers decode as float64; keep integral values unsuffixed.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), nil
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode setting value: %w", err)
		}
		return string(raw), nil
	}
}

// Save upserts the given settings and, when a "kids" entry is present,
// syncs the kids table in the same transaction: removed kids deleted,
// existing rows updated, new rows inserted.
func (s *Settings) Save(ctx context.Context, updates map[string]interface{}) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for key, value := range updates {
		if key == "kids" {
			continue
		}
		encoded, err := encodeSetting(value)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO settings (key, value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()
		`, key, encoded)
		if err != nil {
			return fmt.Errorf("failed to upsert setting %s: %w", key, err)
		}
	}

	if rawKids, ok := updates["kids"]; ok {
		kids, err := decodeKids(rawKids)
		if err != nil {
			return err
		}

		keepIDs := []int{}
		for _, k := range kids {
			if k.ID != 0 {
				keepIDs = append(keepIDs, k.ID)
			}
		}
		if len(keepIDs) > 0 {
			_, err = tx.Exec(ctx, `DELETE FROM kids WHERE NOT (id = ANY($1))`, keepIDs)
		} else {
			_, err = tx.Exec(ctx, `DELETE FROM kids`)
		}
		if err != nil {
			return fmt.Errorf("failed to remove kids: %w", err)
		}

		for _, k := range kids {
			if k.ID != 0 {
				_, err = tx.Exec(ctx, `
					INSERT INTO kids (id, name, age, color)
					VALUES ($1, $2, $3, $4)
					ON CONFLICT (id) DO UPDATE SET name = $2, age = $3, color = $4
				`, k.ID, k.Name, k.Age, k.Color)
			} else {
				_, err = tx.Exec(ctx, `INSERT INTO kids (name, age, color) VALUES ($1, $2, $3)`,
					k.Name, k.Age, k.Color)
			}
			if err != nil {
				return fmt.Errorf("failed to save kid %s: %w", k.Name, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}

func decodeKids(raw interface{}) ([]models.Kid, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, &models.ValidationError{Field: "kids", Reason: "invalid kids payload"}
	}
	var kids []models.Kid
	if err := json.Unmarshal(encoded, &kids); err != nil {
		return nil, &models.ValidationError{Field: "kids", Reason: "invalid kids payload"}
	}
	return kids, nil
}

// Kids returns the configured children, oldest first.
func (s *Settings) Kids(ctx context.Context) ([]models.Kid, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, age, color FROM kids ORDER BY age DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query kids: %w", err)
	}
	defer rows.Close()

	kids := []models.Kid{}
	for rows.Next() {
		var k models.Kid
		if err := rows.Scan(&k.ID, &k.Name, &k.Age, &k.Color); err != nil {
			return nil, fmt.Errorf("failed to scan kid: %w", err)
		}
		kids = append(kids, k)
	}
	return kids, rows.Err()
}

// Daily returns the typed settings the template builder consumes.
func (s *Settings) Daily(ctx context.Context) (models.DailySettings, error) {
	loaded, err := s.Load(ctx)
	if err != nil {
		return models.DailySettings{}, err
	}
	return models.DailySettingsFromMap(loaded), nil
}

// Values fetches a subset of raw string settings (no type decoding), for
// callers like the webhook relay that only need a few keys.
func (s *Settings) Values(ctx context.Context, keys ...string) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, value FROM settings WHERE key = ANY($1)`, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		values[key] = value
	}
	return values, rows.Err()
}
