package db

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/prefeitura-digital/cms-go/models"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

// SeedSettings loads default site settings from a YAML file and inserts any
// key that does not exist yet. Existing values are never overwritten, so
// admin edits survive restarts.
func SeedSettings(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Settings seed file %s not found, skipping", path)
			return nil
		}
		return err
	}

	defaults := map[string]any{}
	if err := yaml.Unmarshal(raw, &defaults); err != nil {
		return err
	}

	for key, value := range defaults {
		var existing models.Setting
		err := DB.Where("key = ?", key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		encoded, err := json.Marshal(normalizeYAML(value))
		if err != nil {
			return err
		}
		if err := DB.Create(&models.Setting{Key: key, Value: encoded}).Error; err != nil {
			return err
		}
		log.Printf("Seeded setting %q", key)
	}
	return nil
}

// normalizeYAML converts yaml.v2's map[interface{}]interface{} trees into
// JSON-encodable map[string]any.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalizeYAML(item)
		}
		return val
	default:
		return v
	}
}
