// File: internal/config/file.go
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// validKeys is the persistable key set for `config set`/`get`/`unset`.
var validKeys = map[string]bool{
	"progress_mode":  true,
	"exclude_hidden": true,
	"debug":          true,
	"log_level":      true,
	"aws.region":     true,
	"aws.endpoint":   true,
	"aws.access_key": true,
	"aws.secret_key": true,
	"gcp.project":    true,
}

func loadFileValues() (map[string]any, string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, configPath, nil
		}
		return nil, "", fmt.Errorf("error reading config file: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, "", fmt.Errorf("error parsing config file: %w", err)
	}
	return values, configPath, nil
}

func saveFileValues(values map[string]any, configPath string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

func splitKey(key string) (section, field string, err error) {
	if !validKeys[key] {
		return "", "", fmt.Errorf("unknown config key: %s", key)
	}
	parts := strings.SplitN(key, ".", 2)
	if len(parts) == 1 {
		return "", parts[0], nil
	}
	return parts[0], parts[1], nil
}

// SetValue persists a dotted key (e.g. "aws.region") to the config file.
func SetValue(key, value string) error {
	section, field, err := splitKey(key)
	if err != nil {
		return err
	}

	values, configPath, err := loadFileValues()
	if err != nil {
		return err
	}

	if section == "" {
		values[field] = value
	} else {
		nested, ok := values[section].(map[string]any)
		if !ok {
			nested = map[string]any{}
		}
		nested[field] = value
		values[section] = nested
	}

	return saveFileValues(values, configPath)
}

// GetValue reads a dotted key from the config file.
func GetValue(key string) (string, bool, error) {
	section, field, err := splitKey(key)
	if err != nil {
		return "", false, err
	}

	values, _, err := loadFileValues()
	if err != nil {
		return "", false, err
	}

	var raw any
	var ok bool
	if section == "" {
		raw, ok = values[field]
	} else {
		nested, found := values[section].(map[string]any)
		if !found {
			return "", false, nil
		}
		raw, ok = nested[field]
	}
	if !ok {
		return "", false, nil
	}

	return fmt.Sprintf("%v", raw), true, nil
}

// DeleteValue removes a dotted key from the config file. Returns false when
// the key had no value.
func DeleteValue(key string) (bool, error) {
	section, field, err := splitKey(key)
	if err != nil {
		return false, err
	}

	values, configPath, err := loadFileValues()
	if err != nil {
		return false, err
	}

	if section == "" {
		if _, ok := values[field]; !ok {
			return false, nil
		}
		delete(values, field)
	} else {
		nested, found := values[section].(map[string]any)
		if !found {
			return false, nil
		}
		if _, ok := nested[field]; !ok {
			return false, nil
		}
		delete(nested, field)
		if len(nested) == 0 {
			delete(values, section)
		} else {
			values[section] = nested
		}
	}

	if err := saveFileValues(values, configPath); err != nil {
		return false, err
	}
	return true, nil
}

// RenderValues returns the persisted config rendered as YAML.
func RenderValues() (string, error) {
	values, _, err := loadFileValues()
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", nil
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("error encoding config: %w", err)
	}
	return string(data), nil
}
