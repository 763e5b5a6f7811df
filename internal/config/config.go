// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config.yaml"
	ConfigDirName  = "s3lync"

	ProgressModeBar      = "progress"
	ProgressModeCompact  = "compact"
	ProgressModeDisabled = "disabled"
)

type AWSSettings struct {
	Region    string `mapstructure:"region" yaml:"region,omitempty"`
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key,omitempty"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key,omitempty"`
}

type GCPSettings struct {
	Project string `mapstructure:"project" yaml:"project,omitempty"`
}

// Settings is the read-only snapshot threaded into the engine at call time.
// Each field resolves with precedence environment > runtime override >
// config file > built-in default.
type Settings struct {
	ProgressMode  string      `mapstructure:"progress_mode" validate:"oneof=progress compact disabled"`
	ExcludeHidden bool        `mapstructure:"exclude_hidden"`
	Debug         bool        `mapstructure:"debug"`
	LogLevel      string      `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	AWS           AWSSettings `mapstructure:"aws"`
	GCP           GCPSettings `mapstructure:"gcp"`
}

func Defaults() Settings {
	return Settings{
		ProgressMode:  ProgressModeBar,
		ExcludeHidden: true,
		LogLevel:      "info",
	}
}

// envVars maps a settings key to the environment variables that override it,
// checked in order.
var envVars = map[string][]string{
	"progress_mode":  {"S3LYNC_PROGRESS_MODE"},
	"exclude_hidden": {"S3LYNC_EXCLUDE_HIDDEN"},
	"debug":          {"S3LYNC_DEBUG"},
	"log_level":      {"S3LYNC_LOG_LEVEL"},
	"aws.region":     {"AWS_REGION", "AWS_DEFAULT_REGION"},
	"aws.endpoint":   {"AWS_ENDPOINT_URL"},
	"aws.access_key": {"AWS_ACCESS_KEY_ID"},
	"aws.secret_key": {"AWS_SECRET_ACCESS_KEY"},
	"gcp.project":    {"GOOGLE_CLOUD_PROJECT"},
}

// keyValidations guards runtime overrides; an override failing its rule is
// ignored rather than propagated.
var keyValidations = map[string]string{
	"progress_mode": "oneof=progress compact disabled",
	"log_level":     "oneof=debug info warn error",
}

// Manager loads the config file and holds runtime overrides. Snapshots are
// immutable; the manager itself is safe for concurrent use.
type Manager struct {
	v         *viper.Viper
	validate  *validator.Validate
	mu        sync.RWMutex
	overrides map[string]string
}

func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return newManagerWithFile(configPath)
}

func newManagerWithFile(configPath string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return &Manager{
		v:         v,
		validate:  validator.New(),
		overrides: make(map[string]string),
	}, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", ConfigDirName)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}

	return filepath.Join(configDir, ConfigFileName), nil
}

// SetOverride installs a runtime override for key. Invalid values for guarded
// keys are ignored; the environment always wins over overrides.
func (m *Manager) SetOverride(key, value string) {
	if rule, ok := keyValidations[key]; ok {
		if err := m.validate.Var(strings.ToLower(value), rule); err != nil {
			return
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[key] = value
}

// ClearOverride removes a runtime override, falling back to file or default.
func (m *Manager) ClearOverride(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.overrides, key)
}

// Snapshot resolves the tiers into an immutable Settings value.
func (m *Manager) Snapshot() (Settings, error) {
	s := Defaults()

	// Config file over defaults.
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(looseBoolHook))
	if err := m.v.Unmarshal(&s, decodeHook); err != nil {
		return Settings{}, fmt.Errorf("error parsing config file: %w", err)
	}

	// Runtime overrides.
	m.mu.RLock()
	for key, value := range m.overrides {
		applyKey(&s, key, value)
	}
	m.mu.RUnlock()

	// Environment wins.
	for key, names := range envVars {
		for _, name := range names {
			if value := os.Getenv(name); value != "" {
				applyKey(&s, key, value)
				break
			}
		}
	}

	s.ProgressMode = strings.ToLower(s.ProgressMode)
	s.LogLevel = strings.ToLower(s.LogLevel)

	if err := m.validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func applyKey(s *Settings, key, value string) {
	switch key {
	case "progress_mode":
		s.ProgressMode = value
	case "exclude_hidden":
		s.ExcludeHidden = parseBool(value)
	case "debug":
		s.Debug = parseBool(value)
	case "log_level":
		s.LogLevel = value
	case "aws.region":
		s.AWS.Region = value
	case "aws.endpoint":
		s.AWS.Endpoint = value
	case "aws.access_key":
		s.AWS.AccessKey = value
	case "aws.secret_key":
		s.AWS.SecretKey = value
	case "gcp.project":
		s.GCP.Project = value
	}
}

// parseBool accepts the loose truthy forms the environment contract allows.
func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// looseBoolHook decodes the same loose truthy strings from the config file.
func looseBoolHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	return parseBool(data.(string)), nil
}
