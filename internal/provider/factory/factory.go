// File: internal/provider/factory/factory.go
package factory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"s3lync/internal/config"
	"s3lync/internal/provider/registry"
	"s3lync/pkg/storage"
)

type Factory struct {
	settings config.Settings
	logger   *slog.Logger
}

func NewFactory(settings config.Settings, logger *slog.Logger) *Factory {
	return &Factory{
		settings: settings,
		logger:   logger,
	}
}

// Returns a list of schemes that are registered and configured
func (f *Factory) ConfiguredSchemes() []string {
	var configured []string
	for scheme, registration := range registry.AllRegistrations() {
		if registration.ConfigCheck(f.settings) {
			configured = append(configured, scheme)
		}
	}
	sort.Strings(configured)
	return configured
}

// Checks if a specific scheme is registered and configured
func (f *Factory) IsConfigured(scheme string) bool {
	registration, exists := registry.GetRegistration(scheme)
	if !exists {
		return false
	}
	return registration.ConfigCheck(f.settings)
}

// Initializes and returns the object store serving the given address scheme
func (f *Factory) StoreFor(ctx context.Context, scheme string) (storage.ObjectStore, error) {
	normalized := strings.ToLower(scheme)
	storeLogger := f.logger.With("scheme", normalized)

	registration, exists := registry.GetRegistration(normalized)
	if !exists {
		return nil, fmt.Errorf("unsupported scheme: %s. Supported schemes are: %v", scheme, registry.SupportedSchemes())
	}

	if !registration.ConfigCheck(f.settings) {
		return nil, fmt.Errorf("scheme '%s' is not configured. Use 's3lync config set %s.<key> <value>' or the matching environment variables", normalized, providerKeyFor(normalized))
	}

	store, err := registration.Initializer(ctx, f.settings, storeLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store for scheme %s: %w", normalized, err)
	}

	return store, nil
}

func providerKeyFor(scheme string) string {
	switch scheme {
	case "gs":
		return "gcp"
	default:
		return "aws"
	}
}
