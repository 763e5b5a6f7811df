// File: pkg/storage/gcp/client.go
package gcp

import (
	"context"
	"fmt"
	"log/slog"

	gcpstorage "cloud.google.com/go/storage"

	"s3lync/internal/config"
	"s3lync/internal/provider/registry"
	"s3lync/pkg/common"
	"s3lync/pkg/storage"
)

func init() {
	registry.RegisterStore("gs", registry.StoreRegistration{
		ConfigCheck: isConfigured,
		Initializer: initialize,
	})
}

// Checks if the GCP configuration block is present and the project ID is set
func isConfigured(settings config.Settings) bool {
	return settings.GCP.Project != ""
}

// Initializes the GCS object store from the settings snapshot
func initialize(ctx context.Context, settings config.Settings, logger *slog.Logger) (storage.ObjectStore, error) {
	if !isConfigured(settings) {
		return nil, fmt.Errorf("GCP configuration missing or incomplete")
	}
	return NewGCSStore(ctx, settings.GCP.Project, logger)
}

type GCSStore struct {
	client    *gcpstorage.Client
	projectID string
	logger    *slog.Logger
}

var _ storage.ObjectStore = (*GCSStore)(nil)

func NewGCSStore(ctx context.Context, projectID string, logger *slog.Logger) (*GCSStore, error) {
	client, err := gcpstorage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStore{
		client:    client,
		projectID: projectID,
		logger:    logger,
	}, nil
}

func (g *GCSStore) SchemeName() common.Scheme {
	return common.GCS
}

func (g *GCSStore) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
