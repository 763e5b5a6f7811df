// File: pkg/storage/aws/client.go
package aws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"s3lync/internal/config"
	"s3lync/internal/provider/registry"
	"s3lync/pkg/common"
	"s3lync/pkg/storage"
)

func init() {
	registry.RegisterStore("s3", registry.StoreRegistration{
		ConfigCheck: isConfigured,
		Initializer: initialize,
	})
}

// Checks if the AWS configuration block carries a region
func isConfigured(settings config.Settings) bool {
	return settings.AWS.Region != ""
}

// Initializes the S3 object store from the settings snapshot
func initialize(ctx context.Context, settings config.Settings, logger *slog.Logger) (storage.ObjectStore, error) {
	if !isConfigured(settings) {
		return nil, fmt.Errorf("AWS configuration missing or incomplete")
	}
	return NewS3Store(ctx, settings.AWS, logger)
}

type S3Store struct {
	client *s3.Client
	logger *slog.Logger
}

var _ storage.ObjectStore = (*S3Store)(nil)

func NewS3Store(ctx context.Context, settings config.AWSSettings, logger *slog.Logger) (*S3Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(settings.Region),
	}
	if settings.AccessKey != "" && settings.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client: client,
		logger: logger,
	}, nil
}

func (s *S3Store) SchemeName() common.Scheme {
	return common.S3
}

func (s *S3Store) Close() error {
	// The SDK client holds no resources that need explicit release
	return nil
}
