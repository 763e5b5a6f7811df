// File: internal/service/sync_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"s3lync/internal/config"
	"s3lync/internal/provider/factory"
	"s3lync/internal/ui/progress"
	"s3lync/pkg/storage"
	syncpkg "s3lync/pkg/sync"
)

type SyncService struct {
	providerFactory *factory.Factory
	settings        config.Settings
	logger          *slog.Logger
}

func NewSyncService(providerFactory *factory.Factory, settings config.Settings, logger *slog.Logger) *SyncService {
	return &SyncService{
		providerFactory: providerFactory,
		settings:        settings,
		logger:          logger.With("service", "SyncService"),
	}
}

// StatResult describes a remote address for display: a single object's
// metadata, or the aggregate of a prefix.
type StatResult struct {
	URI         string
	IsDir       bool
	Meta        storage.ObjectMeta
	ObjectCount int64
	TotalSize   int64
	// BucketUsage is the backend-reported stored bytes for the whole bucket;
	// -1 when the backend cannot report it.
	BucketUsage int64
}

func (s *SyncService) Download(ctx context.Context, uri, localPath string, checkHash, forceSync bool, parallel int) (string, error) {
	s.logger.Debug("starting Download operation", "uri", uri, "local", localPath, "force_sync", forceSync)

	obj, store, err := s.handleFor(ctx, uri, localPath, parallel)
	if err != nil {
		return "", err
	}
	defer store.Close()

	opts := syncpkg.DownloadOptions{CheckHash: checkHash, ForceSync: forceSync}
	path, err := obj.Download(ctx, opts)
	if err != nil {
		s.logger.Error("download failed", "uri", uri, "error", err)
		return "", err
	}
	return path, nil
}

func (s *SyncService) Upload(ctx context.Context, uri, localPath string, checkHash, forceSync bool, excludePattern string, parallel int) (string, error) {
	s.logger.Debug("starting Upload operation", "uri", uri, "local", localPath, "force_sync", forceSync)

	obj, store, err := s.handleFor(ctx, uri, localPath, parallel)
	if err != nil {
		return "", err
	}
	defer store.Close()

	resultURI, err := obj.Upload(ctx, s.uploadOptions(checkHash, forceSync, excludePattern))
	if err != nil {
		s.logger.Error("upload failed", "uri", uri, "error", err)
		return "", err
	}
	return resultURI, nil
}

func (s *SyncService) Exists(ctx context.Context, uri string) (bool, error) {
	obj, store, err := s.handleFor(ctx, uri, "", 0)
	if err != nil {
		return false, err
	}
	defer store.Close()

	return obj.Exists(ctx)
}

func (s *SyncService) Delete(ctx context.Context, uri string) error {
	s.logger.Debug("starting Delete operation", "uri", uri)

	obj, store, err := s.handleFor(ctx, uri, "", 0)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := obj.Delete(ctx); err != nil {
		s.logger.Error("delete failed", "uri", uri, "error", err)
		return err
	}
	return nil
}

// IsPrefix reports whether the address resolves to a directory rather than a
// single object. Used by the CLI to decide whether deletion needs confirmation.
func (s *SyncService) IsPrefix(ctx context.Context, uri string) (bool, error) {
	obj, store, err := s.handleFor(ctx, uri, "", 0)
	if err != nil {
		return false, err
	}
	defer store.Close()

	exists, err := obj.Exists(ctx)
	if err != nil || !exists {
		return false, err
	}

	_, err = store.Head(ctx, obj.Address().Bucket, obj.Address().Key)
	if err != nil {
		// Exists but no exact-key object: it is a prefix
		return true, nil
	}
	return false, nil
}

func (s *SyncService) Stat(ctx context.Context, uri string) (StatResult, error) {
	s.logger.Debug("starting Stat operation", "uri", uri)

	obj, store, err := s.handleFor(ctx, uri, "", 0)
	if err != nil {
		return StatResult{}, err
	}
	defer store.Close()

	addr := obj.Address()
	result := StatResult{URI: addr.String(), BucketUsage: -1}

	if meta, err := store.Head(ctx, addr.Bucket, addr.Key); err == nil {
		result.Meta = meta
		result.ObjectCount = 1
		result.TotalSize = meta.Size
	} else {
		result.IsDir = true
		prefix := addr.Key
		if prefix[len(prefix)-1] != '/' {
			prefix += "/"
		}
		listErr := store.List(ctx, addr.Bucket, prefix, "", func(page storage.ListPage) error {
			for _, o := range page.Objects {
				result.ObjectCount++
				result.TotalSize += o.Size
			}
			return nil
		})
		if listErr != nil {
			s.logger.Error("stat listing failed", "uri", uri, "error", listErr)
			return StatResult{}, listErr
		}
	}

	// Bucket-level usage is backend-specific; report it when the store can
	if reporter, ok := store.(interface {
		BucketUsage(ctx context.Context, bucket string) (int64, error)
	}); ok {
		if usage, err := reporter.BucketUsage(ctx, addr.Bucket); err == nil {
			result.BucketUsage = usage
		}
	}

	return result, nil
}

// handleFor resolves the store for the address scheme and binds a sync handle.
// The caller owns closing the returned store.
func (s *SyncService) handleFor(ctx context.Context, uri, localPath string, parallel int) (*syncpkg.Object, storage.ObjectStore, error) {
	addr, err := syncpkg.ParseAddress(uri)
	if err != nil {
		return nil, nil, err
	}

	store, err := s.providerFactory.StoreFor(ctx, addr.Scheme.String())
	if err != nil {
		s.logger.Error("failed to initialize store", "scheme", addr.Scheme, "error", err)
		return nil, nil, fmt.Errorf("error initializing store: %w", err)
	}
	store = progress.WrapStore(store, s.settings.ProgressMode, os.Stdout)

	opts := []syncpkg.Option{syncpkg.WithLogger(s.logger)}
	if localPath != "" {
		opts = append(opts, syncpkg.WithLocalPath(localPath))
	}
	if parallel > 0 {
		opts = append(opts, syncpkg.WithParallelism(parallel))
	}

	obj, err := syncpkg.New(store, uri, opts...)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return obj, store, nil
}

// uploadOptions folds the hidden-file default from settings into the upload
// options. The hidden filter lives in the engine, scoped below the upload
// root, so it never collides with a cache-derived local path.
func (s *SyncService) uploadOptions(checkHash, forceSync bool, excludePattern string) syncpkg.UploadOptions {
	return syncpkg.UploadOptions{
		CheckHash:      checkHash,
		ForceSync:      forceSync,
		ExcludePattern: excludePattern,
		ExcludeHidden:  s.settings.ExcludeHidden,
	}
}
