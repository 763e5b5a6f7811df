// File: pkg/storage/storage.go
package storage

import (
	"context"
	"errors"

	"s3lync/pkg/common"
)

// ErrNotFound is returned by Head when no object exists at the exact key.
var ErrNotFound = errors.New("object not found")

// TransferObserver is invoked with the number of bytes moved by each chunk of a
// Get or Put. Observers registered on one transfer are invoked in order.
type TransferObserver func(bytes int64)

// ObjectStore is the remote-storage capability consumed by the sync engine.
// Implementations own retry/backoff policy; callers never retry on top of it.
type ObjectStore interface {
	SchemeName() common.Scheme

	// Head returns the metadata of the object at exactly key, or ErrNotFound.
	Head(ctx context.Context, bucket, key string) (ObjectMeta, error)

	// List streams pages of objects under prefix. A non-empty delimiter groups
	// sub-prefixes into ListPage.CommonPrefixes instead of recursing. A non-nil
	// error returned by fn stops the listing and is returned as-is.
	List(ctx context.Context, bucket, prefix, delimiter string, fn func(ListPage) error) error

	// Get streams the object to destPath, overwriting it, and returns the
	// object's metadata. The destination's parent directory must exist.
	Get(ctx context.Context, bucket, key, destPath string, obs ...TransferObserver) (ObjectMeta, error)

	// Put streams the file at srcPath to the object at key.
	Put(ctx context.Context, bucket, key, srcPath string, obs ...TransferObserver) (ObjectMeta, error)

	Delete(ctx context.Context, bucket, key string) error
	DeleteMany(ctx context.Context, bucket string, keys []string) error

	Close() error
}
