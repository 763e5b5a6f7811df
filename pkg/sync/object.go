// File: pkg/sync/object.go
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"s3lync/pkg/storage"
)

const defaultParallelism = 8

// Object binds one remote address to one local path and exposes the sync
// operations on the pair. It holds no transfer state between calls; two sync
// operations must not run against the same local path concurrently.
type Object struct {
	addr      Address
	localPath string
	store     storage.ObjectStore
	logger    *slog.Logger
	observers []storage.TransferObserver
	parallel  int
}

type Option func(*Object)

// WithLocalPath overrides the cache-derived local path.
func WithLocalPath(path string) Option {
	return func(o *Object) { o.localPath = path }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Object) { o.logger = logger }
}

// WithObservers registers chunk observers forwarded to every store transfer,
// invoked in registration order.
func WithObservers(obs ...storage.TransferObserver) Option {
	return func(o *Object) { o.observers = append(o.observers, obs...) }
}

// WithParallelism bounds the number of concurrent per-file transfers within one
// directory level. Values below 1 disable parallelism.
func WithParallelism(n int) Option {
	return func(o *Object) { o.parallel = n }
}

// New parses uri and binds it to a local path. Without WithLocalPath the path
// is derived as <cache_root>/<bucket>/<key>.
func New(store storage.ObjectStore, uri string, opts ...Option) (*Object, error) {
	addr, err := ParseAddress(uri)
	if err != nil {
		return nil, err
	}

	o := &Object{
		addr:     addr,
		store:    store,
		logger:   slog.Default(),
		parallel: defaultParallelism,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.localPath == "" {
		root, err := CacheRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cache root: %w", err)
		}
		o.localPath = filepath.Join(root, addr.Bucket, filepath.FromSlash(addr.Key))
	} else {
		normalized, err := NormalizePath(o.localPath)
		if err != nil {
			return nil, err
		}
		o.localPath = normalized
	}

	return o, nil
}

func (o *Object) Address() Address  { return o.addr }
func (o *Object) LocalPath() string { return o.localPath }
func (o *Object) String() string    { return o.addr.String() }

type DownloadOptions struct {
	CheckHash bool
	// ForceSync makes the local side identical to remote, deleting local
	// entries that have no remote counterpart.
	ForceSync bool
}

func NewDownloadOptions() DownloadOptions {
	return DownloadOptions{CheckHash: true}
}

type UploadOptions struct {
	CheckHash bool
	// ExcludePattern is a regular expression tested against the full local
	// path; matching files are never transferred and their remote counterparts
	// are exempt from force-sync deletion.
	ExcludePattern string
	// ExcludeHidden skips dot-prefixed files and directories below the upload
	// root. Ancestors of the root itself are not considered, so a tree bound
	// under a hidden directory (the default cache root included) still syncs.
	ExcludeHidden bool
	// ForceSync makes the remote side identical to local, deleting remote
	// objects that have no local counterpart.
	ForceSync bool
}

func NewUploadOptions() UploadOptions {
	return UploadOptions{CheckHash: true}
}

// Download syncs the remote object or prefix down to the local path and
// returns the local path. Non-mismatch failures are wrapped as SyncError.
func (o *Object) Download(ctx context.Context, opts DownloadOptions) (string, error) {
	o.logger.Debug("starting download", "uri", o.addr.String(), "local", o.localPath,
		"check_hash", opts.CheckHash, "force_sync", opts.ForceSync)

	isFile, err := o.remoteIsFile(ctx, o.addr.Key)
	if err != nil {
		return "", syncErr("download", o.addr.Bucket, o.addr.Key, "", err)
	}

	if isFile {
		err = o.downloadFile(ctx, o.addr.Key, o.localPath, opts)
	} else {
		err = o.downloadDir(ctx, o.addr.Key, o.localPath, opts)
	}
	if err != nil {
		return "", syncErr("download", o.addr.Bucket, o.addr.Key, "", err)
	}

	return o.localPath, nil
}

// Upload syncs the local file or directory up to the remote address and
// returns the address URI. Fails with ObjectError if the local path is absent.
func (o *Object) Upload(ctx context.Context, opts UploadOptions) (string, error) {
	o.logger.Debug("starting upload", "uri", o.addr.String(), "local", o.localPath,
		"check_hash", opts.CheckHash, "force_sync", opts.ForceSync, "exclude", opts.ExcludePattern)

	info, err := os.Stat(o.localPath)
	if err != nil {
		return "", &ObjectError{Path: o.localPath, Msg: "local path does not exist"}
	}

	if info.IsDir() {
		err = o.uploadDir(ctx, o.addr.Key, o.localPath, opts)
	} else {
		err = o.uploadFile(ctx, o.addr.Key, o.localPath, opts.CheckHash, opts.ForceSync)
	}
	if err != nil {
		return "", syncErr("upload", o.addr.Bucket, o.addr.Key, "", err)
	}

	return o.addr.String(), nil
}

// Open runs fn with a local file handle for the bound object. Read-capable
// flags download first; write-capable flags ensure the parent directory exists
// before opening and upload unconditionally after fn returns, on every exit
// path. Errors from fn, close and the upload are joined, fn's first.
func (o *Object) Open(ctx context.Context, flag int, fn func(*os.File) error) error {
	writable := flag&(os.O_WRONLY|os.O_RDWR|os.O_APPEND) != 0

	if flag&os.O_WRONLY == 0 {
		if _, err := o.Download(ctx, NewDownloadOptions()); err != nil {
			return err
		}
	}

	if writable {
		if err := ensureParent(o.localPath); err != nil {
			return syncErr("open", "", "", o.localPath, err)
		}
	}

	file, err := os.OpenFile(o.localPath, flag, 0o644)
	if err != nil {
		return syncErr("open", "", "", o.localPath, err)
	}

	fnErr := fn(file)
	closeErr := file.Close()

	var uploadErr error
	if writable {
		_, uploadErr = o.Upload(ctx, NewUploadOptions())
	}

	return errors.Join(fnErr, closeErr, uploadErr)
}

// Exists reports whether the address resolves as either a file or a directory.
func (o *Object) Exists(ctx context.Context) (bool, error) {
	isFile, err := o.remoteIsFile(ctx, o.addr.Key)
	if err != nil {
		return false, syncErr("exists", o.addr.Bucket, o.addr.Key, "", err)
	}
	if isFile {
		return true, nil
	}

	isDir, err := o.remoteIsDir(ctx, o.addr.Key)
	if err != nil {
		return false, syncErr("exists", o.addr.Bucket, o.addr.Key, "", err)
	}
	return isDir, nil
}

// Delete removes the single remote object, or every object under the prefix
// when the address is a directory. Deleting an absent address is a no-op.
func (o *Object) Delete(ctx context.Context) error {
	isFile, err := o.remoteIsFile(ctx, o.addr.Key)
	if err != nil {
		return syncErr("delete", o.addr.Bucket, o.addr.Key, "", err)
	}

	if isFile {
		if err := o.store.Delete(ctx, o.addr.Bucket, o.addr.Key); err != nil {
			return syncErr("delete", o.addr.Bucket, o.addr.Key, "", err)
		}
		return nil
	}

	keys, err := o.listKeys(ctx, ensureTrailingSlash(o.addr.Key))
	if err != nil {
		return syncErr("delete", o.addr.Bucket, o.addr.Key, "", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := o.store.DeleteMany(ctx, o.addr.Bucket, keys); err != nil {
		return syncErr("delete", o.addr.Bucket, o.addr.Key, "", err)
	}
	return nil
}

// remoteIsFile reports whether an exact-key lookup matches an object.
func (o *Object) remoteIsFile(ctx context.Context, key string) (bool, error) {
	_, err := o.store.Head(ctx, o.addr.Bucket, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// errStopListing aborts a listing once a single entry has been seen.
var errStopListing = errors.New("stop listing")

// remoteIsDir reports whether a prefix listing under key + "/" yields entries.
func (o *Object) remoteIsDir(ctx context.Context, key string) (bool, error) {
	prefix := ensureTrailingSlash(key)

	found := false
	err := o.store.List(ctx, o.addr.Bucket, prefix, "/", func(page storage.ListPage) error {
		if len(page.Objects) > 0 || len(page.CommonPrefixes) > 0 {
			found = true
			return errStopListing
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopListing) {
		return false, err
	}
	return found, nil
}

// listKeys returns every object key under prefix, recursively.
func (o *Object) listKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := o.store.List(ctx, o.addr.Bucket, prefix, "", func(page storage.ListPage) error {
		for _, obj := range page.Objects {
			if obj.Key == prefix {
				continue
			}
			keys = append(keys, obj.Key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func ensureTrailingSlash(key string) string {
	if strings.HasSuffix(key, "/") {
		return key
	}
	return key + "/"
}
