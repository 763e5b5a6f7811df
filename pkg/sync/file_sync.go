// File: pkg/sync/file_sync.go
package sync

import (
	"context"
	"errors"
	"strings"

	"s3lync/pkg/storage"
)

// downloadFile transfers one remote object to localPath unless the local copy
// is already equal. A post-transfer fingerprint mismatch on a non-composite
// object raises HashMismatchError; the downloaded bytes stay on disk.
func (o *Object) downloadFile(ctx context.Context, key, localPath string, opts DownloadOptions) error {
	if err := ensureParent(localPath); err != nil {
		return &SyncError{Op: "download", Path: localPath, Err: err}
	}

	if !opts.ForceSync {
		if equal := o.isEqualFile(ctx, key, localPath, opts.CheckHash); equal {
			o.logger.Debug("skipping download, local file up to date", "key", key)
			return nil
		}
	}

	meta, err := o.store.Get(ctx, o.addr.Bucket, key, localPath, o.observers...)
	if err != nil {
		return &SyncError{Op: "download", Bucket: o.addr.Bucket, Key: key, Err: err}
	}

	if opts.CheckHash && !meta.Composite() {
		localSum, err := FileMD5(localPath)
		if err != nil {
			return &SyncError{Op: "verify", Path: localPath, Err: err}
		}
		if !strings.EqualFold(localSum, meta.ETag) {
			return &HashMismatchError{
				Bucket: o.addr.Bucket,
				Key:    key,
				Local:  localSum,
				Remote: meta.ETag,
			}
		}
	}

	return nil
}

// uploadFile transfers one local file to the remote key unless the remote copy
// is already equal. No local mutation, no post-upload verification.
func (o *Object) uploadFile(ctx context.Context, key, localPath string, checkHash, forceSync bool) error {
	if !forceSync {
		if equal := o.isEqualFile(ctx, key, localPath, checkHash); equal {
			o.logger.Debug("skipping upload, remote object up to date", "key", key)
			return nil
		}
	}

	if _, err := o.store.Put(ctx, o.addr.Bucket, key, localPath, o.observers...); err != nil {
		return &SyncError{Op: "upload", Bucket: o.addr.Bucket, Key: key, Err: err}
	}
	return nil
}

// isEqualFile reports whether the remote object and the local file hold equal
// content. Any lookup failure counts as "not equal" so the transfer proceeds
// and surfaces the real error.
func (o *Object) isEqualFile(ctx context.Context, key, localPath string, checkHash bool) bool {
	meta, err := o.store.Head(ctx, o.addr.Bucket, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			o.logger.Debug("head failed during equality check", "key", key, "error", err)
		}
		return false
	}

	if !isRegularFile(localPath) {
		return false
	}

	equal, err := verifyLocal(localPath, meta, checkHash)
	if err != nil {
		o.logger.Debug("local fingerprint failed during equality check", "path", localPath, "error", err)
		return false
	}
	return equal
}
