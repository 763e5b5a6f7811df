// File: pkg/sync/tree.go
package sync

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"s3lync/pkg/storage"
)

// downloadDir reconciles a remote prefix into a local directory. Under
// ForceSync, local entries without a remote counterpart are removed first,
// using a remote key-set snapshot taken before any transfer begins.
func (o *Object) downloadDir(ctx context.Context, prefix, localDir string, opts DownloadOptions) error {
	prefix = ensureTrailingSlash(prefix)

	if err := ensureParent(localDir); err != nil {
		return &SyncError{Op: "download", Path: localDir, Err: err}
	}

	if opts.ForceSync && dirExists(localDir) {
		keys, err := o.listKeys(ctx, prefix)
		if err != nil {
			return &SyncError{Op: "download", Bucket: o.addr.Bucket, Key: prefix, Err: err}
		}
		remoteSet := make(map[string]struct{}, len(keys))
		for _, k := range keys {
			remoteSet[k] = struct{}{}
		}
		o.pruneLocal(prefix, localDir, remoteSet)
	}

	return o.downloadLevel(ctx, prefix, localDir, opts)
}

// downloadLevel enumerates one prefix level with a delimiter: direct files go
// through single-object sync, sub-prefixes recurse. Transfers within the level
// run in parallel, bounded; the first hard error aborts the subtree.
func (o *Object) downloadLevel(ctx context.Context, prefix, localDir string, opts DownloadOptions) error {
	var files []string
	var subPrefixes []string

	err := o.store.List(ctx, o.addr.Bucket, prefix, "/", func(page storage.ListPage) error {
		for _, obj := range page.Objects {
			if obj.Key == prefix {
				continue
			}
			files = append(files, obj.Key)
		}
		subPrefixes = append(subPrefixes, page.CommonPrefixes...)
		return nil
	})
	if err != nil {
		return &SyncError{Op: "download", Bucket: o.addr.Bucket, Key: prefix, Err: err}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.parallel, 1))
	for _, key := range files {
		rel := strings.TrimPrefix(key, prefix)
		localFile := filepath.Join(localDir, filepath.FromSlash(rel))
		g.Go(func() error {
			return o.downloadFile(gctx, key, localFile, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, sub := range subPrefixes {
		rel := strings.TrimPrefix(sub, prefix)
		localSub := filepath.Join(localDir, filepath.FromSlash(strings.TrimSuffix(rel, "/")))
		if err := o.downloadLevel(ctx, sub, localSub, opts); err != nil {
			return err
		}
	}

	return nil
}

// pruneLocal deletes local files and directories whose remote-relative key is
// not in remoteSet. Cleanup is best-effort: individual failures are logged and
// swallowed, they never abort the sync.
func (o *Object) pruneLocal(prefix, localDir string, remoteSet map[string]struct{}) {
	_ = filepath.WalkDir(localDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || path == localDir {
			return nil
		}

		rel, relErr := filepath.Rel(localDir, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			dirKey := prefix + rel + "/"
			for k := range remoteSet {
				if strings.HasPrefix(k, dirKey) {
					return nil
				}
			}
			if rmErr := os.RemoveAll(path); rmErr != nil {
				o.logger.Debug("failed to remove orphaned local directory", "path", path, "error", rmErr)
			}
			return filepath.SkipDir
		}

		if _, ok := remoteSet[prefix+rel]; !ok {
			if rmErr := os.Remove(path); rmErr != nil {
				o.logger.Debug("failed to remove orphaned local file", "path", path, "error", rmErr)
			}
		}
		return nil
	})
}

// uploadDir reconciles a local directory into a remote prefix. Excluded files
// are invisible to the whole pass: never transferred, and their remote
// counterparts are exempt from force-sync deletion.
func (o *Object) uploadDir(ctx context.Context, prefix, localDir string, opts UploadOptions) error {
	prefix = ensureTrailingSlash(prefix)

	var exclude *regexp.Regexp
	if opts.ExcludePattern != "" {
		var err error
		exclude, err = regexp.Compile(opts.ExcludePattern)
		if err != nil {
			return &SyncError{Op: "upload", Bucket: o.addr.Bucket, Key: prefix, Err: err}
		}
	}

	localFiles, err := o.collectLocalFiles(localDir, prefix, exclude, opts.ExcludeHidden)
	if err != nil {
		return &SyncError{Op: "upload", Path: localDir, Err: err}
	}

	if opts.ForceSync {
		o.pruneRemote(ctx, prefix, localDir, localFiles, exclude, opts.ExcludeHidden)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.parallel, 1))
	for key, path := range localFiles {
		g.Go(func() error {
			return o.uploadFile(gctx, key, path, opts.CheckHash, opts.ForceSync)
		})
	}
	return g.Wait()
}

// collectLocalFiles walks the local tree and maps each non-excluded file to
// its remote key under prefix. Hidden entries are judged by their own name,
// never by ancestors of localDir.
func (o *Object) collectLocalFiles(localDir, prefix string, exclude *regexp.Regexp, excludeHidden bool) (map[string]string, error) {
	files := make(map[string]string)
	err := filepath.WalkDir(localDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		hidden := excludeHidden && path != localDir && strings.HasPrefix(entry.Name(), ".")
		if entry.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}
		if exclude != nil && exclude.MatchString(path) {
			return nil
		}

		rel, err := filepath.Rel(localDir, path)
		if err != nil {
			return err
		}
		files[prefix+filepath.ToSlash(rel)] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// hasHiddenComponent reports whether any segment of a slash-separated relative
// key is dot-prefixed.
func hasHiddenComponent(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// pruneRemote deletes every remote object under prefix not present in the
// local key set, except objects whose corresponding local path is excluded or
// hidden. Best-effort, same policy as pruneLocal.
func (o *Object) pruneRemote(ctx context.Context, prefix, localDir string, localFiles map[string]string, exclude *regexp.Regexp, excludeHidden bool) {
	remoteKeys, err := o.listKeys(ctx, prefix)
	if err != nil {
		o.logger.Debug("failed to list remote objects for cleanup", "prefix", prefix, "error", err)
		return
	}

	for _, key := range remoteKeys {
		if _, ok := localFiles[key]; ok {
			continue
		}
		rel := strings.TrimPrefix(key, prefix)
		if excludeHidden && hasHiddenComponent(rel) {
			continue
		}
		if exclude != nil && exclude.MatchString(filepath.Join(localDir, filepath.FromSlash(rel))) {
			continue
		}
		if err := o.store.Delete(ctx, o.addr.Bucket, key); err != nil {
			o.logger.Debug("failed to delete orphaned remote object", "key", key, "error", err)
		}
	}
}
