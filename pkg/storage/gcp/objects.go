// File: pkg/storage/gcp/objects.go
package gcp

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	gcpstorage "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"s3lync/pkg/storage"
)

func (g *GCSStore) Head(ctx context.Context, bucket, key string) (storage.ObjectMeta, error) {
	attrs, err := g.client.Bucket(bucket).Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcpstorage.ErrObjectNotExist) {
			return storage.ObjectMeta{}, fmt.Errorf("%w: %s/%s", storage.ErrNotFound, bucket, key)
		}
		return storage.ObjectMeta{}, fmt.Errorf("failed to head %s/%s: %w", bucket, key, err)
	}
	return mapObjectAttrs(attrs), nil
}

// listPageSize bounds how many entries accumulate before a page is handed to
// the caller; the SDK iterator itself has no page boundaries worth preserving.
const listPageSize = 1000

func (g *GCSStore) List(ctx context.Context, bucket, prefix, delimiter string, fn func(storage.ListPage) error) error {
	query := &gcpstorage.Query{
		Prefix:    prefix,
		Delimiter: delimiter,
	}

	it := g.client.Bucket(bucket).Objects(ctx, query)
	pager := newListPager(listPageSize, fn)

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list %s/%s: %w", bucket, prefix, err)
		}

		// attrs.Prefix set means a common prefix (directory) entry
		if attrs.Prefix != "" {
			if err := pager.addPrefix(attrs.Prefix); err != nil {
				return err
			}
			continue
		}
		if err := pager.addObject(mapObjectAttrs(attrs)); err != nil {
			return err
		}
	}

	return pager.finish()
}

// listPager batches listing entries into bounded pages, invoking fn whenever a
// page fills and once more at the end. Errors from fn are returned as-is.
type listPager struct {
	size    int
	fn      func(storage.ListPage) error
	page    storage.ListPage
	flushed bool
}

func newListPager(size int, fn func(storage.ListPage) error) *listPager {
	return &listPager{size: size, fn: fn}
}

func (p *listPager) addObject(meta storage.ObjectMeta) error {
	p.page.Objects = append(p.page.Objects, meta)
	return p.flushIfFull()
}

func (p *listPager) addPrefix(prefix string) error {
	p.page.CommonPrefixes = append(p.page.CommonPrefixes, prefix)
	return p.flushIfFull()
}

func (p *listPager) flushIfFull() error {
	if len(p.page.Objects)+len(p.page.CommonPrefixes) < p.size {
		return nil
	}
	return p.flush()
}

func (p *listPager) flush() error {
	page := p.page
	p.page = storage.ListPage{}
	p.flushed = true
	return p.fn(page)
}

// finish delivers the trailing partial page. An empty listing still invokes fn
// once so callers observe the same shape other backends produce.
func (p *listPager) finish() error {
	if p.flushed && len(p.page.Objects)+len(p.page.CommonPrefixes) == 0 {
		return nil
	}
	return p.flush()
}

func (g *GCSStore) Get(ctx context.Context, bucket, key, destPath string, obs ...storage.TransferObserver) (storage.ObjectMeta, error) {
	g.logger.Debug("starting GCS object read", "bucket", bucket, "key", key, "dest", destPath)

	handle := g.client.Bucket(bucket).Object(key)
	reader, err := handle.NewReader(ctx)
	if err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to download %s/%s: %w", bucket, key, err)
	}
	defer reader.Close()

	file, err := os.Create(destPath)
	if err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	_, copyErr := io.Copy(storage.ObserveWriter(file, obs), reader)
	closeErr := file.Close()
	if copyErr != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to download %s/%s: %w", bucket, key, copyErr)
	}
	if closeErr != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to write %s: %w", destPath, closeErr)
	}

	attrs, err := handle.Attrs(ctx)
	if err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to head %s/%s after download: %w", bucket, key, err)
	}
	return mapObjectAttrs(attrs), nil
}

func (g *GCSStore) Put(ctx context.Context, bucket, key, srcPath string, obs ...storage.TransferObserver) (storage.ObjectMeta, error) {
	g.logger.Debug("starting GCS object write", "bucket", bucket, "key", key, "src", srcPath)

	file, err := os.Open(srcPath)
	if err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer file.Close()

	writer := g.client.Bucket(bucket).Object(key).NewWriter(ctx)
	if _, err := io.Copy(storage.ObserveWriter(writer, obs), file); err != nil {
		writer.Close()
		return storage.ObjectMeta{}, fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}
	if err := writer.Close(); err != nil {
		return storage.ObjectMeta{}, fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}

	return mapObjectAttrs(writer.Attrs()), nil
}

func (g *GCSStore) Delete(ctx context.Context, bucket, key string) error {
	err := g.client.Bucket(bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcpstorage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// DeleteMany deletes keys one by one; GCS has no batch-delete API.
func (g *GCSStore) DeleteMany(ctx context.Context, bucket string, keys []string) error {
	for _, key := range keys {
		if err := g.Delete(ctx, bucket, key); err != nil {
			return err
		}
	}
	return nil
}

// Maps GCS SDK object attributes to the store model. The hex MD5 serves as the
// fingerprint; composed objects carry no MD5 and map to an empty (composite)
// one.
func mapObjectAttrs(attrs *gcpstorage.ObjectAttrs) storage.ObjectMeta {
	if attrs == nil {
		return storage.ObjectMeta{}
	}

	var etag string
	if len(attrs.MD5) > 0 {
		etag = hex.EncodeToString(attrs.MD5)
	}

	return storage.ObjectMeta{
		Key:          attrs.Name,
		Size:         attrs.Size,
		ETag:         etag,
		LastModified: attrs.Updated,
	}
}
