// File: pkg/sync/fake_store_test.go
package sync

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"s3lync/pkg/common"
	"s3lync/pkg/storage"
)

// fakeStore is an in-memory object store recording transfer and delete counts
// so tests can assert which operations were skipped.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	// etagOverride replaces the content-derived fingerprint for a key, letting
	// tests simulate corrupted or composite remote metadata.
	etagOverride map[string]string
	// getFailures and putFailures make the transfer for a key fail, letting
	// tests exercise mid-pass error propagation.
	getFailures map[string]error
	putFailures map[string]error

	getCalls    int
	putCalls    int
	deleteCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects:      make(map[string][]byte),
		etagOverride: make(map[string]string),
		getFailures:  make(map[string]error),
		putFailures:  make(map[string]error),
	}
}

func (s *fakeStore) seed(key, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = []byte(content)
}

func (s *fakeStore) content(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return string(data), ok
}

func (s *fakeStore) keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.objects))
	for k := range s.objects {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s *fakeStore) metaFor(key string, data []byte) storage.ObjectMeta {
	etag, ok := s.etagOverride[key]
	if !ok {
		sum := md5.Sum(data)
		etag = hex.EncodeToString(sum[:])
	}
	return storage.ObjectMeta{
		Key:          key,
		Size:         int64(len(data)),
		ETag:         etag,
		LastModified: time.Now(),
	}
}

func (s *fakeStore) SchemeName() common.Scheme { return common.S3 }

func (s *fakeStore) Head(ctx context.Context, bucket, key string) (storage.ObjectMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return storage.ObjectMeta{}, fmt.Errorf("head %s: %w", key, storage.ErrNotFound)
	}
	return s.metaFor(key, data), nil
}

func (s *fakeStore) List(ctx context.Context, bucket, prefix, delimiter string, fn func(storage.ListPage) error) error {
	s.mu.Lock()
	var page storage.ListPage
	seenPrefixes := make(map[string]bool)
	for _, key := range sortedKeys(s.objects) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if delimiter == "" {
			page.Objects = append(page.Objects, s.metaFor(key, s.objects[key]))
			continue
		}
		rest := key[len(prefix):]
		if idx := strings.Index(rest, delimiter); idx >= 0 {
			sub := prefix + rest[:idx+1]
			if !seenPrefixes[sub] {
				seenPrefixes[sub] = true
				page.CommonPrefixes = append(page.CommonPrefixes, sub)
			}
			continue
		}
		page.Objects = append(page.Objects, s.metaFor(key, s.objects[key]))
	}
	s.mu.Unlock()
	return fn(page)
}

func (s *fakeStore) Get(ctx context.Context, bucket, key, destPath string, obs ...storage.TransferObserver) (storage.ObjectMeta, error) {
	s.mu.Lock()
	if err, failing := s.getFailures[key]; failing {
		s.mu.Unlock()
		return storage.ObjectMeta{}, err
	}
	data, ok := s.objects[key]
	if !ok {
		s.mu.Unlock()
		return storage.ObjectMeta{}, fmt.Errorf("get %s: %w", key, storage.ErrNotFound)
	}
	meta := s.metaFor(key, data)
	s.getCalls++
	s.mu.Unlock()

	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return storage.ObjectMeta{}, err
	}
	for _, fn := range obs {
		fn(int64(len(data)))
	}
	return meta, nil
}

func (s *fakeStore) Put(ctx context.Context, bucket, key, srcPath string, obs ...storage.TransferObserver) (storage.ObjectMeta, error) {
	s.mu.Lock()
	if err, failing := s.putFailures[key]; failing {
		s.mu.Unlock()
		return storage.ObjectMeta{}, err
	}
	s.mu.Unlock()

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return storage.ObjectMeta{}, err
	}

	s.mu.Lock()
	s.objects[key] = data
	meta := s.metaFor(key, data)
	s.putCalls++
	s.mu.Unlock()

	for _, fn := range obs {
		fn(int64(len(data)))
	}
	return meta, nil
}

func (s *fakeStore) Delete(ctx context.Context, bucket, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleteCalls++
	return nil
}

func (s *fakeStore) DeleteMany(ctx context.Context, bucket string, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.objects, key)
		s.deleteCalls++
	}
	return nil
}

func (s *fakeStore) Close() error { return nil }

func sortedKeys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var _ storage.ObjectStore = (*fakeStore)(nil)
