// File: internal/ui/progress/store.go
package progress

import (
	"context"
	"fmt"
	"io"
	"os"

	"s3lync/internal/config"
	"s3lync/pkg/storage"
)

// WrapStore decorates an object store so every Get and Put renders transfer
// progress per the display mode. The sync engine stays unaware of rendering;
// it only forwards its own observers, which keep running alongside the
// tracker's.
func WrapStore(inner storage.ObjectStore, mode string, out io.Writer) storage.ObjectStore {
	if mode == config.ProgressModeDisabled {
		return inner
	}
	return &trackedStore{
		ObjectStore: inner,
		mode:        mode,
		out:         out,
	}
}

type trackedStore struct {
	storage.ObjectStore
	mode string
	out  io.Writer
}

func (s *trackedStore) Get(ctx context.Context, bucket, key, destPath string, obs ...storage.TransferObserver) (storage.ObjectMeta, error) {
	total := int64(0)
	if meta, err := s.ObjectStore.Head(ctx, bucket, key); err == nil {
		total = meta.Size
	}

	tracker := NewTracker(s.mode, total, fmt.Sprintf("[download: %s]", key), s.out)
	defer tracker.Close()

	return s.ObjectStore.Get(ctx, bucket, key, destPath, append([]storage.TransferObserver{tracker.Observer()}, obs...)...)
}

func (s *trackedStore) Put(ctx context.Context, bucket, key, srcPath string, obs ...storage.TransferObserver) (storage.ObjectMeta, error) {
	total := int64(0)
	if info, err := os.Stat(srcPath); err == nil {
		total = info.Size()
	}

	tracker := NewTracker(s.mode, total, fmt.Sprintf("[upload: %s]", key), s.out)
	defer tracker.Close()

	return s.ObjectStore.Put(ctx, bucket, key, srcPath, append([]storage.TransferObserver{tracker.Observer()}, obs...)...)
}
