// File: pkg/storage/model.go
package storage

import (
	"fmt"
	"strings"
	"time"
)

// ObjectMeta is the metadata the engine needs to decide whether a transfer or a
// verification is possible for one object.
type ObjectMeta struct {
	Key          string
	Size         int64
	ETag         string
	LastModified time.Time
}

// Composite reports whether the fingerprint cannot be compared against a
// single-pass content hash: multipart uploads carry a part-count suffix after a
// dash, and some backends expose no content hash at all for composed objects.
func (m ObjectMeta) Composite() bool {
	return m.ETag == "" || strings.Contains(m.ETag, "-")
}

// ListPage is one page of a listing: the objects directly under the prefix and,
// when a delimiter was given, the sub-prefixes grouped by it.
type ListPage struct {
	Objects        []ObjectMeta
	CommonPrefixes []string
}

func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "N/A"
	}
	if bytes == 0 {
		return "0 B"
	}

	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	sizes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(sizes) {
		return fmt.Sprintf("%d B", bytes)
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), sizes[exp])
}
