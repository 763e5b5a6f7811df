// File: pkg/storage/model_test.go
package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectMetaComposite(t *testing.T) {
	tests := []struct {
		name string
		etag string
		want bool
	}{
		{name: "plain content hash", etag: "5eb63bbbe01eeed093cb22bb8f5acdc3", want: false},
		{name: "multipart suffix", etag: "5eb63bbbe01eeed093cb22bb8f5acdc3-4", want: true},
		{name: "empty fingerprint", etag: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := ObjectMeta{ETag: tt.etag}
			assert.Equal(t, tt.want, meta.Composite())
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "negative is unknown", bytes: -1, want: "N/A"},
		{name: "zero", bytes: 0, want: "0 B"},
		{name: "below a kibibyte", bytes: 512, want: "512 B"},
		{name: "kibibytes", bytes: 2048, want: "2.0 KiB"},
		{name: "mebibytes", bytes: 5 * 1024 * 1024, want: "5.0 MiB"},
		{name: "gibibytes", bytes: 3 * 1024 * 1024 * 1024, want: "3.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}
