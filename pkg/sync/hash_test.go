// File: pkg/sync/hash_test.go
package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"s3lync/pkg/storage"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileMD5(t *testing.T) {
	path := writeTemp(t, "hello world")

	sum, err := FileMD5(path)
	require.NoError(t, err)
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", sum)
}

func TestFileMD5MissingFile(t *testing.T) {
	_, err := FileMD5(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestVerifyLocal(t *testing.T) {
	path := writeTemp(t, "hello world")

	tests := []struct {
		name      string
		meta      storage.ObjectMeta
		mustCheck bool
		want      bool
	}{
		{
			name:      "matching fingerprint",
			meta:      storage.ObjectMeta{ETag: "5eb63bbbe01eeed093cb22bb8f5acdc3"},
			mustCheck: true,
			want:      true,
		},
		{
			name:      "uppercase fingerprint matches",
			meta:      storage.ObjectMeta{ETag: "5EB63BBBE01EEED093CB22BB8F5ACDC3"},
			mustCheck: true,
			want:      true,
		},
		{
			name:      "mismatching fingerprint",
			meta:      storage.ObjectMeta{ETag: "00000000000000000000000000000000"},
			mustCheck: true,
			want:      false,
		},
		{
			name:      "multipart fingerprint trusted",
			meta:      storage.ObjectMeta{ETag: "d41d8cd98f00b204e9800998ecf8427e-4"},
			mustCheck: true,
			want:      true,
		},
		{
			name:      "empty fingerprint trusted",
			meta:      storage.ObjectMeta{ETag: ""},
			mustCheck: true,
			want:      true,
		},
		{
			name:      "check disabled trusts without reading",
			meta:      storage.ObjectMeta{ETag: "00000000000000000000000000000000"},
			mustCheck: false,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifyLocal(path, tt.meta, tt.mustCheck)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
