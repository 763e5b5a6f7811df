// File: pkg/sync/path_test.go
package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{
			name: "absolute path unchanged",
			path: "/tmp/data/file.txt",
			want: "/tmp/data/file.txt",
		},
		{
			name: "tilde expands to home",
			path: "~/data",
			want: filepath.Join(home, "data"),
		},
		{
			name: "cleans redundant segments",
			path: "/tmp/a/../b//c",
			want: "/tmp/b/c",
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCacheRootHonorsXDGCacheHome(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	root, err := CacheRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cacheHome, "s3lync"), root)
	assert.DirExists(t, root)
}

func TestNewDerivesLocalPathUnderCacheRoot(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	obj, err := New(newFakeStore(), "s3://bucket/data/file.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cacheHome, "s3lync", "bucket", "data", "file.txt"), obj.LocalPath())
}
