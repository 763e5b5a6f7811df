// File: pkg/sync/address_test.go
package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"s3lync/pkg/common"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    Address
		wantErr bool
	}{
		{
			name: "simple object",
			uri:  "s3://bucket/key.txt",
			want: Address{Scheme: common.S3, Bucket: "bucket", Key: "key.txt"},
		},
		{
			name: "nested key",
			uri:  "s3://bucket/a/b/c.txt",
			want: Address{Scheme: common.S3, Bucket: "bucket", Key: "a/b/c.txt"},
		},
		{
			name: "gcs scheme",
			uri:  "gs://data/models/weights.bin",
			want: Address{Scheme: common.GCS, Bucket: "data", Key: "models/weights.bin"},
		},
		{
			name: "trailing slash prefix",
			uri:  "s3://bucket/dir/",
			want: Address{Scheme: common.S3, Bucket: "bucket", Key: "dir/"},
		},
		{
			name:    "missing scheme",
			uri:     "bucket/key",
			wantErr: true,
		},
		{
			name:    "empty scheme",
			uri:     "://bucket/key",
			wantErr: true,
		},
		{
			name:    "bucket only",
			uri:     "s3://bucket",
			wantErr: true,
		},
		{
			name:    "empty key",
			uri:     "s3://bucket/",
			wantErr: true,
		},
		{
			name:    "empty bucket",
			uri:     "s3:///key",
			wantErr: true,
		},
		{
			name:    "empty string",
			uri:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddress(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddressStringRoundTrip(t *testing.T) {
	uri := "s3://bucket/a/b/c.txt"

	addr, err := ParseAddress(uri)
	require.NoError(t, err)
	assert.Equal(t, uri, addr.String())

	again, err := ParseAddress(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, again)
}
