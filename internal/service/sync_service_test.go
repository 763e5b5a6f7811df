// File: internal/service/sync_service_test.go
package service

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"s3lync/internal/config"
)

func newTestService(excludeHidden bool) *SyncService {
	settings := config.Defaults()
	settings.ExcludeHidden = excludeHidden
	return NewSyncService(nil, settings, slog.Default())
}

func TestUploadOptionsCarryHiddenDefault(t *testing.T) {
	tests := []struct {
		name          string
		excludeHidden bool
	}{
		{name: "hidden filter enabled", excludeHidden: true},
		{name: "hidden filter disabled", excludeHidden: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(tt.excludeHidden)

			opts := s.uploadOptions(true, false, `\.log$`)
			assert.Equal(t, tt.excludeHidden, opts.ExcludeHidden)
			assert.True(t, opts.CheckHash)
			assert.False(t, opts.ForceSync)
			// The user pattern passes through untouched; the hidden filter is
			// a separate engine concern, not a regexp merge.
			assert.Equal(t, `\.log$`, opts.ExcludePattern)
		})
	}
}
