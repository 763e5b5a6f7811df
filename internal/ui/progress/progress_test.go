// File: internal/ui/progress/progress_test.go
package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"s3lync/internal/config"
	"s3lync/pkg/storage"
)

func TestChainInvokesObserversInOrder(t *testing.T) {
	var order []string

	chained := Chain(
		func(bytes int64) { order = append(order, "first") },
		func(bytes int64) { order = append(order, "second") },
	)
	chained(42)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestTrackerCompactPrintsSummaryOnClose(t *testing.T) {
	var out bytes.Buffer

	tracker := NewTracker(config.ProgressModeCompact, 2048, "[download: a.txt]", &out)
	obs := tracker.Observer()
	obs(1024)
	obs(1024)

	assert.Empty(t, out.String())

	tracker.Close()
	assert.Equal(t, "[download: a.txt]: 100% (2.0 KiB/2.0 KiB)\n", out.String())
}

func TestTrackerDisabledPrintsNothing(t *testing.T) {
	var out bytes.Buffer

	tracker := NewTracker(config.ProgressModeDisabled, 100, "desc", &out)
	tracker.Observer()(100)
	tracker.Close()

	assert.Empty(t, out.String())
}

func TestWrapStoreDisabledReturnsInner(t *testing.T) {
	var inner storage.ObjectStore
	assert.Equal(t, inner, WrapStore(inner, config.ProgressModeDisabled, nil))
}
