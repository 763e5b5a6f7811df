// File: internal/ui/progress/progress.go
package progress

import (
	"fmt"
	"io"
	"sync/atomic"

	"s3lync/internal/config"
	"s3lync/pkg/storage"
)

// Chain combines observers into one that invokes them in registration order.
func Chain(obs ...storage.TransferObserver) storage.TransferObserver {
	return func(bytes int64) {
		for _, fn := range obs {
			fn(bytes)
		}
	}
}

// Tracker renders the progress of a single transfer according to the display
// mode: an animated bar ("progress"), a one-line completion summary
// ("compact"), or nothing ("disabled").
type Tracker struct {
	mode        string
	total       int64
	desc        string
	out         io.Writer
	transferred atomic.Int64
	bar         *barRenderer
}

// NewTracker starts a tracker for one transfer of total bytes. Close must be
// called when the transfer finishes.
func NewTracker(mode string, total int64, desc string, out io.Writer) *Tracker {
	t := &Tracker{
		mode:  mode,
		total: total,
		desc:  desc,
		out:   out,
	}

	if mode == config.ProgressModeBar && total > 0 {
		bar, err := newBarRenderer(desc, total, out)
		if err != nil {
			// Interactive rendering unavailable; degrade to the compact summary
			t.mode = config.ProgressModeCompact
		} else {
			t.bar = bar
		}
	}

	return t
}

// Observer returns the chunk observer feeding this tracker.
func (t *Tracker) Observer() storage.TransferObserver {
	return func(bytes int64) {
		t.transferred.Add(bytes)
		if t.bar != nil {
			t.bar.advance(bytes)
		}
	}
}

// Close finishes rendering. Compact mode prints its single line here.
func (t *Tracker) Close() {
	if t.bar != nil {
		t.bar.stop()
		return
	}

	if t.mode == config.ProgressModeCompact {
		fmt.Fprintf(t.out, "%s: 100%% (%s/%s)\n",
			t.desc,
			storage.FormatBytes(t.transferred.Load()),
			storage.FormatBytes(t.total),
		)
	}
}
