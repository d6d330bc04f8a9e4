// Package progressbar renders a terminal progress bar for the segment
// download loop in internal/fetch, adapted from the teacher's incremental
// UpdateBar/Done API to an absolute Render call: the downloader's worker pool
// already tracks the completed count itself under its own mutex, so the bar
// only needs to format a count, not accumulate one.
package progressbar

import (
	"fmt"
	"strings"
)

// Bar represents the progress bar to be displayed.
type Bar struct {
	total int
}

// New creates a progress bar for a run of the given total length.
func New(total int) *Bar {
	return &Bar{total: total}
}

// Render formats the bar for the given completed count, clamped to [0, total].
func (b *Bar) Render(completed int) string {
	if completed < 0 {
		completed = 0
	}
	if completed > b.total {
		completed = b.total
	}
	if completed >= b.total {
		return fmt.Sprintf("\r[%s] (%d / %d)", strings.Repeat("=", b.total), b.total, b.total)
	}
	return fmt.Sprintf("\r[%s>%s] (%d / %d)", strings.Repeat("=", completed), strings.Repeat(" ", b.total-completed-1), completed, b.total)
}
