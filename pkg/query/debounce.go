package query

import "time"

// DefaultDebounceWindow is how long input must stay quiet before the query
// is committed.
const DefaultDebounceWindow = 300 * time.Millisecond

// Debouncer coalesces rapid-fire edits into a single committed query using
// sequence tokens rather than timer handles: every edit bumps the sequence
// and schedules one settle message carrying it; a settle message only
// commits if no later edit happened in the meantime. This cancels-and-
// restarts by construction, so at most one pending settle is live.
type Debouncer struct {
	window time.Duration
	seq    int
	done   int
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{window: window}
}

func (d *Debouncer) Window() time.Duration { return d.window }

// Trigger registers an edit and returns the token the caller should carry
// on its delayed settle message.
func (d *Debouncer) Trigger() int {
	d.seq++
	return d.seq
}

// Settle reports whether the token is still the latest edit; if so the
// query is committed and later deliveries of the same token are no-ops.
func (d *Debouncer) Settle(token int) bool {
	if token != d.seq || token == d.done {
		return false
	}
	d.done = token
	return true
}

// Pending reports whether an edit is waiting to settle.
func (d *Debouncer) Pending() bool {
	return d.seq != d.done
}
