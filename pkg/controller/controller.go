// Package controller owns the paginated-fetch lifecycle of one management
// screen: which query is current, which fetch is the latest, and what the
// screen should show while requests are in flight. It performs no I/O
// itself; the caller issues the fetch described by StartFetch and feeds
// the outcome back through Apply, which is where out-of-order responses
// are discarded.
package controller

import (
	"github.com/lexhub-io/lexadmin/pkg/query"
	"github.com/lexhub-io/lexadmin/pkg/types/v1"
)

type State int

const (
	Idle State = iota
	// Loading is the opaque full-list state: first load, page turns and
	// unfiltered refreshes.
	Loading
	// SearchRefreshing is the lighter in-place state used while a search
	// or filter is active, so the table is not blanked between keystrokes.
	SearchRefreshing
	Loaded
	Failed
)

func (s State) String() string {
	return map[State]string{
		Idle:             "idle",
		Loading:          "loading",
		SearchRefreshing: "search refreshing",
		Loaded:           "loaded",
		Failed:           "failed",
	}[s]
}

// Fetch describes one issued request: the epoch that stamps it and the
// query parameters it carries. Epochs increase monotonically; only the
// response stamped with the newest epoch may be applied.
type Fetch struct {
	Epoch  uint64
	Params map[string]string
}

type Controller struct {
	limit int
	query *query.State

	epoch   uint64
	state   State
	records []v1.Record
	meta    v1.ListMeta
	err     error
}

func New(limit int) *Controller {
	return &Controller{
		limit: limit,
		query: query.NewState(),
		state: Idle,
		meta:  v1.ListMeta{TotalPages: 1},
	}
}

func (c *Controller) Query() *query.State { return c.query }
func (c *Controller) State() State        { return c.state }
func (c *Controller) Records() []v1.Record {
	return c.records
}
func (c *Controller) Meta() v1.ListMeta { return c.meta }
func (c *Controller) Err() error        { return c.err }

// Loading reports whether a fetch is outstanding, in either UX flavor.
func (c *Controller) Loading() bool {
	return c.state == Loading || c.state == SearchRefreshing
}

// Empty reports a completed fetch with zero rows, the condition behind the
// "no results" view.
func (c *Controller) Empty() bool {
	return c.state == Loaded && len(c.records) == 0
}

// StartFetch stamps a new fetch for the current query. Any response from a
// previously started fetch becomes stale the moment this returns.
func (c *Controller) StartFetch() Fetch {
	c.epoch++
	if c.query.Filtered() {
		c.state = SearchRefreshing
	} else {
		c.state = Loading
	}
	return Fetch{Epoch: c.epoch, Params: c.query.Params(c.limit)}
}

// Apply resolves a fetch. Responses stamped with anything but the latest
// epoch are dropped without touching state: last request wins, regardless
// of arrival order. A failed fetch keeps the previous good rows so the
// table is not destructively cleared; the error is surfaced alongside.
//
// The returned refetch flag is set when the applied page is out of range
// for the new result set (e.g. the last item of the last page was just
// deleted): the page has been clamped and the caller should issue one
// follow-up fetch.
func (c *Controller) Apply(epoch uint64, records []v1.Record, meta v1.ListMeta, err error) (applied, refetch bool) {
	if epoch != c.epoch {
		return false, false
	}

	if err != nil {
		c.state = Failed
		c.err = err
		return true, false
	}

	c.err = nil
	c.records = records
	c.meta = meta.Normalize()
	c.state = Loaded

	if c.query.ClampPage(c.meta.TotalPages) {
		refetch = true
	}
	return true, refetch
}

// Invalidate is what mutations call after success: refetch the current
// query as-is. The page is deliberately not reset; create, edit and delete
// all keep the user where they were.
func (c *Controller) Invalidate() Fetch {
	return c.StartFetch()
}
