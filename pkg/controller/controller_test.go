package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhub-io/lexadmin/pkg/types/v1"
)

func records(names ...string) []v1.Record {
	out := make([]v1.Record, len(names))
	for i, n := range names {
		out[i] = &v1.Bank{ID: v1.ID(i + 1), Name: n, Status: "ACTIVE"}
	}
	return out
}

func TestLastRequestWins(t *testing.T) {
	c := New(10)

	first := c.StartFetch()
	second := c.StartFetch()

	// The newer request resolves before the older one.
	applied, _ := c.Apply(second.Epoch, records("Equity"), v1.ListMeta{Total: 1, TotalPages: 1}, nil)
	require.True(t, applied)

	// The stale response arrives late and must be dropped untouched.
	applied, refetch := c.Apply(first.Epoch, records("KCB", "Absa"), v1.ListMeta{Total: 2, TotalPages: 1}, nil)
	assert.False(t, applied)
	assert.False(t, refetch)

	require.Len(t, c.Records(), 1)
	assert.Equal(t, "Equity", c.Records()[0].Display())
	assert.Equal(t, Loaded, c.State())
}

func TestStaleErrorIsDropped(t *testing.T) {
	c := New(10)

	first := c.StartFetch()
	second := c.StartFetch()

	applied, _ := c.Apply(second.Epoch, records("Equity"), v1.ListMeta{Total: 1, TotalPages: 1}, nil)
	require.True(t, applied)

	applied, _ = c.Apply(first.Epoch, nil, v1.ListMeta{}, errors.New("timeout"))
	assert.False(t, applied)
	assert.Equal(t, Loaded, c.State())
	assert.NoError(t, c.Err())
}

func TestFailureKeepsPreviousRows(t *testing.T) {
	c := New(10)

	fetch := c.StartFetch()
	_, _ = c.Apply(fetch.Epoch, records("Equity", "KCB"), v1.ListMeta{Total: 2, TotalPages: 1}, nil)

	fetch = c.StartFetch()
	applied, _ := c.Apply(fetch.Epoch, nil, v1.ListMeta{}, errors.New("boom"))

	require.True(t, applied)
	assert.Equal(t, Failed, c.State())
	assert.Error(t, c.Err())
	assert.Len(t, c.Records(), 2, "a failed refresh must not clear the table")
}

func TestLoadingFlavorFollowsQuery(t *testing.T) {
	c := New(10)

	fetch := c.StartFetch()
	assert.Equal(t, Loading, c.State(), "unfiltered fetches blank the list")
	_, _ = c.Apply(fetch.Epoch, records("Equity"), v1.ListMeta{Total: 1, TotalPages: 1}, nil)

	c.Query().SetSearch("eq")
	c.StartFetch()
	assert.Equal(t, SearchRefreshing, c.State(), "filtered fetches refresh in place")
	assert.True(t, c.Loading())
}

func TestApplyClampsOutOfRangePage(t *testing.T) {
	c := New(10)

	c.Query().SetPage(3)
	fetch := c.StartFetch()

	// The result set shrank to two pages while we were on page three.
	applied, refetch := c.Apply(fetch.Epoch, nil, v1.ListMeta{Total: 12, TotalPages: 2}, nil)

	require.True(t, applied)
	assert.True(t, refetch, "caller must issue one follow-up fetch")
	assert.Equal(t, 2, c.Query().Page())
}

func TestInvalidateKeepsPage(t *testing.T) {
	c := New(10)
	c.Query().SetPage(2)

	fetch := c.Invalidate()

	assert.Equal(t, "2", fetch.Params["page"], "mutations refetch in place, never reset the page")
}

func TestEmpty(t *testing.T) {
	c := New(10)
	assert.False(t, c.Empty(), "idle is not empty")

	fetch := c.StartFetch()
	_, _ = c.Apply(fetch.Epoch, nil, v1.ListMeta{Total: 0, TotalPages: 0}, nil)

	assert.True(t, c.Empty())
	assert.Equal(t, 1, c.Meta().TotalPages, "meta normalizes to at least one page")
}
