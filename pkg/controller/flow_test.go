package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhub-io/lexadmin/pkg/api"
	"github.com/lexhub-io/lexadmin/pkg/query"
	"github.com/lexhub-io/lexadmin/pkg/schema"
)

// bankBackend pages and filters a fixed fixture the way the platform does.
func bankBackend(names []string) http.HandlerFunc {
	type bank struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		search := q.Get("search")
		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		var matches []bank
		for i, name := range names {
			if search == "" || strings.Contains(name, search) {
				matches = append(matches, bank{ID: i + 1, Name: name, Status: "ACTIVE"})
			}
		}

		totalPages := (len(matches) + limit - 1) / limit
		if totalPages < 1 {
			totalPages = 1
		}
		start := (page - 1) * limit
		end := start + limit
		if start > len(matches) {
			start = len(matches)
		}
		if end > len(matches) {
			end = len(matches)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"banks":       matches[start:end],
			"total":       len(matches),
			"total_pages": totalPages,
			"page":        page,
		})
	}
}

// Twenty-five banks, two of which match "Access": type a search, let the
// debounce settle, and the listing collapses to one page of two rows.
func TestBankSearchScenario(t *testing.T) {
	names := []string{"Access Bank Kenya", "Access Microfinance"}
	for i := 0; i < 23; i++ {
		names = append(names, "Commercial Bank "+strconv.Itoa(i+1))
	}

	srv := httptest.NewServer(bankBackend(names))
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL, "", 5*time.Second)
	require.NoError(t, err)

	c := New(10)
	resolve := func(f Fetch) (bool, bool) {
		raw, err := client.List(context.Background(), schema.Banks.Path, f.Params)
		require.NoError(t, err)
		recs, meta, err := schema.Banks.ParseList(raw)
		require.NoError(t, err)
		return c.Apply(f.Epoch, recs, meta, nil)
	}

	// Initial load: 25 banks, page size 10, three pages.
	applied, _ := resolve(c.StartFetch())
	require.True(t, applied)
	assert.Len(t, c.Records(), 10)
	assert.Equal(t, 25, c.Meta().Total)
	assert.Equal(t, 3, c.Meta().TotalPages)

	// Three keystrokes; only the final one may commit a fetch.
	d := query.NewDebouncer(time.Millisecond)
	d.Trigger()
	d.Trigger()
	last := d.Trigger()
	require.True(t, d.Settle(last))

	require.True(t, c.Query().SetSearch("Access"))
	assert.Equal(t, 1, c.Query().Page(), "a new search starts on page 1")

	applied, refetch := resolve(c.StartFetch())
	require.True(t, applied)
	assert.False(t, refetch)

	require.Len(t, c.Records(), 2)
	assert.Equal(t, "Access Bank Kenya", c.Records()[0].Display())
	assert.Equal(t, 2, c.Meta().Total)
	assert.Equal(t, 1, c.Meta().TotalPages, "one page of results disables pagination")
}
