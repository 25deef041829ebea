package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhub-io/lexadmin/pkg/types/v1"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "sekrit", 5*time.Second)
	require.NoError(t, err)
	return c, srv
}

func TestListSendsAuthAndParams(t *testing.T) {
	var got *http.Request
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{"banks": [], "total": 0, "total_pages": 1}`))
	})

	_, err := c.List(context.Background(), "/api/admin/banks", map[string]string{
		"page":   "2",
		"limit":  "25",
		"search": "",
		"status": "ACTIVE",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/admin/banks", got.URL.Path)
	assert.Equal(t, "Bearer sekrit", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "limit=25&page=2&status=ACTIVE", got.URL.RawQuery, "empty params are omitted, keys sorted")
}

func TestCreateAndUpdateVerbs(t *testing.T) {
	type call struct {
		method string
		path   string
		body   map[string]interface{}
	}
	var calls []call
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, call{r.Method, r.URL.Path, body})
		w.Write([]byte(`{"id": 3}`))
	})

	_, err := c.Create(context.Background(), "/api/admin/banks", map[string]interface{}{"name": "Equity"})
	require.NoError(t, err)

	_, err = c.Update(context.Background(), "/api/admin/banks", 3, map[string]interface{}{"name": "Equity Group"})
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "/api/admin/banks", calls[0].path)
	assert.Equal(t, "Equity", calls[0].body["name"])
	assert.Equal(t, http.MethodPut, calls[1].method)
	assert.Equal(t, "/api/admin/banks/3", calls[1].path)
}

func TestRemoveUsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Remove(context.Background(), "/api/admin/judges", v1.ID(12)))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/admin/judges/12", gotPath)
}

func TestRequestErrorCarriesDetail(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "swift code already in use"}`))
	})

	_, err := c.Create(context.Background(), "/api/admin/banks", map[string]interface{}{"name": "x"})
	require.Error(t, err)

	re, ok := err.(*RequestError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, re.Status)
	assert.Equal(t, "swift code already in use", re.Error())
}

func TestRequestErrorFallsBackToStatusText(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	})

	_, err := c.List(context.Background(), "/api/admin/banks", nil)
	require.Error(t, err)
	assert.Equal(t, "request failed: Internal Server Error", err.Error())
}

func TestIsNotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Get(context.Background(), "/api/admin/banks", 99)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(nil))
}

func TestNetworkErrorOnDeadServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := New(srv.URL, "", time.Second)
	require.NoError(t, err)
	srv.Close()

	_, err = c.List(context.Background(), "/api/admin/banks", nil)
	require.Error(t, err)
	_, ok := err.(*NetworkError)
	assert.True(t, ok, "a closed socket is a NetworkError, not a RequestError")
}

func TestStatsDecodes(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/cases/stats", r.URL.Path)
		w.Write([]byte(`{"total_cases": 1204, "open_cases": 377}`))
	})

	stats, err := c.Stats(context.Background(), "/api/admin/cases/stats")
	require.NoError(t, err)
	assert.Equal(t, float64(1204), stats["total_cases"])
	assert.Equal(t, float64(377), stats["open_cases"])
}

func TestBasePathPrefixIsKept(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/platform/", "", time.Second)
	require.NoError(t, err)

	_, err = c.List(context.Background(), "/api/admin/banks", nil)
	require.NoError(t, err)
	assert.Equal(t, "/platform/api/admin/banks", gotPath)
}
