// Package query owns the committed query of one management screen: search
// text, filter selections and page number. Its single invariant is that a
// fresh query never applies a stale page offset: changing search text or
// any filter resets the page to 1, while page changes leave filters alone.
package query

import "strconv"

type State struct {
	search  string
	filters map[string]string
	page    int
}

func NewState() *State {
	return &State{
		filters: map[string]string{},
		page:    1,
	}
}

func (s *State) Search() string { return s.search }
func (s *State) Page() int      { return s.page }

func (s *State) Filter(key string) string { return s.filters[key] }

func (s *State) Filters() map[string]string {
	out := make(map[string]string, len(s.filters))
	for k, v := range s.filters {
		out[k] = v
	}
	return out
}

// SetSearch updates the search text, resetting to page 1. Reports whether
// anything changed (an unchanged value must not trigger a fetch).
func (s *State) SetSearch(v string) bool {
	if s.search == v {
		return false
	}
	s.search = v
	s.page = 1
	return true
}

// SetFilter updates one filter selection, resetting to page 1. An empty
// value clears the filter entirely so it is omitted from the query string.
func (s *State) SetFilter(key, value string) bool {
	if s.filters[key] == value {
		return false
	}
	if value == "" {
		delete(s.filters, key)
	} else {
		s.filters[key] = value
	}
	s.page = 1
	return true
}

// SetPage moves to another page without touching search or filters.
func (s *State) SetPage(p int) bool {
	if p < 1 || p == s.page {
		return false
	}
	s.page = p
	return true
}

// ClampPage pulls the page back into range after the result set shrank,
// e.g. deleting the only item on the last page.
func (s *State) ClampPage(totalPages int) bool {
	if totalPages < 1 {
		totalPages = 1
	}
	if s.page <= totalPages {
		return false
	}
	s.page = totalPages
	return true
}

// Filtered reports whether any search text or filter is in effect.
func (s *State) Filtered() bool {
	return s.search != "" || len(s.filters) > 0
}

// Params serializes the query for the list endpoint. Empty values are
// omitted rather than sent as empty strings.
func (s *State) Params(limit int) map[string]string {
	params := map[string]string{
		"page":  strconv.Itoa(s.page),
		"limit": strconv.Itoa(limit),
	}
	if s.search != "" {
		params["search"] = s.search
	}
	for k, v := range s.filters {
		if v != "" {
			params[k] = v
		}
	}
	return params
}
