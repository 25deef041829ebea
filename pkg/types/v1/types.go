package v1

import (
	"strconv"
	"strings"
)

// ID is the server-assigned identity of a record. The console never mints
// its own identifiers.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ListMeta carries the pagination envelope returned alongside every list.
type ListMeta struct {
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page,omitempty"`
}

// Normalize keeps the meta usable when the server omits fields; a list
// always has at least one (possibly empty) page.
func (m ListMeta) Normalize() ListMeta {
	if m.TotalPages < 1 {
		m.TotalPages = 1
	}
	if m.Total < 0 {
		m.Total = 0
	}
	return m
}

// Record is a single row of any management screen. Fields returns the
// editable fields, normalized for form seeding: dates sliced to YYYY-MM-DD,
// absent values as empty strings.
type Record interface {
	Identifier() ID
	Display() string
	Summary() string
	Fields() map[string]string
}

// DateOnly truncates server timestamps ("2024-05-01T10:22:03Z" or already
// date-only) to the YYYY-MM-DD form that date inputs hold.
func DateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
