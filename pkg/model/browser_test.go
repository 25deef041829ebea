package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhub-io/lexadmin/pkg/config"
	"github.com/lexhub-io/lexadmin/pkg/schema"
	"github.com/lexhub-io/lexadmin/pkg/types/v1"
	"github.com/lexhub-io/lexadmin/pkg/ui"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestBrowser(t *testing.T) *browserModel {
	t.Helper()
	common := &commonModel{cfg: config.Default}
	return newBrowserModel(common, schema.Banks)
}

// Rapid filter cycling must sit in the debounce window like search edits
// do: two quick presses commit a single fetch for the final selection.
func TestFilterCyclingCoalescesIntoOneFetch(t *testing.T) {
	b := newTestBrowser(t)

	cmd := b.update(keyRunes("f"))
	require.NotNil(t, cmd)
	cmd = b.update(keyRunes("f"))
	require.NotNil(t, cmd)

	// Nothing is committed while input is still settling.
	assert.True(t, b.debounce.Pending())
	assert.False(t, b.ctrl.Loading())
	assert.Empty(t, b.ctrl.Query().Filter("status"))

	// The settle scheduled by the first press is stale and must be dropped.
	cmd = b.update(debounceSettledMsg{resource: "banks", token: 1})
	assert.Nil(t, cmd)
	assert.False(t, b.ctrl.Loading())

	// The latest settle commits the final selection and issues one fetch.
	cmd = b.update(debounceSettledMsg{resource: "banks", token: 2})
	require.NotNil(t, cmd)
	assert.Equal(t, "INACTIVE", b.ctrl.Query().Filter("status"))
	assert.True(t, b.ctrl.Loading())
	assert.Equal(t, 1, b.ctrl.Query().Page())
	assert.Equal(t, 0, b.cursor)
}

func TestClearFiltersDropsPendingSelection(t *testing.T) {
	b := newTestBrowser(t)

	b.update(keyRunes("f"))
	b.update(keyRunes("F"))

	// The cleared query must not resurrect the in-flight selection once the
	// debounce window elapses.
	cmd := b.update(debounceSettledMsg{resource: "banks", token: 1})
	assert.Nil(t, cmd)
	assert.Empty(t, b.ctrl.Query().Filter("status"))
	assert.False(t, b.ctrl.Loading())
}

func TestColorizedStatusFollowsLifecyclePalette(t *testing.T) {
	for status, want := range map[string]ui.StyleFunc{
		"ACTIVE":   ui.GreenFg,
		"PENDING":  ui.YellowFg,
		"CLOSED":   ui.FaintRedFg,
		"RETIRED":  ui.FaintRedFg,
		"VERIFIED": ui.BrightGrayFg,
	} {
		rec := &v1.Bank{ID: 1, Name: "Equity", Status: status}
		assert.Equal(t, want(status), colorizedStatus(rec, true), status)
	}

	unfocused := &v1.Bank{ID: 1, Name: "Equity", Status: "ACTIVE"}
	assert.Equal(t, dimBrightGrayFg("ACTIVE"), colorizedStatus(unfocused, false))

	assert.Empty(t, colorizedStatus(&v1.Bank{ID: 1, Name: "Equity"}, true))
}
