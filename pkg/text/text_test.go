package text

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	out, err := Normalize("Nöél Müller")
	require.NoError(t, err)
	assert.Equal(t, "Noel Muller", out)

	out, err = Normalize("plain ascii")
	require.NoError(t, err)
	assert.Equal(t, "plain ascii", out)
}

func TestTruncateWithTail(t *testing.T) {
	assert.Equal(t, "Mwangi v…", TruncateWithTail("Mwangi v Republic", 9, "…"))
	assert.Equal(t, "short", TruncateWithTail("short", 20, "…"))
}

func TestRelativeTime(t *testing.T) {
	assert.Equal(t, "just now", RelativeTime(time.Now().Add(-30*time.Second)))
	assert.Contains(t, RelativeTime(time.Now().Add(-2*time.Hour)), "hours ago")

	old := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01 Jun 2020", RelativeTime(old))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2021, d.Year())
	assert.Equal(t, time.March, d.Month())

	_, err = ParseDate("15/03/2021")
	assert.Error(t, err)
}

func TestBusinessDaysUntilPastIsZero(t *testing.T) {
	assert.Equal(t, 0, BusinessDaysUntil(time.Now().Add(-48*time.Hour)))
}

func TestDeadlineLabel(t *testing.T) {
	past := time.Now().Add(-72 * time.Hour)
	label := DeadlineLabel(past)
	assert.True(t, strings.HasPrefix(label, "expired "), label)

	future := time.Now().AddDate(0, 0, 21)
	label = DeadlineLabel(future)
	assert.True(t, strings.HasPrefix(label, "expires "), label)
	assert.Contains(t, label, "business day")
}
