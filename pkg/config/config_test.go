package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromReaderMergesDefaults(t *testing.T) {
	c, err := NewFromReader(strings.NewReader("apiBaseURL: https://api.lexhub.example\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.lexhub.example", c.APIBaseURL)
	assert.Equal(t, Default.PageLimit, c.PageLimit)
	assert.Equal(t, Default.RequestTimeout, c.RequestTimeout)
	assert.Equal(t, Default.DebounceWindow, c.DebounceWindow)
}

func TestNewFromReaderFullConfig(t *testing.T) {
	yaml := `
apiBaseURL: https://api.lexhub.example
token: abc123
pageLimit: 25
uploadInbox: ~/lexhub-inbox
`
	c, err := NewFromReader(strings.NewReader(yaml))
	require.NoError(t, err)

	assert.Equal(t, "abc123", c.Token)
	assert.Equal(t, 25, c.PageLimit)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "~/lexhub-inbox", c.UploadInbox)
}

func TestNewFromReaderRejectsBadURL(t *testing.T) {
	_, err := NewFromReader(strings.NewReader("apiBaseURL: not a url\n"))
	assert.Error(t, err)
}

func TestNewFromReaderRejectsPageLimitBounds(t *testing.T) {
	_, err := NewFromReader(strings.NewReader("apiBaseURL: https://x.example\npageLimit: 0\n"))
	assert.Error(t, err)

	_, err = NewFromReader(strings.NewReader("apiBaseURL: https://x.example\npageLimit: 500\n"))
	assert.Error(t, err)
}

func TestNewFromReaderRejectsMalformedYAML(t *testing.T) {
	_, err := NewFromReader(strings.NewReader("pageLimit: [nope\n"))
	assert.Error(t, err)
}
