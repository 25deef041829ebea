package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhub-io/lexadmin/pkg/config"
	"github.com/lexhub-io/lexadmin/pkg/schema"
)

func TestNewFromConfigFileLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexadmin.yaml")
	yaml := "apiBaseURL: https://api.lexhub.example\npageLimit: 25\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0600))

	m, err := NewFromConfigFile(path, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "https://api.lexhub.example", m.common.cfg.APIBaseURL)
	assert.Equal(t, 25, m.common.cfg.PageLimit)
	assert.Len(t, m.browsers, len(schema.All()))
}

func TestNewFromConfigFileMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	m, err := NewFromConfigFile(path, Overrides{APIBaseURL: "https://override.example"})
	require.NoError(t, err)

	assert.Equal(t, "https://override.example", m.common.cfg.APIBaseURL)
	assert.Equal(t, config.Default.PageLimit, m.common.cfg.PageLimit)
	assert.Equal(t, config.Default.DebounceWindow, m.common.cfg.DebounceWindow)
}

func TestNewFromConfigFileRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexadmin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pageLimit: [not, a, number]\n"), 0600))

	_, err := NewFromConfigFile(path, Overrides{})
	require.Error(t, err)
}
