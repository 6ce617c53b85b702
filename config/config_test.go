package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig("")
	require.NoError(t, err)
	assert.NotNil(t, c.Checkers)

	// an unconfigured checker is enabled with empty (default) settings
	assert.True(t, c.Get("org", "repo", "weasel").Enabled())
}

func TestNewConfigFromFile(t *testing.T) {
	raw := `
checkers:
  weasel:
    words: ["very", "quite"]
    tooltip: "hedging"
    style:
      foreground: "11"
      underline: true
  passive:
    enable: false
customRepoConfig:
  qbox:
    weasel:
      words: ["org-word"]
  qbox/docs:
    weasel:
      words: ["repo-word"]
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	c, err := NewConfig(path)
	require.NoError(t, err)

	weasel := c.Checkers["weasel"]
	assert.True(t, weasel.Enabled())
	assert.Equal(t, []string{"very", "quite"}, weasel.Words)
	assert.Equal(t, "hedging", weasel.Tooltip)
	assert.Equal(t, "11", weasel.Style.Foreground)
	assert.True(t, weasel.Style.Underline)

	assert.False(t, c.Checkers["passive"].Enabled())

	// repo override wins over org override wins over base
	assert.Equal(t, []string{"repo-word"}, c.Get("qbox", "docs", "weasel").Words)
	assert.Equal(t, []string{"org-word"}, c.Get("qbox", "other", "weasel").Words)
	assert.Equal(t, []string{"very", "quite"}, c.Get("elsewhere", "repo", "weasel").Words)
}

func TestNewConfigBadFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checkers: ["), 0o644))
	_, err = NewConfig(path)
	assert.Error(t, err)
}
