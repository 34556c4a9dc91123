package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2yum7/forword/pkg/draft"
)

func TestLoadConfigFromOverridePath(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "journal")
	yaml := "path: " + data + "\nautosave_interval: 5s\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".forword.yaml"), []byte(yaml), 0o644))
	t.Setenv("FORWORD_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, data, cfg.BasePath())
	assert.Equal(t, 5*time.Second, cfg.AutosaveInterval())
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, filepath.Join(dir, ".forword.yaml"), cfg.ConfigFile())
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("FORWORD_CONFIG_PATH", t.TempDir())
	t.Setenv("FORWORD_AUTOSAVE_INTERVAL", "not a duration")
	t.Setenv("FORWORD_PATH", "/tmp/forword-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/forword-test", cfg.BasePath())
	assert.Equal(t, draft.DefaultAutosaveInterval, cfg.AutosaveInterval())
}
