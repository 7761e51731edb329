package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileSavesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attcm.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Update.Repo, cfg.Update.Repo)
	assert.False(t, cfg.Commit.UTCDates)

	// Defaults were written for next time
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadFromRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attcm.toml")

	cfg := DefaultConfig()
	cfg.Commit.UTCDates = true
	cfg.CI.BaseBranch = "develop"
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.True(t, loaded.Commit.UTCDates)
	assert.Equal(t, "develop", loaded.CI.BaseBranch)
}

func TestLoadFromPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attcm.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ci]\nbase_branch = \"main\"\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.CI.BaseBranch)
	assert.True(t, cfg.Update.Enabled, "unset sections keep defaults")
}

func TestLoadFromInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attcm.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
