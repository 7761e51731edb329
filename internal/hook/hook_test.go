package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git", "hooks"), 0755))
	return dir
}

func TestInstallAndUninstall(t *testing.T) {
	repo := fakeRepo(t)

	require.NoError(t, Install(repo))
	assert.True(t, IsInstalled(repo))

	path := filepath.Join(repo, ".git", "hooks", "commit-msg")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "attcm check")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0100, "hook must be executable")

	require.NoError(t, Uninstall(repo))
	assert.False(t, IsInstalled(repo))
}

func TestInstallIsIdempotent(t *testing.T) {
	repo := fakeRepo(t)

	require.NoError(t, Install(repo))
	require.NoError(t, Install(repo))
	assert.True(t, IsInstalled(repo))
}

func TestInstallRefusesForeignHook(t *testing.T) {
	repo := fakeRepo(t)
	path := filepath.Join(repo, ".git", "hooks", "commit-msg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho custom hook\n"), 0755))

	err := Install(repo)
	require.ErrorIs(t, err, ErrForeignHook)

	// Foreign hook untouched
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "custom hook")
}

func TestUninstallRefusesForeignHook(t *testing.T) {
	repo := fakeRepo(t)
	path := filepath.Join(repo, ".git", "hooks", "commit-msg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho custom hook\n"), 0755))

	require.ErrorIs(t, Uninstall(repo), ErrForeignHook)
}

func TestUninstallMissingHookIsNoop(t *testing.T) {
	repo := fakeRepo(t)
	assert.NoError(t, Uninstall(repo))
}

func TestNotARepo(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, Install(dir), ErrNotARepo)
	assert.ErrorIs(t, Uninstall(dir), ErrNotARepo)
	assert.False(t, IsInstalled(dir))
}

func TestInstallCreatesHooksDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))

	require.NoError(t, Install(dir))
	assert.True(t, IsInstalled(dir))
}
