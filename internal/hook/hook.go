// Package hook installs and removes the commit-msg hook that routes
// every commit message through `attcm check`.
package hook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// marker identifies hooks written by this tool, so install and uninstall
// never touch a hook someone else put there
const marker = "# attcm commit-msg hook"

const script = `#!/bin/sh
` + marker + `
exec attcm check "$1"
`

var (
	// ErrNotARepo indicates the path has no .git directory
	ErrNotARepo = errors.New("not a git repository")

	// ErrForeignHook indicates an existing commit-msg hook was not written by attcm
	ErrForeignHook = errors.New("existing commit-msg hook was not installed by attcm")
)

func hookPath(repoPath string) (string, error) {
	gitDir := filepath.Join(repoPath, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotARepo, repoPath)
	}
	return filepath.Join(gitDir, "hooks", "commit-msg"), nil
}

// IsInstalled reports whether the repo has an attcm commit-msg hook
func IsInstalled(repoPath string) bool {
	path, err := hookPath(repoPath)
	if err != nil {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), marker)
}

// Install writes the commit-msg hook into the repository. An existing
// attcm hook is overwritten; any other hook is left alone and reported
// as ErrForeignHook.
func Install(repoPath string) error {
	path, err := hookPath(repoPath)
	if err != nil {
		return err
	}

	if data, err := os.ReadFile(path); err == nil {
		if !strings.Contains(string(data), marker) {
			return fmt.Errorf("%w: %s", ErrForeignHook, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(script), 0755)
}

// Uninstall removes the commit-msg hook if attcm installed it
func Uninstall(repoPath string) error {
	path, err := hookPath(repoPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing installed, nothing to do
			return nil
		}
		return err
	}

	if !strings.Contains(string(data), marker) {
		return fmt.Errorf("%w: %s", ErrForeignHook, path)
	}

	return os.Remove(path)
}
