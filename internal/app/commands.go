package app

import (
	"errors"

	"github.com/wahlandcase/attuned.commitcheck/internal/commitmsg"
	"github.com/wahlandcase/attuned.commitcheck/internal/git"
	"github.com/wahlandcase/attuned.commitcheck/internal/hook"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"
	"github.com/wahlandcase/attuned.commitcheck/internal/update"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type repoLoadedResult struct {
	info          *models.RepoInfo
	hookInstalled bool
	err           error
}

type commitDoneResult struct {
	err error
}

type branchDoneResult struct {
	name string
	err  error
}

type headCheckResult struct {
	message string
	verdict commitmsg.Verdict
	err     error
}

type hookToggleResult struct {
	installed bool
	err       error
}

// Update check messages
type updateCheckResult struct {
	release *update.Release
	err     error
}

type updateDownloadResult struct {
	success bool
	version string
	err     error
}

// loadRepoCmd finds the enclosing git repository in the background
func loadRepoCmd() tea.Cmd {
	return func() tea.Msg {
		info, err := git.GetCurrentRepoInfo()
		if err != nil {
			return repoLoadedResult{err: err}
		}
		return repoLoadedResult{info: info, hookInstalled: hook.IsInstalled(info.Path)}
	}
}

// commitCmd runs git commit with the composed message
func commitCmd(repoPath, message string, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			return commitDoneResult{}
		}
		if !git.HasStagedChanges(repoPath) {
			return commitDoneResult{err: errors.New("nothing staged - stage changes before committing")}
		}
		err := git.Commit(repoPath, message)
		return commitDoneResult{err: err}
	}
}

// createBranchCmd runs git checkout -b with the composed branch name
func createBranchCmd(repoPath, name string, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			return branchDoneResult{name: name}
		}
		err := git.CreateBranch(repoPath, name)
		return branchDoneResult{name: name, err: err}
	}
}

// headCheckCmd validates the HEAD commit message
func headCheckCmd(repoPath string) tea.Cmd {
	return func() tea.Msg {
		message, err := git.HeadMessage(repoPath)
		if err != nil {
			return headCheckResult{err: err}
		}
		trimmed := commitmsg.TrimMessage(message)
		return headCheckResult{message: trimmed, verdict: commitmsg.Validate(trimmed)}
	}
}

// toggleHookCmd installs or removes the commit-msg hook
func toggleHookCmd(repoPath string, installed bool) tea.Cmd {
	return func() tea.Msg {
		if installed {
			if err := hook.Uninstall(repoPath); err != nil {
				return hookToggleResult{installed: true, err: err}
			}
			return hookToggleResult{installed: false}
		}
		if err := hook.Install(repoPath); err != nil {
			return hookToggleResult{installed: false, err: err}
		}
		return hookToggleResult{installed: true}
	}
}

// checkUpdateCmd checks for available updates
func checkUpdateCmd(currentVersion, repo string) tea.Cmd {
	return func() tea.Msg {
		release, err := update.CheckForUpdate(currentVersion, repo)
		return updateCheckResult{release: release, err: err}
	}
}

// downloadUpdateCmd downloads and installs an update
func downloadUpdateCmd(release *update.Release, repo string) tea.Cmd {
	return func() tea.Msg {
		err := update.DownloadAndInstall(release, repo)
		if err != nil {
			return updateDownloadResult{success: false, err: err}
		}
		return updateDownloadResult{success: true, version: update.VersionDisplay(release.TagName)}
	}
}
