package app

import (
	"time"

	"github.com/wahlandcase/attuned.commitcheck/internal/commitmsg"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		m.updateAnimations()
		return m, tickCmd()

	case repoLoadedResult:
		return m.handleRepoLoaded(msg)

	case commitDoneResult:
		return m.handleCommitDone(msg)

	case branchDoneResult:
		return m.handleBranchDone(msg)

	case headCheckResult:
		return m.handleHeadCheckResult(msg)

	case hookToggleResult:
		return m.handleHookToggleResult(msg)

	case updateCheckResult:
		return m.handleUpdateCheckResult(msg)

	case updateDownloadResult:
		return m.handleUpdateDownloadResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear transient feedback on any keypress
	m.hookFeedback = ""

	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenMainMenu:
		return m.handleMainMenuKey(msg)
	case ScreenTypeSelect:
		return m.handleTypeSelectKey(msg)
	case ScreenTaskIDInput:
		return m.handleTaskIDInputKey(msg)
	case ScreenDescriptionInput:
		return m.handleDescriptionInputKey(msg)
	case ScreenConfirmation:
		return m.handleConfirmationKey(msg)
	case ScreenComplete:
		return m.handleCompleteKey(msg)
	case ScreenError:
		return m.handleErrorKey(msg)
	case ScreenHeadCheck:
		return m.handleHeadCheckKey(msg)
	case ScreenSessionHistory:
		return m.handleSessionHistoryKey(msg)
	case ScreenUpdatePrompt:
		return m.handleUpdatePromptKey(msg)
	}

	return m, nil
}

func (m Model) handleMainMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		} else {
			m.menuIndex = 4 // Wrap to bottom
		}
	case "down", "j":
		if m.menuIndex < 4 {
			m.menuIndex++
		} else {
			m.menuIndex = 0 // Wrap to top
		}
	case "enter":
		return m.selectMainMenuItem()
	case "1":
		m.menuIndex = 0
		return m.selectMainMenuItem()
	case "2":
		m.menuIndex = 1
		return m.selectMainMenuItem()
	case "3":
		m.menuIndex = 2
		return m.selectMainMenuItem()
	case "4":
		m.menuIndex = 3
		return m.selectMainMenuItem()
	case "5":
		m.menuIndex = 4
		return m.selectMainMenuItem()
	case "h":
		if len(m.sessionCommits) > 0 {
			m.historyIndex = 0
			m.screen = ScreenSessionHistory
		}
	}
	return m, nil
}

func (m Model) selectMainMenuItem() (tea.Model, tea.Cmd) {
	switch m.menuIndex {
	case 0: // Compose commit
		if m.repoInfo == nil {
			m.errorMessage = m.repoErrText()
			m.screen = ScreenError
			return m, nil
		}
		m.mode = ModeCommit
		m.resetCompose()
		m.screen = ScreenTypeSelect
	case 1: // Create branch
		if m.repoInfo == nil {
			m.errorMessage = m.repoErrText()
			m.screen = ScreenError
			return m, nil
		}
		m.mode = ModeBranch
		m.resetCompose()
		m.screen = ScreenTypeSelect
	case 2: // Check HEAD
		if m.repoInfo == nil {
			m.errorMessage = m.repoErrText()
			m.screen = ScreenError
			return m, nil
		}
		m.screen = ScreenHeadCheck
		m.headMessage = ""
		m.headVerdict = nil
		return m, headCheckCmd(m.repoInfo.Path)
	case 3: // Toggle hook
		if m.repoInfo == nil {
			m.errorMessage = m.repoErrText()
			m.screen = ScreenError
			return m, nil
		}
		return m, toggleHookCmd(m.repoInfo.Path, m.hookInstalled)
	case 4: // Quit
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) repoErrText() string {
	if m.repoErr != "" {
		return m.repoErr
	}
	return "Not inside a git repository"
}

func (m Model) handleTypeSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	types := commitmsg.AllTypes()

	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.typeIndex > 0 {
			m.typeIndex--
		} else {
			m.typeIndex = len(types) - 1
		}
	case "down", "j":
		if m.typeIndex < len(types)-1 {
			m.typeIndex++
		} else {
			m.typeIndex = 0
		}
	case "1", "2", "3", "4", "5", "6", "7":
		m.typeIndex = int(msg.String()[0] - '1')
		return m.selectType()
	case "enter":
		return m.selectType()
	case "esc":
		m.screen = ScreenMainMenu
	}
	return m, nil
}

func (m Model) selectType() (tea.Model, tea.Cmd) {
	types := commitmsg.AllTypes()
	t := types[m.typeIndex]
	m.commitType = &t
	m.fieldHint = ""
	m.screen = ScreenTaskIDInput
	return m, nil
}

func (m Model) handleTaskIDInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if !commitmsg.ValidTaskID(m.taskID) {
			m.fieldHint = commitmsg.FieldHint(commitmsg.FieldTaskID)
			return m, nil
		}
		m.fieldHint = ""
		if m.mode == ModeBranch {
			return m.composeBranch()
		}
		m.screen = ScreenDescriptionInput
	case tea.KeyEsc:
		m.fieldHint = ""
		m.screen = ScreenTypeSelect
	case tea.KeyBackspace:
		if len(m.taskID) > 0 {
			m.taskID = m.taskID[:len(m.taskID)-1]
		}
	case tea.KeySpace:
		m.taskID += " "
	case tea.KeyRunes:
		m.taskID += string(msg.Runes)
	}
	return m, nil
}

func (m Model) composeBranch() (tea.Model, tea.Cmd) {
	name, err := commitmsg.BranchName(*m.commitType, m.taskID)
	if err != nil {
		m.fieldHint = commitmsg.FieldHint(commitmsg.FieldTaskID)
		return m, nil
	}
	m.branchName = name
	m.confirmSelection = 0
	m.screen = ScreenConfirmation
	return m, nil
}

func (m Model) handleDescriptionInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if !commitmsg.ValidDescription(m.description) {
			m.fieldHint = commitmsg.FieldHint(commitmsg.FieldDescription)
			return m, nil
		}
		m.fieldHint = ""
		return m.composeMessage()
	case tea.KeyEsc:
		m.fieldHint = ""
		m.screen = ScreenTaskIDInput
	case tea.KeyBackspace:
		if len(m.description) > 0 {
			m.description = m.description[:len(m.description)-1]
		}
	case tea.KeySpace:
		m.description += " "
	case tea.KeyRunes:
		m.description += string(msg.Runes)
	}
	return m, nil
}

func (m Model) composeMessage() (tea.Model, tea.Cmd) {
	date := commitmsg.DateToken(m.config.Now())
	message, err := commitmsg.Compose(*m.commitType, m.taskID, date, m.description)
	if err != nil {
		// Field checks above should have caught this; surface it anyway
		m.fieldHint = err.Error()
		return m, nil
	}
	m.message = message
	m.confirmSelection = 0
	m.screen = ScreenConfirmation
	return m, nil
}

func (m Model) handleConfirmationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "left", "right", "tab":
		m.confirmSelection = 1 - m.confirmSelection
	case "y":
		m.confirmSelection = 0
		return m.confirmAction()
	case "n":
		return m.goBack()
	case "enter":
		if m.confirmSelection == 0 {
			return m.confirmAction()
		}
		return m.goBack()
	case "esc":
		return m.goBack()
	}
	return m, nil
}

func (m Model) confirmAction() (tea.Model, tea.Cmd) {
	m.screen = ScreenCommitting
	if m.mode == ModeBranch {
		return m, createBranchCmd(m.repoInfo.Path, m.branchName, m.dryRun)
	}
	return m, commitCmd(m.repoInfo.Path, m.message, m.dryRun)
}

func (m Model) goBack() (tea.Model, tea.Cmd) {
	if m.mode == ModeBranch {
		m.screen = ScreenTaskIDInput
	} else {
		m.screen = ScreenDescriptionInput
	}
	m.confirmSelection = 0
	return m, nil
}

func (m Model) handleCompleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "enter", "esc":
		m.resetCompose()
		m.confetti = nil
		m.menuIndex = 0
		m.screen = ScreenMainMenu
	}
	return m, nil
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "enter", "esc":
		m.errorMessage = ""
		m.screen = ScreenMainMenu
	}
	return m, nil
}

func (m Model) handleHeadCheckKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "enter", "esc":
		m.screen = ScreenMainMenu
	}
	return m, nil
}

func (m Model) handleSessionHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.historyIndex > 0 {
			m.historyIndex--
		}
	case "down", "j":
		if m.historyIndex < len(m.sessionCommits)-1 {
			m.historyIndex++
		}
	case "enter", "esc":
		m.screen = ScreenMainMenu
	}
	return m, nil
}

func (m Model) handleUpdatePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.updateSelection > 0 {
			m.updateSelection--
		}
	case "down", "j":
		if m.updateSelection < 2 {
			m.updateSelection++
		}
	case "y":
		m.updateSelection = 0
		return m.applyUpdateChoice()
	case "n", "esc":
		m.updateSelection = 1
		return m.applyUpdateChoice()
	case "s":
		m.updateSelection = 2
		return m.applyUpdateChoice()
	case "enter":
		return m.applyUpdateChoice()
	}
	return m, nil
}

func (m Model) applyUpdateChoice() (tea.Model, tea.Cmd) {
	switch m.updateSelection {
	case 0: // Update now
		m.screen = ScreenUpdating
		return m, downloadUpdateCmd(m.updateAvailable, m.config.Update.Repo)
	case 2: // Skip this version
		m.config.Update.SkippedVersion = m.updateAvailable.TagName
		_ = m.config.Save()
	}
	m.updateAvailable = nil
	m.screen = ScreenMainMenu
	return m, nil
}

// Result handlers

func (m Model) handleRepoLoaded(msg repoLoadedResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.repoErr = "Not inside a git repository"
		return m, nil
	}
	m.repoInfo = msg.info
	m.hookInstalled = msg.hookInstalled
	return m, nil
}

func (m Model) handleCommitDone(msg commitDoneResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}
	m.recordSession(m.message, "commit")
	m.spawnConfetti()
	m.screen = ScreenComplete
	return m, nil
}

func (m Model) handleBranchDone(msg branchDoneResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}
	if m.repoInfo != nil {
		m.repoInfo.CurrentBranch = msg.name
	}
	m.recordSession(msg.name, "branch")
	m.spawnConfetti()
	m.screen = ScreenComplete
	return m, nil
}

func (m *Model) recordSession(message, kind string) {
	repoName := ""
	if m.repoInfo != nil {
		repoName = m.repoInfo.DisplayName
	}
	m.sessionCommits = append(m.sessionCommits, sessionCommit{
		repoName:  repoName,
		message:   message,
		kind:      kind,
		createdAt: time.Now(),
	})
	saveHistory(m.sessionCommits)
}

func (m Model) handleHeadCheckResult(msg headCheckResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}
	m.headMessage = msg.message
	m.headVerdict = msg.verdict
	return m, nil
}

func (m Model) handleHookToggleResult(msg hookToggleResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}
	m.hookInstalled = msg.installed
	if msg.installed {
		m.hookFeedback = "Hook installed"
	} else {
		m.hookFeedback = "Hook removed"
	}
	return m, nil
}

func (m Model) handleUpdateCheckResult(msg updateCheckResult) (tea.Model, tea.Cmd) {
	m.updateCheckInProgress = false
	m.config.RecordUpdateCheck()
	_ = m.config.Save()

	if msg.err != nil || msg.release == nil {
		return m, nil
	}
	if msg.release.TagName == m.config.Update.SkippedVersion {
		return m, nil
	}
	m.updateAvailable = msg.release
	m.updateSelection = 0
	m.screen = ScreenUpdatePrompt
	return m, nil
}

func (m Model) handleUpdateDownloadResult(msg updateDownloadResult) (tea.Model, tea.Cmd) {
	if !msg.success {
		m.errorMessage = "Update failed: " + msg.err.Error()
		m.screen = ScreenError
		m.updateAvailable = nil
		return m, nil
	}
	m.errorMessage = "Updated to " + msg.version + ". Restart attcm to use the new version."
	m.updateAvailable = nil
	m.screen = ScreenError
	return m, nil
}
