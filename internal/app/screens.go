package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenTypeSelect
	ScreenTaskIDInput
	ScreenDescriptionInput
	ScreenConfirmation
	ScreenCommitting
	ScreenComplete
	ScreenError
	ScreenHeadCheck
	ScreenSessionHistory
	ScreenUpdatePrompt
	ScreenUpdating
)

func (s Screen) String() string {
	names := []string{
		"MainMenu",
		"TypeSelect",
		"TaskIDInput",
		"DescriptionInput",
		"Confirmation",
		"Committing",
		"Complete",
		"Error",
		"HeadCheck",
		"SessionHistory",
		"UpdatePrompt",
		"Updating",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// ComposeMode selects what the type/taskid flow produces
type ComposeMode int

const (
	// ModeCommit composes a full commit message and runs git commit
	ModeCommit ComposeMode = iota
	// ModeBranch composes a branch name and runs git checkout -b
	ModeBranch
)
