package models

// RepoInfo contains information about a git repository
type RepoInfo struct {
	// Path to the repository root
	Path string
	// DisplayName (directory name, e.g., "attuned-api")
	DisplayName string
	// MainBranch name ("main" or "master")
	MainBranch string
	// CurrentBranch is the checked-out branch, or "detached"
	CurrentBranch string
}

// NewRepoInfo creates a new RepoInfo
func NewRepoInfo(path, displayName, mainBranch, currentBranch string) RepoInfo {
	return RepoInfo{
		Path:          path,
		DisplayName:   displayName,
		MainBranch:    mainBranch,
		CurrentBranch: currentBranch,
	}
}
