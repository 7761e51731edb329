package models

// CommitInfo contains information about a git commit
type CommitInfo struct {
	// Hash is the short commit hash (7 characters)
	Hash string
	// Subject is the first line of the commit message
	Subject string
}

// NewCommitInfo creates a new CommitInfo
func NewCommitInfo(hash, subject string) CommitInfo {
	return CommitInfo{
		Hash:    hash,
		Subject: subject,
	}
}
