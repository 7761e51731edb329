package git

import (
	"os/exec"
	"strings"

	"github.com/wahlandcase/attuned.commitcheck/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HeadMessage returns the full commit message of HEAD
func HeadMessage(repoPath string) (string, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", err
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", err
	}

	return commit.Message, nil
}

// resolveRevision resolves a revision, also trying the origin remote and
// local branch forms so callers can pass bare branch names
func resolveRevision(repo *git.Repository, rev string) (*plumbing.Hash, error) {
	candidates := []string{
		rev,
		"refs/remotes/origin/" + rev,
		"refs/heads/" + rev,
	}
	for _, candidate := range candidates {
		if hash, err := repo.ResolveRevision(plumbing.Revision(candidate)); err == nil {
			return hash, nil
		}
	}
	return nil, &RevisionNotFoundError{Revision: rev}
}

// CommitsBetween gets commits between two revisions (base..head).
// Returns commits that are reachable from head but not from base.
func CommitsBetween(repoPath, baseRev, headRev string) ([]models.CommitInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	baseHash, err := resolveRevision(repo, baseRev)
	if err != nil {
		return nil, err
	}

	headHash, err := resolveRevision(repo, headRev)
	if err != nil {
		return nil, err
	}

	// Build set of commits reachable from base
	baseCommits := make(map[plumbing.Hash]bool)
	baseIter, err := repo.Log(&git.LogOptions{From: *baseHash})
	if err != nil {
		return nil, err
	}
	baseIter.ForEach(func(c *object.Commit) error {
		baseCommits[c.Hash] = true
		return nil
	})

	// Get commits from head that are not in base
	headIter, err := repo.Log(&git.LogOptions{From: *headHash})
	if err != nil {
		return nil, err
	}

	var commits []models.CommitInfo
	seen := make(map[plumbing.Hash]bool)
	err = headIter.ForEach(func(c *object.Commit) error {
		// Skip if already processed or reachable from base.
		// Don't stop iteration - merge commits have multiple parents
		// and we need to traverse all paths to find feature commits.
		if seen[c.Hash] || baseCommits[c.Hash] {
			return nil
		}
		seen[c.Hash] = true

		hash := c.Hash.String()[:7]
		subject := strings.Split(c.Message, "\n")[0]

		commits = append(commits, models.NewCommitInfo(hash, subject))
		return nil
	})

	if err != nil {
		return nil, err
	}

	return commits, nil
}

// Commit runs `git commit -m <message>` via the git CLI so that hooks,
// signing, and user config all apply exactly as they would for a manual
// commit. The message is passed through verbatim.
func Commit(repoPath, message string) error {
	cmd := exec.Command("git", "commit", "-m", message)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		outputStr := strings.TrimSpace(string(output))
		if outputStr == "" {
			outputStr = "commit failed"
		}
		return &GitError{Command: "commit", Output: outputStr}
	}

	return nil
}

// CreateBranch creates and checks out a new branch via the git CLI
func CreateBranch(repoPath, name string) error {
	cmd := exec.Command("git", "checkout", "-b", name)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		outputStr := strings.TrimSpace(string(output))
		if outputStr == "" {
			outputStr = "checkout failed"
		}
		return &GitError{Command: "checkout -b", Output: outputStr}
	}

	return nil
}

// HasStagedChanges reports whether anything is staged for commit
func HasStagedChanges(repoPath string) bool {
	cmd := exec.Command("git", "diff", "--cached", "--quiet")
	cmd.Dir = repoPath

	// Exit status 1 means there are staged changes
	return cmd.Run() != nil
}
