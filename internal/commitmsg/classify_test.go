package commitmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSpecial(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"merge commit", "Merge branch 'develop' into main", true},
		{"merge lowercase", "merge pull request #42", true},
		{"merge uppercase", "MERGE BRANCH", true},
		{"revert commit", "Revert \"fix|api|20250101|Repair pagination\"", true},
		{"fixup bang", "fixup! feat|backend|20250129|Add user authentication", true},
		{"squash bang", "squash! earlier work", true},
		{"fixup plain", "Fixup the thing", true},
		{"squash plain", "Squash everything", true},
		{"prefix only no trailing content", "Merge", true},
		{"empty string", "", false},
		{"structured message", "feat|backend|20250129|Add user authentication", false},
		{"merge mid-string", "this is not a Merge commit", false},
		{"prefix with leading space", " Merge branch", false},
		{"merged is still a merge prefix", "Merged branch dev", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSpecial(tt.message))
		})
	}
}
