package commitmsg

import "strings"

// specialPrefixes are the message prefixes git generates itself.
// "fixup" and "squash" also cover the "fixup!"/"squash!" forms, but the
// bang variants are listed so the recognized set is explicit.
var specialPrefixes = []string{
	"merge",
	"revert",
	"fixup!",
	"squash!",
	"fixup",
	"squash",
}

// IsSpecial reports whether the message starts with a git-generated prefix
// (merge/revert/fixup/squash), compared case-insensitively. Special commits
// bypass the structured grammar entirely.
func IsSpecial(message string) bool {
	lower := strings.ToLower(message)
	for _, prefix := range specialPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
