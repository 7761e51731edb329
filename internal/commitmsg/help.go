package commitmsg

import "strings"

// FormatHelp returns the human-readable description of the required
// message format, printed whenever a message is rejected. Kept next to
// the validator so the diagnostic text and the grammar stay in sync.
func FormatHelp() string {
	var b strings.Builder
	b.WriteString("Commit messages must follow the format:\n")
	b.WriteString("\n")
	b.WriteString("  type|taskid|date|description\n")
	b.WriteString("\n")
	b.WriteString("  type         one of: ")
	b.WriteString(strings.ReplaceAll(typeAlternation(), "|", ", "))
	b.WriteString("\n")
	b.WriteString("  taskid       letters, digits, and hyphens\n")
	b.WriteString("  date         8 digits (YYYYMMDD)\n")
	b.WriteString("  description  5-100 characters: letters, digits, spaces, . , ! ? -\n")
	b.WriteString("\n")
	b.WriteString("Example:\n")
	b.WriteString("\n")
	b.WriteString("  feat|backend|20250129|Add user authentication\n")
	b.WriteString("\n")
	b.WriteString("Merge, revert, fixup, and squash commits are exempt.\n")
	return b.String()
}
