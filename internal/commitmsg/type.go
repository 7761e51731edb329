package commitmsg

// Type represents the commit type token at the front of a structured message
type Type int

const (
	// Feat is a new feature
	Feat Type = iota
	// Fix is a bug fix
	Fix
	// Refactor is a code change that does not alter behavior
	Refactor
	// Review is a change requested during code review
	Review
	// Test adds or changes tests
	Test
	// Docs is a documentation change
	Docs
	// Chore is maintenance work (deps, tooling, cleanup)
	Chore
)

// AllTypes returns every valid commit type in menu order
func AllTypes() []Type {
	return []Type{Feat, Fix, Refactor, Review, Test, Docs, Chore}
}

// Token returns the lowercase token used in the message (e.g., "feat")
func (t Type) Token() string {
	switch t {
	case Feat:
		return "feat"
	case Fix:
		return "fix"
	case Refactor:
		return "refactor"
	case Review:
		return "review"
	case Test:
		return "test"
	case Docs:
		return "docs"
	case Chore:
		return "chore"
	default:
		return ""
	}
}

// Description returns a short human description for menus
func (t Type) Description() string {
	switch t {
	case Feat:
		return "New feature"
	case Fix:
		return "Bug fix"
	case Refactor:
		return "Code change without behavior change"
	case Review:
		return "Change requested in code review"
	case Test:
		return "Add or update tests"
	case Docs:
		return "Documentation only"
	case Chore:
		return "Maintenance, deps, tooling"
	default:
		return ""
	}
}

// ParseType parses a type token. The token set is closed and case-sensitive:
// only the exact lowercase tokens are valid.
func ParseType(token string) (Type, bool) {
	for _, t := range AllTypes() {
		if t.Token() == token {
			return t, true
		}
	}
	return 0, false
}
