package commitmsg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccepted(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"typical message", "feat|backend|20250129|Add user authentication"},
		{"minimum boundary", "feat|a|20250130|12345"},
		{"description at 100 chars", "fix|api|20250101|" + strings.Repeat("a", 100)},
		{"punctuation in description", "docs|readme|20250201|Update install notes. Really!?"},
		{"consecutive spaces in description", "chore|deps|20250301|bump  go-git   version"},
		{"leading and trailing spaces in description", "test|core|20250301| padded description "},
		{"hyphenated task id", "refactor|api-v2-cleanup|20250415|Split handler package"},
		{"all zeros date", "feat|task|00000000|Valid anyway"},
		{"all nines date", "feat|task|99999999|Valid anyway"},
		{"month 13", "feat|task|20251332|Calendar is not checked"},
		{"feb 30", "fix|task|20250230|Calendar is not checked"},
		{"review type", "review|pr-318|20250610|Rename exported symbols"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.message)
			assert.True(t, IsAccepted(v), "expected accepted, got %#v", v)
		})
	}
}

func TestValidateRejected(t *testing.T) {
	tests := []struct {
		name    string
		message string
		field   Field
	}{
		{"empty message", "", FieldStructure},
		{"no separators", "just a plain message", FieldStructure},
		{"three parts", "feat|backend|20250129", FieldStructure},
		{"five parts", "feat|backend|20250129|desc here|extra", FieldStructure},
		{"unknown type token", "feature|backend|20250129|Add feature", FieldType},
		{"uppercase type", "Feat|backend|20250129|Add feature", FieldType},
		{"empty type", "|backend|20250129|Add feature", FieldType},
		{"empty task id", "feat||20250129|Add feature", FieldTaskID},
		{"underscore in task id", "feat|back_end|20250129|Add feature", FieldTaskID},
		{"dot in task id", "feat|back.end|20250129|Add feature", FieldTaskID},
		{"space in task id", "feat|back end|20250129|Add feature", FieldTaskID},
		{"seven digit date", "feat|backend|2025012|Add feature", FieldDate},
		{"nine digit date", "feat|backend|202501299|Add feature", FieldDate},
		{"letters in date", "feat|backend|2025janx|Add feature", FieldDate},
		{"description too short", "feat|backend|20250129|abcd", FieldDescription},
		{"description too long", "feat|backend|20250129|" + strings.Repeat("a", 101), FieldDescription},
		{"shell substitution", "feat|task|20250130|Command $(whoami) here", FieldDescription},
		{"backtick", "feat|task|20250130|run `ls` now", FieldDescription},
		{"semicolon", "feat|task|20250130|one; two; three", FieldDescription},
		{"ampersand", "feat|task|20250130|this && that", FieldDescription},
		{"quote", "feat|task|20250130|say \"hello\" now", FieldDescription},
		{"backslash", "feat|task|20250130|path\\to\\file here", FieldDescription},
		{"newline in description", "feat|task|20250130|first line\nsecond", FieldDescription},
		{"tab in description", "feat|task|20250130|col1\tcol2 data", FieldDescription},
		{"accented letter", "feat|task|20250130|Ajouter la securité", FieldDescription},
		{"emoji", "feat|task|20250130|ship it \U0001F680 today", FieldDescription},
		{"pipe inside description", "feat|task|20250130|either|or choice", FieldStructure},
		{"leading space before type", " feat|backend|20250129|Add feature", FieldType},
		{"trailing newline", "feat|backend|20250129|Add feature\n", FieldDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.message)
			require.False(t, IsAccepted(v), "expected rejection for %q", tt.message)
			field, ok := RejectedField(v)
			require.True(t, ok)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestValidateDescriptionLengthBoundary(t *testing.T) {
	prefix := "feat|backend|20250129|"

	for _, tt := range []struct {
		length   int
		accepted bool
	}{
		{4, false},
		{5, true},
		{100, true},
		{101, false},
	} {
		msg := prefix + strings.Repeat("x", tt.length)
		assert.Equal(t, tt.accepted, IsAccepted(Validate(msg)), "description length %d", tt.length)
	}
}

func TestValidateSpecialBypass(t *testing.T) {
	// Special commits are accepted regardless of grammar conformance
	messages := []string{
		"Merge branch 'develop' into main",
		"merge remote-tracking branch 'origin/main'",
		"Revert \"feat|backend|20250129|Add user authentication\"",
		"fixup! feat|backend|20250129|Add user authentication",
		"squash! whatever came before",
		"SQUASH! case does not matter",
		"Fixup without the bang",
	}

	for _, msg := range messages {
		assert.True(t, IsAccepted(Validate(msg)), "expected special bypass for %q", msg)
	}
}

func TestValidateNeverPanics(t *testing.T) {
	// Total over all inputs: control characters, long inputs, binary junk
	inputs := []string{
		"",
		"\x00\x01\x02",
		strings.Repeat("|", 10000),
		strings.Repeat("feat|a|20250130|aaaaa", 1000),
		"feat|" + strings.Repeat("-", 100000) + "|20250130|hello",
	}

	for _, in := range inputs {
		require.NotPanics(t, func() { Validate(in) })
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("20250129"))
	assert.True(t, ValidDate("00000000"))
	assert.True(t, ValidDate("99999999"))
	assert.False(t, ValidDate("2025012"))
	assert.False(t, ValidDate("202501290"))
	assert.False(t, ValidDate("2025-01-29"))
	assert.False(t, ValidDate(""))
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "type", FieldType.String())
	assert.Equal(t, "task id", FieldTaskID.String())
	assert.Equal(t, "date", FieldDate.String())
	assert.Equal(t, "description", FieldDescription.String())
	assert.Equal(t, "structure", FieldStructure.String())
}
