package commitmsg

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeRoundTrip(t *testing.T) {
	// Core property: anything Compose produces must pass Validate
	tests := []struct {
		name        string
		typ         Type
		taskID      string
		date        string
		description string
	}{
		{"typical", Feat, "backend", "20250129", "Add user authentication"},
		{"minimum fields", Feat, "a", "20250130", "12345"},
		{"every type", Chore, "deps-update", "20250301", "bump everything at once"},
		{"nonsense calendar date", Fix, "task", "99999999", "date is structural only"},
		{"punctuation heavy", Docs, "faq", "20250401", "Why? Because. Really, yes!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Compose(tt.typ, tt.taskID, tt.date, tt.description)
			require.NoError(t, err)
			assert.True(t, IsAccepted(Validate(msg)), "composed message rejected: %q", msg)
		})
	}
}

func TestComposeRoundTripAllTypes(t *testing.T) {
	for _, typ := range AllTypes() {
		msg, err := Compose(typ, "task-1", "20250630", "round trip check")
		require.NoError(t, err, "type %s", typ.Token())
		assert.True(t, IsAccepted(Validate(msg)))
	}
}

func TestComposeFieldErrors(t *testing.T) {
	tests := []struct {
		name        string
		typ         Type
		taskID      string
		date        string
		description string
		field       Field
	}{
		{"invalid type value", Type(99), "task", "20250129", "valid description", FieldType},
		{"empty task id", Feat, "", "20250129", "valid description", FieldTaskID},
		{"underscore task id", Feat, "my_task", "20250129", "valid description", FieldTaskID},
		{"short date", Feat, "task", "2025", "valid description", FieldDate},
		{"dashed date", Feat, "task", "2025-01-29", "valid description", FieldDate},
		{"short description", Feat, "task", "20250129", "abcd", FieldDescription},
		{"bad description char", Feat, "task", "20250129", "uses $HOME variable", FieldDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose(tt.typ, tt.taskID, tt.date, tt.description)
			require.Error(t, err)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestComposeFirstFailingFieldWins(t *testing.T) {
	// Both task id and description are invalid; task id is reported
	_, err := Compose(Feat, "bad_id", "20250129", "no")
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, FieldTaskID, fieldErr.Field)
}

func TestBranchName(t *testing.T) {
	name, err := BranchName(Feat, "backend-auth")
	require.NoError(t, err)
	assert.Equal(t, "feat/backend-auth", name)

	_, err = BranchName(Feat, "bad id")
	require.Error(t, err)

	_, err = BranchName(Type(42), "task")
	require.Error(t, err)
}

func TestDateToken(t *testing.T) {
	ts := time.Date(2025, time.January, 29, 23, 59, 0, 0, time.UTC)
	token := DateToken(ts)
	assert.Equal(t, "20250129", token)
	assert.True(t, ValidDate(token))
}

func TestFieldErrorMessage(t *testing.T) {
	_, err := Compose(Feat, "task", "20250129", "bad;desc here")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}
