package commitmsg

import (
	"fmt"
	"time"
)

// FieldError reports the first field that failed composition
type FieldError struct {
	Field Field
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, FieldHint(e.Field))
}

// FieldHint returns a one-line rule description for a field, used in
// FieldError messages and the composer's re-prompt hints
func FieldHint(f Field) string {
	switch f {
	case FieldType:
		return "must be one of " + typeAlternation()
	case FieldTaskID:
		return "letters, digits, and hyphens only"
	case FieldDate:
		return "exactly 8 digits (YYYYMMDD)"
	case FieldDescription:
		return "5-100 characters: letters, digits, spaces, and . , ! ? -"
	default:
		return "expected type|taskid|date|description"
	}
}

// Compose builds a structured commit message from its fields, validating
// each in order and returning a FieldError for the first one that fails.
// A successful result is guaranteed to pass Validate: the field checks
// here are the same ones the validator's grammar is assembled from.
func Compose(typ Type, taskID, date, description string) (string, error) {
	if typ.Token() == "" {
		return "", &FieldError{Field: FieldType, Value: fmt.Sprintf("Type(%d)", int(typ))}
	}
	if !ValidTaskID(taskID) {
		return "", &FieldError{Field: FieldTaskID, Value: taskID}
	}
	if !ValidDate(date) {
		return "", &FieldError{Field: FieldDate, Value: date}
	}
	if !ValidDescription(description) {
		return "", &FieldError{Field: FieldDescription, Value: description}
	}
	return typ.Token() + "|" + taskID + "|" + date + "|" + description, nil
}

// BranchName builds a compliant branch name (type/taskid) from the same
// field rules the message composer uses
func BranchName(typ Type, taskID string) (string, error) {
	if typ.Token() == "" {
		return "", &FieldError{Field: FieldType, Value: fmt.Sprintf("Type(%d)", int(typ))}
	}
	if !ValidTaskID(taskID) {
		return "", &FieldError{Field: FieldTaskID, Value: taskID}
	}
	return typ.Token() + "/" + taskID, nil
}

// DateToken formats a time as the 8-digit date field. The caller decides
// whether to pass local or UTC time.
func DateToken(t time.Time) string {
	return t.Format("20060102")
}
