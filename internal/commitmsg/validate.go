// Package commitmsg implements the structured commit message grammar
// shared by the commit-msg hook, the CI check, and the interactive
// composer. All three must produce identical verdicts, so the character
// classes live here once and nowhere else.
//
// The grammar is:
//
//	type|taskid|date|description
//
// where type is one of the closed Type set, taskid is [A-Za-z0-9-]+,
// date is exactly 8 digits, and description is 5-100 characters from
// [A-Za-z0-9 .,!?-]. Messages git generates itself (merge, revert,
// fixup, squash) bypass the grammar, see IsSpecial.
package commitmsg

import (
	"regexp"
	"strings"
)

// Character classes for each field. The message pattern is assembled from
// these same constants so the field checks and the full match can never
// drift apart.
const (
	taskIDPattern      = `[A-Za-z0-9-]+`
	datePattern        = `[0-9]{8}`
	descriptionPattern = `[A-Za-z0-9 .,!?-]{5,100}`
)

var (
	taskIDRe      = regexp.MustCompile(`^` + taskIDPattern + `$`)
	dateRe        = regexp.MustCompile(`^` + datePattern + `$`)
	descriptionRe = regexp.MustCompile(`^` + descriptionPattern + `$`)
	messageRe     = regexp.MustCompile(
		`^(?:` + typeAlternation() + `)\|` + taskIDPattern + `\|` + datePattern + `\|` + descriptionPattern + `$`)
)

// typeAlternation builds the regex alternation of all valid type tokens
func typeAlternation() string {
	tokens := make([]string, 0, len(AllTypes()))
	for _, t := range AllTypes() {
		tokens = append(tokens, t.Token())
	}
	return strings.Join(tokens, "|")
}

// Field identifies which part of a message failed validation
type Field int

const (
	// FieldStructure means the message does not split into four |-separated parts
	FieldStructure Field = iota
	// FieldType means the type token is not in the valid set
	FieldType
	// FieldTaskID means the task id contains invalid characters or is empty
	FieldTaskID
	// FieldDate means the date is not exactly 8 digits
	FieldDate
	// FieldDescription means the description has invalid characters or length
	FieldDescription
)

func (f Field) String() string {
	switch f {
	case FieldType:
		return "type"
	case FieldTaskID:
		return "task id"
	case FieldDate:
		return "date"
	case FieldDescription:
		return "description"
	default:
		return "structure"
	}
}

// Verdict is the outcome of validating a commit message
type Verdict interface {
	isVerdict()
}

type verdictAccepted struct{}
type verdictRejected struct{ Field Field }

func (verdictAccepted) isVerdict() {}
func (verdictRejected) isVerdict() {}

// Accepted indicates the message passed validation
var Accepted Verdict = verdictAccepted{}

// Rejected creates a Verdict for a message that failed on the given field
func Rejected(field Field) Verdict {
	return verdictRejected{Field: field}
}

// IsAccepted returns true if the verdict is Accepted
func IsAccepted(v Verdict) bool {
	_, ok := v.(verdictAccepted)
	return ok
}

// RejectedField returns the failing field for a rejected verdict
func RejectedField(v Verdict) (Field, bool) {
	if r, ok := v.(verdictRejected); ok {
		return r.Field, true
	}
	return 0, false
}

// Validate checks a commit message against the structured grammar.
// Special commits are accepted without ever consulting the grammar.
// The whole message must match - no trimming is applied here, and a
// partial match counts as a rejection. Total over all inputs: any
// string, including empty or control characters, yields a verdict.
func Validate(message string) Verdict {
	if IsSpecial(message) {
		return Accepted
	}
	if messageRe.MatchString(message) {
		return Accepted
	}
	return Rejected(diagnose(message))
}

// diagnose identifies the first failing field of a message that did not
// match the full grammar. Only called after the full match failed, so at
// least one field check below must fail unless the structure itself is off.
func diagnose(message string) Field {
	parts := strings.Split(message, "|")
	if len(parts) != 4 {
		return FieldStructure
	}
	if _, ok := ParseType(parts[0]); !ok {
		return FieldType
	}
	if !ValidTaskID(parts[1]) {
		return FieldTaskID
	}
	if !ValidDate(parts[2]) {
		return FieldDate
	}
	return FieldDescription
}

// TrimMessage strips trailing whitespace from a message read from a
// file or git object. Adapters apply this before Validate; the grammar
// itself never trims, so the helper lives here to keep every call site
// identical.
func TrimMessage(s string) string {
	return strings.TrimRight(s, " \t\n\r")
}

// ValidTaskID reports whether s is a valid task id: one or more ASCII
// letters, digits, or hyphens.
func ValidTaskID(s string) bool {
	return taskIDRe.MatchString(s)
}

// ValidDate reports whether s is exactly 8 ASCII digits. Calendar
// validity is deliberately not checked: 00000000 and 99999999 are valid
// date tokens.
func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// ValidDescription reports whether s is 5-100 characters drawn from
// ASCII letters, digits, space, and ".,!?-".
func ValidDescription(s string) bool {
	return descriptionRe.MatchString(s)
}
