package services

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors is a field-keyed set of pre-submission rule violations.
// Always recoverable: the caller fixes the named fields and resubmits.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a violation for a field, keeping the first message when the
// same field is reported twice in one pass.
func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

// EligibilityError reports why a rehearsal cannot be promoted. The Reason is
// user-facing and its wording is relied on by callers for messaging.
type EligibilityError struct {
	Reason string
}

func (e *EligibilityError) Error() string {
	return e.Reason
}

// PermissionError reports a refused action. No partial mutation happens when
// one of these is returned.
type PermissionError struct {
	Action string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("not permitted to %s", e.Action)
}
