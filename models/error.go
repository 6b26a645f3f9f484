package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a complaint or user ID does not resolve
var ErrNotFound = errors.New("not found")

// ValidationErrors maps a field name to the rule it violates. An empty map
// means the checked step passes.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "no validation errors"
	}
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return strings.Join(parts, "; ")
}

// AccessReason distinguishes why an action was denied
type AccessReason int

// Denial reasons. A missing session should prompt re-authentication; an
// insufficient role should not.
const (
	ReasonNotAuthenticated AccessReason = iota
	ReasonForbidden
)

// AccessError reports a denied capability check
type AccessError struct {
	Capability Capability
	Reason     AccessReason
}

func (e *AccessError) Error() string {
	if e.Reason == ReasonNotAuthenticated {
		return fmt.Sprintf("access denied: login required for %q", e.Capability)
	}
	return fmt.Sprintf("access denied: missing capability %q", e.Capability)
}

// NeedsLogin reports whether the denial should prompt re-authentication
func (e *AccessError) NeedsLogin() bool {
	return e.Reason == ReasonNotAuthenticated
}

// IngestionError reports a single rejected or unreadable attachment. One bad
// file never aborts the rest of its batch.
type IngestionError struct {
	Name   string
	Reason string
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}
