// Package validation implements the scenario data integrity engine: field
// checks, cross-reference checks, whole-dataset aggregation, and deletion
// safety queries over the four entity collections.
package validation

import "strings"

// Result accumulates validation findings in the order they were observed.
// Errors block export and deletion; warnings are advisory.
type Result struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{}
}

// AddError appends a message to the error list. Blank or whitespace-only
// messages are ignored.
func (r *Result) AddError(msg string) {
	if strings.TrimSpace(msg) == "" {
		return
	}
	r.Errors = append(r.Errors, msg)
}

// AddWarning appends a message to the warning list. Blank or whitespace-only
// messages are ignored.
func (r *Result) AddWarning(msg string) {
	if strings.TrimSpace(msg) == "" {
		return
	}
	r.Warnings = append(r.Warnings, msg)
}

// Merge appends the other result's errors and warnings onto r, preserving
// order. Duplicate messages are kept.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// IsValid reports whether the result holds no errors. Warnings do not
// affect validity.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
