// Package validation holds the collected-issues result type shared by every
// validator in the service. Validators never stop at the first problem: they
// record each violation and hand the whole batch back to the caller.
package validation

import "strings"

// Code identifies the kind of a validation issue.
type Code string

const (
	CodeRequired          Code = "Required"
	CodeInvalidContact    Code = "InvalidContact"
	CodeInvalidEmail      Code = "InvalidEmail"
	CodeInvalidDay        Code = "InvalidDay"
	CodeInvalidTimeFormat Code = "InvalidTimeFormat"
	CodeInvalidPrice      Code = "InvalidPrice"
	CodeSlotAlreadyBooked Code = "SlotAlreadyBooked"
	CodeUnknownResource   Code = "UnknownResource"
	CodeInvalidWindow     Code = "InvalidWindow"
	CodeInvalidDuration   Code = "InvalidDuration"
	CodeInvalidValue      Code = "InvalidValue"
)

// Issue is a single rule violation.
type Issue struct {
	Code    Code   `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result is the outcome of a validation pass.
type Result struct {
	Valid  bool    `json:"is_valid"`
	Issues []Issue `json:"errors"`
}

// Has reports whether any issue carries the given code.
func (r Result) Has(code Code) bool {
	for _, i := range r.Issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

// Codes returns the issue codes in the order they were recorded.
func (r Result) Codes() []Code {
	codes := make([]Code, len(r.Issues))
	for i, issue := range r.Issues {
		codes[i] = issue.Code
	}
	return codes
}

// Collector accumulates issues.
type Collector struct {
	issues []Issue
}

// Add records an issue.
func (c *Collector) Add(code Code, field, message string) {
	c.issues = append(c.issues, Issue{Code: code, Field: field, Message: message})
}

// Merge appends every issue of r, prefixing fields when prefix is set.
func (c *Collector) Merge(prefix string, r Result) {
	for _, i := range r.Issues {
		if prefix != "" && i.Field != "" {
			i.Field = prefix + "." + i.Field
		}
		c.issues = append(c.issues, i)
	}
}

// Result returns the collected outcome. Issues is never nil.
func (c *Collector) Result() Result {
	issues := make([]Issue, len(c.issues))
	copy(issues, c.issues)
	return Result{Valid: len(issues) == 0, Issues: issues}
}

// Error carries a failed Result through an error return.
type Error struct {
	Result Result
}

// NewError wraps a failed result.
func NewError(r Result) *Error {
	return &Error{Result: r}
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Result.Issues))
	for i, issue := range e.Result.Issues {
		msgs[i] = issue.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
