// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types with remediation
// suggestions, plus rendered markdown hint cards for well-known situations.
package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError is an error carrying enough context for a useful
// user-facing message: the operation that failed, the resource involved,
// and suggestions for fixing it.
//
// Use the ErrorContext builder for construction:
//
//	err := issue.NewErrorContext().
//		WithOperation("write project config").
//		WithResource("./wpmoo-config.yml").
//		WithSuggestion("Check directory permissions").
//		Wrap(cause).
//		BuildError()
type ActionableError struct {
	// Operation describes what was being attempted, as a verb phrase.
	Operation string
	// Resource identifies the file or path involved (optional).
	Resource string
	// Suggestions are hints on how to fix the issue (optional).
	Suggestions []string
	// Cause is the underlying error (optional).
	Cause error
}

// ErrorContext is a fluent builder for ActionableError.
type ErrorContext struct {
	operation   string
	resource    string
	suggestions []string
	cause       error
}

// NewErrorContext creates a new builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error returns the concise message used in non-verbose output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the message with suggestions; in verbose mode the full
// error chain is appended.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(suggestion)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}

// WithOperation sets the operation being performed.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the file or path involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion adds one remediation hint. May be called repeatedly.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build creates the ActionableError. Returns nil when no operation is set.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError is Build returned as the error interface, convenient in
// return statements.
func (c *ErrorContext) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}
