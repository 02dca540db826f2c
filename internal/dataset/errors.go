// Package dataset reads JSON arrays of records from disk and writes filtered documents back.
package dataset

import "fmt"

// LoadError represents an error reading a data file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ParseError represents a JSON syntax error in a data file. Line and Column
// are 1-based and point at the offending byte.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d column %d: %v", e.Path, e.Line, e.Column, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// WriteError represents an error writing a filtered document
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error: %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
