package skimjson

import (
	"errors"
	"fmt"
)

// Core error definitions. Every failure in this package matches one of
// these sentinels via errors.Is.
var (
	// ErrInvalidInput reports any syntactic violation in the scanned
	// buffer: a bad literal, an unterminated or NUL-containing string, a
	// bracket mismatch, or an unexpected byte for the current state.
	ErrInvalidInput = errors.New("invalid JSON input")

	// ErrTooDeep reports container nesting beyond MaxNestingDepth.
	ErrTooDeep = errors.New("nesting exceeds maximum depth")

	// ErrInvalidPath reports a path expression that does not start with '$'.
	ErrInvalidPath = errors.New("invalid path expression")

	// ErrNotFound reports a well-formed query with no matching location.
	// Find reports this case as a non-error missing Value; only the strict
	// entry points (Lookup, GetString, ForEach) surface the sentinel.
	ErrNotFound = errors.New("path not found")

	// ErrTypeMismatch reports a matched value of the wrong kind for the
	// requested operation.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrTooSmall reports a destination buffer that cannot hold the
	// decoded form of a string.
	ErrTooSmall = errors.New("destination buffer too small")

	// ErrBadEscape reports an unrecognized escape sequence during string
	// decoding. It belongs to the invalid-input class.
	ErrBadEscape = fmt.Errorf("%w: bad escape sequence", ErrInvalidInput)
)

// SyntaxError describes where and why a scan failed.
type SyntaxError struct {
	Op      string // operation that failed
	Offset  int    // byte offset in the scanned buffer
	Message string // human-readable description
	Err     error  // underlying sentinel
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json %s failed at offset %d: %s", e.Op, e.Offset, e.Message)
}

// Unwrap returns the underlying sentinel for error chain support.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is implements error matching against both SyntaxError values and the
// package sentinels.
func (e *SyntaxError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*SyntaxError); ok {
		return e.Op == targetErr.Op && errors.Is(e.Err, targetErr.Err)
	}
	return errors.Is(e.Err, target)
}

// PathError describes a query that failed before or after the scan.
type PathError struct {
	Path    string
	Message string
	Err     error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("json query %q failed: %s", e.Path, e.Message)
}

// Unwrap returns the underlying sentinel for error chain support.
func (e *PathError) Unwrap() error {
	return e.Err
}

func newSyntaxError(op string, off int, msg string, err error) error {
	return &SyntaxError{Op: op, Offset: off, Message: msg, Err: err}
}

func newPathError(path, msg string, err error) error {
	return &PathError{Path: path, Message: msg, Err: err}
}
