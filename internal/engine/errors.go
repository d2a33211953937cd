package engine

import (
	"errors"
	"fmt"
)

// Fields a ValidationError can name. Transports map these to their own
// error classes (the HTTP API distinguishes a bad type on create from a
// bad type on delete, for example).
const (
	FieldType     = "type"
	FieldHostname = "hostname"
	FieldValue    = "value"
)

// ErrDuplicateRecord is returned when an A record with an identical value
// already exists at the hostname.
var ErrDuplicateRecord = errors.New("duplicate A record")

// ErrCircularReference is returned when CNAME chasing revisits a hostname.
var ErrCircularReference = errors.New("circular CNAME reference detected")

// ValidationError wraps a validation failure with the field that failed.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ConflictError is returned when a write would violate CNAME exclusivity.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// NotFoundError is returned when a hostname has no records. During
// resolution, Hostname names the hostname that was actually missing, which
// may be a mid-chain CNAME target rather than the hostname queried.
// Message is the operation's own phrasing; the resolve path names the
// missing hostname while list and delete use fixed wording.
type NotFoundError struct {
	Hostname string
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Hostname)
}
