// Package apierr defines the error taxonomy shared by all entity services
// and the HTTP boundary: validation failures, dangling references, missing
// delete targets and storage faults.
package apierr

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationError reports a required field that is missing or a field whose
// value is malformed (bad enum member, bad date). Surfaced as HTTP 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Required builds a ValidationError for an absent required field.
func Required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

// Invalid builds a ValidationError for a malformed field value.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ReferenceError reports a reference field whose id was syntactically
// present but does not resolve to an existing record. Surfaced as HTTP 400.
type ReferenceError struct {
	Field string
	ID    uuid.UUID
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: no record with id %s", e.Field, e.ID)
}

// NotFoundError reports a delete target that does not exist. HTTP 404.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError.
func NotFound(resource string, id uuid.UUID) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// StorageError wraps a failure of the backing store. Surfaced as HTTP 500
// and treated as fatal for the current request; never retried here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError. Returns nil when err is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// Date validates a required calendar date in YYYY-MM-DD form.
func Date(field, value string) error {
	if value == "" {
		return Required(field)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return Invalid(field, "must be a date in YYYY-MM-DD format")
	}
	return nil
}

// OptionalDate validates a date in YYYY-MM-DD form when present.
func OptionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	return Date(field, value)
}

// Clock validates a required time of day in HH:MM form.
func Clock(field, value string) error {
	if value == "" {
		return Required(field)
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return Invalid(field, "must be a time in HH:MM format")
	}
	return nil
}
