// Package ref enforces and expands cross-entity references. Records persist
// bare ids; validation happens at write time against the live collections and
// expansion produces a view-only nested structure at read time. The stored
// representation is never mutated by expansion.
package ref

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apierr"
)

// Kind identifies a referenced entity collection.
type Kind string

const (
	Patient    Kind = "Patient"
	Doctor     Kind = "Doctor"
	Department Kind = "Department"
	Room       Kind = "Room"
	Medication Kind = "Medication"
	Procedure  Kind = "Procedure"
)

// LookupFunc fetches a record by id from one collection. It returns
// (nil, nil) when the id does not resolve; an error only signals a failure
// of the backing store.
type LookupFunc func(ctx context.Context, id uuid.UUID) (interface{}, error)

// FieldRef describes one reference field on a draft record. A nil or zero
// ID means the field was not supplied.
type FieldRef struct {
	Field    string
	Kind     Kind
	ID       *uuid.UUID
	Required bool
}

// Resolver routes reference lookups to the registered collections. Lookups
// are registered once at wiring time, before any request is served.
type Resolver struct {
	lookups map[Kind]LookupFunc
}

func NewResolver() *Resolver {
	return &Resolver{lookups: make(map[Kind]LookupFunc)}
}

// Register installs the lookup for a kind, replacing any previous one.
func (r *Resolver) Register(kind Kind, fn LookupFunc) {
	r.lookups[kind] = fn
}

func (r *Resolver) lookup(ctx context.Context, kind Kind, id uuid.UUID) (interface{}, error) {
	fn, ok := r.lookups[kind]
	if !ok {
		return nil, fmt.Errorf("no lookup registered for kind %s", kind)
	}
	rec, err := fn(ctx, id)
	if err != nil {
		return nil, apierr.Storage("lookup "+string(kind), err)
	}
	return rec, nil
}

// ValidateRefs checks every reference field of a draft record. A required
// field that is absent fails with a ValidationError; a supplied id that does
// not resolve fails with a ReferenceError. Checks run in order and stop at
// the first violation, before any store write happens.
func (r *Resolver) ValidateRefs(ctx context.Context, refs []FieldRef) error {
	for _, f := range refs {
		if f.ID == nil || *f.ID == uuid.Nil {
			if f.Required {
				return apierr.Required(f.Field)
			}
			continue
		}
		rec, err := r.lookup(ctx, f.Kind, *f.ID)
		if err != nil {
			return err
		}
		if rec == nil {
			return &apierr.ReferenceError{Field: f.Field, ID: *f.ID}
		}
	}
	return nil
}

// Expand resolves id to the full target record for the populated read view.
// It yields nil when the field is empty or the id is dangling (for example
// after the target was deleted); a dangling reference is never an error.
func (r *Resolver) Expand(ctx context.Context, kind Kind, id *uuid.UUID) (interface{}, error) {
	if id == nil || *id == uuid.Nil {
		return nil, nil
	}
	return r.lookup(ctx, kind, *id)
}
