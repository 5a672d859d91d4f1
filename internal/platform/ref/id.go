package ref

import (
	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apierr"
)

// ParseID converts a reference token from a submitted payload into an id
// pointer. Selection widgets submit an unselected reference as an empty
// string, so "" maps to nil rather than an error; a non-empty token must be
// a valid uuid and fails with a ValidationError naming the field.
func ParseID(field, token string) (*uuid.UUID, error) {
	if token == "" {
		return nil, nil
	}
	u, err := uuid.Parse(token)
	if err != nil {
		return nil, apierr.Invalid(field, "must be a valid id")
	}
	return &u, nil
}
