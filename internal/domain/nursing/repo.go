package nursing

import (
	"context"

	"github.com/google/uuid"
)

type NurseRepository interface {
	Create(ctx context.Context, n *Nurse) error
	GetByID(ctx context.Context, id uuid.UUID) (*Nurse, error)
	List(ctx context.Context) ([]*Nurse, error)
}
