package clinical

import (
	"context"

	"github.com/google/uuid"
)

type ProcedureRepository interface {
	Create(ctx context.Context, p *Procedure) error
	GetByID(ctx context.Context, id uuid.UUID) (*Procedure, error)
	List(ctx context.Context) ([]*Procedure, error)
}

type UndergoesRepository interface {
	Create(ctx context.Context, u *Undergoes) error
	List(ctx context.Context) ([]*Undergoes, error)
}
