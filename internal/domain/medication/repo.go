package medication

import (
	"context"

	"github.com/google/uuid"
)

type MedicationRepository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medication, error)
	List(ctx context.Context) ([]*Medication, error)
}

type PrescriptionRepository interface {
	Create(ctx context.Context, p *Prescription) error
	List(ctx context.Context) ([]*Prescription, error)
}
