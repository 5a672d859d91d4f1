package clinical

import (
	"context"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/ref"
)

type Service struct {
	procedures ProcedureRepository
	undergoes  UndergoesRepository
	resolver   *ref.Resolver
}

func NewService(procedures ProcedureRepository, undergoes UndergoesRepository, resolver *ref.Resolver) *Service {
	return &Service{procedures: procedures, undergoes: undergoes, resolver: resolver}
}

// -- Procedure --

func (s *Service) CreateProcedure(ctx context.Context, p *Procedure) error {
	if p.ProcedureName == "" {
		return apierr.Required("procedureName")
	}
	if p.Cost < 0 {
		return apierr.Invalid("cost", "must not be negative")
	}
	return apierr.Storage("create procedure", s.procedures.Create(ctx, p))
}

func (s *Service) ListProcedures(ctx context.Context) ([]*Procedure, error) {
	items, err := s.procedures.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list procedures", err)
	}
	return items, nil
}

// -- Undergoes --

func (s *Service) CreateUndergoes(ctx context.Context, u *Undergoes) error {
	if err := apierr.Date("procedureDate", u.ProcedureDate); err != nil {
		return err
	}
	if err := s.resolver.ValidateRefs(ctx, []ref.FieldRef{
		{Field: "patientId", Kind: ref.Patient, ID: u.PatientID, Required: true},
		{Field: "procedureId", Kind: ref.Procedure, ID: u.ProcedureID, Required: true},
		{Field: "doctorId", Kind: ref.Doctor, ID: u.DoctorID, Required: true},
		{Field: "roomId", Kind: ref.Room, ID: u.RoomID},
	}); err != nil {
		return err
	}
	return apierr.Storage("create undergoes", s.undergoes.Create(ctx, u))
}

// ListUndergoes returns all procedure records in insertion order with every
// reference expanded.
func (s *Service) ListUndergoes(ctx context.Context) ([]*UndergoesView, error) {
	items, err := s.undergoes.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list undergoes", err)
	}
	views := make([]*UndergoesView, 0, len(items))
	for _, u := range items {
		patient, err := s.resolver.Expand(ctx, ref.Patient, u.PatientID)
		if err != nil {
			return nil, err
		}
		procedure, err := s.resolver.Expand(ctx, ref.Procedure, u.ProcedureID)
		if err != nil {
			return nil, err
		}
		doctor, err := s.resolver.Expand(ctx, ref.Doctor, u.DoctorID)
		if err != nil {
			return nil, err
		}
		room, err := s.resolver.Expand(ctx, ref.Room, u.RoomID)
		if err != nil {
			return nil, err
		}
		views = append(views, &UndergoesView{
			ID:            u.ID,
			ProcedureDate: u.ProcedureDate,
			Patient:       patient,
			Procedure:     procedure,
			Doctor:        doctor,
			Room:          room,
			CreatedAt:     u.CreatedAt,
		})
	}
	return views, nil
}
