package medication

import (
	"context"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/ref"
)

type Service struct {
	medications   MedicationRepository
	prescriptions PrescriptionRepository
	resolver      *ref.Resolver
}

func NewService(medications MedicationRepository, prescriptions PrescriptionRepository, resolver *ref.Resolver) *Service {
	return &Service{medications: medications, prescriptions: prescriptions, resolver: resolver}
}

// -- Medication --

func (s *Service) CreateMedication(ctx context.Context, m *Medication) error {
	if m.MedicationName == "" {
		return apierr.Required("medicationName")
	}
	if m.Price < 0 {
		return apierr.Invalid("price", "must not be negative")
	}
	return apierr.Storage("create medication", s.medications.Create(ctx, m))
}

func (s *Service) ListMedications(ctx context.Context) ([]*Medication, error) {
	items, err := s.medications.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list medications", err)
	}
	return items, nil
}

// -- Prescription --

func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) error {
	if err := apierr.Date("prescriptionDate", p.PrescriptionDate); err != nil {
		return err
	}
	if p.Dosage == "" {
		return apierr.Required("dosage")
	}
	if err := s.resolver.ValidateRefs(ctx, []ref.FieldRef{
		{Field: "doctorId", Kind: ref.Doctor, ID: p.DoctorID, Required: true},
		{Field: "patientId", Kind: ref.Patient, ID: p.PatientID, Required: true},
		{Field: "medicationId", Kind: ref.Medication, ID: p.MedicationID, Required: true},
	}); err != nil {
		return err
	}
	return apierr.Storage("create prescription", s.prescriptions.Create(ctx, p))
}

// ListPrescriptions returns all prescriptions in insertion order with the
// doctor, patient and medication references expanded. A reference whose
// target was deleted after the prescription was written expands to null.
func (s *Service) ListPrescriptions(ctx context.Context) ([]*PrescriptionView, error) {
	items, err := s.prescriptions.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list prescriptions", err)
	}
	views := make([]*PrescriptionView, 0, len(items))
	for _, p := range items {
		doctor, err := s.resolver.Expand(ctx, ref.Doctor, p.DoctorID)
		if err != nil {
			return nil, err
		}
		patient, err := s.resolver.Expand(ctx, ref.Patient, p.PatientID)
		if err != nil {
			return nil, err
		}
		med, err := s.resolver.Expand(ctx, ref.Medication, p.MedicationID)
		if err != nil {
			return nil, err
		}
		views = append(views, &PrescriptionView{
			ID:               p.ID,
			PrescriptionDate: p.PrescriptionDate,
			Dosage:           p.Dosage,
			Instructions:     p.Instructions,
			Doctor:           doctor,
			Patient:          patient,
			Medication:       med,
			CreatedAt:        p.CreatedAt,
		})
	}
	return views, nil
}
