package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/ref"
)

type Service struct {
	patients PatientRepository
	doctors  DoctorRepository
	resolver *ref.Resolver
}

func NewService(patients PatientRepository, doctors DoctorRepository, resolver *ref.Resolver) *Service {
	return &Service{patients: patients, doctors: doctors, resolver: resolver}
}

// -- Patient --

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return apierr.Required("name")
	}
	if p.FatherName == "" {
		return apierr.Required("fatherName")
	}
	if err := apierr.Date("dob", p.DOB); err != nil {
		return err
	}
	if p.Gender == "" {
		return apierr.Required("gender")
	}
	if !ValidGenders[p.Gender] {
		return apierr.Invalid("gender", "must be one of Male, Female, Other")
	}
	if p.Address == "" {
		return apierr.Required("address")
	}
	if p.Contact == "" {
		return apierr.Required("contact")
	}
	if p.Email == "" {
		return apierr.Required("email")
	}
	if p.BloodGroup == "" {
		return apierr.Required("bloodGroup")
	}
	if !ValidBloodGroups[p.BloodGroup] {
		return apierr.Invalid("bloodGroup", "must be a valid blood group")
	}
	if err := apierr.Date("admissionDate", p.AdmissionDate); err != nil {
		return err
	}
	return apierr.Storage("create patient", s.patients.Create(ctx, p))
}

// ListPatients returns all patients in insertion order. Patients carry no
// reference fields, so no expansion pass is needed.
func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	items, err := s.patients.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list patients", err)
	}
	return items, nil
}

// DeletePatient removes the patient record. Dependent appointments,
// prescriptions and procedure records keep their now-dangling reference;
// reads expand it to null.
func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	removed, err := s.patients.Delete(ctx, id)
	if err != nil {
		return apierr.Storage("delete patient", err)
	}
	if !removed {
		return apierr.NotFound("patient", id)
	}
	return nil
}

// -- Doctor --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return apierr.Required("name")
	}
	if d.Specialization == "" {
		return apierr.Required("specialization")
	}
	if d.Contact == "" {
		return apierr.Required("contact")
	}
	if d.Email == "" {
		return apierr.Required("email")
	}
	if d.Gender != "" && !ValidGenders[d.Gender] {
		return apierr.Invalid("gender", "must be one of Male, Female, Other")
	}
	if d.BloodGroup != "" && !ValidBloodGroups[d.BloodGroup] {
		return apierr.Invalid("bloodGroup", "must be a valid blood group")
	}
	if err := apierr.Date("dateOfJoining", d.DateOfJoining); err != nil {
		return err
	}
	if err := s.resolver.ValidateRefs(ctx, []ref.FieldRef{
		{Field: "departmentId", Kind: ref.Department, ID: d.DepartmentID},
	}); err != nil {
		return err
	}
	return apierr.Storage("create doctor", s.doctors.Create(ctx, d))
}

// ListDoctors returns all doctors in insertion order with the optional
// department reference expanded.
func (s *Service) ListDoctors(ctx context.Context) ([]*DoctorView, error) {
	items, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list doctors", err)
	}
	views := make([]*DoctorView, 0, len(items))
	for _, d := range items {
		dept, err := s.resolver.Expand(ctx, ref.Department, d.DepartmentID)
		if err != nil {
			return nil, err
		}
		views = append(views, &DoctorView{
			ID:             d.ID,
			Name:           d.Name,
			Specialization: d.Specialization,
			Department:     dept,
			Contact:        d.Contact,
			Email:          d.Email,
			Gender:         d.Gender,
			BloodGroup:     d.BloodGroup,
			DateOfJoining:  d.DateOfJoining,
			CreatedAt:      d.CreatedAt,
		})
	}
	return views, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	removed, err := s.doctors.Delete(ctx, id)
	if err != nil {
		return apierr.Storage("delete doctor", err)
	}
	if !removed {
		return apierr.NotFound("doctor", id)
	}
	return nil
}
