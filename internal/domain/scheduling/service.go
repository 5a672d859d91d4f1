package scheduling

import (
	"context"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/ref"
)

type Service struct {
	appointments AppointmentRepository
	resolver     *ref.Resolver
}

func NewService(appointments AppointmentRepository, resolver *ref.Resolver) *Service {
	return &Service{appointments: appointments, resolver: resolver}
}

// CreateAppointment validates the draft, fills in the Scheduled default when
// no status was supplied, and checks both references before writing.
func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	if err := apierr.Date("appointmentDate", a.AppointmentDate); err != nil {
		return err
	}
	if err := apierr.Clock("appointmentTime", a.AppointmentTime); err != nil {
		return err
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !ValidStatuses[a.Status] {
		return apierr.Invalid("status", "must be one of Scheduled, Completed, Cancelled")
	}
	if err := s.resolver.ValidateRefs(ctx, []ref.FieldRef{
		{Field: "patientId", Kind: ref.Patient, ID: a.PatientID, Required: true},
		{Field: "doctorId", Kind: ref.Doctor, ID: a.DoctorID, Required: true},
	}); err != nil {
		return err
	}
	return apierr.Storage("create appointment", s.appointments.Create(ctx, a))
}

// ListAppointments returns all appointments in insertion order with the
// patient and doctor references expanded. A reference whose target was
// deleted after booking expands to null.
func (s *Service) ListAppointments(ctx context.Context) ([]*AppointmentView, error) {
	items, err := s.appointments.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list appointments", err)
	}
	views := make([]*AppointmentView, 0, len(items))
	for _, a := range items {
		patient, err := s.resolver.Expand(ctx, ref.Patient, a.PatientID)
		if err != nil {
			return nil, err
		}
		doctor, err := s.resolver.Expand(ctx, ref.Doctor, a.DoctorID)
		if err != nil {
			return nil, err
		}
		views = append(views, &AppointmentView{
			ID:              a.ID,
			AppointmentDate: a.AppointmentDate,
			AppointmentTime: a.AppointmentTime,
			Status:          a.Status,
			Patient:         patient,
			Doctor:          doctor,
			CreatedAt:       a.CreatedAt,
		})
	}
	return views, nil
}
