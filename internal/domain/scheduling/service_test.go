package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/ref"
)

type fakeAppointmentRepo struct {
	byID  map[uuid.UUID]*Appointment
	order []uuid.UUID
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: make(map[uuid.UUID]*Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context) ([]*Appointment, error) {
	items := make([]*Appointment, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.byID[id])
	}
	return items, nil
}

type world struct {
	patients map[uuid.UUID]map[string]string
	doctors  map[uuid.UUID]map[string]string
}

func newWorld() *world {
	return &world{
		patients: make(map[uuid.UUID]map[string]string),
		doctors:  make(map[uuid.UUID]map[string]string),
	}
}

func mapLookup(m map[uuid.UUID]map[string]string) ref.LookupFunc {
	return func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		v, ok := m[id]
		if !ok {
			return nil, nil
		}
		return v, nil
	}
}

func newTestService(w *world) *Service {
	if w == nil {
		w = newWorld()
	}
	resolver := ref.NewResolver()
	resolver.Register(ref.Patient, mapLookup(w.patients))
	resolver.Register(ref.Doctor, mapLookup(w.doctors))
	return NewService(newFakeAppointmentRepo(), resolver)
}

func TestCreateAppointment_DefaultsStatusScheduled(t *testing.T) {
	w := newWorld()
	patID, docID := uuid.New(), uuid.New()
	w.patients[patID] = map[string]string{"name": "Ali Khan"}
	w.doctors[docID] = map[string]string{"name": "Dr. Imran"}
	svc := newTestService(w)

	a := &Appointment{
		AppointmentDate: "2024-08-15",
		AppointmentTime: "09:30",
		PatientID:       &patID,
		DoctorID:        &docID,
	}
	if err := svc.CreateAppointment(context.Background(), a); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Fatalf("expected status Scheduled, got %q", a.Status)
	}
}

func TestCreateAppointment_KeepsExplicitStatus(t *testing.T) {
	w := newWorld()
	patID, docID := uuid.New(), uuid.New()
	w.patients[patID] = map[string]string{"name": "Ali Khan"}
	w.doctors[docID] = map[string]string{"name": "Dr. Imran"}
	svc := newTestService(w)

	a := &Appointment{
		AppointmentDate: "2024-08-15",
		AppointmentTime: "09:30",
		Status:          "Completed",
		PatientID:       &patID,
		DoctorID:        &docID,
	}
	if err := svc.CreateAppointment(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if a.Status != "Completed" {
		t.Fatalf("expected status Completed, got %q", a.Status)
	}
}

func TestCreateAppointment_BadInputs(t *testing.T) {
	svc := newTestService(nil)

	var verr *apierr.ValidationError
	err := svc.CreateAppointment(context.Background(), &Appointment{AppointmentTime: "09:30"})
	if !errors.As(err, &verr) || verr.Field != "appointmentDate" {
		t.Fatalf("expected appointmentDate ValidationError, got %v", err)
	}

	err = svc.CreateAppointment(context.Background(), &Appointment{AppointmentDate: "2024-08-15"})
	if !errors.As(err, &verr) || verr.Field != "appointmentTime" {
		t.Fatalf("expected appointmentTime ValidationError, got %v", err)
	}

	err = svc.CreateAppointment(context.Background(), &Appointment{
		AppointmentDate: "2024-08-15", AppointmentTime: "9:30am",
	})
	if !errors.As(err, &verr) || verr.Field != "appointmentTime" {
		t.Fatalf("expected time format ValidationError, got %v", err)
	}

	err = svc.CreateAppointment(context.Background(), &Appointment{
		AppointmentDate: "2024-08-15", AppointmentTime: "09:30", Status: "Pending",
	})
	if !errors.As(err, &verr) || verr.Field != "status" {
		t.Fatalf("expected status ValidationError, got %v", err)
	}
}

func TestCreateAppointment_DanglingDoctorRejected(t *testing.T) {
	w := newWorld()
	patID := uuid.New()
	w.patients[patID] = map[string]string{"name": "Ali Khan"}
	svc := newTestService(w)

	missing := uuid.New()
	err := svc.CreateAppointment(context.Background(), &Appointment{
		AppointmentDate: "2024-08-15",
		AppointmentTime: "09:30",
		PatientID:       &patID,
		DoctorID:        &missing,
	})
	var rerr *apierr.ReferenceError
	if !errors.As(err, &rerr) || rerr.Field != "doctorId" {
		t.Fatalf("expected doctorId ReferenceError, got %v", err)
	}
}

func TestCreateAppointment_MissingRefs(t *testing.T) {
	svc := newTestService(nil)

	err := svc.CreateAppointment(context.Background(), &Appointment{
		AppointmentDate: "2024-08-15",
		AppointmentTime: "09:30",
	})
	var verr *apierr.ValidationError
	if !errors.As(err, &verr) || verr.Field != "patientId" {
		t.Fatalf("expected patientId ValidationError, got %v", err)
	}
}

func TestListAppointments_ExpandsAndNullsDeleted(t *testing.T) {
	w := newWorld()
	patID, docID := uuid.New(), uuid.New()
	w.patients[patID] = map[string]string{"name": "Ali Khan"}
	w.doctors[docID] = map[string]string{"name": "Dr. Imran"}
	svc := newTestService(w)

	if err := svc.CreateAppointment(context.Background(), &Appointment{
		AppointmentDate: "2024-08-15",
		AppointmentTime: "09:30",
		PatientID:       &patID,
		DoctorID:        &docID,
	}); err != nil {
		t.Fatal(err)
	}

	// the patient record is deleted after booking
	delete(w.patients, patID)

	views, err := svc.ListAppointments(context.Background())
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(views))
	}
	if views[0].Patient != nil {
		t.Fatalf("expected null patient after delete, got %v", views[0].Patient)
	}
	doctor, ok := views[0].Doctor.(map[string]string)
	if !ok || doctor["name"] != "Dr. Imran" {
		t.Fatalf("expected expanded doctor, got %v", views[0].Doctor)
	}
}
