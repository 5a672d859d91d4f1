package medication

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/ref"
)

type fakeMedicationRepo struct {
	byID  map[uuid.UUID]*Medication
	order []uuid.UUID
}

func newFakeMedicationRepo() *fakeMedicationRepo {
	return &fakeMedicationRepo{byID: make(map[uuid.UUID]*Medication)}
}

func (r *fakeMedicationRepo) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	r.byID[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *fakeMedicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return r.byID[id], nil
}

func (r *fakeMedicationRepo) List(ctx context.Context) ([]*Medication, error) {
	items := make([]*Medication, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.byID[id])
	}
	return items, nil
}

type fakePrescriptionRepo struct {
	byID  map[uuid.UUID]*Prescription
	order []uuid.UUID
}

func newFakePrescriptionRepo() *fakePrescriptionRepo {
	return &fakePrescriptionRepo{byID: make(map[uuid.UUID]*Prescription)}
}

func (r *fakePrescriptionRepo) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakePrescriptionRepo) List(ctx context.Context) ([]*Prescription, error) {
	items := make([]*Prescription, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.byID[id])
	}
	return items, nil
}

// collections is the reference world the resolver sees; deleting from a map
// makes the corresponding id dangle, the way a live delete would.
type collections struct {
	doctors  map[uuid.UUID]map[string]string
	patients map[uuid.UUID]map[string]string
}

func newTestService(meds *fakeMedicationRepo, world *collections) *Service {
	if meds == nil {
		meds = newFakeMedicationRepo()
	}
	if world == nil {
		world = &collections{
			doctors:  make(map[uuid.UUID]map[string]string),
			patients: make(map[uuid.UUID]map[string]string),
		}
	}
	resolver := ref.NewResolver()
	resolver.Register(ref.Doctor, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		d, ok := world.doctors[id]
		if !ok {
			return nil, nil
		}
		return d, nil
	})
	resolver.Register(ref.Patient, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		p, ok := world.patients[id]
		if !ok {
			return nil, nil
		}
		return p, nil
	})
	resolver.Register(ref.Medication, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		m, ok := meds.byID[id]
		if !ok {
			return nil, nil
		}
		return m, nil
	})
	return NewService(meds, newFakePrescriptionRepo(), resolver)
}

func TestCreateMedication_Valid(t *testing.T) {
	svc := newTestService(nil, nil)

	m := &Medication{MedicationName: "Paracetamol", Type: "Tablet", Dosage: "500mg", Price: 2.50}
	if err := svc.CreateMedication(context.Background(), m); err != nil {
		t.Fatalf("CreateMedication: %v", err)
	}
	if m.ID == uuid.Nil {
		t.Fatal("expected id to be assigned")
	}
}

func TestCreateMedication_Invalid(t *testing.T) {
	svc := newTestService(nil, nil)

	err := svc.CreateMedication(context.Background(), &Medication{Price: 2.50})
	var verr *apierr.ValidationError
	if !errors.As(err, &verr) || verr.Field != "medicationName" {
		t.Fatalf("expected medicationName ValidationError, got %v", err)
	}

	err = svc.CreateMedication(context.Background(), &Medication{MedicationName: "Paracetamol", Price: -1})
	if !errors.As(err, &verr) || verr.Field != "price" {
		t.Fatalf("expected price ValidationError, got %v", err)
	}
}

func TestCreatePrescription_RequiresAllRefs(t *testing.T) {
	svc := newTestService(nil, nil)

	err := svc.CreatePrescription(context.Background(), &Prescription{
		PrescriptionDate: "2024-06-01",
		Dosage:           "500mg twice daily",
	})
	var verr *apierr.ValidationError
	if !errors.As(err, &verr) || verr.Field != "doctorId" {
		t.Fatalf("expected doctorId ValidationError, got %v", err)
	}
}

func TestCreatePrescription_DanglingMedication(t *testing.T) {
	world := &collections{
		doctors:  map[uuid.UUID]map[string]string{},
		patients: map[uuid.UUID]map[string]string{},
	}
	docID, patID := uuid.New(), uuid.New()
	world.doctors[docID] = map[string]string{"name": "Dr. Imran"}
	world.patients[patID] = map[string]string{"name": "Ali Khan"}
	svc := newTestService(nil, world)

	missing := uuid.New()
	err := svc.CreatePrescription(context.Background(), &Prescription{
		PrescriptionDate: "2024-06-01",
		Dosage:           "500mg twice daily",
		DoctorID:         &docID,
		PatientID:        &patID,
		MedicationID:     &missing,
	})
	var rerr *apierr.ReferenceError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if rerr.Field != "medicationId" {
		t.Errorf("expected field medicationId, got %q", rerr.Field)
	}
}

func TestListPrescriptions_DeletedDoctorExpandsToNull(t *testing.T) {
	meds := newFakeMedicationRepo()
	world := &collections{
		doctors:  map[uuid.UUID]map[string]string{},
		patients: map[uuid.UUID]map[string]string{},
	}
	docID, patID := uuid.New(), uuid.New()
	world.doctors[docID] = map[string]string{"name": "Dr. Imran"}
	world.patients[patID] = map[string]string{"name": "Ali Khan"}
	svc := newTestService(meds, world)

	m := &Medication{MedicationName: "Paracetamol", Price: 2.50}
	if err := svc.CreateMedication(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	if err := svc.CreatePrescription(context.Background(), &Prescription{
		PrescriptionDate: "2024-06-01",
		Dosage:           "500mg twice daily",
		DoctorID:         &docID,
		PatientID:        &patID,
		MedicationID:     &m.ID,
	}); err != nil {
		t.Fatalf("CreatePrescription: %v", err)
	}

	// the doctor is deleted after the prescription was written
	delete(world.doctors, docID)

	views, err := svc.ListPrescriptions(context.Background())
	if err != nil {
		t.Fatalf("ListPrescriptions: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 prescription, got %d", len(views))
	}
	if views[0].Doctor != nil {
		t.Fatalf("expected null doctor after delete, got %v", views[0].Doctor)
	}
	patient, ok := views[0].Patient.(map[string]string)
	if !ok || patient["name"] != "Ali Khan" {
		t.Fatalf("expected expanded patient, got %v", views[0].Patient)
	}
	med, ok := views[0].Medication.(*Medication)
	if !ok || med.MedicationName != "Paracetamol" {
		t.Fatalf("expected expanded medication, got %v", views[0].Medication)
	}
}
