package ref

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apierr"
)

func mapLookup(m map[uuid.UUID]string) LookupFunc {
	return func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		v, ok := m[id]
		if !ok {
			return nil, nil
		}
		return v, nil
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("departmentId", "")
	if err != nil || id != nil {
		t.Fatalf("empty token: expected (nil, nil), got (%v, %v)", id, err)
	}

	want := uuid.New()
	id, err = ParseID("departmentId", want.String())
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if id == nil || *id != want {
		t.Fatalf("expected %s, got %v", want, id)
	}

	_, err = ParseID("departmentId", "not-a-uuid")
	var verr *apierr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "departmentId" {
		t.Errorf("expected field departmentId, got %q", verr.Field)
	}
}

func TestValidateRefs_RequiredMissing(t *testing.T) {
	r := NewResolver()
	r.Register(Patient, mapLookup(nil))

	err := r.ValidateRefs(context.Background(), []FieldRef{
		{Field: "patientId", Kind: Patient, Required: true},
	})
	var verr *apierr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "patientId" {
		t.Errorf("expected field patientId, got %q", verr.Field)
	}
}

func TestValidateRefs_OptionalMissingOK(t *testing.T) {
	r := NewResolver()
	r.Register(Room, mapLookup(nil))

	if err := r.ValidateRefs(context.Background(), []FieldRef{
		{Field: "roomId", Kind: Room},
	}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidateRefs_Dangling(t *testing.T) {
	r := NewResolver()
	r.Register(Doctor, mapLookup(nil))

	missing := uuid.New()
	err := r.ValidateRefs(context.Background(), []FieldRef{
		{Field: "doctorId", Kind: Doctor, ID: &missing},
	})
	var rerr *apierr.ReferenceError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if rerr.ID != missing {
		t.Errorf("expected id %s, got %s", missing, rerr.ID)
	}
}

func TestValidateRefs_Resolves(t *testing.T) {
	id := uuid.New()
	r := NewResolver()
	r.Register(Department, mapLookup(map[uuid.UUID]string{id: "Cardiology"}))

	if err := r.ValidateRefs(context.Background(), []FieldRef{
		{Field: "departmentId", Kind: Department, ID: &id},
	}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidateRefs_StopsAtFirstViolation(t *testing.T) {
	r := NewResolver()
	r.Register(Patient, mapLookup(nil))
	r.Register(Doctor, mapLookup(nil))

	missing := uuid.New()
	err := r.ValidateRefs(context.Background(), []FieldRef{
		{Field: "patientId", Kind: Patient, Required: true},
		{Field: "doctorId", Kind: Doctor, ID: &missing},
	})
	var verr *apierr.ValidationError
	if !errors.As(err, &verr) || verr.Field != "patientId" {
		t.Fatalf("expected first violation (patientId), got %v", err)
	}
}

func TestValidateRefs_LookupFailure(t *testing.T) {
	r := NewResolver()
	r.Register(Medication, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		return nil, errors.New("connection refused")
	})

	id := uuid.New()
	err := r.ValidateRefs(context.Background(), []FieldRef{
		{Field: "medicationId", Kind: Medication, ID: &id},
	})
	var serr *apierr.StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestExpand_NilIDYieldsNil(t *testing.T) {
	r := NewResolver()
	r.Register(Department, mapLookup(nil))

	v, err := r.Expand(context.Background(), Department, nil)
	if err != nil || v != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", v, err)
	}
}

func TestExpand_DanglingYieldsNilNotError(t *testing.T) {
	r := NewResolver()
	r.Register(Department, mapLookup(nil))

	missing := uuid.New()
	v, err := r.Expand(context.Background(), Department, &missing)
	if err != nil {
		t.Fatalf("dangling reference must not error on expand: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil, got %v", v)
	}
}

func TestExpand_ResolvesRecord(t *testing.T) {
	id := uuid.New()
	r := NewResolver()
	r.Register(Department, mapLookup(map[uuid.UUID]string{id: "Cardiology"}))

	v, err := r.Expand(context.Background(), Department, &id)
	if err != nil {
		t.Fatal(err)
	}
	if v != "Cardiology" {
		t.Fatalf("expected Cardiology, got %v", v)
	}
}
