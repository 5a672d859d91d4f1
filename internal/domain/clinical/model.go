package clinical

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/ref"
)

// Procedure maps to the procedure table, a catalog of clinical procedures.
type Procedure struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ProcedureName string    `db:"procedure_name" json:"procedureName"`
	Description   string    `db:"description" json:"description,omitempty"`
	Cost          float64   `db:"cost" json:"cost"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Undergoes maps to the undergoes table and records one patient undergoing
// one procedure. Patient, procedure and doctor are required references; the
// room is optional.
type Undergoes struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	ProcedureDate string     `db:"procedure_date" json:"procedureDate"`
	PatientID     *uuid.UUID `db:"patient_id" json:"patientId"`
	ProcedureID   *uuid.UUID `db:"procedure_id" json:"procedureId"`
	DoctorID      *uuid.UUID `db:"doctor_id" json:"doctorId"`
	RoomID        *uuid.UUID `db:"room_id" json:"roomId,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
}

// UnmarshalJSON accepts the reference fields the way the client form submits
// them: an unselected reference (typically the optional room) arrives as ""
// and maps to nil, leaving the required-field check to the service.
func (u *Undergoes) UnmarshalJSON(data []byte) error {
	type alias Undergoes
	aux := struct {
		*alias
		PatientID   string `json:"patientId"`
		ProcedureID string `json:"procedureId"`
		DoctorID    string `json:"doctorId"`
		RoomID      string `json:"roomId"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if u.PatientID, err = ref.ParseID("patientId", aux.PatientID); err != nil {
		return err
	}
	if u.ProcedureID, err = ref.ParseID("procedureId", aux.ProcedureID); err != nil {
		return err
	}
	if u.DoctorID, err = ref.ParseID("doctorId", aux.DoctorID); err != nil {
		return err
	}
	if u.RoomID, err = ref.ParseID("roomId", aux.RoomID); err != nil {
		return err
	}
	return nil
}

// UndergoesView is the populated read shape. Each reference field carries the
// expanded record, or null when empty or dangling.
type UndergoesView struct {
	ID            uuid.UUID   `json:"id"`
	ProcedureDate string      `json:"procedureDate"`
	Patient       interface{} `json:"patientId"`
	Procedure     interface{} `json:"procedureId"`
	Doctor        interface{} `json:"doctorId"`
	Room          interface{} `json:"roomId"`
	CreatedAt     time.Time   `json:"createdAt"`
}
