package medication

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/ref"
)

// Medication maps to the medication table. Type and Dosage are free-text
// catalog attributes, not prescription-specific values.
type Medication struct {
	ID             uuid.UUID `db:"id" json:"id"`
	MedicationName string    `db:"medication_name" json:"medicationName"`
	Type           string    `db:"type" json:"type,omitempty"`
	Dosage         string    `db:"dosage" json:"dosage,omitempty"`
	Price          float64   `db:"price" json:"price"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// Prescription maps to the prescription table. The three reference fields are
// all required at create time and stored as bare ids.
type Prescription struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	PrescriptionDate string     `db:"prescription_date" json:"prescriptionDate"`
	Dosage           string     `db:"dosage" json:"dosage"`
	Instructions     string     `db:"instructions" json:"instructions,omitempty"`
	DoctorID         *uuid.UUID `db:"doctor_id" json:"doctorId"`
	PatientID        *uuid.UUID `db:"patient_id" json:"patientId"`
	MedicationID     *uuid.UUID `db:"medication_id" json:"medicationId"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
}

// UnmarshalJSON accepts the reference fields the way the client form submits
// them: an unselected reference arrives as "" and maps to nil, leaving the
// required-field check to the service.
func (p *Prescription) UnmarshalJSON(data []byte) error {
	type alias Prescription
	aux := struct {
		*alias
		DoctorID     string `json:"doctorId"`
		PatientID    string `json:"patientId"`
		MedicationID string `json:"medicationId"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if p.DoctorID, err = ref.ParseID("doctorId", aux.DoctorID); err != nil {
		return err
	}
	if p.PatientID, err = ref.ParseID("patientId", aux.PatientID); err != nil {
		return err
	}
	if p.MedicationID, err = ref.ParseID("medicationId", aux.MedicationID); err != nil {
		return err
	}
	return nil
}

// PrescriptionView is the populated read shape. Each reference field carries
// the expanded record, or null when the target has since been deleted.
type PrescriptionView struct {
	ID               uuid.UUID   `json:"id"`
	PrescriptionDate string      `json:"prescriptionDate"`
	Dosage           string      `json:"dosage"`
	Instructions     string      `json:"instructions,omitempty"`
	Doctor           interface{} `json:"doctorId"`
	Patient          interface{} `json:"patientId"`
	Medication       interface{} `json:"medicationId"`
	CreatedAt        time.Time   `json:"createdAt"`
}
