package scheduling

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/ref"
)

// Appointment maps to the appointment table. Status defaults to Scheduled at
// create time.
type Appointment struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	AppointmentDate string     `db:"appointment_date" json:"appointmentDate"`
	AppointmentTime string     `db:"appointment_time" json:"appointmentTime"`
	Status          string     `db:"status" json:"status"`
	PatientID       *uuid.UUID `db:"patient_id" json:"patientId"`
	DoctorID        *uuid.UUID `db:"doctor_id" json:"doctorId"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
}

// UnmarshalJSON accepts patientId and doctorId the way the client form
// submits them: an unselected reference arrives as "" and maps to nil,
// leaving the required-field check to the service.
func (a *Appointment) UnmarshalJSON(data []byte) error {
	type alias Appointment
	aux := struct {
		*alias
		PatientID string `json:"patientId"`
		DoctorID  string `json:"doctorId"`
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if a.PatientID, err = ref.ParseID("patientId", aux.PatientID); err != nil {
		return err
	}
	if a.DoctorID, err = ref.ParseID("doctorId", aux.DoctorID); err != nil {
		return err
	}
	return nil
}

// AppointmentView is the populated read shape: patientId and doctorId carry
// the expanded records, or null when the target has since been deleted.
type AppointmentView struct {
	ID              uuid.UUID   `json:"id"`
	AppointmentDate string      `json:"appointmentDate"`
	AppointmentTime string      `json:"appointmentTime"`
	Status          string      `json:"status"`
	Patient         interface{} `json:"patientId"`
	Doctor          interface{} `json:"doctorId"`
	CreatedAt       time.Time   `json:"createdAt"`
}

const StatusScheduled = "Scheduled"

var ValidStatuses = map[string]bool{
	"Scheduled": true, "Completed": true, "Cancelled": true,
}
