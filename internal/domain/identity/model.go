package identity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/ref"
)

// Patient maps to the patient table.
type Patient struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	FatherName    string    `db:"father_name" json:"fatherName"`
	DOB           string    `db:"dob" json:"dob"`
	Gender        string    `db:"gender" json:"gender"`
	Address       string    `db:"address" json:"address"`
	Contact       string    `db:"contact" json:"contact"`
	Email         string    `db:"email" json:"email"`
	BloodGroup    string    `db:"blood_group" json:"bloodGroup"`
	AdmissionDate string    `db:"admission_date" json:"admissionDate"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Doctor maps to the doctor table. DepartmentID stores the bare id of an
// optional Department reference.
type Doctor struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Specialization string     `db:"specialization" json:"specialization"`
	DepartmentID   *uuid.UUID `db:"department_id" json:"departmentId,omitempty"`
	Contact        string     `db:"contact" json:"contact"`
	Email          string     `db:"email" json:"email"`
	Gender         string     `db:"gender" json:"gender,omitempty"`
	BloodGroup     string     `db:"blood_group" json:"bloodGroup,omitempty"`
	DateOfJoining  string     `db:"date_of_joining" json:"dateOfJoining"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

// UnmarshalJSON accepts departmentId the way the client form submits it: an
// unselected department arrives as "" and maps to no reference.
func (d *Doctor) UnmarshalJSON(data []byte) error {
	type alias Doctor
	aux := struct {
		*alias
		DepartmentID string `json:"departmentId"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	id, err := ref.ParseID("departmentId", aux.DepartmentID)
	if err != nil {
		return err
	}
	d.DepartmentID = id
	return nil
}

// DoctorView is the populated read shape: departmentId carries the expanded
// Department record, or null when the reference is empty or dangling.
type DoctorView struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Specialization string      `json:"specialization"`
	Department     interface{} `json:"departmentId"`
	Contact        string      `json:"contact"`
	Email          string      `json:"email"`
	Gender         string      `json:"gender,omitempty"`
	BloodGroup     string      `json:"bloodGroup,omitempty"`
	DateOfJoining  string      `json:"dateOfJoining"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// ValidGenders is shared by patients and doctors.
var ValidGenders = map[string]bool{
	"Male": true, "Female": true, "Other": true,
}

// ValidBloodGroups covers the eight ABO/Rh groups.
var ValidBloodGroups = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}
