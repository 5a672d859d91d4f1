package nursing

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/ref"
)

// Nurse maps to the nurse table. DepartmentID stores the bare id of an
// optional Department reference.
type Nurse struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Contact      string     `db:"contact" json:"contact"`
	Shift        string     `db:"shift" json:"shift,omitempty"`
	DepartmentID *uuid.UUID `db:"department_id" json:"departmentId,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

// UnmarshalJSON accepts departmentId the way the client form submits it: an
// unselected department arrives as "" and maps to no reference.
func (n *Nurse) UnmarshalJSON(data []byte) error {
	type alias Nurse
	aux := struct {
		*alias
		DepartmentID string `json:"departmentId"`
	}{alias: (*alias)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	id, err := ref.ParseID("departmentId", aux.DepartmentID)
	if err != nil {
		return err
	}
	n.DepartmentID = id
	return nil
}

// NurseView is the populated read shape: departmentId carries the expanded
// Department record, or null when the reference is empty or dangling.
type NurseView struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Contact    string      `json:"contact"`
	Shift      string      `json:"shift,omitempty"`
	Department interface{} `json:"departmentId"`
	CreatedAt  time.Time   `json:"createdAt"`
}

var ValidShifts = map[string]bool{
	"Morning": true, "Evening": true, "Night": true,
}
