package admin

import (
	"time"

	"github.com/google/uuid"
)

// Department maps to the department table.
type Department struct {
	ID             uuid.UUID `db:"id" json:"id"`
	DepartmentName string    `db:"department_name" json:"departmentName"`
	Description    string    `db:"description" json:"description,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// Room maps to the room table. Status defaults to Available at create time.
type Room struct {
	ID         uuid.UUID `db:"id" json:"id"`
	RoomNumber string    `db:"room_number" json:"roomNumber"`
	RoomType   string    `db:"room_type" json:"roomType,omitempty"`
	Status     string    `db:"status" json:"status"`
	Floor      string    `db:"floor" json:"floor,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

const StatusAvailable = "Available"

var ValidRoomTypes = map[string]bool{
	"General": true, "ICU": true, "Private": true, "Emergency": true,
}

var ValidRoomStatuses = map[string]bool{
	"Available": true, "Occupied": true, "Maintenance": true,
}
