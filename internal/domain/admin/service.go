package admin

import (
	"context"

	"github.com/hms/hms/internal/platform/apierr"
)

type Service struct {
	departments DepartmentRepository
	rooms       RoomRepository
}

func NewService(departments DepartmentRepository, rooms RoomRepository) *Service {
	return &Service{departments: departments, rooms: rooms}
}

// -- Department --

func (s *Service) CreateDepartment(ctx context.Context, d *Department) error {
	if d.DepartmentName == "" {
		return apierr.Required("departmentName")
	}
	return apierr.Storage("create department", s.departments.Create(ctx, d))
}

func (s *Service) ListDepartments(ctx context.Context) ([]*Department, error) {
	items, err := s.departments.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list departments", err)
	}
	return items, nil
}

// -- Room --

// CreateRoom validates the draft and fills in the Available default when no
// status was supplied.
func (s *Service) CreateRoom(ctx context.Context, r *Room) error {
	if r.RoomNumber == "" {
		return apierr.Required("roomNumber")
	}
	if r.RoomType != "" && !ValidRoomTypes[r.RoomType] {
		return apierr.Invalid("roomType", "must be one of General, ICU, Private, Emergency")
	}
	if r.Status == "" {
		r.Status = StatusAvailable
	}
	if !ValidRoomStatuses[r.Status] {
		return apierr.Invalid("status", "must be one of Available, Occupied, Maintenance")
	}
	return apierr.Storage("create room", s.rooms.Create(ctx, r))
}

func (s *Service) ListRooms(ctx context.Context) ([]*Room, error) {
	items, err := s.rooms.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list rooms", err)
	}
	return items, nil
}
