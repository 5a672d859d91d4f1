package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Department Repository ===========

type departmentRepoPG struct{ pool *pgxpool.Pool }

func NewDepartmentRepoPG(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepoPG{pool: pool}
}

const departmentCols = `id, department_name, description, created_at`

func scanDepartment(row pgx.Row) (*Department, error) {
	var d Department
	err := row.Scan(&d.ID, &d.DepartmentName, &d.Description, &d.CreatedAt)
	return &d, err
}

func (r *departmentRepoPG) Create(ctx context.Context, d *Department) error {
	d.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO department (id, department_name, description)
		VALUES ($1,$2,$3)
		RETURNING created_at`,
		d.ID, d.DepartmentName, d.Description).Scan(&d.CreatedAt)
}

func (r *departmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	d, err := scanDepartment(r.pool.QueryRow(ctx, `SELECT `+departmentCols+` FROM department WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *departmentRepoPG) List(ctx context.Context) ([]*Department, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+departmentCols+` FROM department ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// =========== Room Repository ===========

type roomRepoPG struct{ pool *pgxpool.Pool }

func NewRoomRepoPG(pool *pgxpool.Pool) RoomRepository { return &roomRepoPG{pool: pool} }

const roomCols = `id, room_number, room_type, status, floor, created_at`

func scanRoom(row pgx.Row) (*Room, error) {
	var rm Room
	err := row.Scan(&rm.ID, &rm.RoomNumber, &rm.RoomType, &rm.Status, &rm.Floor, &rm.CreatedAt)
	return &rm, err
}

func (r *roomRepoPG) Create(ctx context.Context, rm *Room) error {
	rm.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO room (id, room_number, room_type, status, floor)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		rm.ID, rm.RoomNumber, rm.RoomType, rm.Status, rm.Floor).Scan(&rm.CreatedAt)
}

func (r *roomRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	rm, err := scanRoom(r.pool.QueryRow(ctx, `SELECT `+roomCols+` FROM room WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *roomRepoPG) List(ctx context.Context) ([]*Room, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+roomCols+` FROM room ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rm)
	}
	return items, rows.Err()
}
