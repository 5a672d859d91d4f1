package nursing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type nurseRepoPG struct{ pool *pgxpool.Pool }

func NewNurseRepoPG(pool *pgxpool.Pool) NurseRepository { return &nurseRepoPG{pool: pool} }

const nurseCols = `id, name, contact, shift, department_id, created_at`

func scanNurse(row pgx.Row) (*Nurse, error) {
	var n Nurse
	err := row.Scan(&n.ID, &n.Name, &n.Contact, &n.Shift, &n.DepartmentID, &n.CreatedAt)
	return &n, err
}

func (r *nurseRepoPG) Create(ctx context.Context, n *Nurse) error {
	n.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO nurse (id, name, contact, shift, department_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		n.ID, n.Name, n.Contact, n.Shift, n.DepartmentID).Scan(&n.CreatedAt)
}

func (r *nurseRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Nurse, error) {
	n, err := scanNurse(r.pool.QueryRow(ctx, `SELECT `+nurseCols+` FROM nurse WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *nurseRepoPG) List(ctx context.Context) ([]*Nurse, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+nurseCols+` FROM nurse ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Nurse
	for rows.Next() {
		n, err := scanNurse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}
