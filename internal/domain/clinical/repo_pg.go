package clinical

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Procedure Repository ===========

type procedureRepoPG struct{ pool *pgxpool.Pool }

func NewProcedureRepoPG(pool *pgxpool.Pool) ProcedureRepository {
	return &procedureRepoPG{pool: pool}
}

const procedureCols = `id, procedure_name, description, cost, created_at`

func scanProcedure(row pgx.Row) (*Procedure, error) {
	var p Procedure
	err := row.Scan(&p.ID, &p.ProcedureName, &p.Description, &p.Cost, &p.CreatedAt)
	return &p, err
}

func (r *procedureRepoPG) Create(ctx context.Context, p *Procedure) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO procedure (id, procedure_name, description, cost)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		p.ID, p.ProcedureName, p.Description, p.Cost).Scan(&p.CreatedAt)
}

func (r *procedureRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Procedure, error) {
	p, err := scanProcedure(r.pool.QueryRow(ctx, `SELECT `+procedureCols+` FROM procedure WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *procedureRepoPG) List(ctx context.Context) ([]*Procedure, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+procedureCols+` FROM procedure ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Procedure
	for rows.Next() {
		p, err := scanProcedure(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// =========== Undergoes Repository ===========

type undergoesRepoPG struct{ pool *pgxpool.Pool }

func NewUndergoesRepoPG(pool *pgxpool.Pool) UndergoesRepository {
	return &undergoesRepoPG{pool: pool}
}

const undergoesCols = `id, procedure_date, patient_id, procedure_id, doctor_id, room_id, created_at`

func scanUndergoes(row pgx.Row) (*Undergoes, error) {
	var u Undergoes
	err := row.Scan(&u.ID, &u.ProcedureDate, &u.PatientID, &u.ProcedureID,
		&u.DoctorID, &u.RoomID, &u.CreatedAt)
	return &u, err
}

func (r *undergoesRepoPG) Create(ctx context.Context, u *Undergoes) error {
	u.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO undergoes (id, procedure_date, patient_id, procedure_id, doctor_id, room_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		u.ID, u.ProcedureDate, u.PatientID, u.ProcedureID, u.DoctorID, u.RoomID).Scan(&u.CreatedAt)
}

func (r *undergoesRepoPG) List(ctx context.Context) ([]*Undergoes, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+undergoesCols+` FROM undergoes ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Undergoes
	for rows.Next() {
		u, err := scanUndergoes(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}
