package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lumenstudio/backend/internal/model"
)

var appointments = collection{
	table: "appointments",
	columns: []string{
		"id", "name", "email", "COALESCE(phone, '')",
		"to_char(requested_date, 'YYYY-MM-DD')", "requested_time",
		"COALESCE(message, '')", "status", "created_at", "updated_at",
	},
	fields: map[string]string{
		"id":             "id",
		"email":          "email",
		"status":         "status",
		"requested_date": "requested_date",
		"created_at":     "created_at",
		"updated_at":     "updated_at",
	},
}

// PgAppointmentRepository is the PostgreSQL implementation of AppointmentRepository.
type PgAppointmentRepository struct {
	pool *pgxpool.Pool
}

// NewPgAppointmentRepository creates a PgAppointmentRepository backed by the given pool.
func NewPgAppointmentRepository(pool *pgxpool.Pool) *PgAppointmentRepository {
	return &PgAppointmentRepository{pool: pool}
}

var _ AppointmentRepository = (*PgAppointmentRepository)(nil)

// Save inserts a new appointment and populates ID and timestamps.
func (r *PgAppointmentRepository) Save(ctx context.Context, appt *model.Appointment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO appointments (name, email, phone, requested_date, requested_time, message, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4::date, $5, NULLIF($6, ''), $7)
		 RETURNING id, created_at, updated_at`,
		appt.Name, appt.Email, appt.Phone, appt.RequestedDate, appt.RequestedTime, appt.Message, string(appt.Status),
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
}

// List returns appointments matching q.
func (r *PgAppointmentRepository) List(ctx context.Context, q model.ListQuery) ([]*model.Appointment, error) {
	query, args, err := appointments.selectSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []*model.Appointment
	for rows.Next() {
		var a model.Appointment
		var status string
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.RequestedDate, &a.RequestedTime,
			&a.Message, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Status = model.AppointmentStatus(status)
		appts = append(appts, &a)
	}
	return appts, rows.Err()
}

// UpdateStatus sets status to `to` only while the stored status is `from`.
func (r *PgAppointmentRepository) UpdateStatus(ctx context.Context, id string, from, to model.AppointmentStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE appointments SET status = $3, updated_at = NOW()
		 WHERE id = $1 AND status = $2`,
		id, string(from), string(to),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing matched: tell a missing row apart from one that already moved on.
	var current string
	err = r.pool.QueryRow(ctx, `SELECT status FROM appointments WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrStatusConflict
}
