package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lumenstudio/backend/internal/model"
)

var contactSubmissions = collection{
	table:   "contact_submissions",
	columns: []string{"id", "name", "email", "subject", "message", "created_at"},
	fields: map[string]string{
		"id":         "id",
		"email":      "email",
		"created_at": "created_at",
	},
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_submissions row and populates sub.ID and
// sub.CreatedAt from the RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, subject, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		sub.Name, sub.Email, sub.Subject, sub.Message,
	).Scan(&sub.ID, &sub.CreatedAt)
}

// List returns contact submissions matching q.
func (r *PgContactRepository) List(ctx context.Context, q model.ListQuery) ([]*model.ContactSubmission, error) {
	query, args, err := contactSubmissions.selectSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
