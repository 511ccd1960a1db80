package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lumenstudio/backend/internal/model"
)

var caseStudies = collection{
	table: "case_studies",
	columns: []string{
		"id", "title", "client", "summary", "body",
		"COALESCE(image_url, '')", "COALESCE(icon, '')", "tags",
		"featured", "display_order", "created_at",
	},
	fields: map[string]string{
		"id":            "id",
		"client":        "client",
		"featured":      "featured",
		"display_order": "display_order",
		"created_at":    "created_at",
	},
}

// PgCaseStudyRepository is the PostgreSQL implementation of CaseStudyRepository.
type PgCaseStudyRepository struct {
	pool *pgxpool.Pool
}

// NewPgCaseStudyRepository creates a PgCaseStudyRepository backed by the given pool.
func NewPgCaseStudyRepository(pool *pgxpool.Pool) *PgCaseStudyRepository {
	return &PgCaseStudyRepository{pool: pool}
}

var _ CaseStudyRepository = (*PgCaseStudyRepository)(nil)

// List returns case studies matching q.
func (r *PgCaseStudyRepository) List(ctx context.Context, q model.ListQuery) ([]*model.CaseStudy, error) {
	query, args, err := caseStudies.selectSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var studies []*model.CaseStudy
	for rows.Next() {
		var c model.CaseStudy
		if err := rows.Scan(&c.ID, &c.Title, &c.Client, &c.Summary, &c.Body,
			&c.ImageURL, &c.Icon, &c.Tags, &c.Featured, &c.DisplayOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		if c.Tags == nil {
			c.Tags = []string{}
		}
		studies = append(studies, &c)
	}
	return studies, rows.Err()
}
