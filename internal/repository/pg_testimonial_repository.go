package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftmove/backend/internal/model"
)

// PgTestimonialRepository is the PostgreSQL implementation of TestimonialRepository.
type PgTestimonialRepository struct {
	pool *pgxpool.Pool
}

// NewPgTestimonialRepository creates a PgTestimonialRepository.
func NewPgTestimonialRepository(pool *pgxpool.Pool) *PgTestimonialRepository {
	return &PgTestimonialRepository{pool: pool}
}

var _ TestimonialRepository = (*PgTestimonialRepository)(nil)

func (r *PgTestimonialRepository) Save(ctx context.Context, t *model.Testimonial) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO testimonials (name, role, location, rating, text)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id::text, created_at`,
		t.Name, t.Role, t.Location, t.Rating, t.Text,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *PgTestimonialRepository) List(ctx context.Context, limit int) ([]*model.Testimonial, error) {
	query := `SELECT id::text, name, role, location, rating, text, created_at
	          FROM testimonials ORDER BY created_at DESC, id`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Location, &t.Rating, &t.Text, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *PgTestimonialRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&n)
	return n, err
}
