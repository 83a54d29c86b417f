package sqlite

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
)

// TestimonialRepository implements repository.TestimonialRepository over SQLite.
type TestimonialRepository struct {
	s *Store
}

var _ repository.TestimonialRepository = (*TestimonialRepository)(nil)

func (r *TestimonialRepository) Save(ctx context.Context, t *model.Testimonial) error {
	t.ID = uuid.NewString()
	t.CreatedAt = r.s.stamp(t.CreatedAt)
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO testimonials (id, name, role, location, rating, text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Role, t.Location, t.Rating, t.Text, toMillis(t.CreatedAt))
	return err
}

func (r *TestimonialRepository) List(ctx context.Context, limit int) ([]*model.Testimonial, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := r.s.db.QueryContext(ctx,
		`SELECT id, name, role, location, rating, text, created_at
		 FROM testimonials ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		var created int64
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Location, &t.Rating, &t.Text, &created); err != nil {
			return nil, err
		}
		t.CreatedAt = fromMillis(created)
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *TestimonialRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&n)
	return n, err
}
