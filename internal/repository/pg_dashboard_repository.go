package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftmove/backend/internal/model"
)

// PgDashboardRepository is the PostgreSQL implementation of DashboardRepository.
type PgDashboardRepository struct {
	pool *pgxpool.Pool
}

// NewPgDashboardRepository creates a PgDashboardRepository.
func NewPgDashboardRepository(pool *pgxpool.Pool) *PgDashboardRepository {
	return &PgDashboardRepository{pool: pool}
}

var _ DashboardRepository = (*PgDashboardRepository)(nil)

// Stats computes every dashboard counter in a single round trip.
func (r *PgDashboardRepository) Stats(ctx context.Context, since time.Time) (*model.DashboardStats, error) {
	var s model.DashboardStats
	err := r.pool.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM contacts WHERE source = 'contact_form'),
		   (SELECT COUNT(*) FROM bookings),
		   (SELECT COUNT(*) FROM contacts WHERE source = 'chatbot'),
		   (SELECT COUNT(*) FROM contacts WHERE status = 'new'),
		   (SELECT COUNT(*) FROM bookings WHERE status = 'pending'),
		   (SELECT COUNT(*) FROM contacts WHERE created_at >= $1),
		   (SELECT COUNT(*) FROM bookings WHERE created_at >= $1)`,
		since,
	).Scan(&s.TotalContacts, &s.TotalBookings, &s.ChatbotQuotes, &s.PendingContacts,
		&s.PendingBookings, &s.RecentContacts, &s.RecentBookings)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
