package sqlite

import (
	"context"
	"time"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
)

// DashboardRepository implements repository.DashboardRepository over SQLite.
type DashboardRepository struct {
	s *Store
}

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

func (r *DashboardRepository) Stats(ctx context.Context, since time.Time) (*model.DashboardStats, error) {
	var st model.DashboardStats
	err := r.s.db.QueryRowContext(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM contacts WHERE source = 'contact_form'),
		   (SELECT COUNT(*) FROM bookings),
		   (SELECT COUNT(*) FROM contacts WHERE source = 'chatbot'),
		   (SELECT COUNT(*) FROM contacts WHERE status = 'new'),
		   (SELECT COUNT(*) FROM bookings WHERE status = 'pending'),
		   (SELECT COUNT(*) FROM contacts WHERE created_at >= ?1),
		   (SELECT COUNT(*) FROM bookings WHERE created_at >= ?1)`,
		toMillis(since),
	).Scan(&st.TotalContacts, &st.TotalBookings, &st.ChatbotQuotes, &st.PendingContacts,
		&st.PendingBookings, &st.RecentContacts, &st.RecentBookings)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
