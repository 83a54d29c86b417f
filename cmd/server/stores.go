package main

import (
	"context"

	"github.com/swiftmove/backend/internal/repository"
	"github.com/swiftmove/backend/internal/repository/sqlite"
)

// stores bundles the repositories for whichever backend DATABASE_URL selects.
type stores struct {
	kind         string
	db           repository.DB
	contacts     repository.ContactRepository
	bookings     repository.BookingRepository
	testimonials repository.TestimonialRepository
	chat         repository.ChatRepository
	adminUsers   repository.AdminUserRepository
	dashboard    repository.DashboardRepository
	close        func()
}

func openStores(ctx context.Context, dsn string) (*stores, error) {
	if repository.IsSQLite(dsn) {
		s, err := sqlite.Open(dsn)
		if err != nil {
			return nil, err
		}
		return &stores{
			kind:         "sqlite",
			db:           s,
			contacts:     s.Contacts(),
			bookings:     s.Bookings(),
			testimonials: s.Testimonials(),
			chat:         s.Chat(),
			adminUsers:   s.AdminUsers(),
			dashboard:    s.Dashboard(),
			close:        func() { _ = s.Close() },
		}, nil
	}

	pool, err := repository.NewPool(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &stores{
		kind:         "postgres",
		db:           pool,
		contacts:     repository.NewPgContactRepository(pool),
		bookings:     repository.NewPgBookingRepository(pool),
		testimonials: repository.NewPgTestimonialRepository(pool),
		chat:         repository.NewPgChatRepository(pool),
		adminUsers:   repository.NewPgAdminUserRepository(pool),
		dashboard:    repository.NewPgDashboardRepository(pool),
		close:        pool.Close,
	}, nil
}
