package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftmove/backend/internal/model"
)

// PgBookingRepository is the PostgreSQL implementation of BookingRepository.
type PgBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPgBookingRepository creates a PgBookingRepository backed by the given pool.
func NewPgBookingRepository(pool *pgxpool.Pool) *PgBookingRepository {
	return &PgBookingRepository{pool: pool}
}

var _ BookingRepository = (*PgBookingRepository)(nil)

const bookingColumns = `id::text, name, email, phone, service_type, move_size, current_address, new_address,
	preferred_date, preferred_time, hours_needed, special_requests, status, created_at, updated_at`

// Save inserts a booking and populates b.ID and timestamps.
func (r *PgBookingRepository) Save(ctx context.Context, b *model.Booking) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO bookings (name, email, phone, service_type, move_size, current_address, new_address,
		                       preferred_date, preferred_time, hours_needed, special_requests, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id::text, created_at, updated_at`,
		b.Name, b.Email, b.Phone, b.ServiceType, b.MoveSize, b.CurrentAddress, b.NewAddress,
		b.PreferredDate, b.PreferredTime, b.HoursNeeded, b.SpecialRequests, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// List returns bookings filtered by status, newest first.
func (r *PgBookingRepository) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	var w whereBuilder
	if status := strings.TrimSpace(opts.Status); status != "" && status != "all" {
		w.add("status = ?", status)
	}
	where := w.clause()
	page := w.page(opts.Limit, opts.Offset)

	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings `+where+` ORDER BY created_at DESC`+page,
		w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.ServiceType, &b.MoveSize,
			&b.CurrentAddress, &b.NewAddress, &b.PreferredDate, &b.PreferredTime, &b.HoursNeeded,
			&b.SpecialRequests, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

// UpdateStatus sets the status of a booking. Returns ErrNotFound when no row matches.
func (r *PgBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id::text = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
