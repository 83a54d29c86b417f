package sqlite

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
)

// BookingRepository implements repository.BookingRepository over SQLite.
type BookingRepository struct {
	s *Store
}

var _ repository.BookingRepository = (*BookingRepository)(nil)

func (r *BookingRepository) Save(ctx context.Context, b *model.Booking) error {
	b.ID = uuid.NewString()
	b.CreatedAt = r.s.stamp(b.CreatedAt)
	b.UpdatedAt = b.CreatedAt
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO bookings (id, name, email, phone, service_type, move_size, current_address, new_address,
		                       preferred_date, preferred_time, hours_needed, special_requests, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.Email, b.Phone, b.ServiceType, b.MoveSize, b.CurrentAddress, b.NewAddress,
		toMillis(b.PreferredDate), b.PreferredTime, b.HoursNeeded, b.SpecialRequests, b.Status,
		toMillis(b.CreatedAt), toMillis(b.UpdatedAt))
	return err
}

func (r *BookingRepository) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	where := ""
	var args []any
	if status := strings.TrimSpace(opts.Status); status != "" && status != "all" {
		where = "WHERE status = ?"
		args = append(args, status)
	}
	limit, offset := pageArgs(opts.Limit, opts.Offset)
	args = append(args, limit, offset)

	rows, err := r.s.db.QueryContext(ctx,
		`SELECT id, name, email, phone, service_type, move_size, current_address, new_address,
		        preferred_date, preferred_time, hours_needed, special_requests, status, created_at, updated_at
		 FROM bookings `+where+` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Booking
	for rows.Next() {
		var b model.Booking
		var preferred, created, updated int64
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.ServiceType, &b.MoveSize,
			&b.CurrentAddress, &b.NewAddress, &preferred, &b.PreferredTime, &b.HoursNeeded,
			&b.SpecialRequests, &b.Status, &created, &updated); err != nil {
			return nil, err
		}
		b.PreferredDate = fromMillis(preferred)
		b.CreatedAt, b.UpdatedAt = fromMillis(created), fromMillis(updated)
		out = append(out, &b)
	}
	return out, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.s.db.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		status, toMillis(r.s.now()), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
