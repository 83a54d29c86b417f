package repository

import (
	"context"
	"time"

	"github.com/swiftmove/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact-form inquiries and chatbot quotes.
type ContactRepository interface {
	// Save inserts msg and fills in its ID and timestamps.
	Save(ctx context.Context, c *model.Contact) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)
	// ListBySession returns the chatbot quotes recorded for a chat session, oldest first.
	ListBySession(ctx context.Context, sessionID string) ([]*model.Contact, error)
	// UpdateStatus returns ErrNotFound when no contact has the given id.
	UpdateStatus(ctx context.Context, id, status string) error
}

// BookingRepository persists booking requests.
type BookingRepository interface {
	Save(ctx context.Context, b *model.Booking) error
	List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error)
	// UpdateStatus returns ErrNotFound when no booking has the given id.
	UpdateStatus(ctx context.Context, id, status string) error
}

// TestimonialRepository persists customer reviews.
type TestimonialRepository interface {
	Save(ctx context.Context, t *model.Testimonial) error
	// List returns testimonials newest first; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*model.Testimonial, error)
	Count(ctx context.Context) (int, error)
}

// ChatRepository persists chat widget transcripts.
type ChatRepository interface {
	// Save inserts m. m.ID must already be set.
	Save(ctx context.Context, m *model.ChatMessage) error
	// ListBySession returns a session's messages oldest first.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*model.ChatMessage, error)
}

// AdminUserRepository persists dashboard operators.
type AdminUserRepository interface {
	Create(ctx context.Context, u *model.AdminUser) error
	// FindByUsername returns ErrNotFound when the user does not exist.
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
}

// DashboardRepository computes admin dashboard aggregates.
type DashboardRepository interface {
	// Stats counts records; "recent" counters include rows created at or after since.
	Stats(ctx context.Context, since time.Time) (*model.DashboardStats, error)
}
