package service

import (
	"context"
	"time"

	"github.com/swiftmove/backend/internal/model"
)

// ---------------------------------------------------------------------------
// repository mocks
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc          func(ctx context.Context, c *model.Contact) error
	listFunc          func(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)
	listBySessionFunc func(ctx context.Context, sessionID string) ([]*model.Contact, error)
	updateStatusFunc  func(ctx context.Context, id, status string) error
}

func (m *mockContactRepository) Save(ctx context.Context, c *model.Contact) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockContactRepository) ListBySession(ctx context.Context, sessionID string) ([]*model.Contact, error) {
	if m.listBySessionFunc != nil {
		return m.listBySessionFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

type mockBookingRepository struct {
	saveFunc         func(ctx context.Context, b *model.Booking) error
	listFunc         func(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
}

func (m *mockBookingRepository) Save(ctx context.Context, b *model.Booking) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingRepository) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

type mockTestimonialRepository struct {
	saved     []*model.Testimonial
	count     int
	countErr  error
	listFunc  func(ctx context.Context, limit int) ([]*model.Testimonial, error)
	saveError error
}

func (m *mockTestimonialRepository) Save(_ context.Context, t *model.Testimonial) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.saved = append(m.saved, t)
	return nil
}

func (m *mockTestimonialRepository) List(ctx context.Context, limit int) ([]*model.Testimonial, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return m.saved, nil
}

func (m *mockTestimonialRepository) Count(context.Context) (int, error) {
	return m.count, m.countErr
}

type mockChatRepository struct {
	saved    []*model.ChatMessage
	saveErr  error
	listFunc func(ctx context.Context, sessionID string, limit int) ([]*model.ChatMessage, error)
}

func (m *mockChatRepository) Save(_ context.Context, msg *model.ChatMessage) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, msg)
	return nil
}

func (m *mockChatRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*model.ChatMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, sessionID, limit)
	}
	return nil, nil
}

type mockAdminUserRepository struct {
	createFunc func(ctx context.Context, u *model.AdminUser) error
	findFunc   func(ctx context.Context, username string) (*model.AdminUser, error)
}

func (m *mockAdminUserRepository) Create(ctx context.Context, u *model.AdminUser) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return nil
}

func (m *mockAdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, username)
	}
	return nil, nil
}

type mockDashboardRepository struct {
	statsFunc func(ctx context.Context, since time.Time) (*model.DashboardStats, error)
}

func (m *mockDashboardRepository) Stats(ctx context.Context, since time.Time) (*model.DashboardStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, since)
	}
	return &model.DashboardStats{}, nil
}

// ---------------------------------------------------------------------------
// collaborator mocks
// ---------------------------------------------------------------------------

// mockNotifier delivers each alert on a buffered channel.
type mockNotifier struct {
	sent chan string
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{sent: make(chan string, 4)}
}

func (m *mockNotifier) Notify(_ context.Context, text string) error {
	m.sent <- text
	return nil
}

func (m *mockNotifier) wait() (string, bool) {
	select {
	case s := <-m.sent:
		return s, true
	case <-time.After(2 * time.Second):
		return "", false
	}
}

type mockTokenIssuer struct {
	issueFunc func(username string) (string, time.Time, error)
}

func (m *mockTokenIssuer) Issue(username string) (string, time.Time, error) {
	if m.issueFunc != nil {
		return m.issueFunc(username)
	}
	return "token-for-" + username, time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), nil
}

type mockResponder struct {
	reply string
}

func (m *mockResponder) Reply(string) string { return m.reply }

type mockContactService struct {
	ContactService
	quoteFunc func(ctx context.Context, c *model.Contact) error
}

func (m *mockContactService) SubmitChatbotQuote(ctx context.Context, c *model.Contact) error {
	if m.quoteFunc != nil {
		return m.quoteFunc(ctx, c)
	}
	return nil
}
