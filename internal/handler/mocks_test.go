package handler

import (
	"context"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/service"
)

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc       func(ctx context.Context, c *model.Contact) error
	listFunc         func(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
	quotesFunc       func(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)
}

func (m *mockContactService) Submit(ctx context.Context, c *model.Contact) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, c)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockContactService) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockContactService) SubmitChatbotQuote(context.Context, *model.Contact) error { return nil }

func (m *mockContactService) ListChatbotQuotes(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	if m.quotesFunc != nil {
		return m.quotesFunc(ctx, opts)
	}
	return nil, nil
}

type mockBookingService struct {
	submitFunc       func(ctx context.Context, b *model.Booking) error
	listFunc         func(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
}

func (m *mockBookingService) Submit(ctx context.Context, b *model.Booking) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, b)
	}
	return nil
}

func (m *mockBookingService) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

type mockChatService struct {
	sendFunc    func(ctx context.Context, sessionID, message string) (*model.ChatMessage, error)
	historyFunc func(ctx context.Context, sessionID string) ([]*model.ChatMessage, error)
}

func (m *mockChatService) Send(ctx context.Context, sessionID, message string) (*model.ChatMessage, error) {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, sessionID, message)
	}
	return &model.ChatMessage{ID: "m1", SessionID: sessionID, Message: "ok", Sender: model.SenderBot}, nil
}

func (m *mockChatService) History(ctx context.Context, sessionID string) ([]*model.ChatMessage, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, sessionID)
	}
	return nil, nil
}

type mockTestimonialService struct {
	listFunc   func(ctx context.Context, limit int) ([]*model.Testimonial, error)
	createFunc func(ctx context.Context, t *model.Testimonial) error
}

func (m *mockTestimonialService) List(ctx context.Context, limit int) ([]*model.Testimonial, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockTestimonialService) Create(ctx context.Context, t *model.Testimonial) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, t)
	}
	return nil
}

func (m *mockTestimonialService) Seed(context.Context, []*model.Testimonial) (int, error) {
	return 0, nil
}

type mockAdminService struct {
	loginFunc func(ctx context.Context, username, password string) (*service.LoginResult, error)
	statsFunc func(ctx context.Context) (*model.DashboardStats, error)
}

func (m *mockAdminService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return nil, service.ErrInvalidCredentials
}

func (m *mockAdminService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.DashboardStats{}, nil
}

func (m *mockAdminService) CreateAdmin(context.Context, string, string) (*model.AdminUser, error) {
	return nil, nil
}

func (m *mockAdminService) EnsureAdmin(context.Context, string, string) (bool, error) {
	return false, nil
}
