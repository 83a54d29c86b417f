package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
	"github.com/swiftmove/backend/pkg/auth"
)

func adminRepoWith(t *testing.T, username, password string) *mockAdminUserRepository {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &mockAdminUserRepository{
		findFunc: func(ctx context.Context, u string) (*model.AdminUser, error) {
			if u != username {
				return nil, repository.ErrNotFound
			}
			return &model.AdminUser{ID: "a1", Username: username, PasswordHash: hash}, nil
		},
	}
}

func TestAdminService_Login_Success(t *testing.T) {
	svc := NewAdminService(adminRepoWith(t, "admin", "correct-horse"), &mockDashboardRepository{}, &mockTokenIssuer{})

	res, err := svc.Login(context.Background(), " admin ", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccessToken != "token-for-admin" {
		t.Errorf("unexpected token %q", res.AccessToken)
	}
	if res.TokenType != "bearer" {
		t.Errorf("expected token_type bearer, got %q", res.TokenType)
	}
	if res.ExpiresAt.IsZero() {
		t.Error("expected expiry")
	}
}

func TestAdminService_Login_Rejects(t *testing.T) {
	svc := NewAdminService(adminRepoWith(t, "admin", "correct-horse"), &mockDashboardRepository{}, &mockTokenIssuer{})

	tests := []struct {
		name, user, pass string
	}{
		{"wrong password", "admin", "nope"},
		{"unknown user", "ghost", "correct-horse"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), tt.user, tt.pass); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAdminService_Login_RepositoryError(t *testing.T) {
	users := &mockAdminUserRepository{
		findFunc: func(ctx context.Context, u string) (*model.AdminUser, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewAdminService(users, &mockDashboardRepository{}, &mockTokenIssuer{})
	_, err := svc.Login(context.Background(), "admin", "pw")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestAdminService_Stats_UsesSevenDayWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var since time.Time
	stats := &mockDashboardRepository{
		statsFunc: func(ctx context.Context, s time.Time) (*model.DashboardStats, error) {
			since = s
			return &model.DashboardStats{TotalBookings: 3}, nil
		},
	}
	svc := NewAdminService(&mockAdminUserRepository{}, stats, &mockTokenIssuer{}).(*adminService)
	svc.now = func() time.Time { return now }

	got, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalBookings != 3 {
		t.Errorf("expected 3 bookings, got %d", got.TotalBookings)
	}
	if want := now.Add(-7 * 24 * time.Hour); !since.Equal(want) {
		t.Errorf("since = %v, want %v", since, want)
	}
}

func TestAdminService_CreateAdmin_HashesPassword(t *testing.T) {
	var created *model.AdminUser
	users := &mockAdminUserRepository{
		createFunc: func(ctx context.Context, u *model.AdminUser) error {
			created = u
			return nil
		},
	}
	svc := NewAdminService(users, &mockDashboardRepository{}, &mockTokenIssuer{})

	if _, err := svc.CreateAdmin(context.Background(), "ops", "short"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for short password, got %v", err)
	}
	if _, err := svc.CreateAdmin(context.Background(), "ops", "long-enough-pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PasswordHash == "long-enough-pw" || !auth.CheckPassword(created.PasswordHash, "long-enough-pw") {
		t.Error("password must be stored as a bcrypt hash")
	}
}

func TestAdminService_EnsureAdmin(t *testing.T) {
	creates := 0
	users := adminRepoWith(t, "admin", "correct-horse")
	users.createFunc = func(ctx context.Context, u *model.AdminUser) error {
		creates++
		return nil
	}
	svc := NewAdminService(users, &mockDashboardRepository{}, &mockTokenIssuer{})

	created, err := svc.EnsureAdmin(context.Background(), "admin", "correct-horse")
	if err != nil || created {
		t.Errorf("existing admin: created=%v err=%v", created, err)
	}
	created, err = svc.EnsureAdmin(context.Background(), "newbie", "another-password")
	if err != nil || !created {
		t.Errorf("new admin: created=%v err=%v", created, err)
	}
	if creates != 1 {
		t.Errorf("expected 1 create, got %d", creates)
	}
}
