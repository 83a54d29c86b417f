package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
	"github.com/swiftmove/backend/pkg/auth"
)

// recentWindow is how far back the dashboard's "recent" counters look.
const recentWindow = 7 * 24 * time.Hour

// TokenIssuer issues admin bearer tokens.
type TokenIssuer interface {
	Issue(username string) (string, time.Time, error)
}

// LoginResult is a freshly issued admin token.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AdminService defines dashboard authentication and reporting.
type AdminService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Stats(ctx context.Context) (*model.DashboardStats, error)
	// CreateAdmin hashes password and stores a new admin user.
	// repository.ErrDuplicate is returned when the username is taken.
	CreateAdmin(ctx context.Context, username, password string) (*model.AdminUser, error)
	// EnsureAdmin creates the user unless it already exists and reports whether it did.
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type adminService struct {
	users  repository.AdminUserRepository
	stats  repository.DashboardRepository
	tokens TokenIssuer
	now    func() time.Time
}

func NewAdminService(users repository.AdminUserRepository, stats repository.DashboardRepository, tokens TokenIssuer) AdminService {
	return &adminService{users: users, stats: stats, tokens: tokens, now: time.Now}
}

func (s *adminService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(u.Username)
	if err != nil {
		return nil, err
	}
	slog.Info("admin login", "username", u.Username)
	return &LoginResult{AccessToken: token, TokenType: "bearer", ExpiresAt: exp}, nil
}

func (s *adminService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return s.stats.Stats(ctx, s.now().UTC().Add(-recentWindow))
}

func (s *adminService) CreateAdmin(ctx context.Context, username, password string) (*model.AdminUser, error) {
	username = strings.TrimSpace(username)
	if err := required("username", username); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &model.AdminUser{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *adminService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	if _, err := s.CreateAdmin(ctx, username, password); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
