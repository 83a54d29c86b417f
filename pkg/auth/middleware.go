// Package auth issues and verifies admin bearer tokens.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type contextKey string

const adminKey contextKey = "admin_username"

// AdminFromContext は context から管理者ユーザー名を取得する
func AdminFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminKey).(string)
	return v, ok && v != ""
}

// WithAdmin は context に管理者ユーザー名をセットする
func WithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminKey, username)
}

// Verifier validates a bearer token and returns the admin username.
type Verifier interface {
	Verify(token string) (string, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// RequireAdmin は管理者認証必須ミドルウェア。Bearer トークンを検証し、ユーザー名を context にセットする
func RequireAdmin(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := v.Verify(BearerToken(r))
			if err != nil {
				detail := "Invalid authentication credentials"
				switch {
				case errors.Is(err, ErrTokenMissing):
					detail = "Not authenticated"
				case errors.Is(err, ErrTokenExpired):
					detail = "Token has expired"
				}
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), username)))
		})
	}
}
