package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenIssuer_IssueVerify(t *testing.T) {
	issuer := NewTokenIssuer("short", "swiftmove-api", time.Hour)
	token, exp, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(exp) <= 59*time.Minute {
		t.Errorf("expiry too soon: %v", exp)
	}

	got, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != "admin" {
		t.Errorf("expected admin, got %q", got)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	a := NewTokenIssuer("secret-a-secret-a-secret-a-secret-a", "swiftmove-api", time.Hour)
	b := NewTokenIssuer("secret-b-secret-b-secret-b-secret-b", "swiftmove-api", time.Hour)
	token, _, _ := a.Issue("admin")

	if _, err := b.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenIssuer_WrongIssuer(t *testing.T) {
	a := NewTokenIssuer("same-secret", "other-app", time.Hour)
	b := NewTokenIssuer("same-secret", "swiftmove-api", time.Hour)
	token, _, _ := a.Issue("admin")

	if _, err := b.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("s", "swiftmove-api", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	token, _, _ := issuer.Issue("admin")
	issuer.now = time.Now

	if _, err := issuer.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_Empty(t *testing.T) {
	issuer := NewTokenIssuer("s", "swiftmove-api", time.Minute)
	if _, err := issuer.Verify("  "); !errors.Is(err, ErrTokenMissing) {
		t.Errorf("expected ErrTokenMissing, got %v", err)
	}
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "correct horse") {
		t.Error("expected password to match")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
	if CheckPassword("not-a-hash", "correct horse") {
		t.Error("expected malformed hash to fail")
	}
}
