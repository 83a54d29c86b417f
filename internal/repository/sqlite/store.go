// Package sqlite is the single-file SQLite implementation of the repository
// interfaces, used for local development and repository tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS contacts (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    email       TEXT NOT NULL DEFAULT '',
    phone       TEXT NOT NULL DEFAULT '',
    subject     TEXT NOT NULL DEFAULT '',
    message     TEXT NOT NULL,
    status      TEXT NOT NULL DEFAULT 'new',
    source      TEXT NOT NULL DEFAULT 'contact_form',
    session_id  TEXT NOT NULL DEFAULT '',
    created_at  INTEGER NOT NULL,
    updated_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contacts_source_created ON contacts (source, created_at DESC);

CREATE TABLE IF NOT EXISTS bookings (
    id                TEXT PRIMARY KEY,
    name              TEXT NOT NULL,
    email             TEXT NOT NULL,
    phone             TEXT NOT NULL,
    service_type      TEXT NOT NULL,
    move_size         TEXT NOT NULL DEFAULT '',
    current_address   TEXT NOT NULL,
    new_address       TEXT NOT NULL DEFAULT '',
    preferred_date    INTEGER NOT NULL,
    preferred_time    TEXT NOT NULL DEFAULT '',
    hours_needed      TEXT NOT NULL DEFAULT '',
    special_requests  TEXT NOT NULL DEFAULT '',
    status            TEXT NOT NULL DEFAULT 'pending',
    created_at        INTEGER NOT NULL,
    updated_at        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookings_created ON bookings (created_at DESC);

CREATE TABLE IF NOT EXISTS testimonials (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    role        TEXT NOT NULL DEFAULT '',
    location    TEXT NOT NULL DEFAULT '',
    rating      INTEGER NOT NULL,
    text        TEXT NOT NULL,
    created_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS chat_messages (
    id          TEXT PRIMARY KEY,
    session_id  TEXT NOT NULL,
    message     TEXT NOT NULL,
    sender      TEXT NOT NULL,
    created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages (session_id, created_at);

CREATE TABLE IF NOT EXISTS admin_users (
    id             TEXT PRIMARY KEY,
    username       TEXT NOT NULL UNIQUE,
    password_hash  TEXT NOT NULL,
    created_at     INTEGER NOT NULL
);
`

const defaultPragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// Store owns the SQLite handle shared by every repository in this package.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database named by dsn and applies the schema.
// dsn may carry a "sqlite:" prefix; ":memory:" gives a private in-memory database.
func Open(dsn string) (*Store, error) {
	path := strings.TrimPrefix(dsn, "sqlite:")
	path = strings.TrimPrefix(path, "//")
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: database path is required")
	}

	if path != ":memory:" {
		// 既定の pragma を先に置き、DSN 側のクエリで上書きできるようにする
		base, query, _ := strings.Cut(path, "?")
		path = base + "?" + defaultPragmas
		if query != "" {
			path += "&" + query
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// One connection keeps ":memory:" databases shared and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Contacts returns the contact repository.
func (s *Store) Contacts() *ContactRepository { return &ContactRepository{s: s} }

// Bookings returns the booking repository.
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }

// Testimonials returns the testimonial repository.
func (s *Store) Testimonials() *TestimonialRepository { return &TestimonialRepository{s: s} }

// Chat returns the chat message repository.
func (s *Store) Chat() *ChatRepository { return &ChatRepository{s: s} }

// AdminUsers returns the admin user repository.
func (s *Store) AdminUsers() *AdminUserRepository { return &AdminUserRepository{s: s} }

// Dashboard returns the dashboard aggregate repository.
func (s *Store) Dashboard() *DashboardRepository { return &DashboardRepository{s: s} }

// stamp returns t, or the store clock when t is zero.
func (s *Store) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return s.now().UTC()
	}
	return t.UTC()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

func pageArgs(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
