package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftmove/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contacts row and populates c.ID and timestamps
// from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, subject, message, status, source, session_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id::text, created_at, updated_at`,
		c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status, c.Source, c.SessionID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// List returns contacts filtered by status and source, newest first.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	var w whereBuilder
	if status := strings.TrimSpace(opts.Status); status != "" && status != "all" {
		w.add("status = ?", status)
	}
	if opts.Source != "" {
		w.add("source = ?", opts.Source)
	}
	where := w.clause()
	page := w.page(opts.Limit, opts.Offset)

	rows, err := r.pool.Query(ctx,
		`SELECT id::text, name, email, phone, subject, message, status, source, session_id, created_at, updated_at
		 FROM contacts `+where+` ORDER BY created_at DESC`+page,
		w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message,
			&c.Status, &c.Source, &c.SessionID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// ListBySession returns the chatbot quotes of one chat session, oldest first.
func (r *PgContactRepository) ListBySession(ctx context.Context, sessionID string) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, name, email, phone, subject, message, status, source, session_id, created_at, updated_at
		 FROM contacts WHERE source = $1 AND session_id = $2 ORDER BY created_at`,
		model.ContactSourceChatbot, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message,
			&c.Status, &c.Source, &c.SessionID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// UpdateStatus sets the status of a contact. Returns ErrNotFound when no row matches.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contacts SET status = $1, updated_at = NOW() WHERE id::text = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
