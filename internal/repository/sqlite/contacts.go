package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
)

// ContactRepository implements repository.ContactRepository over SQLite.
type ContactRepository struct {
	s *Store
}

var _ repository.ContactRepository = (*ContactRepository)(nil)

func (r *ContactRepository) Save(ctx context.Context, c *model.Contact) error {
	c.ID = uuid.NewString()
	c.CreatedAt = r.s.stamp(c.CreatedAt)
	c.UpdatedAt = c.CreatedAt
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO contacts (id, name, email, phone, subject, message, status, source, session_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status, c.Source, c.SessionID,
		toMillis(c.CreatedAt), toMillis(c.UpdatedAt))
	return err
}

func (r *ContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	var conds []string
	var args []any
	if status := strings.TrimSpace(opts.Status); status != "" && status != "all" {
		conds = append(conds, "status = ?")
		args = append(args, status)
	}
	if opts.Source != "" {
		conds = append(conds, "source = ?")
		args = append(args, opts.Source)
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	limit, offset := pageArgs(opts.Limit, opts.Offset)
	args = append(args, limit, offset)

	rows, err := r.s.db.QueryContext(ctx,
		`SELECT id, name, email, phone, subject, message, status, source, session_id, created_at, updated_at
		 FROM contacts `+where+` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *ContactRepository) ListBySession(ctx context.Context, sessionID string) ([]*model.Contact, error) {
	rows, err := r.s.db.QueryContext(ctx,
		`SELECT id, name, email, phone, subject, message, status, source, session_id, created_at, updated_at
		 FROM contacts WHERE source = ? AND session_id = ? ORDER BY created_at, rowid`,
		model.ContactSourceChatbot, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContacts(rows)
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.s.db.ExecContext(ctx,
		`UPDATE contacts SET status = ?, updated_at = ? WHERE id = ?`,
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

func scanContacts(rows *sql.Rows) ([]*model.Contact, error) {
	var out []*model.Contact
	for rows.Next() {
		var c model.Contact
		var created, updated int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message,
			&c.Status, &c.Source, &c.SessionID, &created, &updated); err != nil {
			return nil, err
		}
		c.CreatedAt, c.UpdatedAt = fromMillis(created), fromMillis(updated)
		out = append(out, &c)
	}
	return out, rows.Err()
}
