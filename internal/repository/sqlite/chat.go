package sqlite

import (
	"context"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
)

// ChatRepository implements repository.ChatRepository over SQLite.
type ChatRepository struct {
	s *Store
}

var _ repository.ChatRepository = (*ChatRepository)(nil)

func (r *ChatRepository) Save(ctx context.Context, m *model.ChatMessage) error {
	m.Timestamp = r.s.stamp(m.Timestamp)
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, message, sender, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.SessionID, m.Message, m.Sender, toMillis(m.Timestamp))
	return err
}

func (r *ChatRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*model.ChatMessage, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.s.db.QueryContext(ctx,
		`SELECT id, session_id, message, sender, created_at
		 FROM chat_messages WHERE session_id = ? ORDER BY created_at, id LIMIT ?`,
		sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		var created int64
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Message, &m.Sender, &created); err != nil {
			return nil, err
		}
		m.Timestamp = fromMillis(created)
		out = append(out, &m)
	}
	return out, rows.Err()
}
