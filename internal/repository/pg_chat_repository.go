package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftmove/backend/internal/model"
)

// PgChatRepository is the PostgreSQL implementation of ChatRepository.
type PgChatRepository struct {
	pool *pgxpool.Pool
}

// NewPgChatRepository creates a PgChatRepository.
func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

var _ ChatRepository = (*PgChatRepository)(nil)

func (r *PgChatRepository) Save(ctx context.Context, m *model.ChatMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO chat_messages (id, session_id, message, sender, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.SessionID, m.Message, m.Sender, m.Timestamp)
	return err
}

func (r *PgChatRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*model.ChatMessage, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, session_id, message, sender, created_at
		 FROM chat_messages WHERE session_id = $1
		 ORDER BY created_at, id LIMIT $2`,
		sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Message, &m.Sender, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
