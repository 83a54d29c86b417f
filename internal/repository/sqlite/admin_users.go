package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
)

// AdminUserRepository implements repository.AdminUserRepository over SQLite.
type AdminUserRepository struct {
	s *Store
}

var _ repository.AdminUserRepository = (*AdminUserRepository)(nil)

func (r *AdminUserRepository) Create(ctx context.Context, u *model.AdminUser) error {
	u.ID = uuid.NewString()
	u.CreatedAt = r.s.stamp(u.CreatedAt)
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO admin_users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, toMillis(u.CreatedAt))
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return repository.ErrDuplicate
	}
	return err
}

func (r *AdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var u model.AdminUser
	var created int64
	err := r.s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM admin_users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.CreatedAt = fromMillis(created)
	return &u, nil
}
