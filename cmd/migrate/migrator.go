package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// execer is the subset of pgxpool.Pool the migrator needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type migrator struct {
	db  execer
	dir string
}

// upMigrations は .up.sql のマイグレーション名 (拡張子なし) をソート済みで返す
func upMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, strings.TrimSuffix(e.Name(), ".up.sql"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// pending returns the names in all that are not in applied, keeping order.
func pending(all []string, applied map[string]bool) []string {
	var out []string
	for _, n := range all {
		if !applied[n] {
			out = append(out, n)
		}
	}
	return out
}

func (m *migrator) ensureTable(ctx context.Context) error {
	_, err := m.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	return err
}

func (m *migrator) applied(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.Query(ctx, "SELECT name FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	done := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		done[name] = true
	}
	return done, rows.Err()
}

func (m *migrator) execFile(ctx context.Context, filename string) error {
	sql, err := os.ReadFile(filepath.Join(m.dir, filename))
	if err != nil {
		return err
	}
	if _, err := m.db.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// incremental applies every migration not yet recorded in schema_migrations.
func (m *migrator) incremental(ctx context.Context) error {
	if err := m.ensureTable(ctx); err != nil {
		return err
	}
	all, err := upMigrations(m.dir)
	if err != nil {
		return err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return err
	}

	todo := pending(all, done)
	for _, name := range todo {
		if err := m.execFile(ctx, name+".up.sql"); err != nil {
			return err
		}
		if _, err := m.db.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			return fmt.Errorf("record %s: %w", name, err)
		}
		slog.Info("migration completed", "migration", name)
	}

	if len(todo) == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", len(todo))
	}
	return nil
}

func (m *migrator) status(ctx context.Context, w io.Writer) error {
	if err := m.ensureTable(ctx); err != nil {
		return err
	}
	all, err := upMigrations(m.dir)
	if err != nil {
		return err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return err
	}
	for _, name := range all {
		mark := "pending"
		if done[name] {
			mark = "applied"
		}
		fmt.Fprintf(w, "%-8s %s\n", mark, name)
	}
	return nil
}

func (m *migrator) dropAll(ctx context.Context) error {
	slog.Info("dropping all tables")
	if err := m.execFile(ctx, "000_drop_all.sql"); err != nil {
		return err
	}
	slog.Info("all tables dropped")
	return nil
}

// consolidated は集約スキーマを適用し、全マイグレーションを適用済みとして記録する
func (m *migrator) consolidated(ctx context.Context) error {
	slog.Info("applying consolidated schema")
	if err := m.execFile(ctx, "000_consolidated.sql"); err != nil {
		return err
	}
	if err := m.ensureTable(ctx); err != nil {
		return err
	}
	all, err := upMigrations(m.dir)
	if err != nil {
		return err
	}
	for _, name := range all {
		if _, err := m.db.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", name); err != nil {
			return err
		}
	}
	slog.Info("consolidated schema applied", "migrations_marked", len(all))
	return nil
}
