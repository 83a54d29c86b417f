// Command adminctl manages dashboard operators.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/swiftmove/backend/internal/config"
	"github.com/swiftmove/backend/internal/logging"
	"github.com/swiftmove/backend/internal/repository"
	"github.com/swiftmove/backend/internal/repository/sqlite"
	"github.com/swiftmove/backend/internal/service"
	"github.com/swiftmove/backend/pkg/auth"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: adminctl <command> [args]

Commands:
  create <username> <password>   管理者ユーザーを作成
  token <username>               管理者用 Bearer トークンを発行 (DB 不要)`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	if len(os.Args) < 2 {
		usage()
	}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	switch os.Args[1] {
	case "create":
		if len(os.Args) != 4 {
			usage()
		}
		users, closeDB, err := openAdminUsers(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer closeDB()
		svc := service.NewAdminService(users, nil, tokens)
		err = runCreate(context.Background(), os.Stdout, svc, os.Args[2], os.Args[3])
		if err != nil {
			closeDB()
			logging.Fatal("create admin failed", "error", err)
		}
	case "token":
		if len(os.Args) != 3 {
			usage()
		}
		if err := runToken(os.Stdout, tokens, os.Args[2]); err != nil {
			logging.Fatal("issue token failed", "error", err)
		}
	default:
		usage()
	}
}

func runCreate(ctx context.Context, w io.Writer, svc service.AdminService, username, password string) error {
	u, err := svc.CreateAdmin(ctx, username, password)
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("admin %q already exists", username)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "created admin %s (id %s)\n", u.Username, u.ID)
	return nil
}

func runToken(w io.Writer, tokens service.TokenIssuer, username string) error {
	token, exp, err := tokens.Issue(username)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", exp.Format("2006-01-02 15:04:05 MST"))
	return nil
}

func openAdminUsers(ctx context.Context, dsn string) (repository.AdminUserRepository, func(), error) {
	if repository.IsSQLite(dsn) {
		s, err := sqlite.Open(dsn)
		if err != nil {
			return nil, nil, err
		}
		return s.AdminUsers(), func() { _ = s.Close() }, nil
	}
	pool, err := repository.NewPool(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewPgAdminUserRepository(pool), pool.Close, nil
}
