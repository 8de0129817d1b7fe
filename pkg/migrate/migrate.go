package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
	"github.com/qawafel/crm-backend/pkg/db"
)

// DefaultDir is the on-disk root for migration files, relative to the repo.
const DefaultDir = "pkg/migrate/migrations"

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedded embed.FS

// DirFor returns the per-dialect migrations directory below root.
func DirFor(root string, dialect db.Dialect) string {
	if root == "" {
		root = DefaultDir
	}
	return path.Join(root, string(dialect))
}

// Migrations returns the embedded migration files for dialect.
func Migrations(dialect db.Dialect) (fs.FS, error) {
	sub, err := fs.Sub(embedded, path.Join("migrations", string(dialect)))
	if err != nil {
		return nil, fmt.Errorf("embedded migrations for %s: %w", dialect, err)
	}
	return sub, nil
}

func gooseDialect(dialect db.Dialect) (goose.Dialect, error) {
	switch dialect {
	case db.DialectPostgres:
		return goose.DialectPostgres, nil
	case db.DialectSQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", dialect)
	}
}

// EnsureSchema applies every pending embedded migration. Migrations only
// create missing tables, so running it against an existing store is a no-op.
func EnsureSchema(ctx context.Context, client *db.Client) error {
	if client == nil {
		return fmt.Errorf("db client is required")
	}
	sqlDB, err := client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	provider, err := newProvider(sqlDB, client.Dialect())
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func newProvider(sqlDB *sql.DB, dialect db.Dialect) (*goose.Provider, error) {
	gd, err := gooseDialect(dialect)
	if err != nil {
		return nil, err
	}
	fsys, err := Migrations(dialect)
	if err != nil {
		return nil, err
	}

	var opts []goose.ProviderOption
	if dialect == db.DialectPostgres {
		// several api replicas may boot at once
		locker, err := lock.NewPostgresSessionLocker()
		if err != nil {
			return nil, fmt.Errorf("goose session locker: %w", err)
		}
		opts = append(opts, goose.WithSessionLocker(locker))
	}

	provider, err := goose.NewProvider(gd, sqlDB, fsys, opts...)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, nil
}

// Run executes a standard goose command that requires a DB connection. An
// empty dir runs the embedded migrations for the dialect.
func Run(ctx context.Context, sqlDB *sql.DB, dialect db.Dialect, dir string, command string, args ...string) error {
	if sqlDB == nil {
		return fmt.Errorf("db is required")
	}
	if err := useDialect(dialect, dir); err != nil {
		return err
	}
	if dir == "" {
		dir = path.Join("migrations", string(dialect))
	}

	// RunContext prints status output to stdout (goose internal)
	if err := goose.RunContext(ctx, command, sqlDB, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, sqlDB *sql.DB, dialect db.Dialect, dir string, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}
	if err := useDialect(dialect, dir); err != nil {
		return err
	}
	if dir == "" {
		dir = path.Join("migrations", string(dialect))
	}

	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	current, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == target:
		return nil
	case current < target:
		if err := goose.UpToContext(ctx, sqlDB, dir, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
		return nil
	default:
		if err := goose.DownToContext(ctx, sqlDB, dir, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
		return nil
	}
}

// useDialect configures goose's package-level state for the CLI commands.
func useDialect(dialect db.Dialect, dir string) error {
	gd, err := gooseDialect(dialect)
	if err != nil {
		return err
	}
	if err := goose.SetDialect(string(gd)); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if dir == "" {
		goose.SetBaseFS(embedded)
	} else {
		goose.SetBaseFS(nil)
	}
	return nil
}
