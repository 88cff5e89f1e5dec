// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package db // import "github.com/toeirei/passkeep/internal/db"

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// SQL drivers for the supported backends.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	//go:embed migrations
	embeddedMigrations embed.FS
	// sqlOpenFunc allows tests to override database opening behavior.
	sqlOpenFunc = sql.Open
)

// New opens the store of the given type. dsn is a directory for "file", a
// driver DSN for the SQL backends and ignored for "memory".
func New(storeType, dsn string) (Store, error) {
	switch storeType {
	case TypeFile:
		return NewFileStore(dsn)
	case TypeMemory:
		return NewMemoryStore(), nil
	case TypeSQLite, TypePostgres, TypeMySQL:
		return NewSQLStore(storeType, dsn)
	default:
		return nil, unsupported(storeType)
	}
}

// driverName maps a store type to its database/sql driver name.
// The pgx stdlib registers driver name "pgx".
func driverName(dbType string) string {
	if dbType == TypePostgres {
		return "pgx"
	}
	return dbType
}

// NewSQLStore opens a sql.DB for the DSN, runs migrations and returns a
// Store backed by a long-lived *bun.DB.
func NewSQLStore(dbType, dsn string) (*BunStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty DSN for %s store", dbType)
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName(dbType), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A local vault needs very few connections. The limit can be raised via
	// environment for shared server databases.
	maxOpen := 4
	if v := os.Getenv("PASSKEEP_DB_MAX_OPEN_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			maxOpen = n
		}
	}
	// In-memory SQLite databases are per connection unless the shared cache
	// is used, so pin them to a single connection.
	if dbType == TypeSQLite && (dsn == ":memory:" || strings.Contains(dsn, "mode=memory")) {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	dbLogf("db: opened %s driver in %s (max open=%d)", driverName(dbType), time.Since(start), maxOpen)

	bunDB := createBunDB(sqlDB, dbType)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migStart := time.Now()
	if err := RunMigrations(ctx, bunDB, dbType); err != nil {
		_ = bunDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	dbLogf("db: migrations for %s completed in %s", dbType, time.Since(migStart))

	return &BunStore{bun: bunDB, dbType: dbType}, nil
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case TypePostgres:
		return bun.NewDB(sqlDB, pgdialect.New())
	case TypeMySQL:
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// RunMigrations applies the embedded *.up.sql files for dbType that have not
// been recorded in schema_migrations yet, each in its own transaction.
// Each migration file holds a single statement so that MySQL accepts it.
func RunMigrations(ctx context.Context, bunDB *bun.DB, dbType string) error {
	migrationsPath := path.Join("migrations", dbType)

	entries, err := fs.ReadDir(embeddedMigrations, migrationsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			dbLogf("db: no migrations embedded for %s", dbType)
			return nil
		}
		return fmt.Errorf("failed to read embedded migrations (%s): %w", migrationsPath, err)
	}

	var ups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			ups = append(ups, e.Name())
		}
	}
	sort.Strings(ups)

	if err := ensureSchemaMigrationsTable(ctx, bunDB, dbType); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	for _, fname := range ups {
		version := strings.TrimSuffix(fname, ".up.sql")

		var applied int
		if err := QueryRawInto(ctx, bunDB, &applied, "SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version); err != nil {
			return fmt.Errorf("failed to check migration version %s: %w", version, err)
		}
		if applied > 0 {
			continue
		}

		data, err := embeddedMigrations.ReadFile(path.Join(migrationsPath, fname))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", fname, err)
		}

		err = bunDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := ExecRaw(ctx, tx, string(data)); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", version, err)
			}
			if _, err := ExecRaw(ctx, tx, "INSERT INTO schema_migrations(version, applied_at) VALUES(?, ?)", version, time.Now().UTC()); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		dbLogf("db: applied migration %s", version)
	}
	return nil
}

// ensureSchemaMigrationsTable creates schema_migrations if missing.
// MySQL does not permit TEXT primary keys without a length, so it gets a VARCHAR.
func ensureSchemaMigrationsTable(ctx context.Context, bunDB *bun.DB, dbType string) error {
	ddl := `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMP)`
	if dbType == TypeMySQL {
		ddl = `CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(191) PRIMARY KEY, applied_at TIMESTAMP NULL)`
	}
	_, err := ExecRaw(ctx, bunDB, ddl)
	return err
}
