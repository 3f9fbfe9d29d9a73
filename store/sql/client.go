package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"
	"time"

	persistence "github.com/goliatone/go-persistence-bun"
	"github.com/goliatone/go-tokenstore/core"
	"github.com/goliatone/go-tokenstore/migrations"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
)

const defaultPingTimeout = 5 * time.Second

type persistenceConfig struct {
	driver string
	server string
	debug  bool
}

func (c persistenceConfig) GetDebug() bool {
	return c.debug
}

func (c persistenceConfig) GetDriver() string {
	return c.driver
}

func (c persistenceConfig) GetServer() string {
	return c.server
}

func (c persistenceConfig) GetPingTimeout() time.Duration {
	return defaultPingTimeout
}

func (c persistenceConfig) GetOtelIdentifier() string {
	return "go-tokenstore"
}

// OpenClient opens the configured database, wraps it in a persistence
// client and applies the credential_records migrations for its dialect.
// The caller owns the returned client and must Close it.
func OpenClient(ctx context.Context, cfg core.DatabaseConfig) (*persistence.Client, error) {
	driver := strings.TrimSpace(strings.ToLower(cfg.Driver))
	if driver == "" {
		driver = core.DriverSQLite
	}
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("sqlstore: database dsn is required")
	}
	migrationDialect, err := migrations.DialectForDriver(driver)
	if err != nil {
		return nil, err
	}

	var dialect schema.Dialect
	switch migrationDialect {
	case migrations.DialectPostgres:
		driver = core.DriverPostgres
		dialect = pgdialect.New()
	default:
		driver = core.DriverSQLite
		dialect = sqlitedialect.New()
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s database: %w", driver, err)
	}
	if driver == core.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	client, err := persistence.New(persistenceConfig{
		driver: driver,
		server: dsn,
		debug:  cfg.Debug,
	}, sqlDB, dialect)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlstore: new persistence client: %w", err)
	}

	if _, err := migrations.RegisterDialect(ctx, migrationDialect, func(fsys fs.FS) {
		client.RegisterSQLMigrations(fsys)
	}); err != nil {
		_ = client.Close()
		return nil, err
	}
	if err := client.Migrate(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("sqlstore: migrate: %w", err)
	}
	return client, nil
}

// NewTokenStoreFromConfig opens the configured database and returns a store
// bound to the configured environment. Closing the client is left to the
// caller.
func NewTokenStoreFromConfig(ctx context.Context, cfg core.Config, opts ...Option) (*TokenStore, *persistence.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	client, err := OpenClient(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	storeOpts := []Option{WithEnvironment(cfg.Environment)}
	if cfg.NonTransactionalSave {
		storeOpts = append(storeOpts, WithNonTransactionalSave())
	}
	storeOpts = append(storeOpts, opts...)

	store, err := NewTokenStoreFromPersistence(client, storeOpts...)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return store, client, nil
}
