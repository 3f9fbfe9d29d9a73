package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	tokenstore "github.com/goliatone/go-tokenstore"
	_ "github.com/mattn/go-sqlite3"
)

func TestFilesystems_ReturnsPostgresAndSQLite(t *testing.T) {
	filesystems, err := Filesystems()
	if err != nil {
		t.Fatalf("filesystems: %v", err)
	}
	if len(filesystems) != 2 {
		t.Fatalf("expected 2 filesystems, got %d", len(filesystems))
	}

	found := map[string]bool{}
	for _, entry := range filesystems {
		matches, globErr := fs.Glob(entry.FS, "*.up.sql")
		if globErr != nil {
			t.Fatalf("glob %s: %v", entry.Dialect, globErr)
		}
		if len(matches) == 0 {
			t.Fatalf("expected %s migration files, got none", entry.Dialect)
		}
		found[entry.Dialect] = true
	}
	if !found[DialectPostgres] || !found[DialectSQLite] {
		t.Fatalf("expected postgres and sqlite filesystems, got %v", found)
	}
}

func TestFilesystems_RejectsTreeWithoutUpMigrations(t *testing.T) {
	tree := fstest.MapFS{
		"data/sql/migrations/00001_x.down.sql":        {Data: []byte("SELECT 1;")},
		"data/sql/migrations/sqlite/00001_x.down.sql": {Data: []byte("SELECT 1;")},
	}
	if _, err := Filesystems(tree); err == nil {
		t.Fatalf("expected error for tree without *.up.sql files")
	}
}

func TestRegister_UsesValidationTargets(t *testing.T) {
	var calls []string
	reg, err := Register(context.Background(), func(_ context.Context, dialect string, label string, _ fs.FS) error {
		calls = append(calls, dialect+":"+label)
		return nil
	}, WithValidationTargets(DialectSQLite))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(calls) != 1 {
		t.Fatalf("expected 1 registration call, got %d", len(calls))
	}
	if calls[0] != DialectSQLite+":go-tokenstore" {
		t.Fatalf("unexpected registration call %q", calls[0])
	}
	if reg.SourceLabel != "go-tokenstore" {
		t.Fatalf("unexpected source label %q", reg.SourceLabel)
	}
}

func TestRegister_RequiresRegisterFunc(t *testing.T) {
	if _, err := Register(context.Background(), nil); err == nil {
		t.Fatalf("expected missing register function error")
	}
}

func TestRegisterDialect_OnlyPassesRequestedDialect(t *testing.T) {
	var registered []fs.FS
	if _, err := RegisterDialect(context.Background(), DialectPostgres, func(fsys fs.FS) {
		registered = append(registered, fsys)
	}); err != nil {
		t.Fatalf("register dialect: %v", err)
	}
	if len(registered) != 1 {
		t.Fatalf("expected a single filesystem, got %d", len(registered))
	}
	content, err := fs.ReadFile(registered[0], "00001_credential_records.up.sql")
	if err != nil {
		t.Fatalf("read postgres migration: %v", err)
	}
	if !strings.Contains(string(content), "TIMESTAMPTZ") {
		t.Fatalf("expected postgres flavoured schema")
	}
}

func TestDialectForDriver(t *testing.T) {
	cases := map[string]string{
		"sqlite3":  DialectSQLite,
		"postgres": DialectPostgres,
		" PGX ":    DialectPostgres,
	}
	for driver, want := range cases {
		got, err := DialectForDriver(driver)
		if err != nil {
			t.Fatalf("dialect for %q: %v", driver, err)
		}
		if got != want {
			t.Fatalf("dialect for %q: got %q want %q", driver, got, want)
		}
	}
	if _, err := DialectForDriver("mysql"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestCredentialRecordsMigrationPair_ExistsForBothDialects(t *testing.T) {
	root := tokenstore.GetMigrationsFS()
	paths := []string{
		"data/sql/migrations/00001_credential_records.up.sql",
		"data/sql/migrations/00001_credential_records.down.sql",
		"data/sql/migrations/sqlite/00001_credential_records.up.sql",
		"data/sql/migrations/sqlite/00001_credential_records.down.sql",
	}
	for _, migrationPath := range paths {
		content, err := fs.ReadFile(root, migrationPath)
		if err != nil {
			t.Fatalf("read migration %s: %v", migrationPath, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			t.Fatalf("expected migration %s to have SQL content", migrationPath)
		}
	}
}

func TestSQLiteCredentialRecordsMigration_ApplyAndRollback(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrations-credential-records?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	defer func() { _ = db.Close() }()

	root := tokenstore.GetMigrationsFS()
	sqliteMigrations, err := fs.Sub(root, "data/sql/migrations/sqlite")
	if err != nil {
		t.Fatalf("resolve sqlite migrations: %v", err)
	}

	apply := func(name string) {
		t.Helper()
		content, readErr := fs.ReadFile(sqliteMigrations, name)
		if readErr != nil {
			t.Fatalf("read %s: %v", name, readErr)
		}
		if _, execErr := db.Exec(string(content)); execErr != nil {
			t.Fatalf("exec %s: %v", name, execErr)
		}
	}

	apply("00001_credential_records.up.sql")
	if _, err := db.Exec(
		"INSERT INTO credential_records (id, environment, user_mail) VALUES (?, ?, ?)",
		"t1", "us_dev", "a@x.com",
	); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}
	if _, err := db.Exec(
		"INSERT INTO credential_records (id, environment) VALUES (?, ?)",
		"t2", "us_dev",
	); err == nil {
		t.Fatalf("expected user_mail not-null constraint violation")
	}

	var createdAt sql.NullString
	if err := db.QueryRow("SELECT created_at FROM credential_records WHERE id = ?", "t1").Scan(&createdAt); err != nil {
		t.Fatalf("read created_at: %v", err)
	}
	if !createdAt.Valid || createdAt.String == "" {
		t.Fatalf("expected created_at default to be applied")
	}

	apply("00001_credential_records.down.sql")
	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'credential_records'",
	).Scan(&count); err != nil {
		t.Fatalf("query sqlite master: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected credential_records table to be dropped")
	}
}
