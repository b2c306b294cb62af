package db

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

// TestBuildDSN_Postgres verifies the key/value DSN built from discrete settings.
func TestBuildDSN_Postgres(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Driver:   DriverPostgres,
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "5432",
		SSLMode:  "disable",
	}

	dsn := BuildDSN(cfg)

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestBuildDSN_ExplicitDSNTakesPrecedence verifies DATABASE_URL wins over discrete settings.
func TestBuildDSN_ExplicitDSNTakesPrecedence(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Driver: DriverPostgres,
		DSN:    "postgres://u:p@db:5432/links",
		Host:   "localhost",
		Port:   "5432",
	}

	if dsn := BuildDSN(cfg); dsn != cfg.DSN {
		t.Errorf("expected DSN %q, got %q", cfg.DSN, dsn)
	}
}

// TestBuildDSN_SQLite verifies the file DSN enables foreign keys.
func TestBuildDSN_SQLite(t *testing.T) {
	t.Parallel()

	dsn := BuildDSN(Config{Driver: DriverSQLite, Name: "dev.db"})

	expected := "dev.db?_pragma=foreign_keys(1)"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestSQLiteDSN_AppendsToExistingQuery verifies the pragma joins an existing query string.
func TestSQLiteDSN_AppendsToExistingQuery(t *testing.T) {
	t.Parallel()

	dsn := SQLiteDSN("file:x?mode=memory")

	expected := "file:x?mode=memory&_pragma=foreign_keys(1)"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestOpenerFor_UnknownDriver verifies unsupported drivers are rejected.
func TestOpenerFor_UnknownDriver(t *testing.T) {
	t.Parallel()

	if _, err := OpenerFor("mysql"); err == nil {
		t.Fatal("expected error for unsupported driver, got nil")
	}
	for _, d := range []string{DriverPostgres, DriverSQLite, ""} {
		if _, err := OpenerFor(d); err != nil {
			t.Errorf("driver %q: unexpected error: %v", d, err)
		}
	}
}

// TestConnectWithRetry_SuccessOnFirstTry verifies the DB is returned without retrying.
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener, nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != mockDB {
		t.Error("expected mock DB to be returned")
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

// TestConnectWithRetry_RetriesOnFailure verifies failed attempts are retried until one succeeds.
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// Not parallel: shortens the package-level retry interval.
	prev := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = prev })

	mockDB := &gorm.DB{}
	attemptCount := 0

	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		if attemptCount < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	core, logs := observer.New(zapcore.WarnLevel)
	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener, zap.New(core))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != mockDB {
		t.Error("expected mock DB to be returned")
	}
	if attemptCount != 3 {
		t.Errorf("expected 3 attempts, got %d", attemptCount)
	}

	retries := logs.FilterMessage("database not ready, retrying").All()
	if len(retries) != 2 {
		t.Fatalf("expected 2 retry warnings, got %d", len(retries))
	}
	if retries[0].Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %s", retries[0].Level)
	}
	if got := retries[0].ContextMap()["error"]; got != "connection refused" {
		t.Errorf("expected error field %q, got %v", "connection refused", got)
	}
}

// TestConnectWithRetry_TimeoutAfterRetries verifies the last error is returned after the deadline.
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	attemptCount := 0
	refused := errors.New("connection refused")
	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		return nil, refused
	}

	_, err := ConnectWithRetry("test-dsn", 0, opener, zap.NewNop())

	if err == nil {
		t.Fatal("expected error after timeout, got nil")
	}
	if !errors.Is(err, refused) {
		t.Errorf("expected wrapped %v, got %v", refused, err)
	}
	if attemptCount != 1 {
		t.Errorf("expected 1 attempt, got %d", attemptCount)
	}
}

// TestOpen_SQLiteMigrates verifies Open connects to SQLite and creates the schema.
func TestOpen_SQLiteMigrates(t *testing.T) {
	t.Parallel()

	gdb, err := Open(Config{
		Driver:        DriverSQLite,
		DSN:           SQLiteDSN("file:opentest?mode=memory&cache=shared"),
		RunMigrations: true,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, table := range []string{"users", "categories", "links"} {
		if !gdb.Migrator().HasTable(table) {
			t.Errorf("expected table %q to exist", table)
		}
	}
}

// TestIsUniqueViolation verifies detection across driver error shapes.
func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped postgres unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres fk violation", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"), true},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestMigrate_ForeignKeyActions verifies owner deletion cascades and category
// deletion clears the link's category.
func TestMigrate_ForeignKeyActions(t *testing.T) {
	t.Parallel()

	gdb, err := Open(Config{
		Driver:        DriverSQLite,
		DSN:           SQLiteDSN("file:fktest?mode=memory&cache=shared"),
		RunMigrations: true,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := UserModel{Email: "fk@example.com", Password: "x", Name: "FK", Role: "USER"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	cat := CategoryModel{Name: "General", Color: "#3B82F6", UserID: user.ID}
	if err := gdb.Create(&cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	link := LinkModel{Title: "G", URL: "https://g.com", UserID: user.ID, CategoryID: &cat.ID}
	if err := gdb.Create(&link).Error; err != nil {
		t.Fatalf("create link: %v", err)
	}

	if err := gdb.Delete(&CategoryModel{}, cat.ID).Error; err != nil {
		t.Fatalf("delete category: %v", err)
	}
	var reloaded LinkModel
	if err := gdb.First(&reloaded, link.ID).Error; err != nil {
		t.Fatalf("link should survive category deletion: %v", err)
	}
	if reloaded.CategoryID != nil {
		t.Errorf("expected category to be cleared, got %d", *reloaded.CategoryID)
	}

	if err := gdb.Delete(&UserModel{}, user.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	var count int64
	gdb.Model(&LinkModel{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected links to be deleted with their owner, got %d", count)
	}
}
