package testutil

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"

	"github.com/stvol/waitline/internal/domain"
)

const (
	defaultTestDSN       = "host=localhost port=5432 user=postgres password=postgres dbname=waitline_test sslmode=disable"
	testDBLockID   int64 = 731205941
)

// NewTestDB connects to the Postgres named by TEST_DATABASE_DSN (or a local
// default) and skips the calling test when no server is reachable. The
// connection holds an advisory lock so packages sharing the database never
// interleave.
func NewTestDB(t *testing.T) *dbpg.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 8, MaxIdleConns: 4})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Master.PingContext(ctx); err != nil {
		db.Master.Close()
		t.Skipf("skipping Postgres integration tests: %v", err)
	}

	t.Cleanup(func() {
		db.Master.Close()
	})

	lockTestDB(t, db)

	return db
}

func ApplyMigrations(t *testing.T, db *dbpg.DB) {
	t.Helper()
	if err := goose.Up(db.Master, migrationsDir(t)); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
}

func TruncateAll(t *testing.T, ctx context.Context, db *dbpg.DB) {
	t.Helper()
	_, err := db.Master.ExecContext(ctx, `TRUNCATE signups, sessions RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func InsertSession(t *testing.T, ctx context.Context, db *dbpg.DB, s *domain.Session) {
	t.Helper()
	_, err := db.Master.ExecContext(ctx, `
INSERT INTO sessions (id, title, starts_at, capacity, price_cents, currency, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Title, s.StartsAt, s.Capacity, s.PriceCents, s.Currency, s.Status,
	)
	if err != nil {
		t.Fatalf("insert session: %v", err)
	}
}

func CountSignups(t *testing.T, ctx context.Context, db *dbpg.DB, sessionID string, status domain.SignupStatus) int {
	t.Helper()
	var n int
	err := db.Master.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM signups WHERE session_id = $1 AND status = $2`,
		sessionID, status,
	).Scan(&n)
	if err != nil {
		t.Fatalf("count signups: %v", err)
	}
	return n
}

// migrationsDir resolves the repository's migrations directory relative to
// this source file, so tests work regardless of the package they run from.
func migrationsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to locate migrations directory")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

func lockTestDB(t *testing.T, db *dbpg.DB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := db.Master.Conn(ctx)
	if err != nil {
		t.Fatalf("acquire lock conn: %v", err)
	}
	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, testDBLockID); err != nil {
		conn.Close()
		t.Fatalf("acquire test lock: %v", err)
	}

	t.Cleanup(func() {
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, testDBLockID)
		conn.Close()
	})
}
