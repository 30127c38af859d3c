package sqlexec_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	app "github.com/sqlplayground/playground/internal/application/seed"
	"github.com/sqlplayground/playground/internal/infrastructure/sqlexec"
)

func newTestExecutor(t *testing.T) *sqlexec.Executor {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	return sqlexec.New(pool)
}

func TestExecutorSelectReturnsRowsIntegration(t *testing.T) {
	exec := newTestExecutor(t)

	rows, err := exec.Execute(context.Background(), "SELECT 1 AS one, 'hello' AS greeting")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["greeting"] != "hello" {
		t.Fatalf("unexpected row: %#v", rows[0])
	}
}

func TestExecutorNonSelectReturnsNoRowsIntegration(t *testing.T) {
	exec := newTestExecutor(t)
	ctx := context.Background()

	if _, err := exec.Execute(ctx, "CREATE TABLE IF NOT EXISTS sqlexec_probe (id INT)"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer exec.Execute(ctx, "DROP TABLE IF EXISTS sqlexec_probe")

	rows, err := exec.Execute(ctx, "INSERT INTO sqlexec_probe (id) VALUES (1), (2)")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if rows != nil {
		t.Fatalf("expected nil rows for an insert, got %#v", rows)
	}

	rows, err = exec.Execute(ctx, "SELECT COUNT(*) AS count FROM sqlexec_probe")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if len(rows) != 1 || rows[0]["count"] != int64(2) {
		t.Fatalf("unexpected count rows: %#v", rows)
	}
}

func TestExecutorReportsSQLErrorsIntegration(t *testing.T) {
	exec := newTestExecutor(t)

	_, err := exec.Execute(context.Background(), "SELECT * FROM table_that_does_not_exist")
	if err == nil {
		t.Fatal("expected error")
	}

	var sqlErr *app.SQLError
	if !errors.As(err, &sqlErr) {
		t.Fatalf("expected SQLError, got %v", err)
	}
	if sqlErr.Detail != "42P01" {
		t.Fatalf("expected undefined_table state, got %q", sqlErr.Detail)
	}
}
