package seed_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/sqlplayground/playground/internal/application/seed"
)

func TestRunQueryReturnsRows(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{rows: map[string][]app.Row{
		"SELECT name FROM countries": {{"name": "France"}, {"name": "Japan"}},
	}}

	out, err := app.NewRunQuery(exec).Execute(context.Background(), app.RunQueryInput{
		Query: "  SELECT name FROM countries  ",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out.Rows))
	}
	if exec.statements[0] != "SELECT name FROM countries" {
		t.Fatalf("query not trimmed: %q", exec.statements[0])
	}
}

func TestRunQueryRejectsEmptyQueries(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	uc := app.NewRunQuery(exec)

	for _, query := range []string{"", "   ", "\n\t"} {
		_, err := uc.Execute(context.Background(), app.RunQueryInput{Query: query})
		if !errors.Is(err, app.ErrEmptyQuery) {
			t.Fatalf("expected ErrEmptyQuery for %q, got %v", query, err)
		}
	}
	if len(exec.statements) != 0 {
		t.Fatal("empty queries must never reach the executor")
	}
}

func TestRunQueryNormalizesNilRowSets(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}

	out, err := app.NewRunQuery(exec).Execute(context.Background(), app.RunQueryInput{
		Query: "DELETE FROM orders",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Rows == nil {
		t.Fatal("expected an empty row slice, not nil")
	}
	if len(out.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(out.Rows))
	}
}

func TestRunQueryPassesExecutorErrorsThrough(t *testing.T) {
	t.Parallel()

	sqlErr := &app.SQLError{Message: "syntax error", Detail: "42601"}
	exec := &fakeExecutor{failOn: func(string) error { return sqlErr }}

	_, err := app.NewRunQuery(exec).Execute(context.Background(), app.RunQueryInput{
		Query: "SELEC 1",
	})

	var got *app.SQLError
	if !errors.As(err, &got) {
		t.Fatalf("expected SQLError, got %v", err)
	}
	if got.Message != "syntax error" {
		t.Fatalf("unexpected message: %s", got.Message)
	}
}
