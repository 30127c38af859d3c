package seed_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	app "github.com/sqlplayground/playground/internal/application/seed"
	domain "github.com/sqlplayground/playground/internal/domain/seed"
)

// fakeExecutor records every statement and can fail or return canned rows
// keyed by statement.
type fakeExecutor struct {
	statements []string
	rows       map[string][]app.Row
	failOn     func(statement string) error
}

func (f *fakeExecutor) Execute(ctx context.Context, statement string) ([]app.Row, error) {
	f.statements = append(f.statements, statement)
	if f.failOn != nil {
		if err := f.failOn(statement); err != nil {
			return nil, err
		}
	}
	return f.rows[statement], nil
}

func manyCountries(n int) []domain.Country {
	countries := make([]domain.Country, 0, n)
	for i := 0; i < n; i++ {
		countries = append(countries, domain.Country{
			ID:        i + 1,
			Name:      fmt.Sprintf("Country %d", i+1),
			Code:      fmt.Sprintf("C%d", i+1),
			Continent: "Europe",
		})
	}
	return countries
}

func TestBulkLoaderSplitsRowsIntoBatches(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	loader := app.NewBulkLoader(exec)

	err := loader.Load(context.Background(), &domain.Dataset{Countries: manyCountries(250)})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(exec.statements) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(exec.statements))
	}

	for i, want := range []int{100, 100, 50} {
		statement := exec.statements[i]
		if !strings.HasPrefix(statement, "INSERT INTO countries (name, code, continent) VALUES\n") {
			t.Fatalf("unexpected statement prefix: %s", statement)
		}
		if got := strings.Count(statement, "('"); got != want {
			t.Fatalf("batch %d has %d tuples, want %d", i+1, got, want)
		}
	}
}

func TestBulkLoaderEscapesSingleQuotes(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	loader := app.NewBulkLoader(exec)

	dataset := &domain.Dataset{Countries: []domain.Country{
		{ID: 1, Name: "Côte d'Ivoire", Code: "CI", Continent: "Africa"},
	}}
	if err := loader.Load(context.Background(), dataset); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(exec.statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(exec.statements))
	}
	if !strings.Contains(exec.statements[0], "'Côte d''Ivoire'") {
		t.Fatalf("quote not doubled in: %s", exec.statements[0])
	}
}

func TestBulkLoaderRendersOrderLiterals(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	loader := app.NewBulkLoader(exec)

	orderDate := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	estimate := orderDate.AddDate(0, 0, 7)
	dataset := &domain.Dataset{Orders: []domain.Order{{
		ID:                1,
		UserID:            3,
		TotalAmount:       1234,
		Status:            domain.StatusDelivered,
		OrderDate:         orderDate,
		EstimatedDelivery: &estimate,
		DeliveryDate:      nil,
	}}}
	if err := loader.Load(context.Background(), dataset); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(exec.statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(exec.statements))
	}
	statement := exec.statements[0]
	for _, fragment := range []string{"1234.00", "'delivered'", "'2024-05-01'", "'2024-05-08'", "NULL"} {
		if !strings.Contains(statement, fragment) {
			t.Fatalf("statement missing %q: %s", fragment, statement)
		}
	}
}

func TestBulkLoaderReportsFailingTableAndBatch(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	calls := 0
	exec := &fakeExecutor{failOn: func(statement string) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	}}
	loader := app.NewBulkLoader(exec)

	err := loader.Load(context.Background(), &domain.Dataset{Countries: manyCountries(250)})
	if err == nil {
		t.Fatal("expected error")
	}

	var insertErr *app.BulkInsertError
	if !errors.As(err, &insertErr) {
		t.Fatalf("expected BulkInsertError, got %v", err)
	}
	if insertErr.Table != "countries" || insertErr.Batch != 2 {
		t.Fatalf("unexpected failure location: table %s batch %d", insertErr.Table, insertErr.Batch)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if len(exec.statements) != 2 {
		t.Fatalf("expected load to stop after the failing batch, got %d statements", len(exec.statements))
	}
}
