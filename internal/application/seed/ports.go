package seed

import (
	"context"

	domain "github.com/sqlplayground/playground/internal/domain/seed"
)

// Row is one result row from the external SQL endpoint, keyed by column name.
type Row = map[string]any

// StatementExecutor is the core's only outward boundary: execute one SQL
// statement, get rows back for SELECTs and a nil slice otherwise. Statement
// failures are returned as *SQLError so callers can surface the database's
// own message and detail.
type StatementExecutor interface {
	Execute(ctx context.Context, statement string) ([]Row, error)
}

// RowCounts summarizes how many rows a run produced per table.
type RowCounts struct {
	Countries  int `json:"countries"`
	Cities     int `json:"cities"`
	Users      int `json:"users"`
	Products   int `json:"products"`
	Orders     int `json:"orders"`
	OrderItems int `json:"order_items"`
}

// RunRecorder keeps the seed-run history. Recording is bookkeeping around the
// run, not part of the seeded schema itself.
type RunRecorder interface {
	Begin(ctx context.Context, trigger string, cfg domain.Config) (string, error)
	Complete(ctx context.Context, runID string, counts RowCounts) error
	Fail(ctx context.Context, runID, phase, reason string) error
}

// NopRunRecorder satisfies RunRecorder for wirings that keep no history, such
// as one-shot CLI invocations.
type NopRunRecorder struct{}

func (NopRunRecorder) Begin(ctx context.Context, trigger string, cfg domain.Config) (string, error) {
	return "", nil
}

func (NopRunRecorder) Complete(ctx context.Context, runID string, counts RowCounts) error {
	return nil
}

func (NopRunRecorder) Fail(ctx context.Context, runID, phase, reason string) error {
	return nil
}
