package seed

import (
	"errors"
	"fmt"
)

var (
	ErrSetupInProgress = errors.New("database setup already in progress")
	ErrEmptyQuery      = errors.New("query must not be empty")
	ErrRecordRun       = errors.New("failed to record seed run")
)

// SQLError is a statement failure reported by the external SQL endpoint,
// carrying the database's message and state detail.
type SQLError struct {
	Message string
	Detail  string
}

func (e *SQLError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("sql error: %s", e.Message)
	}
	return fmt.Sprintf("sql error: %s (%s)", e.Message, e.Detail)
}

// PhaseError marks which lifecycle phase a fatal setup failure happened in.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("setup phase %s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// BulkInsertError identifies the failing table and batch of a bulk load.
type BulkInsertError struct {
	Table string
	Batch int
	Err   error
}

func (e *BulkInsertError) Error() string {
	return fmt.Sprintf("bulk insert into %s, batch %d: %v", e.Table, e.Batch, e.Err)
}

func (e *BulkInsertError) Unwrap() error {
	return e.Err
}
