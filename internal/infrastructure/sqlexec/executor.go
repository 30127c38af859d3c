package sqlexec

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	app "github.com/sqlplayground/playground/internal/application/seed"
)

// Executor runs one statement per call against Postgres through a pgx pool.
// Statements beginning with SELECT return their rows; everything else returns
// a nil row set on success. Database failures come back as *seed.SQLError so
// the application layer sees the server's message and SQLSTATE.
type Executor struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Executor {
	return &Executor{pool: pool}
}

func (e *Executor) Execute(ctx context.Context, statement string) ([]app.Row, error) {
	trimmed := strings.TrimSpace(statement)
	if trimmed == "" {
		return nil, nil
	}

	if !strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		if _, err := e.pool.Exec(ctx, trimmed); err != nil {
			return nil, asSQLError(err)
		}
		return nil, nil
	}

	rows, err := e.pool.Query(ctx, trimmed)
	if err != nil {
		return nil, asSQLError(err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	result := make([]app.Row, 0)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, asSQLError(err)
		}

		row := make(app.Row, len(fields))
		for i, field := range fields {
			row[field.Name] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, asSQLError(err)
	}

	return result, nil
}

func asSQLError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &app.SQLError{Message: pgErr.Message, Detail: pgErr.Code}
	}
	return &app.SQLError{Message: err.Error()}
}
