package seed

import (
	"context"
	"strings"
)

type RunQueryInput struct {
	Query string
}

type RunQueryOutput struct {
	Rows []Row `json:"rows"`
}

type RunQuery interface {
	Execute(ctx context.Context, in RunQueryInput) (RunQueryOutput, error)
}

// runQuery passes an arbitrary statement from the playground editor through
// the executor. The database, not this layer, decides what the statement is
// allowed to do.
type runQuery struct {
	exec StatementExecutor
}

func NewRunQuery(exec StatementExecutor) RunQuery {
	return &runQuery{exec: exec}
}

func (uc *runQuery) Execute(ctx context.Context, in RunQueryInput) (RunQueryOutput, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return RunQueryOutput{}, ErrEmptyQuery
	}

	rows, err := uc.exec.Execute(ctx, query)
	if err != nil {
		return RunQueryOutput{}, err
	}
	if rows == nil {
		rows = []Row{}
	}

	return RunQueryOutput{Rows: rows}, nil
}
