package seed

import (
	"context"
	"strconv"

	"github.com/sqlplayground/playground/internal/domain/playground"
)

type TableInfo struct {
	Name  string `json:"name"`
	Count *int64 `json:"count,omitempty"`
	Error string `json:"error,omitempty"`
}

type DatabaseInfoOutput struct {
	Tables []TableInfo `json:"tables"`
}

type GetDatabaseInfo interface {
	Execute(ctx context.Context) (DatabaseInfoOutput, error)
}

// getDatabaseInfo counts rows per playground table. A table that is missing
// or unreadable reports its own error instead of failing the whole call, so
// the health view still renders between runs.
type getDatabaseInfo struct {
	exec StatementExecutor
}

func NewGetDatabaseInfo(exec StatementExecutor) GetDatabaseInfo {
	return &getDatabaseInfo{exec: exec}
}

func (uc *getDatabaseInfo) Execute(ctx context.Context) (DatabaseInfoOutput, error) {
	out := DatabaseInfoOutput{Tables: make([]TableInfo, 0, len(playground.Schema))}

	for _, table := range playground.TableNames() {
		info := TableInfo{Name: table}

		rows, err := uc.exec.Execute(ctx, "SELECT COUNT(*) AS count FROM "+table)
		if err != nil || len(rows) == 0 {
			info.Error = "table does not exist or query failed"
		} else if count, ok := asInt64(rows[0]["count"]); ok {
			info.Count = &count
		} else {
			info.Error = "table does not exist or query failed"
		}

		out.Tables = append(out.Tables, info)
	}

	return out, nil
}

// asInt64 tolerates the numeric types different executors hand back for
// COUNT(*): int64 from pgx, float64 or string from JSON decoding.
func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
