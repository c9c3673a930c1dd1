package postgres

import (
	"context"
	"database/sql"
)

// Queryer é a fronteira mínima de execução de SQL usada pelos repositórios
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
