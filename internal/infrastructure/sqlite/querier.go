package sqlite

import "database/sql"

// Querier abstrae *sql.DB y *sql.Tx para que los repositorios funcionen igual
// dentro o fuera de una transacción.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
