package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// openTestDB abre una base nueva en un directorio temporal, con esquema
// aplicado. La base se cierra al terminar el test.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "almacen.db"))
	require.NoError(t, err, "debe poder abrirse una base nueva")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de Open
// ──────────────────────────────────────────────────────────────────────────────

// Abrir dos veces el mismo archivo no debe fallar: el esquema es idempotente
// (CREATE TABLE IF NOT EXISTS) y los datos sobreviven entre aperturas.
func TestOpen_EsquemaIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almacen.db")

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO suppliers (name, contact) VALUES (?, ?)`, "Acme", "acme@example.com")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db2, err := sqlite.Open(path)
	require.NoError(t, err, "reabrir la misma base no debe fallar")
	defer db2.Close()

	var n int64
	require.NoError(t, db2.QueryRow(`SELECT COUNT(*) FROM suppliers`).Scan(&n))
	require.Equal(t, int64(1), n, "los datos deben sobrevivir a la reapertura")
}
