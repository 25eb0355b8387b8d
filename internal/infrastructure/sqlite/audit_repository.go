package sqlite

import (
	"fmt"

	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación de AuditRepository sobre SQLite. Append-only.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador del registro de auditoría.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append agrega una fila al registro de auditoría.
func (r *AuditRepo) Append(entry *entity.AuditEntry) error {
	_, err := r.q.Exec(
		`INSERT INTO audit_log (username, action, timestamp) VALUES (?, ?, ?)`,
		entry.Username, entry.Action, entry.Timestamp.Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}
