package repository

import "github.com/jhoicas/almacen/internal/domain/entity"

// AuditRepository define el puerto para el registro de auditoría.
// Solo append: nada en la aplicación lee estas filas de vuelta.
type AuditRepository interface {
	Append(entry *entity.AuditEntry) error
}
