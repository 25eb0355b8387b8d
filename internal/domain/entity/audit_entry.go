package entity

import "time"

// AuditEntry es una fila del registro de auditoría: quién hizo qué y cuándo.
// Append-only; la aplicación nunca la lee de vuelta.
type AuditEntry struct {
	LogID     int64
	Username  string
	Action    string
	Timestamp time.Time
}
