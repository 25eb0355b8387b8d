// Package session implementa la capa de aplicación: una sesión autenticada
// con un método por operación de usuario. Cada operación valida la entrada,
// chequea existencia donde aplica, llama a la persistencia y deja una fila de
// auditoría por mutación.
//
// La autorización se chequea acá adentro, no solo en la construcción de los
// menús: un llamador con referencia a la Session no puede saltarse el rol.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen/internal/application/report"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
	"github.com/jhoicas/almacen/pkg/logger"
)

// Session sesión autenticada por la vida del proceso. Una sola sesión activa;
// sin concurrencia.
type Session struct {
	username string
	role     string
	id       string // correlación de logs operacionales

	stockRepo    repository.StockRepository
	supplierRepo repository.SupplierRepository
	orderRepo    repository.PurchaseOrderRepository
	auditRepo    repository.AuditRepository
	tx           TxRunner
	reports      *report.Service

	log zerolog.Logger
}

// New construye la sesión para el usuario autenticado.
func New(
	username, role string,
	stockRepo repository.StockRepository,
	supplierRepo repository.SupplierRepository,
	orderRepo repository.PurchaseOrderRepository,
	auditRepo repository.AuditRepository,
	tx TxRunner,
	reports *report.Service,
	log *logger.Logger,
) *Session {
	sessionID := uuid.New().String()
	return &Session{
		username:     username,
		role:         role,
		id:           sessionID,
		stockRepo:    stockRepo,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
		auditRepo:    auditRepo,
		tx:           tx,
		reports:      reports,
		log:          log.With().Str("session_id", sessionID).Str("user", username).Logger(),
	}
}

// Username devuelve el usuario autenticado.
func (s *Session) Username() string { return s.username }

// Role devuelve el rol autenticado.
func (s *Session) Role() string { return s.role }

// IsAdmin indica si la sesión tiene rol admin.
func (s *Session) IsAdmin() bool { return s.role == entity.RoleAdmin }

// requireAdmin corta las operaciones privilegiadas para roles no admin.
func (s *Session) requireAdmin() error {
	if !s.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// audit deja una fila de auditoría. Un fallo al escribirla no aborta la
// operación de negocio: se registra como warning y se sigue.
func (s *Session) audit(action string) {
	err := s.auditRepo.Append(&entity.AuditEntry{
		Username:  s.username,
		Action:    action,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("no se pudo escribir la auditoría")
	}
}

// validateQuantity es el único punto de validación de cantidades resultantes:
// toda mutación de cantidad (update directo, escaneo, recepción de orden)
// pasa por acá antes de persistir.
func validateQuantity(quantity int64) error {
	if quantity < 0 {
		return domain.ErrNegativeStock
	}
	return nil
}
