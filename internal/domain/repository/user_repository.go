package repository

import "github.com/jhoicas/almacen/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve domain.ErrDuplicate si el username ya existe.
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	Count() (int64, error)
}
