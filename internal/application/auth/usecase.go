// Package auth contiene el caso de uso de autenticación: registro de usuarios
// y verificación de credenciales.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// Credenciales por defecto que ofrece el bootstrap cuando no hay usuarios.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// MaxLoginAttempts intentos de login permitidos antes de terminar la sesión.
const MaxLoginAttempts = 3

// UseCase casos de uso de autenticación.
//
// El original guardaba SHA-256 sin salt; acá se usa bcrypt para que dos
// usuarios con la misma contraseña no compartan hash. El resto del contrato
// (username único, verificación que devuelve el rol) no cambia.
type UseCase struct {
	userRepo repository.UserRepository
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository) *UseCase {
	return &UseCase{userRepo: userRepo}
}

// Register crea un usuario con hash bcrypt. Devuelve domain.ErrDuplicate si el
// username ya existe y domain.ErrInvalidInput si el username está vacío o el
// rol no es válido.
func (uc *UseCase) Register(username, password, role string) error {
	username = strings.TrimSpace(username)
	if username == "" || !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.Create(&entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
}

// Verify compara las credenciales contra el hash guardado y devuelve el rol.
// Usuario desconocido y contraseña incorrecta son indistinguibles para el
// llamador: ambos devuelven domain.ErrInvalidCredentials.
func (uc *UseCase) Verify(username, password string) (string, error) {
	user, err := uc.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return user.Role, nil
}

// HasUsers indica si ya existe al menos un usuario (decide si corre el bootstrap).
func (uc *UseCase) HasUsers() (bool, error) {
	n, err := uc.userRepo.Count()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
