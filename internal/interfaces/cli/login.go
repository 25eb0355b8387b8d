package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/almacen/internal/application/auth"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// Login corre el bootstrap del admin inicial si no hay usuarios y después el
// loop de login con tres intentos. Devuelve (username, role) o un error si los
// intentos se agotaron o la entrada se cerró.
type Login struct {
	p  *prompter
	uc *auth.UseCase
}

// NewLogin construye el flujo de login sobre la entrada/salida indicadas.
func NewLogin(in io.Reader, out io.Writer, uc *auth.UseCase) *Login {
	return &Login{p: newPrompter(in, out), uc: uc}
}

// ErrLoginFailed se devuelve al agotar los intentos de login.
var ErrLoginFailed = errors.New("demasiados intentos fallidos")

// Run ejecuta bootstrap + login y devuelve las credenciales verificadas.
func (l *Login) Run() (username, role string, err error) {
	if err := l.bootstrapAdmin(); err != nil {
		return "", "", err
	}
	l.p.println("Welcome to Stock Maintenance System")
	l.p.println("Please login to continue.")
	for attempt := 0; attempt < auth.MaxLoginAttempts; attempt++ {
		username, err = l.p.readLine("Username: ")
		if err != nil {
			return "", "", err
		}
		password, err := l.p.readLine("Password: ")
		if err != nil {
			return "", "", err
		}
		role, verr := l.uc.Verify(username, password)
		if verr == nil {
			l.p.printf("Login successful! Role: %s\n", role)
			return username, role, nil
		}
		if !errors.Is(verr, domain.ErrInvalidCredentials) {
			return "", "", verr
		}
		l.p.printf("Invalid credentials. %d attempts left.\n", auth.MaxLoginAttempts-1-attempt)
	}
	l.p.println("Too many failed attempts. Exiting.")
	return "", "", ErrLoginFailed
}

// bootstrapAdmin crea el admin inicial cuando la base arranca sin usuarios.
// Username y password en blanco caen a los defaults.
func (l *Login) bootstrapAdmin() error {
	has, err := l.uc.HasUsers()
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	l.p.println("No users found. Creating default admin user.")
	for {
		username, err := l.p.readLine(fmt.Sprintf("Enter admin username (default: %s): ", auth.DefaultAdminUsername))
		if err != nil {
			return err
		}
		if username == "" {
			username = auth.DefaultAdminUsername
		}
		password, err := l.p.readLine(fmt.Sprintf("Enter admin password (default: %s): ", auth.DefaultAdminPassword))
		if err != nil {
			return err
		}
		if password == "" {
			password = auth.DefaultAdminPassword
		}
		if err := l.uc.Register(username, password, entity.RoleAdmin); err == nil {
			l.p.printf("Admin user '%s' created.\n", username)
			return nil
		}
		l.p.println("Failed to create admin user. Try again.")
	}
}
