package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
)

// Customer representa un cliente de Ríos del Desierto S.A.S.
// Cada cliente posee exactamente un Document (1:1) y cero o más Purchase (1:N);
// ambas relaciones se eliminan en cascada junto con el cliente.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string // único, en minúsculas
	Phone     string
	BirthDate *time.Time // opcional, nunca futura
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeEmail recorta espacios y pasa a minúsculas, validando la forma mínima.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("%w: el campo 'correoElectronico' es requerido", domain.ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: correo electrónico inválido", domain.ErrInvalidInput)
	}
	return email, nil
}

// ValidateBirthDate rechaza fechas de nacimiento futuras. nil es válido (campo opcional).
func ValidateBirthDate(d *time.Time, now time.Time) error {
	if d == nil {
		return nil
	}
	if d.After(now) {
		return fmt.Errorf("%w: la fecha de nacimiento no puede ser futura", domain.ErrInvalidInput)
	}
	return nil
}
