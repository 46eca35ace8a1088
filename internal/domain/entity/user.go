package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleConsumer = "consumer"
)

// ValidRole indica si el rol pertenece al conjunto permitido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleConsumer
}

// User representa un usuario de la plataforma (admin publica cursos, consumer los compra).
// PasswordHash y PasswordSalt nunca salen del dominio: toda respuesta externa pasa por dto.UserResponse.
type User struct {
	ID           string
	Name         string
	Email        string // único en el store, sensible a mayúsculas tal como se guarda
	PasswordHash string // PBKDF2-SHA512 en hex
	PasswordSalt string // salt aleatorio en hex
	Role         string // admin, consumer
	IsActive     bool   // desactivación lógica; nunca se borra un usuario
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
