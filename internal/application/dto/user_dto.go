package dto

import "time"

// SignupRequest entrada para registro (password en texto, se hashea en el caso de uso).
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin consumer"`
}

// UserResponse salida pública de un usuario: User sin hash ni salt.
// Es la única forma en que un usuario cruza la frontera del core.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT emitido por la capa de interfaz.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
