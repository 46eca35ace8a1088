package repository

import "github.com/jhoicas/Academia-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El chequeo previo de email en signup es optimista: la unicidad real la
// impone el índice único del store en Create.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// Delete falla con ErrConflict si el usuario tiene historial de compras.
	Delete(id string) error
}
