package repository

import "github.com/jhoicas/Academia-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase.
// UserID y CourseID nunca se actualizan: UpdateStatus solo toca status y updated_at.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción: dos
	// transiciones concurrentes sobre la misma compra se serializan y la
	// segunda ve el estado ya actualizado.
	GetByIDForUpdate(id string) (*entity.Purchase, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Purchase, error)
	UpdateStatus(id, status string) error
}
