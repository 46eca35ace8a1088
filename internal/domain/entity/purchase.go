package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una compra. La máquina de estados solo admite
// pending -> completed -> refunded; cualquier otro salto es inválido.
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusRefunded  = "refunded"
)

// Purchase representa una compra de un curso por un usuario.
// UserID y CourseID son inmutables una vez creada la compra; el store
// rechaza borrar usuarios o cursos con historial de compras (RESTRICT).
type Purchase struct {
	ID            string
	UserID        string
	CourseID      string
	Status        string // pending, completed, refunded
	PaymentMethod string // etiqueta del medio de pago (ej. "card", "pse")
	Amount        decimal.Decimal
	PurchasedAt   time.Time
	UpdatedAt     time.Time
}

// CanTransitionTo valida el salto de estado de la compra.
func (p *Purchase) CanTransitionTo(next string) bool {
	switch p.Status {
	case PurchaseStatusPending:
		return next == PurchaseStatusCompleted
	case PurchaseStatusCompleted:
		return next == PurchaseStatusRefunded
	default:
		// refunded es terminal; estados desconocidos no transicionan
		return false
	}
}
