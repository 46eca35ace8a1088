package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Course representa un curso publicado en el marketplace.
// AdminID es nullable: si el admin dueño se desactiva o elimina su vínculo, el curso sobrevive.
type Course struct {
	ID        string
	AdminID   *string
	Name      string
	Price     decimal.Decimal // precio de venta, 2 decimales
	IsDeleted bool            // soft delete: oculto en listados, conserva historial de compras
	CreatedAt time.Time
	UpdatedAt time.Time
}
