package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para iniciar una compra (queda en pending
// hasta que llegue la señal externa de pago confirmado).
type CreatePurchaseRequest struct {
	CourseID      string `json:"course_id" validate:"required,uuid"`
	PaymentMethod string `json:"payment_method" validate:"required,max=50"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	CourseID      string          `json:"course_id"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	PurchasedAt   time.Time       `json:"purchased_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// EnrollmentResponse salida del estado de acceso de un usuario a un curso.
type EnrollmentResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
	HasAccess  bool      `json:"has_access"`
}

// TransitionResponse salida de confirmPayment/processRefund: la compra
// actualizada junto con el enrollment afectado.
type TransitionResponse struct {
	Purchase   PurchaseResponse   `json:"purchase"`
	Enrollment EnrollmentResponse `json:"enrollment"`
}

// AccessResponse salida del chequeo de acceso a contenido.
type AccessResponse struct {
	HasAccess bool `json:"has_access"`
}
