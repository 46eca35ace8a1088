package access

import (
	"context"

	"github.com/jhoicas/Academia-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos de compra y enrollment atados a una misma
// transacción. Las transiciones de estado (purchase + enrollment) deben
// aplicarse de forma atómica: o se confirman ambas escrituras o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchases repository.PurchaseRepository,
		enrollments repository.EnrollmentRepository,
	) error) error
}
