package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Academia-api/internal/application/dto"
	"github.com/jhoicas/Academia-api/internal/domain"
	"github.com/jhoicas/Academia-api/internal/domain/entity"
	"github.com/jhoicas/Academia-api/internal/domain/repository"
	"github.com/jhoicas/Academia-api/pkg/logger"
)

// PurchaseUseCase crea compras en pending. Las transiciones posteriores
// (confirmación de pago, refund) son exclusivas del motor de acceso.
type PurchaseUseCase struct {
	purchases repository.PurchaseRepository
	courses   repository.CourseRepository
	users     repository.UserRepository
	log       *logger.Logger
}

// NewPurchaseUseCase construye el caso de uso de compras.
func NewPurchaseUseCase(
	purchases repository.PurchaseRepository,
	courses repository.CourseRepository,
	users repository.UserRepository,
	log *logger.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases, courses: courses, users: users, log: log}
}

// Create registra una compra en pending con el precio del curso congelado en
// Amount. El usuario puede recomprar un curso ya reembolsado: cada compra es
// un registro independiente con su propia máquina de estados.
func (uc *PurchaseUseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.CourseID == "" || in.PaymentMethod == "" {
		return nil, domain.ErrValidation
	}
	user, err := uc.users.FindByID(userID)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("obtener usuario para compra")
		return nil, domain.ErrStore
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	course, err := uc.courses.GetByID(in.CourseID)
	if err != nil {
		uc.log.Error().Err(err).Str("course_id", in.CourseID).Msg("obtener curso para compra")
		return nil, domain.ErrStore
	}
	if course == nil || course.IsDeleted {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:            uuid.New().String(),
		UserID:        userID,
		CourseID:      in.CourseID,
		Status:        entity.PurchaseStatusPending,
		PaymentMethod: in.PaymentMethod,
		Amount:        course.Price,
		PurchasedAt:   now,
		UpdatedAt:     now,
	}
	if err := uc.purchases.Create(purchase); err != nil {
		uc.log.Error().Err(err).Msg("crear compra")
		return nil, domain.ErrStore
	}
	return toPurchaseResponse(purchase), nil
}

// ListMine lista las compras del usuario autenticado, la más reciente primero.
func (uc *PurchaseUseCase) ListMine(ctx context.Context, userID string, page dto.PageRequest) ([]dto.PurchaseResponse, error) {
	page.DefaultPage()
	purchases, err := uc.purchases.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("listar compras")
		return nil, domain.ErrStore
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		CourseID:      p.CourseID,
		Status:        p.Status,
		PaymentMethod: p.PaymentMethod,
		Amount:        p.Amount,
		PurchasedAt:   p.PurchasedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
