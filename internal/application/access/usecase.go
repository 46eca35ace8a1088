package access

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Academia-api/internal/application/dto"
	"github.com/jhoicas/Academia-api/internal/domain"
	"github.com/jhoicas/Academia-api/internal/domain/entity"
	"github.com/jhoicas/Academia-api/internal/domain/repository"
	"github.com/jhoicas/Academia-api/pkg/logger"
)

// AccessUseCase es el motor de control de acceso: aplica la máquina de estados
// de compra (pending -> completed -> refunded) con su efecto sobre Enrollment,
// y decide la visibilidad de contenido. Es el único escritor de
// Enrollment.HasAccess en todo el sistema.
type AccessUseCase struct {
	tx          TxRunner
	enrollments repository.EnrollmentRepository
	content     repository.ContentRepository
	log         *logger.Logger
}

// NewAccessUseCase construye el motor de acceso. Los repos sueltos se usan
// para lecturas; las transiciones pasan siempre por el TxRunner.
func NewAccessUseCase(
	tx TxRunner,
	enrollments repository.EnrollmentRepository,
	content repository.ContentRepository,
	log *logger.Logger,
) *AccessUseCase {
	return &AccessUseCase{tx: tx, enrollments: enrollments, content: content, log: log}
}

// ConfirmPayment aplica pending -> completed sobre la compra y concede acceso:
// crea el Enrollment (primera compra completada fija enrolled_at) o reactiva
// el existente. Compra y enrollment se escriben en una sola transacción.
func (uc *AccessUseCase) ConfirmPayment(ctx context.Context, purchaseID string) (*dto.TransitionResponse, error) {
	return uc.transition(ctx, purchaseID, entity.PurchaseStatusCompleted)
}

// ProcessRefund aplica completed -> refunded y revoca el acceso. El Enrollment
// no se borra: conserva enrolled_at como historial.
func (uc *AccessUseCase) ProcessRefund(ctx context.Context, purchaseID string) (*dto.TransitionResponse, error) {
	return uc.transition(ctx, purchaseID, entity.PurchaseStatusRefunded)
}

func (uc *AccessUseCase) transition(ctx context.Context, purchaseID, next string) (*dto.TransitionResponse, error) {
	var out *dto.TransitionResponse
	err := uc.tx.Run(ctx, func(purchases repository.PurchaseRepository, enrollments repository.EnrollmentRepository) error {
		// lectura con lock de fila: transiciones concurrentes sobre la misma
		// compra se serializan y la perdedora ve el estado ya aplicado
		purchase, err := purchases.GetByIDForUpdate(purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if !purchase.CanTransitionTo(next) {
			return domain.ErrInvalidTransition
		}
		if err := purchases.UpdateStatus(purchase.ID, next); err != nil {
			return err
		}

		hasAccess := next == entity.PurchaseStatusCompleted
		enrollment, err := enrollments.GetByUserAndCourse(purchase.UserID, purchase.CourseID)
		if err != nil {
			return err
		}
		now := time.Now()
		if enrollment == nil {
			if !hasAccess {
				// refund sin enrollment previo: estado inconsistente en el store,
				// se repara creando el registro ya revocado
				uc.log.Warn().Str("purchase_id", purchase.ID).Msg("refund sin enrollment previo")
			}
			enrollment = &entity.Enrollment{
				ID:         uuid.New().String(),
				UserID:     purchase.UserID,
				CourseID:   purchase.CourseID,
				EnrolledAt: now,
				HasAccess:  hasAccess,
				UpdatedAt:  now,
			}
			if err := enrollments.Create(enrollment); err != nil {
				return err
			}
		} else {
			if err := enrollments.SetAccess(enrollment.ID, hasAccess); err != nil {
				return err
			}
			enrollment.HasAccess = hasAccess
			enrollment.UpdatedAt = now
		}

		purchase.Status = next
		purchase.UpdatedAt = now
		out = &dto.TransitionResponse{
			Purchase:   *toPurchaseResponse(purchase),
			Enrollment: *toEnrollmentResponse(enrollment),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidTransition) {
			return nil, err
		}
		uc.log.Error().Err(err).Str("purchase_id", purchaseID).Str("next", next).Msg("transición de compra")
		return nil, domain.ErrStore
	}
	return out, nil
}

// CanAccessContent decide si el usuario puede ver el contenido del curso.
// La ausencia de enrollment es un false normal, nunca un error: solo un fallo
// real del store produce error.
func (uc *AccessUseCase) CanAccessContent(ctx context.Context, userID, courseID string) (bool, error) {
	enrollment, err := uc.enrollments.GetByUserAndCourse(userID, courseID)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Str("course_id", courseID).Msg("consulta de enrollment")
		return false, domain.ErrStore
	}
	return enrollment != nil && enrollment.HasAccess, nil
}

// GetCourseContent devuelve el contenido del curso si el usuario tiene acceso.
// El chequeo va primero y corta en seco con ErrAccessDenied: sin acceso no se
// consulta ni una fila de contenido.
func (uc *AccessUseCase) GetCourseContent(ctx context.Context, userID, courseID string) ([]dto.ContentItemResponse, error) {
	ok, err := uc.CanAccessContent(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAccessDenied
	}
	items, err := uc.content.ListByCourse(courseID)
	if err != nil {
		uc.log.Error().Err(err).Str("course_id", courseID).Msg("listar contenido")
		return nil, domain.ErrStore
	}
	sortContent(items)
	out := make([]dto.ContentItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ContentItemResponse{
			ID:        item.ID,
			CourseID:  item.CourseID,
			Title:     item.Title,
			SortOrder: item.SortOrder,
			CreatedAt: item.CreatedAt,
		})
	}
	return out, nil
}

// sortContent ordena por sort_order ascendente con los ítems sin orden al
// final; el sort estable preserva el orden de creación entre empatados.
func sortContent(items []*entity.ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].SortOrder, items[j].SortOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
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

func toEnrollmentResponse(e *entity.Enrollment) *dto.EnrollmentResponse {
	return &dto.EnrollmentResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		CourseID:   e.CourseID,
		EnrolledAt: e.EnrolledAt,
		HasAccess:  e.HasAccess,
	}
}
