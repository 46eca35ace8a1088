package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Academia-api/internal/application/access"
	"github.com/jhoicas/Academia-api/internal/application/dto"
	"github.com/jhoicas/Academia-api/internal/application/usecase"
)

// PurchaseHandler maneja compras y las señales externas de pago.
type PurchaseHandler struct {
	purchases *usecase.PurchaseUseCase
	accessUC  *access.AccessUseCase
}

// NewPurchaseHandler construye el handler de compras.
func NewPurchaseHandler(purchases *usecase.PurchaseUseCase, accessUC *access.AccessUseCase) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, accessUC: accessUC}
}

// Create godoc
// @Summary      Iniciar compra (queda en pending)
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePurchaseRequest  true  "course_id, payment_method"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	purchase, err := h.purchases.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// List godoc
// @Summary      Mis compras
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	purchases, err := h.purchases.ListMine(c.UserContext(), GetUserID(c), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(purchases)
}

// Confirm godoc
// @Summary      Señal externa: pago confirmado (pending -> completed)
// @Tags         purchases
// @Produce      json
// @Param        id   path  string  true  "purchase id"
// @Success      200  {object}  dto.TransitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/confirm [post]
func (h *PurchaseHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.accessUC.ConfirmPayment(c.UserContext(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Refund godoc
// @Summary      Señal externa: refund procesado (completed -> refunded)
// @Tags         purchases
// @Produce      json
// @Param        id   path  string  true  "purchase id"
// @Success      200  {object}  dto.TransitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/refund [post]
func (h *PurchaseHandler) Refund(c *fiber.Ctx) error {
	out, err := h.accessUC.ProcessRefund(c.UserContext(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
