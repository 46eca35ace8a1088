package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Academia-api/internal/application/access"
	"github.com/jhoicas/Academia-api/internal/application/dto"
	"github.com/jhoicas/Academia-api/internal/application/usecase"
)

// CourseHandler maneja cursos y su contenido.
type CourseHandler struct {
	courses  *usecase.CourseUseCase
	accessUC *access.AccessUseCase
}

// NewCourseHandler construye el handler de cursos.
func NewCourseHandler(courses *usecase.CourseUseCase, accessUC *access.AccessUseCase) *CourseHandler {
	return &CourseHandler{courses: courses, accessUC: accessUC}
}

// Create godoc
// @Summary      Publicar curso (solo admin)
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCourseRequest  true  "name, price"
// @Success      201   {object}  dto.CourseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/courses [post]
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCourseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	course, err := h.courses.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

// List godoc
// @Summary      Listar cursos activos
// @Tags         courses
// @Produce      json
// @Success      200  {array}  dto.CourseResponse
// @Router       /api/courses [get]
func (h *CourseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	courses, err := h.courses.List(c.UserContext(), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(courses)
}

// GetByID godoc
// @Summary      Obtener curso
// @Tags         courses
// @Produce      json
// @Param        id   path  string  true  "course id"
// @Success      200  {object}  dto.CourseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/courses/{id} [get]
func (h *CourseHandler) GetByID(c *fiber.Ctx) error {
	course, err := h.courses.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(course)
}

// Update godoc
// @Summary      Editar curso (solo admin dueño)
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "course id"
// @Param        body  body  dto.UpdateCourseRequest  true  "name, price"
// @Success      200   {object}  dto.CourseResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/courses/{id} [put]
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCourseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	course, err := h.courses.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(course)
}

// Delete godoc
// @Summary      Retirar curso del catálogo (solo admin dueño)
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "course id"
// @Success      204  "retirado"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/courses/{id} [delete]
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	if err := h.courses.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddContent godoc
// @Summary      Agregar contenido a un curso (solo admin dueño)
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "course id"
// @Param        body  body  dto.CreateContentItemRequest  true  "title, sort_order?"
// @Success      201   {object}  dto.ContentItemResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/courses/{id}/content [post]
func (h *CourseHandler) AddContent(c *fiber.Ctx) error {
	var in dto.CreateContentItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.courses.AddContentItem(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetContent godoc
// @Summary      Contenido del curso (requiere acceso vigente)
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "course id"
// @Success      200  {array}   dto.ContentItemResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/courses/{id}/content [get]
func (h *CourseHandler) GetContent(c *fiber.Ctx) error {
	items, err := h.accessUC.GetCourseContent(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// GetAccess godoc
// @Summary      ¿Tiene el usuario acceso al curso?
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "course id"
// @Success      200  {object}  dto.AccessResponse
// @Router       /api/courses/{id}/access [get]
func (h *CourseHandler) GetAccess(c *fiber.Ctx) error {
	ok, err := h.accessUC.CanAccessContent(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.AccessResponse{HasAccess: ok})
}
