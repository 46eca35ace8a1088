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

// CourseUseCase CRUD de cursos y su contenido. Lógica deliberadamente fina:
// las reglas con peso (acceso, transiciones) viven en el motor de acceso.
type CourseUseCase struct {
	courses repository.CourseRepository
	content repository.ContentRepository
	log     *logger.Logger
}

// NewCourseUseCase construye el caso de uso de cursos.
func NewCourseUseCase(courses repository.CourseRepository, content repository.ContentRepository, log *logger.Logger) *CourseUseCase {
	return &CourseUseCase{courses: courses, content: content, log: log}
}

// Create publica un curso a nombre del admin autenticado.
func (uc *CourseUseCase) Create(ctx context.Context, adminID string, in dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	course := &entity.Course{
		ID:        uuid.New().String(),
		AdminID:   &adminID,
		Name:      in.Name,
		Price:     in.Price.Round(2),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.courses.Create(course); err != nil {
		uc.log.Error().Err(err).Msg("crear curso")
		return nil, domain.ErrStore
	}
	return toCourseResponse(course), nil
}

// List devuelve los cursos activos (sin soft delete) paginados.
func (uc *CourseUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CourseResponse, error) {
	page.DefaultPage()
	courses, err := uc.courses.ListActive(page.Limit, page.Offset)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar cursos")
		return nil, domain.ErrStore
	}
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, *toCourseResponse(c))
	}
	return out, nil
}

// GetByID obtiene un curso activo por ID.
func (uc *CourseUseCase) GetByID(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := uc.courses.GetByID(id)
	if err != nil {
		uc.log.Error().Err(err).Str("course_id", id).Msg("obtener curso")
		return nil, domain.ErrStore
	}
	if course == nil || course.IsDeleted {
		return nil, domain.ErrNotFound
	}
	return toCourseResponse(course), nil
}

// Update edita nombre y precio de un curso del admin. Misma regla de dueño
// que el contenido: si el curso tiene dueño, solo ese admin puede editarlo.
func (uc *CourseUseCase) Update(ctx context.Context, adminID, courseID string, in dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrValidation
	}
	course, err := uc.ownedCourse(adminID, courseID)
	if err != nil {
		return nil, err
	}
	course.Name = in.Name
	course.Price = in.Price.Round(2)
	if err := uc.courses.Update(course); err != nil {
		uc.log.Error().Err(err).Str("course_id", courseID).Msg("actualizar curso")
		return nil, domain.ErrStore
	}
	course.UpdatedAt = time.Now()
	return toCourseResponse(course), nil
}

// Delete retira el curso del catálogo (soft delete). El historial de compras
// y los enrollments quedan intactos: retirar no es borrar.
func (uc *CourseUseCase) Delete(ctx context.Context, adminID, courseID string) error {
	course, err := uc.ownedCourse(adminID, courseID)
	if err != nil {
		return err
	}
	if err := uc.courses.SoftDelete(course.ID); err != nil {
		uc.log.Error().Err(err).Str("course_id", courseID).Msg("retirar curso")
		return domain.ErrStore
	}
	return nil
}

// ownedCourse obtiene el curso activo y verifica que el admin sea su dueño.
func (uc *CourseUseCase) ownedCourse(adminID, courseID string) (*entity.Course, error) {
	course, err := uc.courses.GetByID(courseID)
	if err != nil {
		uc.log.Error().Err(err).Str("course_id", courseID).Msg("obtener curso")
		return nil, domain.ErrStore
	}
	if course == nil || course.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if course.AdminID != nil && *course.AdminID != adminID {
		return nil, domain.ErrAccessDenied
	}
	return course, nil
}

// AddContentItem agrega una unidad de contenido a un curso del admin.
// Si el curso tiene dueño, solo ese admin puede tocar su contenido.
func (uc *CourseUseCase) AddContentItem(ctx context.Context, adminID, courseID string, in dto.CreateContentItemRequest) (*dto.ContentItemResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrValidation
	}
	if _, err := uc.ownedCourse(adminID, courseID); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.ContentItem{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		Title:     in.Title,
		SortOrder: in.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.content.Create(item); err != nil {
		uc.log.Error().Err(err).Str("course_id", courseID).Msg("crear contenido")
		return nil, domain.ErrStore
	}
	return &dto.ContentItemResponse{
		ID:        item.ID,
		CourseID:  item.CourseID,
		Title:     item.Title,
		SortOrder: item.SortOrder,
		CreatedAt: item.CreatedAt,
	}, nil
}

func toCourseResponse(c *entity.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:        c.ID,
		AdminID:   c.AdminID,
		Name:      c.Name,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
