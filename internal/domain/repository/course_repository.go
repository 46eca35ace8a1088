package repository

import "github.com/jhoicas/Academia-api/internal/domain/entity"

// CourseRepository define el puerto de persistencia para Course.
type CourseRepository interface {
	Create(course *entity.Course) error
	GetByID(id string) (*entity.Course, error)
	// ListActive excluye cursos con soft delete.
	ListActive(limit, offset int) ([]*entity.Course, error)
	Update(course *entity.Course) error
	// SoftDelete marca el curso como eliminado conservando historial.
	SoftDelete(id string) error
}
