package repository

import "github.com/jhoicas/Academia-api/internal/domain/entity"

// ContentRepository define el puerto de persistencia para ContentItem.
type ContentRepository interface {
	Create(item *entity.ContentItem) error
	// ListByCourse devuelve los ítems no eliminados del curso en orden de
	// creación; el orden final (sort_order asc, nulls al final) lo aplica el
	// caso de uso de acceso.
	ListByCourse(courseID string) ([]*entity.ContentItem, error)
}
