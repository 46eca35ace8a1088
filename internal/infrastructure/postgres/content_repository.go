package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Academia-api/internal/domain/entity"
	"github.com/jhoicas/Academia-api/internal/domain/repository"
)

var _ repository.ContentRepository = (*ContentRepo)(nil)

const contentColumns = `id, course_id, title, sort_order, is_deleted, created_at, updated_at`

// ContentRepo implementación del puerto ContentRepository sobre PostgreSQL.
type ContentRepo struct {
	q Querier
}

// NewContentRepository construye el adaptador de persistencia para contenido.
func NewContentRepository(q Querier) *ContentRepo {
	return &ContentRepo{q: q}
}

// Create persiste una nueva unidad de contenido.
func (r *ContentRepo) Create(item *entity.ContentItem) error {
	query := `
		INSERT INTO content_items (` + contentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CourseID, item.Title, item.SortOrder, item.IsDeleted,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert content item: %w", err)
	}
	return nil
}

// ListByCourse devuelve los ítems no eliminados del curso en orden de creación.
// El orden de presentación (sort_order asc, nulls al final) lo aplica el caso
// de uso de acceso, que es el dueño de esa regla.
func (r *ContentRepo) ListByCourse(courseID string) ([]*entity.ContentItem, error) {
	query := `
		SELECT ` + contentColumns + ` FROM content_items
		WHERE course_id = $1 AND is_deleted = false ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, courseID)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContentItem
	for rows.Next() {
		var item entity.ContentItem
		if err := rows.Scan(&item.ID, &item.CourseID, &item.Title, &item.SortOrder,
			&item.IsDeleted, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
