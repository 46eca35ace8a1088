package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Academia-api/internal/domain/entity"
	"github.com/jhoicas/Academia-api/internal/domain/repository"
)

var _ repository.CourseRepository = (*CourseRepo)(nil)

const courseColumns = `id, admin_id, name, price, is_deleted, created_at, updated_at`

// CourseRepo implementación del puerto CourseRepository sobre PostgreSQL (usable con pool o tx).
type CourseRepo struct {
	q Querier
}

// NewCourseRepository construye el adaptador de persistencia para cursos.
func NewCourseRepository(q Querier) *CourseRepo {
	return &CourseRepo{q: q}
}

// Create persiste un nuevo curso.
func (r *CourseRepo) Create(course *entity.Course) error {
	query := `
		INSERT INTO courses (` + courseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		course.ID, course.AdminID, course.Name, course.Price, course.IsDeleted,
		course.CreatedAt, course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// GetByID obtiene un curso por ID (incluye soft-deleted; el caso de uso decide).
func (r *CourseRepo) GetByID(id string) (*entity.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	var c entity.Course
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.AdminID, &c.Name, &c.Price, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &c, nil
}

// ListActive lista cursos no eliminados con paginación.
func (r *CourseRepo) ListActive(limit, offset int) ([]*entity.Course, error) {
	query := `
		SELECT ` + courseColumns + ` FROM courses
		WHERE is_deleted = false ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Course
	for rows.Next() {
		var c entity.Course
		if err := rows.Scan(&c.ID, &c.AdminID, &c.Name, &c.Price, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza nombre y precio. updated_at lo estampa el store.
func (r *CourseRepo) Update(course *entity.Course) error {
	query := `UPDATE courses SET name = $2, price = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, course.ID, course.Name, course.Price)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// SoftDelete marca el curso como eliminado; el historial de compras queda intacto.
func (r *CourseRepo) SoftDelete(id string) error {
	query := `UPDATE courses SET is_deleted = true, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("soft delete course: %w", err)
	}
	return nil
}
