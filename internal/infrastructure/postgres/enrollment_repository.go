package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Academia-api/internal/domain/entity"
	"github.com/jhoicas/Academia-api/internal/domain/repository"
)

var _ repository.EnrollmentRepository = (*EnrollmentRepo)(nil)

const enrollmentColumns = `id, user_id, course_id, enrolled_at, has_access, updated_at`

// EnrollmentRepo implementación del puerto EnrollmentRepository sobre PostgreSQL (usable con pool o tx).
type EnrollmentRepo struct {
	q Querier
}

// NewEnrollmentRepository construye el adaptador de persistencia para enrollments. Pasar pool o tx (Querier).
func NewEnrollmentRepository(q Querier) *EnrollmentRepo {
	return &EnrollmentRepo{q: q}
}

// GetByUserAndCourse obtiene el enrollment vigente del par (user, course).
// El índice único del store garantiza a lo más una fila.
func (r *EnrollmentRepo) GetByUserAndCourse(userID, courseID string) (*entity.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE user_id = $1 AND course_id = $2`
	var e entity.Enrollment
	err := r.q.QueryRow(context.Background(), query, userID, courseID).Scan(
		&e.ID, &e.UserID, &e.CourseID, &e.EnrolledAt, &e.HasAccess, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return &e, nil
}

// Create persiste un nuevo enrollment (primera compra completada del curso).
func (r *EnrollmentRepo) Create(enrollment *entity.Enrollment) error {
	query := `
		INSERT INTO enrollments (` + enrollmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		enrollment.ID, enrollment.UserID, enrollment.CourseID,
		enrollment.EnrolledAt, enrollment.HasAccess, enrollment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert enrollment: %w", err)
	}
	return nil
}

// SetAccess actualiza has_access sin tocar enrolled_at: la fecha de la primera
// compra completada se conserva aunque el acceso se revoque y reconceda.
func (r *EnrollmentRepo) SetAccess(id string, hasAccess bool) error {
	query := `UPDATE enrollments SET has_access = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, hasAccess)
	if err != nil {
		return fmt.Errorf("update enrollment access: %w", err)
	}
	return nil
}
