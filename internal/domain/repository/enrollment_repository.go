package repository

import "github.com/jhoicas/Academia-api/internal/domain/entity"

// EnrollmentRepository define el puerto de persistencia para Enrollment.
// El índice único (user_id, course_id) garantiza a lo más un registro por par.
type EnrollmentRepository interface {
	GetByUserAndCourse(userID, courseID string) (*entity.Enrollment, error)
	Create(enrollment *entity.Enrollment) error
	// SetAccess actualiza has_access sin tocar enrolled_at (se preserva la
	// fecha de la primera compra completada).
	SetAccess(id string, hasAccess bool) error
}
