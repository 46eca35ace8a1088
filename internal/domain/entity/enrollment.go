package entity

import "time"

// Enrollment representa el estado de acceso vigente de un usuario a un curso.
// Existe a lo más un Enrollment por par (user, course); HasAccess es la única
// fuente de verdad para la visibilidad de contenido, independiente del
// historial de Purchase. Solo el motor de acceso escribe HasAccess.
type Enrollment struct {
	ID         string
	UserID     string
	CourseID   string
	EnrolledAt time.Time // primera vez que se completó una compra del curso
	HasAccess  bool
	UpdatedAt  time.Time
}
