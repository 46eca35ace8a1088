package entity

import "time"

// ContentItem representa una unidad de contenido de un curso (lección, video, lectura).
// SortOrder es nullable: los ítems sin orden explícito van después de todos los
// ordenados, en orden estable de creación entre ellos.
type ContentItem struct {
	ID        string
	CourseID  string
	Title     string
	SortOrder *int32
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
