package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCourseRequest entrada para publicar un curso (solo admins).
type CreateCourseRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=300"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

// UpdateCourseRequest entrada para editar nombre y precio de un curso.
type UpdateCourseRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=300"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

// CourseResponse salida de un curso.
type CourseResponse struct {
	ID        string          `json:"id"`
	AdminID   *string         `json:"admin_id,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateContentItemRequest entrada para agregar contenido a un curso.
// SortOrder es opcional: sin orden explícito el ítem va al final.
type CreateContentItemRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=300"`
	SortOrder *int32 `json:"sort_order,omitempty"`
}

// ContentItemResponse salida de una unidad de contenido.
type ContentItemResponse struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	SortOrder *int32    `json:"sort_order,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
