package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Academia-api/internal/application/dto"
	"github.com/jhoicas/Academia-api/internal/application/usecase"
	"github.com/jhoicas/Academia-api/internal/domain"
	"github.com/jhoicas/Academia-api/internal/domain/entity"
	"github.com/jhoicas/Academia-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCourseRepo struct {
	items map[string]*entity.Course
}

func (r *fakeCourseRepo) Create(c *entity.Course) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) GetByID(id string) (*entity.Course, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) ListActive(limit, offset int) ([]*entity.Course, error) {
	var out []*entity.Course
	for _, c := range r.items {
		if !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(c *entity.Course) error {
	stored := r.items[c.ID]
	stored.Name = c.Name
	stored.Price = c.Price
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCourseRepo) SoftDelete(id string) error {
	r.items[id].IsDeleted = true
	r.items[id].UpdatedAt = time.Now()
	return nil
}

type fakeContentItemRepo struct {
	items []*entity.ContentItem
}

func (r *fakeContentItemRepo) Create(item *entity.ContentItem) error {
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeContentItemRepo) ListByCourse(string) ([]*entity.ContentItem, error) { return nil, nil }

func newCourseUC() (*usecase.CourseUseCase, *fakeCourseRepo) {
	repo := &fakeCourseRepo{items: map[string]*entity.Course{}}
	content := &fakeContentItemRepo{}
	return usecase.NewCourseUseCase(repo, content, logger.Nop()), repo
}

func seedCourse(repo *fakeCourseRepo, id, adminID string) {
	owner := adminID
	repo.items[id] = &entity.Course{
		ID:      id,
		AdminID: &owner,
		Name:    "Go desde cero",
		Price:   decimal.RequireFromString("49.90"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y retiro de cursos
// ──────────────────────────────────────────────────────────────────────────────

func TestCourseUpdate_DuenoEdita(t *testing.T) {
	uc, repo := newCourseUC()
	seedCourse(repo, "c1", "admin-1")

	out, err := uc.Update(context.Background(), "admin-1", "c1", dto.UpdateCourseRequest{
		Name:  "Go avanzado",
		Price: decimal.RequireFromString("79.999"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Go avanzado", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("80")),
		"el precio se redondea a dos decimales, got %s", out.Price)
	assert.Equal(t, "Go avanzado", repo.items["c1"].Name)
}

func TestCourseUpdate_OtroAdminBloqueado(t *testing.T) {
	uc, repo := newCourseUC()
	seedCourse(repo, "c1", "admin-1")

	_, err := uc.Update(context.Background(), "admin-2", "c1", dto.UpdateCourseRequest{
		Name:  "Intruso",
		Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.Equal(t, "Go desde cero", repo.items["c1"].Name, "el curso no se toca")
}

func TestCourseUpdate_Validacion(t *testing.T) {
	uc, repo := newCourseUC()
	seedCourse(repo, "c1", "admin-1")

	_, err := uc.Update(context.Background(), "admin-1", "c1", dto.UpdateCourseRequest{
		Name:  "",
		Price: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Update(context.Background(), "admin-1", "c1", dto.UpdateCourseRequest{
		Name:  "Precio negativo",
		Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCourseDelete_RetiraDelCatalogo(t *testing.T) {
	uc, repo := newCourseUC()
	seedCourse(repo, "c1", "admin-1")

	require.NoError(t, uc.Delete(context.Background(), "admin-1", "c1"))
	assert.True(t, repo.items["c1"].IsDeleted, "retiro es soft delete: el historial queda")

	// retirado del catálogo: GetByID ya no lo devuelve
	_, err := uc.GetByID(context.Background(), "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// y una segunda eliminación tampoco lo encuentra
	err = uc.Delete(context.Background(), "admin-1", "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCourseDelete_OtroAdminBloqueado(t *testing.T) {
	uc, repo := newCourseUC()
	seedCourse(repo, "c1", "admin-1")

	err := uc.Delete(context.Background(), "admin-2", "c1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.False(t, repo.items["c1"].IsDeleted)
}

func TestCourseDelete_NoExiste(t *testing.T) {
	uc, _ := newCourseUC()
	err := uc.Delete(context.Background(), "admin-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddContentItem_OtroAdminBloqueado(t *testing.T) {
	uc, repo := newCourseUC()
	seedCourse(repo, "c1", "admin-1")

	_, err := uc.AddContentItem(context.Background(), "admin-2", "c1", dto.CreateContentItemRequest{
		Title: "Unidad 1",
	})
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}
