package access_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Academia-api/internal/application/access"
	"github.com/jhoicas/Academia-api/internal/domain"
	"github.com/jhoicas/Academia-api/internal/domain/entity"
	"github.com/jhoicas/Academia-api/internal/domain/repository"
	"github.com/jhoicas/Academia-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fake de TxRunner ejecuta el callback directo sobre los
// mismos repos: la atomicidad real la prueba la infraestructura, aquí interesa
// la máquina de estados.
// ──────────────────────────────────────────────────────────────────────────────

type fakePurchaseRepo struct {
	items       map[string]*entity.Purchase
	lockedReads int // lecturas GetByIDForUpdate observadas
}

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePurchaseRepo) GetByIDForUpdate(id string) (*entity.Purchase, error) {
	r.lockedReads++
	return r.GetByID(id)
}

func (r *fakePurchaseRepo) ListByUser(string, int, int) ([]*entity.Purchase, error) { return nil, nil }

func (r *fakePurchaseRepo) UpdateStatus(id, status string) error {
	r.items[id].Status = status
	r.items[id].UpdatedAt = time.Now()
	return nil
}

type fakeEnrollmentRepo struct {
	items map[string]*entity.Enrollment // key: userID|courseID
}

func enrollKey(userID, courseID string) string { return userID + "|" + courseID }

func (r *fakeEnrollmentRepo) GetByUserAndCourse(userID, courseID string) (*entity.Enrollment, error) {
	e, ok := r.items[enrollKey(userID, courseID)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEnrollmentRepo) Create(e *entity.Enrollment) error {
	cp := *e
	r.items[enrollKey(e.UserID, e.CourseID)] = &cp
	return nil
}

func (r *fakeEnrollmentRepo) SetAccess(id string, hasAccess bool) error {
	for _, e := range r.items {
		if e.ID == id {
			e.HasAccess = hasAccess
			e.UpdatedAt = time.Now()
		}
	}
	return nil
}

type fakeContentRepo struct {
	items  []*entity.ContentItem
	called bool // para verificar el corte en seco de AccessDenied
}

func (r *fakeContentRepo) Create(*entity.ContentItem) error { return nil }

func (r *fakeContentRepo) ListByCourse(courseID string) ([]*entity.ContentItem, error) {
	r.called = true
	var out []*entity.ContentItem
	for _, item := range r.items {
		if item.CourseID == courseID && !item.IsDeleted {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	purchases   *fakePurchaseRepo
	enrollments *fakeEnrollmentRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.PurchaseRepository, repository.EnrollmentRepository) error) error {
	return fn(r.purchases, r.enrollments)
}

type fixture struct {
	uc          *access.AccessUseCase
	purchases   *fakePurchaseRepo
	enrollments *fakeEnrollmentRepo
	content     *fakeContentRepo
}

func newFixture() *fixture {
	purchases := &fakePurchaseRepo{items: map[string]*entity.Purchase{}}
	enrollments := &fakeEnrollmentRepo{items: map[string]*entity.Enrollment{}}
	content := &fakeContentRepo{}
	tx := &fakeTxRunner{purchases: purchases, enrollments: enrollments}
	return &fixture{
		uc:          access.NewAccessUseCase(tx, enrollments, content, logger.Nop()),
		purchases:   purchases,
		enrollments: enrollments,
		content:     content,
	}
}

func (f *fixture) addPurchase(id, userID, courseID, status string) {
	f.purchases.items[id] = &entity.Purchase{
		ID:            id,
		UserID:        userID,
		CourseID:      courseID,
		Status:        status,
		PaymentMethod: "card",
		Amount:        decimal.RequireFromString("49.90"),
		PurchasedAt:   time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func int32p(v int32) *int32 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloCompleto_ConfirmYRefund(t *testing.T) {
	f := newFixture()
	f.addPurchase("p1", "u1", "c1", entity.PurchaseStatusPending)
	ctx := context.Background()

	// pending -> completed concede acceso
	out, err := f.uc.ConfirmPayment(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusCompleted, out.Purchase.Status)
	assert.True(t, out.Enrollment.HasAccess)

	ok, err := f.uc.CanAccessContent(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.True(t, ok, "tras confirmar el pago el usuario ve el contenido")

	// completed -> refunded revoca acceso pero conserva el enrollment
	out, err = f.uc.ProcessRefund(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusRefunded, out.Purchase.Status)
	assert.False(t, out.Enrollment.HasAccess)

	ok, err = f.uc.CanAccessContent(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.False(t, ok, "tras el refund el acceso queda revocado")

	stored, _ := f.enrollments.GetByUserAndCourse("u1", "c1")
	require.NotNil(t, stored, "el enrollment no se borra: es historial")
}

func TestRefundDirectoSobrePending(t *testing.T) {
	f := newFixture()
	f.addPurchase("p1", "u1", "c1", entity.PurchaseStatusPending)

	_, err := f.uc.ProcessRefund(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.PurchaseStatusPending, f.purchases.items["p1"].Status,
		"la transición inválida no debe tocar el estado")
}

func TestConfirmSobreCompleted(t *testing.T) {
	f := newFixture()
	f.addPurchase("p1", "u1", "c1", entity.PurchaseStatusCompleted)

	_, err := f.uc.ConfirmPayment(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransicionDesdeRefunded(t *testing.T) {
	f := newFixture()
	f.addPurchase("p1", "u1", "c1", entity.PurchaseStatusRefunded)
	ctx := context.Background()

	_, err := f.uc.ConfirmPayment(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "refunded es terminal")
	_, err = f.uc.ProcessRefund(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransicion_LeeConLockDeFila(t *testing.T) {
	// Las transiciones leen la compra con FOR UPDATE dentro de la transacción:
	// dos ConfirmPayment concurrentes se serializan y la segunda encuentra la
	// compra ya en completed, que es una transición inválida, no un fallo
	// opaco del store.
	f := newFixture()
	f.addPurchase("p1", "u1", "c1", entity.PurchaseStatusPending)
	ctx := context.Background()

	_, err := f.uc.ConfirmPayment(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, f.purchases.lockedReads, "la transición usa la lectura con lock")

	_, err = f.uc.ConfirmPayment(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"la confirmación perdedora ve el estado ya aplicado")
	assert.Equal(t, 2, f.purchases.lockedReads)
}

func TestConfirmCompraInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.ConfirmPayment(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecompraTrasRefund(t *testing.T) {
	// Cada compra tiene su propia máquina de estados; el enrollment del par
	// (user, course) refleja la última transición y conserva enrolled_at.
	f := newFixture()
	f.addPurchase("p1", "u1", "c1", entity.PurchaseStatusPending)
	ctx := context.Background()

	_, err := f.uc.ConfirmPayment(ctx, "p1")
	require.NoError(t, err)
	first, _ := f.enrollments.GetByUserAndCourse("u1", "c1")
	require.NotNil(t, first)

	_, err = f.uc.ProcessRefund(ctx, "p1")
	require.NoError(t, err)

	f.addPurchase("p2", "u1", "c1", entity.PurchaseStatusPending)
	_, err = f.uc.ConfirmPayment(ctx, "p2")
	require.NoError(t, err)

	ok, err := f.uc.CanAccessContent(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.True(t, ok, "la recompra reactiva el acceso")

	second, _ := f.enrollments.GetByUserAndCourse("u1", "c1")
	assert.Equal(t, first.ID, second.ID, "se reutiliza el mismo enrollment")
	assert.Equal(t, first.EnrolledAt, second.EnrolledAt, "enrolled_at conserva la primera compra completada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Chequeo de acceso y contenido
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccess_SinEnrollmentEsFalseNormal(t *testing.T) {
	f := newFixture()
	ok, err := f.uc.CanAccessContent(context.Background(), "u1", "c1")
	require.NoError(t, err, "no estar inscrito no es un error")
	assert.False(t, ok)
}

func TestCanAccess_EnrollmentRevocado(t *testing.T) {
	f := newFixture()
	f.enrollments.items[enrollKey("u1", "c1")] = &entity.Enrollment{
		ID: "e1", UserID: "u1", CourseID: "c1", HasAccess: false,
	}
	ok, err := f.uc.CanAccessContent(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.False(t, ok, "has_access=false manda aunque el registro exista")
}

func TestGetCourseContent_SinAccesoCortaEnSeco(t *testing.T) {
	f := newFixture()
	f.content.items = []*entity.ContentItem{{ID: "i1", CourseID: "c1", Title: "Intro"}}

	_, err := f.uc.GetCourseContent(context.Background(), "u1", "c1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.False(t, f.content.called, "sin acceso no se consulta contenido: cero filas filtradas")
}

func TestGetCourseContent_OrdenConNulos(t *testing.T) {
	f := newFixture()
	f.enrollments.items[enrollKey("u1", "c1")] = &entity.Enrollment{
		ID: "e1", UserID: "u1", CourseID: "c1", HasAccess: true,
	}
	base := time.Now()
	// Insertados en orden de creación con sort_order [3, 1, nil, 2]
	f.content.items = []*entity.ContentItem{
		{ID: "i3", CourseID: "c1", Title: "Tercero", SortOrder: int32p(3), CreatedAt: base},
		{ID: "i1", CourseID: "c1", Title: "Primero", SortOrder: int32p(1), CreatedAt: base.Add(time.Second)},
		{ID: "iN", CourseID: "c1", Title: "Sin orden", CreatedAt: base.Add(2 * time.Second)},
		{ID: "i2", CourseID: "c1", Title: "Segundo", SortOrder: int32p(2), CreatedAt: base.Add(3 * time.Second)},
	}

	items, err := f.uc.GetCourseContent(context.Background(), "u1", "c1")
	require.NoError(t, err)
	require.Len(t, items, 4)

	got := []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID}
	assert.Equal(t, []string{"i1", "i2", "i3", "iN"}, got,
		"orden explícito ascendente y los sin orden al final")
}

func TestGetCourseContent_NulosEstablesPorCreacion(t *testing.T) {
	f := newFixture()
	f.enrollments.items[enrollKey("u1", "c1")] = &entity.Enrollment{
		ID: "e1", UserID: "u1", CourseID: "c1", HasAccess: true,
	}
	base := time.Now()
	f.content.items = []*entity.ContentItem{
		{ID: "nA", CourseID: "c1", Title: "A", CreatedAt: base},
		{ID: "i1", CourseID: "c1", Title: "Uno", SortOrder: int32p(1), CreatedAt: base.Add(time.Second)},
		{ID: "nB", CourseID: "c1", Title: "B", CreatedAt: base.Add(2 * time.Second)},
	}

	items, err := f.uc.GetCourseContent(context.Background(), "u1", "c1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, "nA", items[1].ID, "entre ítems sin orden se respeta el orden de creación")
	assert.Equal(t, "nB", items[2].ID)
}

func TestGetCourseContent_ExcluyeEliminados(t *testing.T) {
	f := newFixture()
	f.enrollments.items[enrollKey("u1", "c1")] = &entity.Enrollment{
		ID: "e1", UserID: "u1", CourseID: "c1", HasAccess: true,
	}
	f.content.items = []*entity.ContentItem{
		{ID: "i1", CourseID: "c1", Title: "Visible", SortOrder: int32p(1)},
		{ID: "i2", CourseID: "c1", Title: "Borrado", SortOrder: int32p(2), IsDeleted: true},
	}

	items, err := f.uc.GetCourseContent(context.Background(), "u1", "c1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)
}
