package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Academia-api/internal/application/dto"
	"github.com/jhoicas/Academia-api/internal/domain"
	"github.com/jhoicas/Academia-api/internal/domain/entity"
	"github.com/jhoicas/Academia-api/internal/domain/repository"
	"github.com/jhoicas/Academia-api/pkg/logger"
)

// AuthUseCase casos de uso de autenticación: signup, login y usuario actual.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher PasswordHasher
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, hasher PasswordHasher, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, log: log}
}

// Signup crea un usuario: valida campos y rol, hashea el password y persiste.
// El chequeo previo de email es optimista (UX); la unicidad real la impone el
// índice único del store, y una violación en Create también se traduce a
// ErrEmailAlreadyExists para cubrir la carrera entre chequeo e insert.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	role := in.Role
	if role == "" {
		role = entity.RoleConsumer
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	existing, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, uc.storeError("signup.find_by_email", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, salt, err := uc.hasher.Hash(ctx, in.Password)
	if err != nil {
		uc.log.Error().Err(err).Msg("derivación de password en signup")
		return nil, domain.ErrStore
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			// perdimos la carrera check-then-insert: mismo resultado para el caller
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, uc.storeError("signup.create", err)
	}
	return toUserResponse(user), nil
}

// Login verifica email y password y devuelve el usuario público.
// Email inexistente y password incorrecto responden lo mismo
// (ErrInvalidCredentials) para no revelar si la cuenta existe. La cuenta
// desactivada sí se distingue, pero solo después de verificar el password:
// quien no tiene las credenciales correctas nunca aprende que la cuenta existe.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, uc.storeError("login.find_by_email", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	ok, err := uc.hasher.Verify(ctx, in.Password, user.PasswordHash, user.PasswordSalt)
	if err != nil {
		uc.log.Error().Err(err).Msg("verificación de password en login")
		return nil, domain.ErrStore
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return toUserResponse(user), nil
}

// GetUserByID obtiene el usuario público por ID.
func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(id)
	if err != nil {
		return nil, uc.storeError("get_user.find_by_id", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return toUserResponse(user), nil
}

// DeactivateUser desactiva la cuenta del usuario. Operación administrativa e
// idempotente: desactivar una cuenta ya inactiva no es un error.
func (uc *AuthUseCase) DeactivateUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(id)
	if err != nil {
		return nil, uc.storeError("deactivate.find_by_id", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.IsActive {
		user.IsActive = false
		if err := uc.users.Update(user); err != nil {
			return nil, uc.storeError("deactivate.update", err)
		}
		user.UpdatedAt = time.Now()
	}
	return toUserResponse(user), nil
}

// DeleteUser elimina la cuenta de forma permanente. Las FKs RESTRICT del store
// protegen el historial: con compras registradas la eliminación devuelve
// ErrConflict y la cuenta sigue existiendo (desactivarla es la alternativa).
func (uc *AuthUseCase) DeleteUser(ctx context.Context, id string) error {
	user, err := uc.users.FindByID(id)
	if err != nil {
		return uc.storeError("delete.find_by_id", err)
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.users.Delete(id); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ErrConflict
		}
		return uc.storeError("delete.delete", err)
	}
	return nil
}

// storeError loguea el detalle del fallo de persistencia y devuelve el error
// opaco de dominio: el caller nunca ve errores crudos del store.
func (uc *AuthUseCase) storeError(op string, err error) error {
	uc.log.Error().Err(err).Str("op", op).Msg("fallo de persistencia")
	return domain.ErrStore
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
