package password

import (
	"context"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/sync/semaphore"
)

// Mínimos de seguridad; Params por debajo de estos valores se rechaza en New.
const (
	MinIterations = 100_000
	MinSaltBytes  = 16
	MinKeyBytes   = 64 // SHA-512 completo
)

// Params parámetros de derivación PBKDF2-SHA512. Se validan una sola vez en
// New: una mala configuración tumba el arranque, no una request.
type Params struct {
	Iterations int
	SaltBytes  int
	KeyBytes   int
}

// DefaultParams parámetros recomendados.
func DefaultParams() Params {
	return Params{Iterations: 150_000, SaltBytes: 16, KeyBytes: 64}
}

// Hasher deriva y verifica hashes de password. La derivación es CPU-bound y
// bloqueante, así que se acota con un semáforo ponderado al número de CPUs
// para no acaparar el scheduler bajo carga.
type Hasher struct {
	params Params
	sem    *semaphore.Weighted
}

// New construye el Hasher validando los parámetros (fail fast).
func New(p Params) (*Hasher, error) {
	if p.Iterations < MinIterations {
		return nil, fmt.Errorf("password: iteraciones %d por debajo del mínimo %d", p.Iterations, MinIterations)
	}
	if p.SaltBytes < MinSaltBytes {
		return nil, fmt.Errorf("password: salt de %d bytes por debajo del mínimo %d", p.SaltBytes, MinSaltBytes)
	}
	if p.KeyBytes < MinKeyBytes {
		return nil, fmt.Errorf("password: clave de %d bytes por debajo del mínimo %d", p.KeyBytes, MinKeyBytes)
	}
	return &Hasher{
		params: p,
		sem:    semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}, nil
}

// Hash genera un salt aleatorio y deriva el hash PBKDF2-SHA512 del password.
// Devuelve hash y salt en hex, listos para persistir. El password en claro no
// se guarda ni se loguea fuera de esta llamada.
func (h *Hasher) Hash(ctx context.Context, password string) (hash, salt string, err error) {
	if password == "" {
		return "", "", errors.New("password: el password no puede estar vacío")
	}
	saltBytes := make([]byte, h.params.SaltBytes)
	if _, err := io.ReadFull(rand.Reader, saltBytes); err != nil {
		return "", "", fmt.Errorf("password: generar salt: %w", err)
	}
	key, err := h.derive(ctx, password, saltBytes)
	if err != nil {
		return "", "", err
	}
	return hex.EncodeToString(key), hex.EncodeToString(saltBytes), nil
}

// Verify recalcula el hash con el salt almacenado y compara en tiempo
// constante. Un salt o hash mal codificado es error, no un simple false.
func (h *Hasher) Verify(ctx context.Context, password, storedHash, storedSalt string) (bool, error) {
	saltBytes, err := hex.DecodeString(storedSalt)
	if err != nil {
		return false, fmt.Errorf("password: salt almacenado inválido: %w", err)
	}
	expected, err := hex.DecodeString(storedHash)
	if err != nil {
		return false, fmt.Errorf("password: hash almacenado inválido: %w", err)
	}
	key, err := h.derive(ctx, password, saltBytes)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

func (h *Hasher) derive(ctx context.Context, password string, salt []byte) ([]byte, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("password: derivación cancelada: %w", err)
	}
	defer h.sem.Release(1)
	return pbkdf2.Key([]byte(password), salt, h.params.Iterations, h.params.KeyBytes, sha512.New), nil
}
