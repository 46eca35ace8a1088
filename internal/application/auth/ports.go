package auth

import "context"

// PasswordHasher puerto del motor de credenciales. Abstraído para poder
// inyectar una implementación determinista en tests; la real vive en
// pkg/password (PBKDF2-SHA512).
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (hash, salt string, err error)
	Verify(ctx context.Context, password, storedHash, storedSalt string) (bool, error)
}
