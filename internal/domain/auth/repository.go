package auth

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	// GetByUsername devuelve ErrNotFound si no existe.
	GetByUsername(ctx context.Context, username string) (User, error)
	Insert(ctx context.Context, username string, email *string, passwordHash string) (int64, error)
}
