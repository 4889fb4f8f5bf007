package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost es fijo: cambiarlo no invalida hashes viejos
// (bcrypt guarda el costo en el hash).
const bcryptCost = 10

// ErrInvalidCredentials cubre usuario inexistente y password incorrecta
// con la misma respuesta (sin enumeración de usernames).
var ErrInvalidCredentials = errors.New("Invalid credentials")

// ValidationError es un rechazo 400 con mensaje literal del API.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register chequea unicidad del username y recién después inserta.
// El chequeo no es atómico con el insert: dos registros concurrentes del
// mismo username pueden pasar ambos (comportamiento heredado, la constraint
// UNIQUE de la tabla corta el segundo).
func (s *Service) Register(ctx context.Context, username string, email *string, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, ValidationError("Missing username or password")
	}

	_, err := s.repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return 0, ValidationError("Username already exists")
	case !errors.Is(err, ErrNotFound):
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return 0, err
	}

	return s.repo.Insert(ctx, username, email, string(hash))
}

// Login devuelve el usuario si username+password verifican.
func (s *Service) Login(ctx context.Context, username, password string) (User, error) {
	if username == "" || password == "" {
		return User{}, ValidationError("Missing username or password")
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
