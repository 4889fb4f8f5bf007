package memory

import (
	"context"
	"errors"

	"pet-registry/internal/domain/auth"
	"pet-registry/internal/domain/resource"
)

type usersRepo struct {
	db *DB
}

func NewUsersRepo(db *DB) auth.Repository {
	return &usersRepo{db: db}
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	for _, rec := range r.db.snapshot("users") {
		if s, _ := rec["username"].(string); s == username {
			return toUser(rec), nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (r *usersRepo) Insert(ctx context.Context, username string, email *string, passwordHash string) (int64, error) {
	// Emula el UNIQUE de users.username.
	for _, rec := range r.db.snapshot("users") {
		if s, _ := rec["username"].(string); s == username {
			return 0, errors.New(`duplicate key value violates unique constraint "users_username_key"`)
		}
	}

	rec := resource.Record{
		"username": username,
		"password": passwordHash,
	}
	if email != nil {
		rec["email"] = *email
	} else {
		rec["email"] = nil
	}

	return r.db.insert("users", rec), nil
}

func toUser(rec resource.Record) auth.User {
	u := auth.User{
		ID:       asInt64(rec["id"]),
		Username: rec["username"].(string),
	}
	if hash, ok := rec["password"].(string); ok {
		u.PasswordHash = hash
	}
	if email, ok := rec["email"].(string); ok {
		u.Email = &email
	}
	return u
}
