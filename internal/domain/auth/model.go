package auth

// User es la fila de la tabla users. PasswordHash nunca sale por la API.
type User struct {
	ID           int64
	Username     string
	Email        *string
	PasswordHash string
}
