package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log *slog.Logger) {
	r.Post("/register", registerHandler(svc, log))
	r.Post("/login", loginHandler(svc, log))
}

type registerRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResponse es la proyección mínima del usuario: nunca incluye password.
type userResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

func registerHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		id, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			var ve ValidationError
			if errors.As(err, &ve) {
				writeError(w, http.StatusBadRequest, ve.Error())
				return
			}
			log.Error("register failed", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		log.Info("user registered", "user_id", id)
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "User registered",
			"id":      id,
		})
	}
}

func loginHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		u, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			var ve ValidationError
			switch {
			case errors.As(err, &ve):
				writeError(w, http.StatusBadRequest, ve.Error())
			case errors.Is(err, ErrInvalidCredentials):
				// Mismo mensaje para username desconocido y password errónea.
				writeError(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
			default:
				log.Error("login failed", "error", err)
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Login successful",
			"user":    userResponse{ID: u.ID, Username: u.Username, Email: u.Email},
		})
	}
}

// writeJSON está duplicado a propósito entre módulos para no crear
// helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
