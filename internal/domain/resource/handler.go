package resource

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el CRUD del recurso bajo el router recibido
// (el router ya cuelga de /api).
func RegisterRoutes(r chi.Router, svc *Service, log *slog.Logger) {
	def := svc.Definition()
	base := "/" + def.Path

	if def.ListBy != "" {
		// Listado filtrado por parámetro de path (events por pet_id).
		r.Get(base+"/{"+def.ListBy+"}", listByHandler(svc, log))
	} else {
		r.Get(base, listHandler(svc, log))
	}
	r.Post(base, createHandler(svc, log))
	r.Delete(base+"/{id}", deleteHandler(svc, log))
}

func listHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list failed", "resource", svc.Definition().Path, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if items == nil {
			items = []Record{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func listByHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	param := svc.Definition().ListBy
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid "+param)
			return
		}

		items, err := svc.ListBy(r.Context(), value)
		if err != nil {
			log.Error("list failed", "resource", svc.Definition().Path, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if items == nil {
			items = []Record{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func createHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		created, err := svc.Create(r.Context(), body)
		if err != nil {
			var ve ValidationError
			if errors.As(err, &ve) {
				writeError(w, http.StatusBadRequest, ve.Error())
				return
			}
			log.Error("create failed", "resource", svc.Definition().Path, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func deleteHandler(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			log.Error("delete failed", "resource", svc.Definition().Path, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": svc.Definition().DeletedMessage()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
