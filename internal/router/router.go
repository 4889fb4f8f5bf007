package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	mem "pet-registry/internal/adapters/storage/memory"
	pg "pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/domain/admin"
	"pet-registry/internal/domain/auth"
	"pet-registry/internal/domain/resource"
	"pet-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Options struct {
	// DB: si viene, usa Postgres. Si no, in-memory (dev/tests).
	DB *pgxpool.Pool

	Log *slog.Logger

	// StaticDir: raíz del front-end para el fallback de rutas no-API.
	StaticDir string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Health no toca la base: responde ok siempre.
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	var (
		repoFor   func(resource.Definition) resource.Repository
		usersRepo auth.Repository
		statsRepo admin.Repository
	)

	if opts.DB != nil {
		repoFor = func(def resource.Definition) resource.Repository {
			return pg.NewResourceRepo(opts.DB, def)
		}
		usersRepo = pg.NewUsersRepo(opts.DB)
		statsRepo = pg.NewStatsRepo(opts.DB)
	} else {
		mdb := mem.NewDB()
		repoFor = func(def resource.Definition) resource.Repository {
			return mem.NewResourceRepo(mdb, def)
		}
		usersRepo = mem.NewUsersRepo(mdb)
		statsRepo = mem.NewStatsRepo(mdb)
	}

	r.Route("/api", func(api chi.Router) {
		for _, def := range resource.Definitions() {
			resource.RegisterRoutes(api, resource.NewService(def, repoFor(def)), log)
		}
		auth.RegisterRoutes(api, auth.NewService(usersRepo), log)
		admin.RegisterRoutes(api, admin.NewService(statsRepo), log)
	})

	// Rutas no matcheadas: archivos estáticos del front, después 404.
	r.NotFound(staticFallback(opts.StaticDir))

	return r
}

func staticFallback(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dir != "" && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
			p := r.URL.Path
			if p == "/" {
				p = "/register.html"
			}
			full := filepath.Join(dir, filepath.Clean("/"+p))
			if fi, err := os.Stat(full); err == nil && !fi.IsDir() {
				http.ServeFile(w, r, full)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
