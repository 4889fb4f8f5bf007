package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del proceso.
// Cada variable de entorno tiene default para dev local.
type Config struct {
	DBHost string `env:"DB_HOST" envDefault:"localhost"`
	DBUser string `env:"DB_USER" envDefault:"pet_user"`
	DBPass string `env:"DB_PASS" envDefault:"12345"`
	DBName string `env:"DB_NAME" envDefault:"pet_app"`
	DBPort int    `env:"DB_PORT" envDefault:"5432"`

	// Puerto HTTP de escucha.
	Port string `env:"PORT" envDefault:"3000"`

	// Directorio del front-end estático (fallback de rutas no-API).
	StaticDir string `env:"STATIC_DIR" envDefault:"./frontend"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// DatabaseURL arma el DSN de Postgres a partir de las piezas.
func (c Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

// Load lee la configuración desde el entorno.
// En dev intenta cargar .env primero (si existe).
func Load() (Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("loading .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing env config: %w", err)
	}
	return cfg, nil
}
