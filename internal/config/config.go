package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort       string
	DatabaseDSN    string
	CORSOrigins    string
	BarcodeTmpPath string // Directorio para las imágenes transitorias de códigos de barras
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8000"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=puntoventa port=5432 sslmode=disable"),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "*"),
		BarcodeTmpPath: getEnv("BARCODE_TMP_PATH", os.TempDir()),
	}

	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=puntoventa port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN con valor por defecto; define tu propia conexión Postgres en producción.")
	}
	if cfg.CORSOrigins == "*" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS abierto a cualquier origen; restríngelo en producción.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
