package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	DataDir   string
	OutputDir string

	SimilarityThreshold float64
	MinMatchScore       float64
	UsedPriceMin        float64
	UsedPriceMax        float64
	NewPriceMin         float64
	NewPriceMax         float64
	ReportLimit         int
	ReportWorkers       int

	FlatShippingFee float64
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		DataDir:   getEnv("DATA_DIR", filepath.Join(cwd, "data")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		SimilarityThreshold: getEnvFloat("MATCH_SIMILARITY_THRESHOLD", 80),
		MinMatchScore:       getEnvFloat("MATCH_MIN_SCORE", 70),
		UsedPriceMin:        getEnvFloat("USED_PRICE_MIN", 500),
		UsedPriceMax:        getEnvFloat("USED_PRICE_MAX", 900),
		NewPriceMin:         getEnvFloat("NEW_PRICE_MIN", 800),
		NewPriceMax:         getEnvFloat("NEW_PRICE_MAX", 1500),
		ReportLimit:         getEnvInt("REPORT_LIMIT", 100),
		ReportWorkers:       getEnvInt("REPORT_WORKERS", 1),

		FlatShippingFee: getEnvFloat("FLAT_SHIPPING_FEE", 30),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
