package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	SerpAPIKey     string
	SerpAPIBaseURL string
	// parâmetros de mercado do google_shopping
	SearchGL     string
	SearchHL     string
	GoogleDomain string
	SearchNum    int
	// tempo máximo da chamada ao provedor
	SearchTimeout time.Duration

	HTTPAddr    string
	MetricsPort string
	RedisURL    string
	SessionTTL  time.Duration
	DatabaseURL string
	CatalogFile string
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		SerpAPIKey:     os.Getenv("SERPAPI_KEY"),
		SerpAPIBaseURL: getEnv("SERPAPI_BASE_URL", "https://serpapi.com"),
		SearchGL:       getEnv("SEARCH_GL", "in"),
		SearchHL:       getEnv("SEARCH_HL", "en"),
		GoogleDomain:   getEnv("SEARCH_GOOGLE_DOMAIN", "google.co.in"),
		SearchNum:      getEnvInt("SEARCH_NUM", 50),
		SearchTimeout:  time.Duration(getEnvInt("SEARCH_TIMEOUT_SEC", 30)) * time.Second,
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		MetricsPort:    getEnv("METRICS_PORT", "9090"),
		RedisURL:       os.Getenv("REDIS_URL"),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MIN", 30)) * time.Minute,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		CatalogFile:    os.Getenv("CATALOG_FILE"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return d
	}
	return n
}
