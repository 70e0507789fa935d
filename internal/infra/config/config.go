// internal/infra/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds every environment-derived setting the service needs.
type Config struct {
	Port string

	// PostgreSQL connection settings
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	DatabaseSSL      bool

	// GalaChain token-contract gateway base URL
	GalaChainAPI string

	// CORS origins allowed to call the API
	AllowedOrigins []string

	// Gems granted per 1 GALA
	GemExchangeRate int
}

const defaultGalaChainAPI = "https://gateway-mainnet.galachain.com/api/asset/token-contract"

// Load reads the environment once and returns the resulting Config.
func Load() *Config {
	return &Config{
		Port: getenvDefault("PORT", "4000"),

		DatabaseHost:     getenvDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getenvDefault("DATABASE_PORT", "5432"),
		DatabaseUser:     getenvDefault("DATABASE_USER", "postgres"),
		DatabasePassword: getenvDefault("DATABASE_PASSWORD", "postgres"),
		DatabaseName:     getenvDefault("DATABASE_NAME", "nft_collection"),
		DatabaseSSL:      os.Getenv("DATABASE_SSL") == "true",

		GalaChainAPI: getenvDefault("GALACHAIN_API", defaultGalaChainAPI),

		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),

		GemExchangeRate: getenvIntDefault("GEM_EXCHANGE_RATE", 10),
	}
}

func splitOrigins(s string) []string {
	if strings.TrimSpace(s) == "" {
		// local dev fronts (Vite / CRA)
		return []string{"http://localhost:3000", "http://localhost:5173"}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
