package config

import (
	"log"
	"os"
)

type Config struct {
	Port           string
	DBDSN          string
	LogFile        string
	AdminEmail     string
	AdminPassword  string
	AnthropicKey   string
	AnthropicModel string
}

func Load() Config {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		DBDSN:          getenv("DB_DSN", "fouraana.db"), // sqlite file in project root
		LogFile:        getenv("LOG_FILE", "./fouraana.log"),
		AdminEmail:     getenv("ADMIN_EMAIL", "sumanbasnet2030@gmail.com"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "sum@n2030"),
		AnthropicKey:   getenv("ANTHROPIC_API_KEY", ""),
		AnthropicModel: getenv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s ADMIN_EMAIL=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.AdminEmail)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
