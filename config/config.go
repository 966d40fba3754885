package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment. It is
// built once in main and passed by reference; nothing else reads os.Getenv.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	JWTSecret     []byte
	FrontendURL   string
	PublicBaseURL string
}

func Load() (*Config, error) {
	loadDotenv()

	cfg := &Config{
		Port:          envOr("PORT", "8000"),
		MongoURI:      os.Getenv("MONGO_URL"),
		DBName:        envOr("DB_NAME", "facebook-clone"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		FrontendURL:   envOr("FRONTEND_URL", "http://localhost:3000"),
		PublicBaseURL: envOr("PUBLIC_BASE_URL", "http://localhost:8000"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URL is not set")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			return
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
