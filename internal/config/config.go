package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	ServerPort        string
	FrontendURL       string
	ArtistsPath       string
	TagsPath          string
	TaggedArtistsPath string
	RateLimit         string
	EnableHSTS        bool
	DebugMode         bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		FrontendURL:       getEnv("FRONTEND_URL", ""),
		ArtistsPath:       getEnv("ARTISTS_PATH", "data/artists.dat"),
		TagsPath:          getEnv("TAGS_PATH", "data/tags.dat"),
		TaggedArtistsPath: getEnv("TAGGED_ARTISTS_PATH", "data/user_taggedartists.dat"),
		RateLimit:         getEnv("RATE_LIMIT", "20-S"),
		EnableHSTS:        getEnvBool("ENABLE_HSTS", false),
		DebugMode:         getEnvBool("DEBUG_MODE", false),
	}

	if cfg.ArtistsPath == "" || cfg.TagsPath == "" || cfg.TaggedArtistsPath == "" {
		return nil, fmt.Errorf("dataset paths must not be empty (ARTISTS_PATH, TAGS_PATH, TAGGED_ARTISTS_PATH)")
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return nil, fmt.Errorf("SERVER_PORT must be numeric, got %q", cfg.ServerPort)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
