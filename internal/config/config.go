package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	LexiconPath    string `env:"REELSENSE_LEXICON_PATH" default:"data/AFINN-en-165.txt"`
	ReviewsPath    string `env:"REELSENSE_REVIEWS_PATH" default:"data/cleaned_reviews.csv"`
	ReviewLimit    int    `env:"REELSENSE_REVIEW_LIMIT" default:"0"`
	WindowSize     int    `env:"REELSENSE_WINDOW_SIZE" default:"3"`
	TopN           int    `env:"REELSENSE_TOP_N" default:"5"`
	MatchThreshold int    `env:"REELSENSE_MATCH_THRESHOLD" default:"70"`
	ExportPath     string `env:"REELSENSE_EXPORT_PATH" default:"top_worst_movies.json"`

	Port        string `env:"PORT" default:"8080"`
	CORSOrigins string `env:"CORS_ORIGINS" default:"*"`
	LogLevel    string `env:"LOG_LEVEL" default:"info"`
	LogFormat   string `env:"LOG_FORMAT" default:"text"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Origins splits CORSOrigins on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func validate(cfg *Config) error {
	required := map[string]string{
		"REELSENSE_LEXICON_PATH": cfg.LexiconPath,
		"REELSENSE_REVIEWS_PATH": cfg.ReviewsPath,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.ReviewLimit < 0 {
		return errors.New("REELSENSE_REVIEW_LIMIT must not be negative")
	}
	if cfg.WindowSize < 1 {
		return fmt.Errorf("REELSENSE_WINDOW_SIZE must be at least 1, got %d", cfg.WindowSize)
	}
	if cfg.TopN < 1 {
		return fmt.Errorf("REELSENSE_TOP_N must be at least 1, got %d", cfg.TopN)
	}
	if cfg.MatchThreshold < 0 || cfg.MatchThreshold > 100 {
		return fmt.Errorf("REELSENSE_MATCH_THRESHOLD must be between 0 and 100, got %d", cfg.MatchThreshold)
	}

	return nil
}
