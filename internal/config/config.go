package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// New reads configuration from environment variables (optionally loading .env files first)
// and unmarshals them into a struct of type T. Returns the populated configuration struct or an error.
//
// Variables already present in the process environment are never overwritten by
// a file, and earlier files win over later ones. Missing files are skipped.
func New[T any](envFiles ...string) (T, error) {
	var cfg T
	for _, file := range envFiles {
		if file == "" {
			continue
		}
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
