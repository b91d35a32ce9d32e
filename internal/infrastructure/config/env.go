package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvAppEnv selects the .env.<name> overlay file.
const EnvAppEnv = "APP_ENV"

// LoadDotEnv loads .env and then .env.<APP_ENV> from the working directory.
// Missing files are not an error. Variables already set in the process win
// over .env, while the APP_ENV overlay overrides both.
func LoadDotEnv() (loaded []string, err error) {
	if fileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return loaded, fmt.Errorf("load .env: %w", err)
		}
		loaded = append(loaded, ".env")
	}

	appEnv := os.Getenv(EnvAppEnv)
	if appEnv == "" {
		return loaded, nil
	}
	overlay := ".env." + appEnv
	if !fileExists(overlay) {
		return loaded, nil
	}
	if err := godotenv.Overload(overlay); err != nil {
		return loaded, fmt.Errorf("load %s: %w", overlay, err)
	}
	return append(loaded, overlay), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
