package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	envDatabasePath = "CRYSTALPAD_DB"
	envLanguage     = "CRYSTALPAD_LANG"
	envLogLevel     = "CRYSTALPAD_LOG_LEVEL"
	envLocale       = "LANG"
)

const dotenvFile = ".env"

// parseEnv overlays Config with environment variables. Variables from a
// .env file in the working directory are loaded first; they never override
// variables already present in the process environment.
//
// LANG is consulted for SystemLanguage only when CRYSTALPAD_LANG is unset
// and no earlier source provided a value.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}

	if v, ok := os.LookupEnv(envLanguage); ok && v != "" {
		cfg.SystemLanguage = v
	} else if cfg.SystemLanguage == "" {
		cfg.SystemLanguage = os.Getenv(envLocale)
	}
}
