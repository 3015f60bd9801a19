// internal/config/config.go
//
// Runtime settings for both front ends.
// Responsibilities:
//   - Defaults for every setting.
//   - Load: read an optional .env, then apply environment overrides.
//
// Invalid numeric values keep their default and log a warning.

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all tunable settings for both front ends.
type Config struct {
	LogLevel        string
	Port            string
	ClientOrigin    string
	DictionaryFile  string // empty uses the embedded word list
	MaxWrongGuesses int
	HiddenMarker    string
	DailySalt       string
	RequestTimeout  time.Duration
}

// Defaults returns a Config with every default value.
func Defaults() *Config {
	return &Config{
		LogLevel:        "info",
		Port:            "5175",
		ClientOrigin:    "http://localhost:5173",
		MaxWrongGuesses: 6,
		HiddenMarker:    "-",
		DailySalt:       "local_dev_salt",
		RequestTimeout:  10 * time.Second,
	}
}

// Load reads an optional .env file, then applies environment variable
// overrides on top of Defaults. Invalid values keep their default.
func Load() *Config {
	_ = godotenv.Load()
	cfg := Defaults()

	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	overrideString(&cfg.Port, "PORT")
	overrideString(&cfg.ClientOrigin, "CLIENT_ORIGIN")
	overrideString(&cfg.DictionaryFile, "DICTIONARY_FILE")
	overrideString(&cfg.HiddenMarker, "HIDDEN_MARKER")
	overrideString(&cfg.DailySalt, "DAILY_SALT")
	overridePositiveInt(&cfg.MaxWrongGuesses, "MAX_WRONG_GUESSES")

	timeoutSec := int(cfg.RequestTimeout / time.Second)
	overridePositiveInt(&timeoutSec, "REQUEST_TIMEOUT_SEC")
	cfg.RequestTimeout = time.Duration(timeoutSec) * time.Second

	return cfg
}

func overridePositiveInt(field *int, envKey string) {
	val := os.Getenv(envKey)
	if val == "" {
		return
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		log.Warn().Str("key", envKey).Str("value", val).Msg("invalid config value, keeping default")
		return
	}
	*field = n
}

func overrideString(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
