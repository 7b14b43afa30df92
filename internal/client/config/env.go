package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with NOTES_* environment variables. envFile, when
// it exists, is loaded first; variables already set in the process win over
// the file. Malformed numbers and durations are ignored.
func parseEnv(cfg *Config, envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if v := os.Getenv("NOTES_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	envDuration("NOTES_REQUEST_TIMEOUT", &cfg.RequestTimeout)
	envDuration("NOTES_SUCCESS_DISMISS", &cfg.SuccessDismissDelay)
	envDuration("NOTES_FAILURE_DISMISS", &cfg.FailureDismissDelay)
	if v := os.Getenv("NOTES_MAX_FILE_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxFileBytes = n
		}
	}
	if v, ok := os.LookupEnv("NOTES_DEFAULT_PROMPT"); ok {
		cfg.DefaultPrompt = v
	}
	if v := os.Getenv("NOTES_DEFAULT_SUBJECT"); v != "" {
		cfg.DefaultSubject = v
	}
	if v := os.Getenv("NOTES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func envDuration(key string, dst *time.Duration) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
	}
}
