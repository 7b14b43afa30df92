// Package config loads runtime configuration for the notes summarizer CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file from the
//     working directory (see parseEnv).
//  3. Optional JSON or YAML file (see parseFile) selected via -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the summarizer API
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	NOTES_API_URL, NOTES_REQUEST_TIMEOUT, NOTES_SUCCESS_DISMISS,
//	NOTES_FAILURE_DISMISS, NOTES_MAX_FILE_BYTES, NOTES_DEFAULT_PROMPT,
//	NOTES_DEFAULT_SUBJECT, NOTES_LOG_LEVEL
//
// Durations in the environment use Go syntax ("3s").
//
// # File schema
//
// The file loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds. YAML uses the same keys:
//
//	{
//	  "api_base_url": "http://localhost:3001/api",
//	  "request_timeout": "60s",
//	  "success_dismiss_delay": "3s",
//	  "failure_dismiss_delay": "5s",
//	  "log_level": "info"
//	}
package config
