package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/notesummarizer/internal/common"
	"github.com/dmitrijs2005/notesummarizer/internal/flagx"
	"github.com/dmitrijs2005/notesummarizer/internal/timex"
)

// FileConfig is a DTO used exclusively for file unmarshalling. Zero values
// mean "not set" and leave the corresponding Config field untouched.
type FileConfig struct {
	APIBaseURL          string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	SuccessDismissDelay timex.Duration `json:"success_dismiss_delay" yaml:"success_dismiss_delay"`
	FailureDismissDelay timex.Duration `json:"failure_dismiss_delay" yaml:"failure_dismiss_delay"`
	MaxFileBytes        int64          `json:"max_file_bytes" yaml:"max_file_bytes"`
	DefaultPrompt       *string        `json:"default_prompt" yaml:"default_prompt"`
	DefaultSubject      string         `json:"default_subject" yaml:"default_subject"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays Config with values loaded from the file named by the
// -c / -config flags. The format follows the extension: .json, .yaml or .yml.
// Panics on read or decode errors, like the rest of config loading.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	fc, err := readFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func readFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%s: %w", path, common.ErrUnsupportedConfigFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.SuccessDismissDelay.Duration > 0 {
		cfg.SuccessDismissDelay = fc.SuccessDismissDelay.Duration
	}
	if fc.FailureDismissDelay.Duration > 0 {
		cfg.FailureDismissDelay = fc.FailureDismissDelay.Duration
	}
	if fc.MaxFileBytes != 0 {
		cfg.MaxFileBytes = fc.MaxFileBytes
	}
	if fc.DefaultPrompt != nil {
		cfg.DefaultPrompt = *fc.DefaultPrompt
	}
	if fc.DefaultSubject != "" {
		cfg.DefaultSubject = fc.DefaultSubject
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
