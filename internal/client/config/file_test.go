package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notesummarizer/internal/common"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	jsonPath := writeTemp(t, "cfg.json", `{
		"api_base_url": "http://json:9000/api",
		"request_timeout": "10s",
		"success_dismiss_delay": 1000000000,
		"default_prompt": ""
	}`)
	yamlPath := writeTemp(t, "cfg.yml", "api_base_url: http://yaml:9000/api\ndefault_subject: Standup\nlog_level: debug\n")

	t.Run("loads JSON", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", jsonPath}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "http://json:9000/api", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, time.Second, cfg.SuccessDismissDelay)
		assert.Equal(t, 5*time.Second, cfg.FailureDismissDelay, "absent keys keep defaults")
		assert.Equal(t, "", cfg.DefaultPrompt, "explicit empty prompt is honored")
	})

	t.Run("loads YAML", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", yamlPath}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "http://yaml:9000/api", cfg.APIBaseURL)
		assert.Equal(t, "Standup", cfg.DefaultSubject)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, DefaultPrompt, cfg.DefaultPrompt)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "defaults:1234", RequestTimeout: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := writeTemp(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}

func Test_readFile_UnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "cfg.toml", `api_base_url = "x"`)

	_, err := readFile(path)
	require.ErrorIs(t, err, common.ErrUnsupportedConfigFormat)
}
