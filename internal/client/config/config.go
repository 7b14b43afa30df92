package config

import "time"

// DefaultPrompt is the instruction text the prompt field starts with.
const DefaultPrompt = "Summarize the following meeting notes in bullet points, highlighting key decisions and action items:"

// DefaultSubject is the subject line the email dialog starts with.
const DefaultSubject = "Meeting Summary"

// Config holds runtime settings for the notes summarizer CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend; /summarize and /email hang off it.
//   - RequestTimeout: upper bound for a single summarize or email request.
//   - SuccessDismissDelay: how long the email success message stays up.
//   - FailureDismissDelay: how long the email failure message stays up.
//   - MaxFileBytes: largest notes file the client will read from disk.
//   - DefaultPrompt, DefaultSubject: initial values of the editable fields.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	SuccessDismissDelay time.Duration
	FailureDismissDelay time.Duration
	MaxFileBytes        int64
	DefaultPrompt       string
	DefaultSubject      string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3001/api"
	c.RequestTimeout = 60 * time.Second
	c.SuccessDismissDelay = 3 * time.Second
	c.FailureDismissDelay = 5 * time.Second
	c.MaxFileBytes = 10 << 20
	c.DefaultPrompt = DefaultPrompt
	c.DefaultSubject = DefaultSubject
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file), a config file (if given) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
