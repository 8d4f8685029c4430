// Package config loads hydra settings from an optional YAML file and
// environment overrides. The resulting Config is built once at startup and
// passed down explicitly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thywilljoshua/hydra/internal/analyze"
)

type Config struct {
	Listen          string           `yaml:"listen"`
	DBPath          string           `yaml:"db_path"`
	MaxPages        int              `yaml:"max_pages"`
	MaxUploadMB     int              `yaml:"max_upload_mb"`
	AnalysisTimeout Duration         `yaml:"analysis_timeout"`
	LogLevel        string           `yaml:"log_level"`
	Rules           []analyze.Rule   `yaml:"rules"`
	Summarizer      SummarizerConfig `yaml:"summarizer"`
}

type SummarizerConfig struct {
	Provider string `yaml:"provider"` // off | gemini
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// Duration is a time.Duration that unmarshals from strings like "45s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	v, err := time.ParseDuration(n.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", n.Value, err)
	}
	*d = Duration(v)
	return nil
}

func Default() *Config {
	return &Config{
		Listen:          ":8000",
		DBPath:          "hydra.db",
		MaxPages:        20,
		MaxUploadMB:     25,
		AnalysisTimeout: Duration(60 * time.Second),
		LogLevel:        "info",
		Rules:           analyze.DefaultRules(),
		Summarizer: SummarizerConfig{
			Provider: "off",
			Model:    "gemini-2.5-flash",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from HYDRA_* variables and GOOGLE_API_KEY.
func (c *Config) ApplyEnv() {
	c.Listen = getEnv("HYDRA_LISTEN", c.Listen)
	c.DBPath = getEnv("HYDRA_DB_PATH", c.DBPath)
	c.MaxPages = getEnvAsInt("HYDRA_MAX_PAGES", c.MaxPages)
	c.MaxUploadMB = getEnvAsInt("HYDRA_MAX_UPLOAD_MB", c.MaxUploadMB)
	c.AnalysisTimeout = Duration(getEnvAsDuration("HYDRA_ANALYSIS_TIMEOUT", time.Duration(c.AnalysisTimeout)))
	c.LogLevel = getEnv("HYDRA_LOG_LEVEL", c.LogLevel)
	c.Summarizer.Provider = getEnv("HYDRA_SUMMARIZER", c.Summarizer.Provider)
	c.Summarizer.Model = getEnv("HYDRA_SUMMARIZER_MODEL", c.Summarizer.Model)
	c.Summarizer.APIKey = getEnv("GOOGLE_API_KEY", c.Summarizer.APIKey)
}

func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("max_pages must be >= 0")
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be > 0")
	}
	if c.AnalysisTimeout < 0 {
		return fmt.Errorf("analysis_timeout must be >= 0")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log_level %q (use debug, info, warn or error)", c.LogLevel)
	}
	for i, r := range c.Rules {
		if strings.TrimSpace(r.Keyword) == "" {
			return fmt.Errorf("rules[%d]: keyword is required", i)
		}
		if strings.TrimSpace(r.Severity) == "" {
			return fmt.Errorf("rules[%d]: severity is required", i)
		}
	}
	switch strings.ToLower(c.Summarizer.Provider) {
	case "", "off":
	case "gemini":
		if c.Summarizer.APIKey == "" {
			return fmt.Errorf("summarizer gemini requires GOOGLE_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported summarizer.provider %q (use off or gemini)", c.Summarizer.Provider)
	}
	return nil
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) * 1024 * 1024 }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
