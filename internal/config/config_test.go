package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thywilljoshua/hydra/internal/analyze"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hydra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.MaxPages)
	assert.Equal(t, int64(25*1024*1024), cfg.MaxUploadBytes())
	assert.Equal(t, analyze.DefaultRules(), cfg.Rules)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
listen: ":9090"
max_pages: 5
analysis_timeout: 15s
rules:
  - keyword: indemnify
    severity: warn
  - keyword: governing law
    severity: info
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, 5, cfg.MaxPages)
	assert.Equal(t, Duration(15*time.Second), cfg.AnalysisTimeout)
	assert.Equal(t, "hydra.db", cfg.DBPath, "unset fields keep defaults")
	assert.Equal(t, []analyze.Rule{
		{Keyword: "indemnify", Severity: "warn"},
		{Keyword: "governing law", Severity: "info"},
	}, cfg.Rules)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HYDRA_MAX_PAGES", "7")
	t.Setenv("HYDRA_LISTEN", ":7000")
	t.Setenv("HYDRA_SUMMARIZER", "gemini")
	t.Setenv("GOOGLE_API_KEY", "secret")
	t.Setenv("HYDRA_ANALYSIS_TIMEOUT", "2m")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxPages)
	assert.Equal(t, ":7000", cfg.Listen)
	assert.Equal(t, "gemini", cfg.Summarizer.Provider)
	assert.Equal(t, "secret", cfg.Summarizer.APIKey)
	assert.Equal(t, Duration(2*time.Minute), cfg.AnalysisTimeout)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "max_pages: [oops"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "analysis_timeout: soon"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"negative pages":   func(c *Config) { c.MaxPages = -1 },
		"zero upload":      func(c *Config) { c.MaxUploadMB = 0 },
		"empty keyword":    func(c *Config) { c.Rules = []analyze.Rule{{Keyword: " ", Severity: "warn"}} },
		"empty severity":   func(c *Config) { c.Rules = []analyze.Rule{{Keyword: "x"}} },
		"bad log level":    func(c *Config) { c.LogLevel = "loud" },
		"gemini no key":    func(c *Config) { c.Summarizer.Provider = "gemini" },
		"unknown provider": func(c *Config) { c.Summarizer.Provider = "openai" },
		"no db path":       func(c *Config) { c.DBPath = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "hydra.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "data/hydra.db", cfg.DBPath)
	assert.Len(t, cfg.Rules, 4)
	assert.Equal(t, "indemnif", cfg.Rules[3].Keyword)
}
