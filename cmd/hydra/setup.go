package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thywilljoshua/hydra/internal/ai"
	"github.com/thywilljoshua/hydra/internal/analyze"
	"github.com/thywilljoshua/hydra/internal/config"
)

// loadConfig reads --config and applies --log-level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	var zc zap.Config
	if lvl == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// pipelineConfig builds the shared pipeline settings from the loaded config.
func pipelineConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (analyze.Config, error) {
	summarizer, err := ai.New(ctx, cfg.Summarizer.Provider, cfg.Summarizer.APIKey, cfg.Summarizer.Model)
	if err != nil {
		return analyze.Config{}, err
	}
	if g, ok := summarizer.(*ai.Gemini); ok {
		g.Logger = logger
	}
	return analyze.Config{
		MaxPages:   cfg.MaxPages,
		Rules:      cfg.Rules,
		Summarizer: summarizer,
		Logger:     logger,
	}, nil
}
