package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thywilljoshua/hydra/internal/server"
	"github.com/thywilljoshua/hydra/internal/store"
)

func serveCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis pipeline over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pipeline, err := pipelineConfig(ctx, cfg, logger)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.DBPath, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			logger.Info("starting hydra",
				zap.String("listen", cfg.Listen),
				zap.String("db", cfg.DBPath),
				zap.Int("max_pages", cfg.MaxPages),
				zap.String("summarizer", cfg.Summarizer.Provider),
			)
			srv := server.New(server.Options{
				Pipeline:        pipeline,
				Store:           st,
				Logger:          logger,
				MaxUploadBytes:  cfg.MaxUploadBytes(),
				AnalysisTimeout: time.Duration(cfg.AnalysisTimeout),
			})
			return srv.ListenAndServe(ctx, cfg.Listen)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	return cmd
}
