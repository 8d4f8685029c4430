package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thywilljoshua/hydra/internal/analyze"
)

func analyzeCmd() *cobra.Command {
	var maxPages int
	var aiProvider string
	var format string
	var out string
	var jobs int

	cmd := &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Analyze PDF or text documents and print their clauses, summary and flags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-pages") {
				cfg.MaxPages = maxPages
			}
			if cmd.Flags().Changed("ai") {
				cfg.Summarizer.Provider = aiProvider
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			format = strings.ToLower(format)
			if format != "json" && format != "markdown" {
				return fmt.Errorf("unsupported --format %q (use json or markdown)", format)
			}
			if jobs < 1 {
				jobs = 1
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := cmd.Context()
			base, err := pipelineConfig(ctx, cfg, logger)
			if err != nil {
				return err
			}

			results := make([]*analyze.DocumentAnalysis, len(args))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(jobs)
			for i, path := range args {
				g.Go(func() error {
					res, err := analyze.Run(gctx, path, base)
					if err != nil {
						return err
					}
					results[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if format == "markdown" {
				return writeReports(cmd.OutOrStdout(), out, results, logger)
			}
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().IntVar(&maxPages, "max-pages", 20, "maximum pages scanned per document (0 = all)")
	cmd.Flags().StringVar(&aiProvider, "ai", "off", "summarizer: off|gemini")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json|markdown")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory for markdown reports")
	cmd.Flags().IntVar(&jobs, "jobs", 4, "documents analyzed concurrently")
	return cmd
}

// writeJSON prints a single object for one document and an array otherwise.
func writeJSON(w io.Writer, results []*analyze.DocumentAnalysis) error {
	var v any = results
	if len(results) == 1 {
		v = results[0]
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeReports(w io.Writer, outDir string, results []*analyze.DocumentAnalysis, logger *zap.Logger) error {
	filenames := make([]string, len(results))
	for i, res := range results {
		filenames[i] = res.Filename
	}
	for i, name := range analyze.ReportNames(filenames) {
		path, err := analyze.WriteReportAs(outDir, name, results[i])
		if err != nil {
			return err
		}
		logger.Debug("report written", zap.String("path", path))
		fmt.Fprintln(w, path)
	}
	return nil
}
