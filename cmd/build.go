package main

import (
	"context"
	"os/signal"
	"pulse/internal/config"
	"pulse/internal/pipeline"
	"pulse/pkg/logger"
	"pulse/pkg/output/fsdir"
	"pulse/pkg/serrors"
	"pulse/pkg/source"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func buildCommand(cfg *config.Config) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scores every domain and writes the HTTPS and analytics tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			paths := sourcePaths(cfg)
			ctx = logger.WithFields(ctx,
				zap.String("runID", uuid.NewString()),
				zap.String("domainsPath", paths.Domains),
				zap.String("inspectPath", paths.Inspect),
				zap.String("tlsPath", paths.TLS),
				zap.String("analyticsPath", paths.Analytics))

			p := pipeline.New(getBranches(ctx, cfg), nil)

			done := p.Recorder().Stage("load")
			in, err := source.Load(ctx, paths)
			done()
			if err != nil {
				logger.Error(ctx, "could not load inputs", zap.Error(err))

				return err
			}

			report, err := p.Run(ctx, in)
			if err != nil {
				fields := []zap.Field{zap.Error(err)}
				if kind := serrors.KindOf(err); kind != nil {
					fields = append(fields, zap.String("kind", kind.Error()))
				}
				logger.Error(ctx, "build failed", fields...)

				return err
			}

			if dryRun {
				logger.Info(ctx, "dry run, skipping output")
			} else {
				sink := fsdir.New(fsdir.Options{
					TablesDir: cfg.Output.Tables,
					StatsDir:  cfg.Output.Stats,
					Indent:    cfg.Output.Indent,
				})
				if err = p.Publish(ctx, sink, report); err != nil {
					logger.Error(ctx, "could not publish tables", zap.Error(err))

					return err
				}
			}

			if cfg.Metrics.Textfile != "" {
				p.Recorder().Finish(time.Now())
				if err = p.Recorder().WriteTextfile(cfg.Metrics.Textfile); err != nil {
					// metrics are best effort
					logger.Warn(ctx, "could not write metrics textfile", zap.Error(err))
				}
			}

			printSummary(cmd, report)

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute everything but write no tables")

	return cmd
}

func printSummary(cmd *cobra.Command, report *pipeline.Report) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	w := cmd.OutOrStdout()
	_, _ = bold.Fprintf(w, "%d domains, %d agencies\n", report.Stats.Domains, report.Stats.Agencies)
	_, _ = green.Fprintf(w, "https:     %3d%% active (%d domains, %d agencies)\n",
		report.HTTPS.Active, len(report.Result.HTTPSDomains), len(report.Result.HTTPSAgencies))
	_, _ = green.Fprintf(w, "analytics: %3d%% active (%d domains, %d agencies)\n",
		report.Analytics.Active, len(report.Result.AnalyticsDomains), len(report.Result.AnalyticsAgencies))
	if report.Stats.Malformed > 0 {
		_, _ = yellow.Fprintf(w, "%d malformed numeric values treated as absent\n", report.Stats.Malformed)
	}
}
