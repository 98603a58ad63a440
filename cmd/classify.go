package main

import (
	"context"
	"fmt"
	"pulse/internal/classifier"
	"pulse/internal/config"
	"pulse/internal/pipeline"
	"pulse/pkg/domain"
	"pulse/pkg/logger"
	"pulse/pkg/output"
	"pulse/pkg/serrors"
	"pulse/pkg/source"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func classifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <domain>",
		Short: "Prints the rows a single domain would contribute to each track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			name := source.NormalizeHost(args[0])

			in, err := source.Load(ctx, sourcePaths(cfg))
			if err != nil {
				logger.Error(ctx, "could not load inputs", zap.Error(err))

				return err
			}

			reg, _ := pipeline.New(getBranches(ctx, cfg), nil).Registry(ctx, in)
			d, ok := reg.Domain(name)
			if !ok {
				return serrors.With(serrors.ErrNotFound, "domain %s is not an admitted federal domain", name)
			}

			return printDomain(cmd, d, cfg.Output.Indent)
		},
	}

	return cmd
}

func printDomain(cmd *cobra.Command, d *domain.Domain, indent int) error {
	w := cmd.OutOrStdout()
	heading := color.New(color.FgCyan, color.Bold)
	muted := color.New(color.Faint)

	_, _ = heading.Fprintf(w, "%s (%s, %s)\n", d.Name, d.Agency, d.Branch)

	_, _ = heading.Fprintln(w, "https")
	if classifier.EligibleForHTTPS(d) {
		row, err := classifier.HTTPSRow(d)
		if err != nil {
			return fmt.Errorf("could not classify %s: %w", d.Name, err)
		}
		_, _ = fmt.Fprintln(w, string(output.EncodeHTTPSDomains([]domain.HTTPSRow{row}, indent)))
	} else {
		_, _ = muted.Fprintln(w, "not eligible: "+httpsIneligibility(d))
	}

	_, _ = heading.Fprintln(w, "analytics")
	if classifier.EligibleForAnalytics(d) {
		row, err := classifier.AnalyticsRow(d)
		if err != nil {
			return fmt.Errorf("could not classify %s: %w", d.Name, err)
		}
		_, _ = fmt.Fprintln(w, string(output.EncodeAnalyticsDomains([]domain.AnalyticsRow{row}, indent)))
	} else {
		_, _ = muted.Fprintln(w, "not eligible: "+analyticsIneligibility(d))
	}

	return nil
}

func httpsIneligibility(d *domain.Domain) string {
	if d.Inspect == nil {
		return "no inspect scan"
	}

	return "live=" + d.Inspect.Live.String()
}

func analyticsIneligibility(d *domain.Domain) string {
	switch {
	case d.Inspect == nil:
		return "no inspect scan"
	case d.Analytics == nil:
		return "no analytics scan"
	}

	return fmt.Sprintf("live=%s redirect=%s branch=%s",
		d.Inspect.Live.String(), d.Inspect.Redirect.String(), d.Branch)
}
