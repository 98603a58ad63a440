// Package main provides the CLI entrypoint for pulse.
// It wires subcommands (build, classify), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"pulse/internal/config"
	"pulse/internal/registry"
	"pulse/pkg/logger"
	"pulse/pkg/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sourcePaths maps the configured input files onto source.Paths.
func sourcePaths(cfg *config.Config) source.Paths {
	return source.Paths{
		Domains:   cfg.Input.Domains,
		Inspect:   cfg.Input.Inspect,
		TLS:       cfg.Input.TLS,
		Analytics: cfg.Input.Analytics,
	}
}

// getBranches returns the configured branch table, or the built-in one.
func getBranches(ctx context.Context, cfg *config.Config) registry.BranchTable {
	if cfg.Input.Branches == "" {
		return registry.DefaultBranches()
	}

	branches, err := registry.LoadBranches(cfg.Input.Branches)
	if err != nil {
		logger.Fatal(ctx, "could not load branch table", zap.Error(err))
	}

	return branches
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "pulse",
		Short:        "Scores federal domains on HTTPS and analytics adoption",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config File Path (empty reads the environment only)")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	configPath := flags.String("c", "", "The config file path")
	// only -c matters here; everything else is cobra's to parse.
	_ = flags.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err = logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		buildCommand(cfg),
		classifyCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so the standard flag
// package does not trip over subcommands and their flags.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		case len(arg) > 3 && arg[:3] == "-c=":
			return []string{arg}
		case len(arg) > 9 && arg[:9] == "--config=":
			return []string{"-c", arg[9:]}
		}
	}

	return nil
}
