package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/friendly"
	"github.com/aretw0/friendly/internal/config"
	"github.com/aretw0/friendly/internal/logging"
	"github.com/aretw0/friendly/internal/sketch"
	"github.com/aretw0/friendly/pkg/docs"
	"github.com/aretw0/friendly/pkg/host"
)

var rootCmd = &cobra.Command{
	Use:   "friendly",
	Short: "Friendly errors for a documented class library",
	Long: `friendly wraps the documented classes of a namespace so that every call is
checked against its reference documentation, and serves that reference over
the terminal, HTTP and MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().String("docs", "", "Documentation file (YAML or data.json); defaults to the bundled sample")
	rootCmd.PersistentFlags().String("namespace", "", "Namespace (root class) name")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
}

// settings resolves the config file and applies flag overrides.
func settings(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return cfg, nil, err
	}

	overrides := map[string]*string{
		"docs":       &cfg.Docs,
		"namespace":  &cfg.Namespace,
		"log-level":  &cfg.LogLevel,
		"log-format": &cfg.LogFormat,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(level, cfg.LogFormat, os.Stderr), nil
}

func loadDocs(cfg config.Config) (*docs.Registry, error) {
	if cfg.Docs == "" {
		return sketch.Docs()
	}
	return docs.Load(cfg.Docs)
}

// buildEngine proxies the bundled sample namespace, or an empty namespace
// when a different namespace name is configured.
// engineOptions maps the configuration onto engine options. Every command
// that builds an engine goes through here.
func engineOptions(cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) []friendly.Option {
	opts := []friendly.Option{
		friendly.WithLogger(logger),
		friendly.WithReferenceBaseURL(cfg.ReferenceURL),
		friendly.WithPrivatePrefix(cfg.PrivatePrefix),
	}
	if reg != nil {
		opts = append(opts, friendly.WithMetrics(reg))
	}
	return opts
}

func buildEngine(cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*friendly.Engine, error) {
	classes, err := loadDocs(cfg)
	if err != nil {
		return nil, err
	}

	ns := sketch.New()
	if cfg.Namespace != sketch.Namespace {
		ns = host.NewNamespace(cfg.Namespace)
	}

	eng, err := friendly.New(ns, classes, engineOptions(cfg, logger, reg)...)
	if err != nil {
		return nil, err
	}
	if err := eng.Run(); err != nil {
		return nil, fmt.Errorf("proxying failed: %w", err)
	}
	return eng, nil
}
