// Package main provides the arshin binary entry point: a small CLI for
// validating unit catalogs, listing their contents and converting values
// between units.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/khristoforovs/arshin/catalog"
	"github.com/khristoforovs/arshin/config"
	"github.com/khristoforovs/arshin/quantity"
	"github.com/khristoforovs/arshin/registry"
	"github.com/khristoforovs/arshin/transform"
)

const (
	Version = "0.1.0"
	appName = "arshin"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Dimensional analysis and unit conversion",
		Long: `Arshin works with unit catalogs written in the unit definition
language: it validates catalog files, lists the units they define
(including SI-prefix expansions) and converts values between
dimensionally compatible units.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(configPath, logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(unitsCmd(&configPath))
	cmd.AddCommand(convertCmd(&configPath))

	return cmd
}

func setupLogging(configPath, flagLevel string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if flagLevel != "" {
		cfg.LogLevel = flagLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	loaded, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(loaded)
	return cfg, nil
}

// loadRegistry builds the working registry: catalog patterns from the
// command line win over the config file; with neither, the bundled default
// catalog is used.
func loadRegistry(configPath string, patterns []string) (*registry.Registry, error) {
	if len(patterns) == 0 {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, err
		}
		patterns = cfg.Catalogs
	}
	if len(patterns) == 0 {
		return catalog.Default(), nil
	}
	return catalog.LoadGlob(patterns...)
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <pattern>...",
		Short: "Parse catalog files and report errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := catalog.LoadGlob(args...)
			if err != nil {
				return err
			}
			fmt.Printf("OK: %d units\n", r.Len())
			return nil
		},
	}
}

func unitsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "units [pattern]...",
		Short: "List unit names defined by the given catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegistry(*configPath, args)
			if err != nil {
				return err
			}
			names := r.UnitNames()
			sort.Strings(names)
			for _, name := range names {
				u := r.MustGet(name)
				fmt.Printf("%s\t[%s]\n", name, u.Dimensionality())
			}
			return nil
		},
	}
}

func convertCmd(configPath *string) *cobra.Command {
	var patterns []string

	cmd := &cobra.Command{
		Use:   "convert <value> <from-unit> <to-unit>",
		Short: "Convert a value between compatible units",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("malformed value %q: %w", args[0], err)
			}

			r, err := loadRegistry(*configPath, patterns)
			if err != nil {
				return err
			}

			q, err := quantity.NewFromRegistry(r, transform.Float(value), args[1])
			if err != nil {
				return err
			}
			target, ok := r.Get(args[2])
			if !ok {
				return &registry.UnknownUnitError{Name: args[2]}
			}

			out, err := q.MagnitudeAs(target)
			if err != nil {
				return err
			}
			fmt.Printf("%v %s = %v %s\n", value, args[1], float64(out), args[2])
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&patterns, "catalog", nil, "Catalog file pattern (repeatable)")
	return cmd
}
