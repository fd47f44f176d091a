package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules"
	"github.com/dmitrymomot/formrules/core/formfile"
	"github.com/dmitrymomot/formrules/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "formcheck",
	Short: "Validate form values against rule strings",
	Long: `formcheck loads a TOML form definition, evaluates field values with the
formrules engine and prints the result as JSON.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("form", "form.toml", "form definition file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log evaluation details to stderr")
}

// loadForm builds the form named by --form. Environment settings apply
// first so the definition file can override them.
func loadForm(cmd *cobra.Command) (*formfile.Definition, *formrules.Form, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("form")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := formrules.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	format := logger.WithTextFormatter()
	if cfg.LogFormat == "json" {
		format = logger.WithJSONFormatter()
	}
	log := logger.New(
		format,
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("formcheck")),
	)

	def, err := formfile.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	form, err := def.Build(formrules.WithConfig(cfg), formrules.WithLogger(log))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building form from %s: %w", path, err)
	}
	return def, form, log, nil
}

// loadValues reads --values, or the definition's [values] table when the
// flag is empty.
func loadValues(cmd *cobra.Command, def *formfile.Definition) (map[string]string, error) {
	path, _ := cmd.Flags().GetString("values")
	if path == "" {
		return def.FieldValues()
	}
	return formfile.LoadValues(path)
}
