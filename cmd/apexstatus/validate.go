package main

import (
	"fmt"

	"github.com/jpalmerr/apexstatus/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without rendering anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate an apexstatus configuration file without rendering.

This command parses the YAML, expands environment variables, and validates
all fields. It's useful for CI/CD pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  apexstatus validate -c config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	layout, err := config.BuildLayout(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Regions:   %d\n", len(layout.Regions))
	fmt.Fprintf(out, "  Services:  %d in %d rows\n", 2*len(layout.Rows), len(layout.Rows))
	fmt.Fprintf(out, "  Platforms: %d\n", len(layout.Platforms))
	if cfg.StatusFile != "" {
		fmt.Fprintf(out, "  Status:    %s\n", cfg.StatusFile)
	}
	if cfg.RankingFile != "" {
		fmt.Fprintf(out, "  Ranking:   %s\n", cfg.RankingFile)
	}

	return nil
}
