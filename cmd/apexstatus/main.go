// Package main is the entry point for the apexstatus CLI.
//
// apexstatus can be used either as a library (SDK) or as a standalone binary
// that renders status data already saved to disk. This CLI provides the
// standalone binary approach.
//
// Usage:
//
//	apexstatus render --status status.json --ranking predator.json
//	apexstatus render -c config.yaml -o yaml
//	apexstatus validate -c config.yaml
//	apexstatus version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "apexstatus",
	Short: "Render Apex Legends server status as a chat embed",
	Long: `apexstatus turns Apex Legends server status and Predator ranking data
into the fields of a chat message embed.

It does not fetch anything: save the upstream JSON first, then render it.

Quick start:
  1. Save the status feed to status.json and the ranking feed to predator.json
  2. Run: apexstatus render --status status.json --ranking predator.json
  3. Send the printed embed with your chat client

Example config:
  status_file: status.json
  ranking_file: predator.json
  regions: [US-East, EU-West, Asia]`,
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this apexstatus binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "apexstatus %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
