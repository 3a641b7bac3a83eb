package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jpalmerr/apexstatus"
	"github.com/jpalmerr/apexstatus/config"
	"github.com/jpalmerr/apexstatus/embed"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

// newLogger creates a JSON logger for CLI use.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// renderCmd renders saved status data into an embed.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render status data into a chat embed",
	Long: `Render saved Apex Legends status and Predator ranking data into a chat
message embed and print it.

Input files are JSON as served by the upstream status API. Either file may be
omitted; missing data renders as healthy defaults and "No data available".
Flags override the files named in the config.

Output formats:
  json - Discord-compatible message payload (default)
  yaml - the same payload as YAML
  text - a plain-text preview

Example:
  apexstatus render --status status.json --ranking predator.json
  apexstatus render -c config.yaml -o text`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("config", "c", "", "path to config file")
	renderCmd.Flags().String("status", "", "path to the status JSON file")
	renderCmd.Flags().String("ranking", "", "path to the Predator ranking JSON file")
	renderCmd.Flags().StringP("output", "o", formatJSON, "output format: json, yaml or text")
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())

	format, _ := cmd.Flags().GetString("output")
	switch format {
	case formatJSON, formatYAML, formatText:
	default:
		return fmt.Errorf("unknown output format %q (expected json, yaml or text)", format)
	}

	cfg := config.Default()
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if statusFile, _ := cmd.Flags().GetString("status"); statusFile != "" {
		cfg.StatusFile = statusFile
	}
	if rankingFile, _ := cmd.Flags().GetString("ranking"); rankingFile != "" {
		cfg.RankingFile = rankingFile
	}

	status, err := readJSONFile(cfg.StatusFile)
	if err != nil {
		return fmt.Errorf("failed to read status data: %w", err)
	}
	ranking, err := readJSONFile(cfg.RankingFile)
	if err != nil {
		return fmt.Errorf("failed to read ranking data: %w", err)
	}

	opts, err := config.BuildOptions(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	opts = append(opts, apexstatus.WithLogger(logger))

	formatter, err := apexstatus.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create formatter: %w", err)
	}

	resp := formatter.FormatServerStatus(status, embed.New(), ranking)
	return writeResponse(cmd.OutOrStdout(), resp, format)
}

// readJSONFile decodes a JSON file into a generic tree. Numbers are kept as
// json.Number so large counts survive unchanged. An empty path yields nil.
func readJSONFile(path string) (any, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", path, err)
	}
	return tree, nil
}

func writeResponse(w io.Writer, resp embed.Response, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case formatText:
		_, err := io.WriteString(w, renderText(resp))
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
}

// renderText produces a plain-text preview of the response.
func renderText(resp embed.Response) string {
	var b strings.Builder
	for i, e := range resp.Embeds {
		if i > 0 {
			b.WriteString("\n")
		}
		if e.Title != "" {
			fmt.Fprintf(&b, "# %s\n", e.Title)
		}
		if e.Description != "" {
			fmt.Fprintf(&b, "%s\n", e.Description)
		}
		for _, f := range e.Fields {
			if f.IsSpacer() {
				b.WriteString("\n")
				continue
			}
			fmt.Fprintf(&b, "\n## %s\n%s", f.Name, f.Value)
			if !strings.HasSuffix(f.Value, "\n") {
				b.WriteString("\n")
			}
		}
		if e.Footer != nil {
			fmt.Fprintf(&b, "\n-- %s\n", e.Footer.Text)
		}
	}
	return b.String()
}
