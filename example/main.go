package main

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/jpalmerr/apexstatus"
	"github.com/jpalmerr/apexstatus/embed"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// mock data stands in for the upstream feeds (see mock_data.go)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	status := MockStatusTree(rng)
	ranking := MockRankingTree(rng)

	// trim the report to the European regions
	layout := apexstatus.DefaultLayout()
	layout.Regions = []string{"EU-East", "EU-West"}

	f, err := apexstatus.New(
		apexstatus.WithLayout(layout),
		apexstatus.WithLogger(logger),
	)
	if err != nil {
		logger.Error("failed to create formatter", "error", err)
		os.Exit(1)
	}

	resp := f.FormatServerStatus(status, embed.New().SetTitle("Apex Legends Server Status"), ranking)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		logger.Error("failed to encode response", "error", err)
		os.Exit(1)
	}
}
