package main

import (
	"math/rand"
	"strings"

	"github.com/jpalmerr/apexstatus"
)

// mockStatuses are weighted so most regions come out healthy.
var mockStatuses = []string{"UP", "UP", "UP", "UP", "SLOW", "DOWN"}

// MockStatusTree builds a status tree shaped like the upstream feed, with a
// random status and latency for every standard service and region. Some
// readings are left out to show the healthy defaults.
func MockStatusTree(rng *rand.Rand) map[string]any {
	tree := make(map[string]any)

	for _, row := range apexstatus.DefaultRows() {
		for _, svc := range row {
			regions := make(map[string]any)
			for _, region := range apexstatus.DefaultRegions() {
				if rng.Intn(8) == 0 {
					continue
				}
				regions[region] = map[string]any{
					"Status":       mockStatuses[rng.Intn(len(mockStatuses))],
					"ResponseTime": float64(5 + rng.Intn(300)),
				}
			}
			insertPath(tree, svc.Path, regions)
		}
	}

	return tree
}

// MockRankingTree builds a Predator ranking tree with one platform missing.
func MockRankingTree(rng *rand.Rand) map[string]any {
	rp := make(map[string]any)
	for i, p := range apexstatus.DefaultPlatforms() {
		if i == len(apexstatus.DefaultPlatforms())-1 {
			break
		}
		rp[p.Key] = map[string]any{
			"val":                  float64(10000 + rng.Intn(20000)),
			"totalMastersAndPreds": float64(500 + rng.Intn(15000)),
		}
	}
	return map[string]any{"RP": rp}
}

// insertPath stores value at a dotted path, creating intermediate objects.
func insertPath(tree map[string]any, path string, value any) {
	keys := strings.Split(path, ".")
	node := tree
	for _, key := range keys[:len(keys)-1] {
		child, ok := node[key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[key] = child
		}
		node = child
	}
	node[keys[len(keys)-1]] = value
}
