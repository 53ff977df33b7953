package itinerary

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func joinPaths(paths [][]string) []string {
	joined := make([]string, len(paths))
	for i, p := range paths {
		joined[i] = strings.Join(p, "-")
	}

	sort.Strings(joined)

	return joined
}

func TestGraph_SimplePaths(t *testing.T) {
	pathsRequest := func(records []dto.FlightRecord,
		origin, destination string, maxLen int, want []string,
	) func(t *testing.T) {
		return func(t *testing.T) {
			g, _ := BuildGraph(records)

			got := joinPaths(g.SimplePaths(origin, destination, maxLen))

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("SimplePaths mismatch (-want +got):\n%s", diff)
			}
		}
	}

	diamond := []dto.FlightRecord{
		record("TS101", "AAA", "BBB", 8, 9, 200),
		record("TS102", "AAA", "CCC", 8, 9, 210),
		record("TS103", "BBB", "DDD", 10, 11, 150),
		record("TS104", "CCC", "DDD", 10, 11, 160),
		record("TS105", "AAA", "DDD", 8, 10, 500),
	}

	t.Run("all_simple_paths_in_diamond", pathsRequest(
		diamond, "AAA", "DDD", DefaultMaxPathLength,
		[]string{"AAA-BBB-DDD", "AAA-CCC-DDD", "AAA-DDD"},
	))

	t.Run("max_length_cuts_connections", pathsRequest(
		diamond, "AAA", "DDD", 2,
		[]string{"AAA-DDD"},
	))

	t.Run("no_route", pathsRequest(
		diamond, "DDD", "AAA", DefaultMaxPathLength,
		[]string{},
	))

	t.Run("unknown_endpoint", pathsRequest(
		diamond, "AAA", "ZZZ", DefaultMaxPathLength,
		[]string{},
	))

	t.Run("origin_equals_destination_rejected", pathsRequest(
		diamond, "AAA", "AAA", DefaultMaxPathLength,
		[]string{},
	))

	// parallel edges between the same pair collapse to a single node path
	t.Run("parallel_edges_one_node_path", pathsRequest(
		[]dto.FlightRecord{
			record("TS101", "AAA", "BBB", 8, 9, 200),
			record("TS102", "AAA", "BBB", 10, 11, 220),
		},
		"AAA", "BBB", DefaultMaxPathLength,
		[]string{"AAA-BBB"},
	))
}

// no path may visit the same code twice, even on a cyclic graph
func TestGraph_SimplePaths_NoRepeatedNode(t *testing.T) {
	cyclic := []dto.FlightRecord{
		record("TS101", "AAA", "BBB", 8, 9, 200),
		record("TS102", "BBB", "AAA", 10, 11, 200),
		record("TS103", "BBB", "CCC", 10, 11, 200),
		record("TS104", "CCC", "BBB", 12, 13, 200),
		record("TS105", "CCC", "DDD", 12, 13, 200),
	}

	g, _ := BuildGraph(cyclic)

	paths := g.SimplePaths("AAA", "DDD", 10)
	assert.NotEmpty(t, paths)

	for _, path := range paths {
		seen := map[string]int{}
		for _, code := range path {
			seen[code]++
		}

		for code, count := range seen {
			assert.Equalf(t, 1, count, "code %s repeated in path %v", code, path)
		}
	}
}
