// Package itinerary discovers multi-leg flight itineraries. It is a pure,
// synchronous pipeline: build a flight multigraph, enumerate simple paths
// between the requested endpoints, expand each path into concrete flight
// combinations, then validate connection windows and aggregate totals.
// It performs no I/O and holds no state across searches.
package itinerary

import (
	"time"

	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

const (
	// DefaultMaxPathLength bounds paths to origin + two connections.
	DefaultMaxPathLength = 4
	// DefaultMaxCombinations caps the flight combinations per node path.
	DefaultMaxCombinations = 5000
)

// Options tunes one search invocation. Unset fields fall back to the
// defaults, either through NewOptions or inside Search itself.
type Options struct {
	MinConnection   time.Duration
	MaxPathLength   int
	MaxCombinations int
	Location        *time.Location
}

// NewOptions returns Options with every field at its default. The display
// location defaults to UTC when none is supplied.
func NewOptions(location *time.Location) Options {
	if location == nil {
		location = time.UTC
	}

	return Options{
		MinConnection:   DefaultMinConnection,
		MaxPathLength:   DefaultMaxPathLength,
		MaxCombinations: DefaultMaxCombinations,
		Location:        location,
	}
}

// Result is the outcome of one search direction.
type Result struct {
	Itineraries    []dto.Itinerary
	SkippedRecords int
}

// Search finds every valid itinerary from origin to destination over the
// given flight records. Records are expected to be pre-filtered by the caller
// (travel date window, cabin class, seat availability); this function only
// concerns itself with routing and connection validity.
//
// No path between the endpoints is not an error: the result simply carries
// zero itineraries. origin == destination is invalid input and also yields
// an empty result.
func Search(records []dto.FlightRecord, origin, destination string, opts Options) Result {
	if origin == "" || destination == "" || origin == destination {
		return Result{}
	}

	// a zero Options still searches: unset fields take the defaults here so a
	// caller skipping NewOptions does not get silently empty results
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	if opts.MaxPathLength <= 0 {
		opts.MaxPathLength = DefaultMaxPathLength
	}

	if opts.MaxCombinations <= 0 {
		opts.MaxCombinations = DefaultMaxCombinations
	}

	graph, skipped := BuildGraph(records)
	result := Result{SkippedRecords: skipped}

	paths := graph.SimplePaths(origin, destination, opts.MaxPathLength)

	for _, path := range paths {
		for _, combination := range graph.Expand(path, opts.MaxCombinations) {
			itinerary, ok := buildItinerary(combination, opts)
			if !ok {
				continue
			}

			result.Itineraries = append(result.Itineraries, itinerary)
		}
	}

	return result
}
