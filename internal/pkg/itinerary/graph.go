package itinerary

import (
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

// Edge is one concrete flight from one location code to another. Multiple
// edges may connect the same ordered pair of codes, one per flight.
type Edge struct {
	To     string
	Record dto.FlightRecord
}

// Graph is a directed multigraph of location codes. Nodes are derived from
// the flight records that touch them; each record contributes exactly one edge.
type Graph struct {
	adjacency map[string][]Edge
}

// BuildGraph builds the flight multigraph from a list of flight records.
// Records that fail the boundary validation are skipped rather than failing
// the whole search; the number of skipped records is returned for the caller
// to report.
func BuildGraph(records []dto.FlightRecord) (Graph, int) {
	graph := Graph{
		adjacency: make(map[string][]Edge, len(records)),
	}

	skipped := 0
	for _, record := range records {
		if !validRecord(record) {
			skipped++
			continue
		}

		origin := record.Departure.Airport
		destination := record.Arrival.Airport

		graph.adjacency[origin] = append(graph.adjacency[origin], Edge{
			To:     destination,
			Record: record,
		})

		// destination must exist as a node even when nothing departs from it
		if _, ok := graph.adjacency[destination]; !ok {
			graph.adjacency[destination] = nil
		}
	}

	return graph, skipped
}

func validRecord(record dto.FlightRecord) bool {
	if record.Departure.Airport == "" || record.Arrival.Airport == "" {
		return false
	}

	if record.Departure.Airport == record.Arrival.Airport {
		return false
	}

	if record.DepartureTime.IsZero() || record.ArrivalTime.IsZero() {
		return false
	}

	if !record.ArrivalTime.After(record.DepartureTime) {
		return false
	}

	return record.Price.Amount >= 0
}

// OutEdges returns every flight edge departing from the given location code.
func (g Graph) OutEdges(code string) []Edge {
	return g.adjacency[code]
}

// Between returns every flight connecting the ordered pair of location codes.
// These are the flight choices for one hop of a path.
func (g Graph) Between(from, to string) []dto.FlightRecord {
	var records []dto.FlightRecord

	for _, edge := range g.adjacency[from] {
		if edge.To == to {
			records = append(records, edge.Record)
		}
	}

	return records
}

// HasNode reports whether the location code appears in the graph at all.
func (g Graph) HasNode(code string) bool {
	_, ok := g.adjacency[code]

	return ok
}
