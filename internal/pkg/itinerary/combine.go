package itinerary

import (
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

// Expand turns one node path into every concrete flight combination along it:
// for each consecutive pair of codes the matching flights form the choice set
// for that hop, and the result is the cartesian product of one choice per hop.
// A hop with no matching flight makes the whole path contribute nothing.
//
// The product is built iteratively, one hop at a time, so it can be capped:
// after each hop at most limit partial combinations are kept, which bounds
// the final product at limit complete combinations instead of materializing
// an unbounded product on a branchy graph. limit <= 0 means no cap.
func (g Graph) Expand(path []string, limit int) [][]dto.FlightRecord {
	if len(path) < 2 {
		return nil
	}

	combinations := [][]dto.FlightRecord{{}}

	for hop := 0; hop+1 < len(path); hop++ {
		choices := g.Between(path[hop], path[hop+1])
		if len(choices) == 0 {
			return nil
		}

		next := make([][]dto.FlightRecord, 0, len(combinations)*len(choices))

	grow:
		for _, combination := range combinations {
			for _, choice := range choices {
				grown := append(append([]dto.FlightRecord{}, combination...), choice)
				next = append(next, grown)

				if limit > 0 && len(next) >= limit {
					break grow
				}
			}
		}

		combinations = next
	}

	return combinations
}
