//go:build unit

package flight

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

func TestSortItineraries_Closure(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	itineraries := []dto.Itinerary{
		{
			TotalPrice:    dto.Price{Amount: 2000},
			TotalDuration: dto.Duration{Hours: 3},
			DepartureTime: base.Add(10 * time.Hour),
			ArrivalTime:   base.Add(13 * time.Hour),
			Score:         0.8,
		},
		{
			TotalPrice:    dto.Price{Amount: 1000},
			TotalDuration: dto.Duration{Hours: 5},
			DepartureTime: base.Add(6 * time.Hour),
			ArrivalTime:   base.Add(11 * time.Hour),
			Score:         0.1,
		},
		{
			TotalPrice:    dto.Price{Amount: 1500},
			TotalDuration: dto.Duration{Hours: 4},
			DepartureTime: base.Add(8 * time.Hour),
			ArrivalTime:   base.Add(12 * time.Hour),
			Score:         0.5,
		},
	}

	sortRequest := func(opt *dto.SortOption, wantPrices []float64) func(t *testing.T) {
		return func(t *testing.T) {
			// Copy to avoid shared state
			itinCopy := make([]dto.Itinerary, len(itineraries))
			copy(itinCopy, itineraries)

			got := SortItineraries(itinCopy, opt)
			gotPrices := make([]float64, len(got))
			for i, itin := range got {
				gotPrices[i] = itin.TotalPrice.Amount
			}

			if diff := cmp.Diff(wantPrices, gotPrices); diff != "" {
				t.Fatalf("SortItineraries mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("default_best_score", sortRequest(nil, []float64{1000, 1500, 2000}))
	t.Run("price_asc", sortRequest(&dto.SortOption{Field: "price", Order: "asc"}, []float64{1000, 1500, 2000}))
	t.Run("price_desc", sortRequest(&dto.SortOption{Field: "price", Order: "desc"}, []float64{2000, 1500, 1000}))
	t.Run("duration_asc", sortRequest(&dto.SortOption{Field: "duration", Order: "asc"}, []float64{2000, 1500, 1000}))
	t.Run("departure_time_asc", sortRequest(&dto.SortOption{Field: "departure_time", Order: "asc"}, []float64{1000, 1500, 2000}))
	t.Run("arrival_time_desc", sortRequest(&dto.SortOption{Field: "arrival_time", Order: "desc"}, []float64{2000, 1500, 1000}))
}
