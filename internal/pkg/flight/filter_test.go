package flight

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func TestRecordsForDate(t *testing.T) {
	jakarta, _ := time.LoadLocation("Asia/Jakarta")

	records := []dto.FlightRecord{
		{ID: "1", DepartureTime: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		{ID: "2", DepartureTime: time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)},
		// 21:00 UTC on the 10th is already the 11th in Jakarta
		{ID: "3", DepartureTime: time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)},
	}

	forDateRequest := func(date string, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := RecordsForDate(records, date, jakarta)

			gotIDs := make([]string, len(got))
			for i, r := range got {
				gotIDs[i] = r.ID
			}

			if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
				t.Fatalf("RecordsForDate mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("departure_day", forDateRequest("2025-03-10", []string{"1"}))
	t.Run("next_day_includes_late_utc", forDateRequest("2025-03-11", []string{"2", "3"}))
	t.Run("no_match", forDateRequest("2025-03-12", []string{}))
}

func TestFilterItineraries(t *testing.T) {
	maxPrice := 1000000.0
	maxLegs := 1
	direct := true
	airlineGA := "GA"

	itineraries := []dto.Itinerary{
		{
			TotalPrice:    dto.Price{Amount: 800000},
			TotalDuration: dto.Duration{Hours: 2},
			IsTransit:     false,
			Legs: []dto.Leg{
				{Airline: dto.Airline{Code: "GA"}, Departure: dto.LegPoint{Time: "08:00"}},
			},
		},
		{
			TotalPrice:           dto.Price{Amount: 1200000},
			TotalDuration:        dto.Duration{Hours: 5},
			IsTransit:            true,
			ConnectionDelayHours: 1.5,
			Legs: []dto.Leg{
				{Airline: dto.Airline{Code: "GA"}, Departure: dto.LegPoint{Time: "14:00"}},
				{Airline: dto.Airline{Code: "JT"}, Departure: dto.LegPoint{Time: "17:30"}},
			},
		},
	}

	filterRequest := func(opts *dto.FilterOption, wantCount int) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterItineraries(context.Background(), itineraries, opts)
			assert.Len(t, got, wantCount)
		}
	}

	t.Run("nil_filter", filterRequest(nil, 2))
	t.Run("filter_by_max_price", filterRequest(&dto.FilterOption{MaxPrice: &maxPrice}, 1))
	t.Run("filter_by_max_legs", filterRequest(&dto.FilterOption{MaxLegs: &maxLegs}, 1))
	t.Run("direct_only", filterRequest(&dto.FilterOption{DirectOnly: &direct}, 1))
	t.Run("airline_must_cover_all_legs", filterRequest(&dto.FilterOption{Airline: &airlineGA}, 1))
	t.Run("departure_window", filterRequest(&dto.FilterOption{
		DepartureTimeStart: ptrString("12:00"),
		DepartureTimeEnd:   ptrString("16:00"),
	}, 1))
	t.Run("no_match", filterRequest(&dto.FilterOption{
		MaxPrice: func() *float64 { f := 100.0; return &f }(),
	}, 0))
}

func ptrString(s string) *string { return &s }

func TestIsWithinTimeRange_Closure(t *testing.T) {
	timeRangeRequest := func(target, start, end string, want bool) func(t *testing.T) {
		return func(t *testing.T) {
			got := isWithinTimeRange(context.Background(), target, start, end)
			assert.Equal(t, want, got)
		}
	}

	t.Run("within_range", timeRangeRequest("14:30", "12:00", "16:00", true))
	t.Run("outside_range", timeRangeRequest("10:00", "12:00", "16:00", false))
	t.Run("invalid_format", timeRangeRequest("invalid", "12:00", "16:00", false))
}
