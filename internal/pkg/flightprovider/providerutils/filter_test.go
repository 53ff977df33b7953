package providerutils

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

func TestFilterRecords(t *testing.T) {
	jakarta, _ := time.LoadLocation("Asia/Jakarta")

	record := func(id string, departure time.Time, cabin string, seats int) dto.FlightRecord {
		return dto.FlightRecord{
			ID:             id,
			DepartureTime:  departure,
			ArrivalTime:    departure.Add(2 * time.Hour),
			CabinClass:     cabin,
			AvailableSeats: seats,
		}
	}

	filterRequest := func(records []dto.FlightRecord, criteria dto.SearchCriteria,
		location *time.Location, wantIDs []string,
	) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterRecords(records, criteria, location)

			gotIDs := make([]string, len(got))
			for i, r := range got {
				gotIDs[i] = r.ID
			}

			if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
				t.Fatalf("FilterRecords mismatch (-want +got):\n%s", diff)
			}
		}
	}

	criteria := dto.SearchCriteria{
		Origin:        "CGK",
		Destination:   "DPS",
		DepartureDate: "2025-03-10",
		Passengers:    1,
		CabinClass:    "economy",
	}

	t.Run("keeps_matching_date_cabin_seats", filterRequest([]dto.FlightRecord{
		record("1", time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC), "economy", 5),
		record("2", time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC), "economy", 5),
		record("3", time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC), "business", 5),
		record("4", time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC), "economy", 0),
	}, criteria, jakarta, []string{"1"}))

	// 18:00 UTC on the 9th is 01:00 on the 10th in Jakarta; the local travel
	// date decides, the same way the service splits directions
	t.Run("date_matched_in_display_location", filterRequest([]dto.FlightRecord{
		record("early", time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC), "economy", 5),
	}, criteria, jakarta, []string{"early"}))

	// late local evening on the requested date is still the requested date,
	// even though it is already the 11th in UTC
	t.Run("late_local_flight_kept", filterRequest([]dto.FlightRecord{
		record("late", time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC), "economy", 5),
	}, criteria, jakarta, []string{"late"}))

	t.Run("nil_location_falls_back_to_utc", filterRequest([]dto.FlightRecord{
		record("utc-day", time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC), "economy", 5),
		record("utc-prev", time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC), "economy", 5),
	}, criteria, nil, []string{"utc-day"}))

	returnDate := "2025-03-15"
	roundTrip := criteria
	roundTrip.ReturnDate = &returnDate

	t.Run("return_date_also_kept", filterRequest([]dto.FlightRecord{
		record("out", time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC), "economy", 5),
		record("ret", time.Date(2025, 3, 15, 2, 0, 0, 0, time.UTC), "economy", 5),
	}, roundTrip, jakarta, []string{"out", "ret"}))
}
