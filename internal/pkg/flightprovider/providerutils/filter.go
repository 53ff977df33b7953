package providerutils

import (
	"time"

	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

// FilterRecords trims a provider response down to the records relevant to the
// search: on one of the requested travel dates, in the requested cabin, with
// room for the whole party. Origin and destination are deliberately NOT
// filtered here because connecting itineraries need the intermediate legs.
//
// Travel dates are calendar dates in the display location, the same basis the
// service uses to split records per direction. A nil location means UTC.
func FilterRecords(records []dto.FlightRecord, criteria dto.SearchCriteria,
	location *time.Location,
) []dto.FlightRecord {
	if location == nil {
		location = time.UTC
	}

	results := make([]dto.FlightRecord, 0, len(records))

	dates := map[string]bool{}
	if criteria.DepartureDate != "" {
		dates[criteria.DepartureDate] = true
	}

	if criteria.ReturnDate != nil {
		dates[*criteria.ReturnDate] = true
	}

	for _, record := range records {
		if len(dates) > 0 && !dates[record.DepartureTime.In(location).Format("2006-01-02")] {
			continue
		}

		if criteria.CabinClass != "" && record.CabinClass != criteria.CabinClass {
			continue
		}

		if criteria.Passengers != 0 && record.AvailableSeats < criteria.Passengers {
			continue
		}

		results = append(results, record)
	}

	return results
}
