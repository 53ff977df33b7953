package flight

import (
	"context"
	"log/slog"
	"time"

	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

// RecordsForDate keeps the flight records whose departure falls on the given
// travel date in the display timezone. The service uses this to split one
// provider fetch into the outbound and return search windows.
func RecordsForDate(records []dto.FlightRecord, date string, location *time.Location) []dto.FlightRecord {
	results := make([]dto.FlightRecord, 0, len(records))

	for _, record := range records {
		if record.DepartureTime.In(location).Format("2006-01-02") != date {
			continue
		}

		results = append(results, record)
	}

	return results
}

// FilterItineraries applies the request's optional filters to the assembled
// itineraries. A nil option passes everything through.
func FilterItineraries(ctx context.Context, itineraries []dto.Itinerary,
	filterOpts *dto.FilterOption,
) []dto.Itinerary {
	if filterOpts == nil {
		return itineraries
	}

	results := make([]dto.Itinerary, 0, len(itineraries))

	for _, itinerary := range itineraries {
		if filterOpts.DirectOnly != nil && *filterOpts.DirectOnly && itinerary.IsTransit {
			continue
		}

		if filterOpts.MaxLegs != nil && len(itinerary.Legs) > *filterOpts.MaxLegs {
			continue
		}

		if filterOpts.MaxPrice != nil && itinerary.TotalPrice.Amount > *filterOpts.MaxPrice {
			continue
		}

		if filterOpts.MinPrice != nil && itinerary.TotalPrice.Amount < *filterOpts.MinPrice {
			continue
		}

		if filterOpts.MaxDurationHours != nil && itinerary.TotalDuration.Hours > *filterOpts.MaxDurationHours {
			continue
		}

		if filterOpts.MinDurationHours != nil && itinerary.TotalDuration.Hours < *filterOpts.MinDurationHours {
			continue
		}

		if filterOpts.Airline != nil && !operatedBy(itinerary, *filterOpts.Airline) {
			continue
		}

		if filterOpts.DepartureTimeStart != nil && filterOpts.DepartureTimeEnd != nil {
			if len(itinerary.Legs) == 0 {
				continue
			}

			if !isWithinTimeRange(ctx, itinerary.Legs[0].Departure.Time,
				*filterOpts.DepartureTimeStart, *filterOpts.DepartureTimeEnd) {
				continue
			}
		}

		results = append(results, itinerary)
	}

	return results
}

// operatedBy reports whether every leg of the itinerary is flown by the
// given airline code. A mixed-carrier connection does not qualify.
func operatedBy(itinerary dto.Itinerary, airlineCode string) bool {
	for _, leg := range itinerary.Legs {
		if leg.Airline.Code != airlineCode {
			return false
		}
	}

	return len(itinerary.Legs) > 0
}

// targetTime is a local display time of day ("15:04"), as is the range.
// Comparison is on the hour, matching how coarse the request filter is.
func isWithinTimeRange(ctx context.Context, targetTime string, startTime string, endTime string) bool {
	targetParsed, err := time.Parse("15:04", targetTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse target time", slog.String("time", targetTime), slog.Any("error", err))
		return false
	}

	startParsed, err := time.Parse("15:04", startTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse start time", slog.String("time", startTime), slog.Any("error", err))
		return false
	}

	endParsed, err := time.Parse("15:04", endTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse end time", slog.String("time", endTime), slog.Any("error", err))
		return false
	}

	return targetParsed.Hour() >= startParsed.Hour() &&
		targetParsed.Hour() <= endParsed.Hour()
}
