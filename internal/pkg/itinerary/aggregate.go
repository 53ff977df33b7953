package itinerary

import (
	"time"

	"github.com/itinera/flight-itinerary-service/internal/app/dto"
	"github.com/itinera/flight-itinerary-service/internal/pkg/utils"
)

// DefaultMinConnection is the minimum ground time between the arrival of one
// leg and the departure of the next. Kept behind Options.MinConnection so it
// can be externalized per airport or route without touching the pipeline.
const DefaultMinConnection = 60 * time.Minute

const (
	displayDateLayout = "2006-01-02"
	displayTimeLayout = "15:04"
)

// connectionFits reports whether the ground time between two consecutive legs
// meets the minimum connection window.
func connectionFits(prev, next dto.FlightRecord, minConnection time.Duration) bool {
	return next.DepartureTime.Sub(prev.ArrivalTime) >= minConnection
}

// buildItinerary validates one flight combination and aggregates it into an
// itinerary record. It returns false when any adjacent leg pair violates the
// connection window; single-leg combinations are trivially valid.
func buildItinerary(legs []dto.FlightRecord, opts Options) (dto.Itinerary, bool) {
	if len(legs) == 0 {
		return dto.Itinerary{}, false
	}

	var (
		totalPrice    float64
		totalDuration float64
		totalDelay    float64
	)

	for i, leg := range legs {
		if i > 0 {
			if !connectionFits(legs[i-1], leg, opts.MinConnection) {
				return dto.Itinerary{}, false
			}

			totalDelay += leg.DepartureTime.Sub(legs[i-1].ArrivalTime).Hours()
		}

		totalPrice += leg.Price.Amount
		totalDuration += leg.DurationHours
	}

	first := legs[0]
	last := legs[len(legs)-1]

	itinerary := dto.Itinerary{
		FlightDate:    first.DepartureTime.In(opts.Location).Format(displayDateLayout),
		DepartureTime: first.DepartureTime,
		ArrivalTime:   last.ArrivalTime,
		CabinClass:    first.CabinClass,
		TotalPrice: dto.Price{
			Amount:    totalPrice,
			Currency:  first.Price.Currency,
			Formatted: utils.FormatCurrency(int64(totalPrice), first.Price.Currency),
		},
		TotalDuration: dto.Duration{
			Hours:     totalDuration,
			Formatted: utils.ConvertHourToDuration(totalDuration),
		},
		IsTransit:            len(legs) > 1,
		ConnectionDelayHours: totalDelay,
		Legs:                 make([]dto.Leg, len(legs)),
	}

	for i, leg := range legs {
		itinerary.Legs[i] = buildLeg(leg, opts.Location)
	}

	return itinerary, true
}

func buildLeg(record dto.FlightRecord, location *time.Location) dto.Leg {
	return dto.Leg{
		FlightNumber: record.FlightNumber,
		Airline:      record.Airline,
		Departure:    buildLegPoint(record.Departure, record.DepartureTime, location),
		Arrival:      buildLegPoint(record.Arrival, record.ArrivalTime, location),
		Duration: dto.Duration{
			Hours:     record.DurationHours,
			Formatted: utils.ConvertHourToDuration(record.DurationHours),
		},
		Facility: record.Facility,
		Price: dto.Price{
			Amount:    record.Price.Amount,
			Currency:  record.Price.Currency,
			Formatted: utils.FormatCurrency(int64(record.Price.Amount), record.Price.Currency),
		},
	}
}

func buildLegPoint(endpoint dto.Endpoint, at time.Time, location *time.Location) dto.LegPoint {
	local := at.In(location)

	return dto.LegPoint{
		Airport:  endpoint.Airport,
		Name:     endpoint.Name,
		City:     endpoint.City,
		Terminal: endpoint.Terminal,
		Date:     local.Format(displayDateLayout),
		Time:     local.Format(displayTimeLayout),
	}
}
