package flight

import (
	"sort"

	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

func SortItineraries(itineraries []dto.Itinerary, sortOption *dto.SortOption) []dto.Itinerary {
	var (
		option = ""
		order  = "asc"
	)
	if sortOption != nil {
		option = sortOption.Field
		order = sortOption.Order
	}

	switch option {
	case "price":
		sort.Slice(itineraries, func(i, j int) bool {
			if order == "asc" {
				return itineraries[i].TotalPrice.Amount < itineraries[j].TotalPrice.Amount
			} else {
				return itineraries[i].TotalPrice.Amount > itineraries[j].TotalPrice.Amount
			}
		})
	case "duration":
		sort.Slice(itineraries, func(i, j int) bool {
			if order == "asc" {
				return itineraries[i].TotalDuration.Hours < itineraries[j].TotalDuration.Hours
			} else {
				return itineraries[i].TotalDuration.Hours > itineraries[j].TotalDuration.Hours
			}
		})
	case "delay":
		sort.Slice(itineraries, func(i, j int) bool {
			if order == "asc" {
				return itineraries[i].ConnectionDelayHours < itineraries[j].ConnectionDelayHours
			} else {
				return itineraries[i].ConnectionDelayHours > itineraries[j].ConnectionDelayHours
			}
		})
	case "departure_time":
		sort.Slice(itineraries, func(i, j int) bool {
			if order == "asc" {
				return itineraries[i].DepartureTime.Before(itineraries[j].DepartureTime)
			} else {
				return itineraries[i].DepartureTime.After(itineraries[j].DepartureTime)
			}
		})
	case "arrival_time":
		sort.Slice(itineraries, func(i, j int) bool {
			if order == "asc" {
				return itineraries[i].ArrivalTime.Before(itineraries[j].ArrivalTime)
			} else {
				return itineraries[i].ArrivalTime.After(itineraries[j].ArrivalTime)
			}
		})
	default:
		// best score
		sort.Slice(itineraries, func(i, j int) bool {
			if order == "asc" {
				return itineraries[i].Score < itineraries[j].Score
			} else {
				return itineraries[i].Score > itineraries[j].Score
			}
		})
	}

	return itineraries
}
