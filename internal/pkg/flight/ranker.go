package flight

import (
	"math"

	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

// weighted scoring using normalization
// ref: https://www.1000minds.com/decision-making/what-is-mcdm-mcda

// weights for each criteria
const (
	WeightPrice           = 0.5
	WeightDurationInHours = 0.25
	WeightLegs            = 0.15
	WeightDelay           = 0.1
)

// RankItineraries scores each itinerary with weighted normalized criteria.
// 0 indicates the best itinerary and 1 indicates the worst itinerary.
func RankItineraries(itineraries []dto.Itinerary) []dto.Itinerary {
	priceMin, priceMax := findRange(itineraries, func(i dto.Itinerary) float64 {
		return i.TotalPrice.Amount
	})
	durationMin, durationMax := findRange(itineraries, func(i dto.Itinerary) float64 {
		return i.TotalDuration.Hours
	})
	legsMin, legsMax := findRange(itineraries, func(i dto.Itinerary) float64 {
		return float64(len(i.Legs))
	})
	delayMin, delayMax := findRange(itineraries, func(i dto.Itinerary) float64 {
		return i.ConnectionDelayHours
	})

	for i, itinerary := range itineraries {
		priceScore := normalizeValue(itinerary.TotalPrice.Amount, priceMin, priceMax)
		durationScore := normalizeValue(itinerary.TotalDuration.Hours, durationMin, durationMax)
		legsScore := normalizeValue(float64(len(itinerary.Legs)), legsMin, legsMax)
		delayScore := normalizeValue(itinerary.ConnectionDelayHours, delayMin, delayMax)

		itineraries[i].Score = WeightPrice*priceScore +
			WeightDurationInHours*durationScore +
			WeightLegs*legsScore +
			WeightDelay*delayScore
	}

	return itineraries
}

func findRange(itineraries []dto.Itinerary, value func(dto.Itinerary) float64) (float64, float64) {
	if len(itineraries) == 0 {
		return 0, 0
	}

	minValue := math.MaxFloat64
	maxValue := -math.MaxFloat64
	for _, itinerary := range itineraries {
		v := value(itinerary)
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	return minValue, maxValue
}

func normalizeValue(value float64, min float64, max float64) float64 {
	if max == min {
		return 0
	}

	return (value - min) / (max - min)
}
