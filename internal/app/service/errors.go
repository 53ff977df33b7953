package service

import (
	"github.com/itinera/flight-itinerary-service/internal/pkg/exception"
)

// ErrNoFlightsFound means no provider returned a single flight record for
// the search window.
var ErrNoFlightsFound = exception.NotFound("no flights found")

// ErrNoItinerariesFound means flight records existed but no valid itinerary
// could be assembled from them.
var ErrNoItinerariesFound = exception.NotFound("no itineraries found")
