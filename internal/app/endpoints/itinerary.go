package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

type ItineraryService interface {
	SearchItineraries(ctx context.Context, req dto.SearchCriteria) (dto.SearchItineraryResponse, error)
}

// Endpoints holds every service endpoint exposed over transport.
type Endpoints struct {
	ItineraryEndpoint ItineraryEndpoint
}

type ItineraryEndpoint struct {
	SearchItineraries endpoint.Endpoint
}

func MakeItineraryEndpoint(service ItineraryService) ItineraryEndpoint {
	return ItineraryEndpoint{
		SearchItineraries: makeSearchItinerariesEndpoint(service),
	}
}

func makeSearchItinerariesEndpoint(service ItineraryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchCriteria)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		itineraries, err := service.SearchItineraries(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("itinerary service: %w", err)
		}

		return itineraries, nil
	}
}
