package flightprovider

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
)

// config for flight provider. Location is the display timezone whose
// calendar dates the travel-date prefilter matches against; it must be the
// same location the service splits directions with.
type FlightProviderConfig struct {
	SearchAPIURL string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
	Location     *time.Location
}

// FlightProvider fetches the bookable flights for a search window. The
// returned records include intermediate legs (not just origin->destination)
// so the itinerary core can build connecting routes from them.
type FlightProvider interface {
	Search(ctx context.Context, criteria dto.SearchCriteria) ([]dto.FlightRecord, error)
}

type FlightProviderFactory struct {
	Provider map[string]FlightProvider
}

func NewFlightProviderFactory() *FlightProviderFactory {
	return &FlightProviderFactory{
		Provider: make(map[string]FlightProvider),
	}
}

func (f *FlightProviderFactory) AddProvider(name string, provider FlightProvider) {
	f.Provider[name] = provider
}

func (f *FlightProviderFactory) GetProvider(name string) FlightProvider {
	return f.Provider[name]
}

func (f *FlightProviderFactory) GetAllProviders() map[string]FlightProvider {
	return f.Provider
}
