package garuda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flightprovider"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flightprovider/providerutils"
	"github.com/itinera/flight-itinerary-service/internal/pkg/utils"
)

const (
	ProviderName = "Garuda"
	ProviderCode = "GA"
	logoURL      = "https://cdn.itinera.dev/airlines/ga.png"
)

type Provider struct {
	Name         string
	SearchAPIURL string
	Timeout      time.Duration
	MaxRetries   int
	Limiter      *redis_rate.Limiter
	RateLimitRPS int
	Location     *time.Location
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	return &Provider{
		Name:         ProviderName,
		SearchAPIURL: config.SearchAPIURL,
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
		Location:     config.Location,
	}
}

// Search will simulate API call to Garuda flight search API
// it will fail roughly 10% of the time to exercise the retry path
func (p *Provider) Search(ctx context.Context,
	criteria dto.SearchCriteria,
) ([]dto.FlightRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		// simulate delay 150-300ms
		delay := time.Duration(150+rand.Intn(151)) * time.Millisecond
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
		}

		// simulate transient provider error
		if rand.Float64() < 0.1 {
			lastErr = providerutils.ErrProviderInternalError
			slog.ErrorContext(ctx, "failed to call garuda flight search API", "attempt",
				attempt+1, "error", lastErr)

			if attempt < p.MaxRetries {
				// Exponential backoff: 200ms * 2^attempt
				backoff := time.Duration(200*(1<<attempt)) * time.Millisecond
				slog.InfoContext(ctx, "retrying with exponential backoff", "backoff",
					backoff, "next_attempt", attempt+2)
				select {
				case <-time.After(backoff):
					continue
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			continue
		}

		// rate limit
		res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", p.Name),
			redis_rate.PerSecond(p.RateLimitRPS))
		if err != nil {
			return nil, fmt.Errorf("failed to rate limit: %w", err)
		}

		if res.Allowed == 0 {
			return nil, providerutils.ErrProviderRateLimitExceeded
		}

		// get response from mock file
		flightData, err := os.ReadFile(p.SearchAPIURL)
		if err != nil {
			return nil, fmt.Errorf("failed to read mock file: %w", err)
		}

		var response SearchFlightResponse
		if err := json.Unmarshal(flightData, &response); err != nil {
			return nil, fmt.Errorf("failed to unmarshal mock file: %w", err)
		}

		records := p.toFlightRecords(response.Flights)
		return providerutils.FilterRecords(records, criteria, p.Location), nil
	}

	return nil, providerutils.ErrRetryExceeded
}

func (p *Provider) toFlightRecords(flights []Flight) []dto.FlightRecord {
	results := make([]dto.FlightRecord, len(flights))
	for i, flight := range flights {
		results[i] = dto.FlightRecord{
			ID:       fmt.Sprintf("%s_%s", flight.FlightID, p.Name),
			Provider: p.Name,
			Airline: dto.Airline{
				Name:    flight.Airline,
				Code:    flight.AirlineCode,
				LogoURL: logoURL,
			},
			FlightNumber:  flight.FlightID,
			Departure:     p.toEndpoint(flight.Departure),
			Arrival:       p.toEndpoint(flight.Arrival),
			DepartureTime: flight.Departure.Time.UTC(),
			ArrivalTime:   flight.Arrival.Time.UTC(),
			DurationHours: float64(flight.DurationMinutes) / 60,
			Price: dto.Price{
				Amount:    float64(flight.Price.Amount),
				Currency:  flight.Price.Currency,
				Formatted: utils.FormatCurrency(int64(flight.Price.Amount), flight.Price.Currency),
			},
			AvailableSeats: flight.AvailableSeats,
			CabinClass:     strings.ToLower(flight.FareClass),
			Facility:       strings.Join(flight.Services, ", "),
		}
	}
	return results
}

func (p *Provider) toEndpoint(point FlightPoint) dto.Endpoint {
	city := point.City
	if city == "" {
		city = providerutils.AirportCity(point.Airport)
	}

	return dto.Endpoint{
		Airport:  point.Airport,
		Name:     providerutils.AirportName(point.Airport),
		City:     city,
		Terminal: point.Terminal,
	}
}
