package airasia

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
	ProviderName = "AirAsia"
	ProviderCode = "QZ"
	logoURL      = "https://cdn.itinera.dev/airlines/qz.png"
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

// Search will simulate API call to AirAsia flight search API
// it will fail roughly 15% of the time to exercise the retry path
func (p *Provider) Search(ctx context.Context,
	criteria dto.SearchCriteria,
) ([]dto.FlightRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		// simulate delay 100-250ms
		delay := time.Duration(100+rand.Intn(151)) * time.Millisecond
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
		}

		// simulate transient provider error
		if rand.Float64() < 0.15 {
			lastErr = providerutils.ErrProviderInternalError
			slog.ErrorContext(ctx, "failed to call airasia flight search API", "attempt",
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
			ID:       fmt.Sprintf("%s_%s", flight.FlightCode, ProviderName),
			Provider: p.Name,
			Airline: dto.Airline{
				Name:    flight.Airline,
				Code:    ProviderCode,
				LogoURL: logoURL,
			},
			FlightNumber: flight.FlightCode,
			Departure: dto.Endpoint{
				Airport:  flight.FromAirport,
				Name:     providerutils.AirportName(flight.FromAirport),
				City:     providerutils.AirportCity(flight.FromAirport),
				Terminal: flight.FromTerminal,
			},
			Arrival: dto.Endpoint{
				Airport:  flight.ToAirport,
				Name:     providerutils.AirportName(flight.ToAirport),
				City:     providerutils.AirportCity(flight.ToAirport),
				Terminal: flight.ToTerminal,
			},
			DepartureTime: flight.DepartTime.UTC(),
			ArrivalTime:   flight.ArriveTime.UTC(),
			DurationHours: flight.DurationHours,
			Price: dto.Price{
				Amount:    float64(flight.PriceIDR),
				Currency:  "IDR",
				Formatted: utils.FormatCurrency(int64(flight.PriceIDR), "IDR"),
			},
			AvailableSeats: flight.Seats,
			CabinClass:     strings.ToLower(flight.CabinClass),
			Facility:       flight.ServiceNote,
		}
	}
	return results
}
