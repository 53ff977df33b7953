package lionair

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
	ProviderName = "LionAir"
	ProviderCode = "JT"
	logoURL      = "https://cdn.itinera.dev/airlines/jt.png"
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

// Search will simulate API call to LionAir flight search API
// it will return always success with delay 100-200ms
func (p *Provider) Search(ctx context.Context,
	criteria dto.SearchCriteria,
) ([]dto.FlightRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		// simulate delay 100-200ms
		delay := time.Duration(100+rand.Intn(101)) * time.Millisecond
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
		}

		// always success not simulate error
		if rand.Float64() < 0 {
			lastErr = providerutils.ErrProviderInternalError
			slog.ErrorContext(ctx, "failed to call lionair flight search API", "attempt",
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

		// convert to dto.FlightRecord and filter
		records := p.toFlightRecords(response.Data.AvailableFlights)
		return providerutils.FilterRecords(records, criteria, p.Location), nil
	}

	return nil, fmt.Errorf("failed to get flight data after %d attempts", p.MaxRetries)
}

func (p *Provider) toFlightRecords(flights []Flight) []dto.FlightRecord {
	results := make([]dto.FlightRecord, len(flights))
	for i, flight := range flights {
		deptTime := p.parseTimeWithLocation(flight.Schedule.Departure, flight.Schedule.DepartureTimezone)
		arrTime := p.parseTimeWithLocation(flight.Schedule.Arrival, flight.Schedule.ArrivalTimezone)

		results[i] = dto.FlightRecord{
			ID:       p.generateID(flight.ID, p.Name),
			Provider: p.Name,
			Airline: dto.Airline{
				Name:    ProviderName,
				Code:    ProviderCode,
				LogoURL: logoURL,
			},
			FlightNumber: flight.ID,
			Departure: dto.Endpoint{
				Airport:  flight.Route.From.Code,
				Name:     providerutils.AirportName(flight.Route.From.Code),
				City:     flight.Route.From.City,
				Terminal: flight.Route.From.Terminal,
			},
			Arrival: dto.Endpoint{
				Airport:  flight.Route.To.Code,
				Name:     providerutils.AirportName(flight.Route.To.Code),
				City:     flight.Route.To.City,
				Terminal: flight.Route.To.Terminal,
			},
			DepartureTime: deptTime.UTC(),
			ArrivalTime:   arrTime.UTC(),
			DurationHours: float64(flight.FlightTime) / 60,
			Price: dto.Price{
				Amount:    float64(flight.Pricing.Total),
				Currency:  flight.Pricing.Currency,
				Formatted: utils.FormatCurrency(int64(flight.Pricing.Total), flight.Pricing.Currency),
			},
			AvailableSeats: flight.SeatsLeft,
			CabinClass:     strings.ToLower(flight.Pricing.FareType),
			Facility:       p.getFacility(flight.Services),
		}
	}
	return results
}

func (p *Provider) generateID(code, name string) string {
	return fmt.Sprintf("%s_%s", code, name)
}

func (p *Provider) parseTimeWithLocation(timeStr, locationStr string) time.Time {
	loc, err := time.LoadLocation(locationStr)
	if err != nil {
		loc = time.UTC
	}
	t, _ := time.ParseInLocation("2006-01-02T15:04:05", timeStr, loc)
	return t
}

func (p *Provider) getFacility(services Services) string {
	var facilities []string
	if services.WifiAvailable {
		facilities = append(facilities, "wifi")
	}
	if services.MealsIncluded {
		facilities = append(facilities, "meal")
	}
	return strings.Join(facilities, ", ")
}
