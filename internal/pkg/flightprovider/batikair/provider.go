package batikair

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
	ProviderName = "BatikAir"
	ProviderCode = "ID"
	logoURL      = "https://cdn.itinera.dev/airlines/id.png"

	datetimeLayout = "2006-01-02 15:04"
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

// Search will simulate API call to BatikAir flight search API
// it will return always success with delay 200-400ms
func (p *Provider) Search(ctx context.Context, criteria dto.SearchCriteria) ([]dto.FlightRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		// simulate delay 200-400ms
		delay := time.Duration(200+rand.Intn(201)) * time.Millisecond
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
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

		records := p.toFlightRecords(response.Results)
		return providerutils.FilterRecords(records, criteria, p.Location), nil
	}

	return nil, providerutils.ErrRetryExceeded
}

// toFlightRecords converts a slice of Flight to a slice of dto.FlightRecord
// it will normalize the data from the provider to the dto.FlightRecord struct
func (p *Provider) toFlightRecords(flights []Flight) []dto.FlightRecord {
	results := make([]dto.FlightRecord, 0, len(flights))
	for _, flight := range flights {

		departureTime, err := p.parseTime(flight.DepartureDateTime)
		if err != nil {
			slog.Debug("failed to parse departure time", "error", err)
			continue
		}
		arrivalTime, err := p.parseTime(flight.ArrivalDateTime)
		if err != nil {
			slog.Debug("failed to parse arrival time", "error", err)
			continue
		}

		totalPrice := p.getTotalPrice(flight.Fare.BasePrice, flight.Fare.Taxes)

		results = append(results, dto.FlightRecord{
			ID:       fmt.Sprintf("%s_%s", flight.FlightNumber, ProviderName),
			Provider: p.Name,
			Airline: dto.Airline{
				Name:    flight.AirlineName,
				Code:    flight.AirlineIATA,
				LogoURL: logoURL,
			},
			FlightNumber: flight.FlightNumber,
			Departure: dto.Endpoint{
				Airport:  flight.Origin,
				Name:     providerutils.AirportName(flight.Origin),
				City:     providerutils.AirportCity(flight.Origin),
				Terminal: flight.OriginTerminal,
			},
			Arrival: dto.Endpoint{
				Airport:  flight.Destination,
				Name:     providerutils.AirportName(flight.Destination),
				City:     providerutils.AirportCity(flight.Destination),
				Terminal: flight.DestTerminal,
			},
			DepartureTime: departureTime,
			ArrivalTime:   arrivalTime,
			DurationHours: float64(utils.ConvertDurationToMinutes(flight.TravelTime)) / 60,
			Price: dto.Price{
				Amount:    float64(totalPrice),
				Currency:  flight.Fare.CurrencyCode,
				Formatted: utils.FormatCurrency(totalPrice, flight.Fare.CurrencyCode),
			},
			AvailableSeats: flight.SeatsAvailable,
			CabinClass:     p.getCabinClass(flight.Fare.Class),
			Facility:       strings.Join(flight.OnboardServices, ", "),
		})
	}

	return results
}

// BatikAir sends wall-clock WIB times without offsets
func (p *Provider) parseTime(value string) (time.Time, error) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.UTC
	}

	parsed, err := time.ParseInLocation(datetimeLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %q: %w", value, err)
	}

	return parsed.UTC(), nil
}

func (p *Provider) getTotalPrice(basePrice, taxes int) int64 {
	return int64(basePrice + taxes)
}

func (p *Provider) getCabinClass(fareClass string) string {
	switch strings.ToUpper(fareClass) {
	case "Y", "M", "ECONOMY":
		return "economy"
	case "J", "C", "BUSINESS":
		return "business"
	case "F", "FIRST":
		return "first"
	default:
		return strings.ToLower(fareClass)
	}
}
