package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/itinera/flight-itinerary-service/internal/pkg/exception"
)

// FlightRecord is a single bookable flight leg as normalized from a provider.
// The itinerary search core treats this as read-only input.
type FlightRecord struct {
	ID             string    `json:"id"`
	Provider       string    `json:"provider"`
	Airline        Airline   `json:"airline"`
	FlightNumber   string    `json:"flight_number"`
	Departure      Endpoint  `json:"departure"`
	Arrival        Endpoint  `json:"arrival"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	DurationHours  float64   `json:"duration_hours"`
	Price          Price     `json:"price"`
	AvailableSeats int       `json:"available_seats"`
	CabinClass     string    `json:"cabin_class"`
	Facility       string    `json:"facility,omitempty"`
}

type Airline struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	LogoURL string `json:"logo_url,omitempty"`
}

// Endpoint is the display metadata of one side of a flight.
// Airport holds the location code used as the graph vertex.
type Endpoint struct {
	Airport  string `json:"airport"`
	Name     string `json:"name,omitempty"`
	City     string `json:"city,omitempty"`
	Terminal string `json:"terminal,omitempty"`
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type Duration struct {
	Hours     float64 `json:"hours"`
	Formatted string  `json:"formatted"`
}

// Itinerary is one valid ordered sequence of flight legs from the requested
// origin to the requested destination, with aggregated totals.
type Itinerary struct {
	FlightDate           string    `json:"flight_date"`
	DepartureTime        time.Time `json:"departure_time"`
	ArrivalTime          time.Time `json:"arrival_time"`
	CabinClass           string    `json:"cabin_class"`
	TotalPrice           Price     `json:"total_price"`
	TotalDuration        Duration  `json:"total_duration"`
	IsTransit            bool      `json:"is_transit"`
	ConnectionDelayHours float64   `json:"connection_delay_hours"`
	Legs                 []Leg     `json:"legs"`
	Score                float64   `json:"score"`
}

// Leg is the display record of one flight inside an itinerary. Local dates
// and times are rendered in the business display timezone.
type Leg struct {
	FlightNumber string   `json:"flight_number"`
	Airline      Airline  `json:"airline"`
	Departure    LegPoint `json:"departure"`
	Arrival      LegPoint `json:"arrival"`
	Duration     Duration `json:"duration"`
	Facility     string   `json:"facility,omitempty"`
	Price        Price    `json:"price"`
}

type LegPoint struct {
	Airport  string `json:"airport"`
	Name     string `json:"name,omitempty"`
	City     string `json:"city,omitempty"`
	Terminal string `json:"terminal,omitempty"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

const dateLayout = "2006-01-02"

type SearchCriteria struct {
	Origin        string        `json:"origin" validate:"required"`
	Destination   string        `json:"destination" validate:"required,nefield=Origin"`
	DepartureDate string        `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    *string       `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Passengers    int           `json:"passengers" validate:"required,min=1,max=10"`
	CabinClass    string        `json:"cabin_class" validate:"required,oneof=economy business first"`
	SortOption    *SortOption   `json:"sort_option,omitempty"`
	FilterOption  *FilterOption `json:"filter_option,omitempty"`
}

func (s *SearchCriteria) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchCriteria) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.BadRequest(err.Error())
	}

	if s.ReturnDate != nil {
		departureDate, _ := time.Parse(dateLayout, s.DepartureDate)
		returnDate, _ := time.Parse(dateLayout, *s.ReturnDate)

		if returnDate.Before(departureDate) {
			return exception.BadRequest("return_date must not be before departure_date")
		}
	}

	if s.SortOption != nil {
		if !AllowedSortField[s.SortOption.Field] {
			return exception.BadRequest(fmt.Sprintf("Invalid sort field %s", s.SortOption.Field))
		}
	}

	if s.FilterOption != nil {
		if s.FilterOption.MinPrice != nil && s.FilterOption.MaxPrice != nil &&
			*s.FilterOption.MaxPrice <= *s.FilterOption.MinPrice {
			return exception.BadRequest("max_price must be greater than min_price")
		}

		if s.FilterOption.MinDurationHours != nil && s.FilterOption.MaxDurationHours != nil &&
			*s.FilterOption.MaxDurationHours <= *s.FilterOption.MinDurationHours {
			return exception.BadRequest("max_duration_hours must be greater than min_duration_hours")
		}

		if s.FilterOption.MaxLegs != nil && *s.FilterOption.MaxLegs < 1 {
			return exception.BadRequest("max_legs must be at least 1")
		}
	}

	return nil
}

type FilterOption struct {
	MinPrice           *float64 `json:"min_price,omitempty" validate:"omitempty,numeric,gt=0"`
	MaxPrice           *float64 `json:"max_price,omitempty" validate:"omitempty,numeric,gt=0"`
	MaxLegs            *int     `json:"max_legs,omitempty" validate:"omitempty,numeric,gte=0"`
	DirectOnly         *bool    `json:"direct_only,omitempty"`
	Airline            *string  `json:"airline,omitempty"`
	DepartureTimeStart *string  `json:"departure_time_start,omitempty"`
	DepartureTimeEnd   *string  `json:"departure_time_end,omitempty"`
	MinDurationHours   *float64 `json:"min_duration_hours,omitempty" validate:"omitempty,numeric,gte=0"`
	MaxDurationHours   *float64 `json:"max_duration_hours,omitempty" validate:"omitempty,numeric,gte=0"`
}

type SortOption struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

var AllowedSortField = map[string]bool{
	"price":          true,
	"duration":       true,
	"delay":          true,
	"departure_time": true,
	"arrival_time":   true,
}

type Metadata struct {
	TotalResults       int  `json:"total_results"`
	OutboundResults    int  `json:"outbound_results"`
	ReturnResults      int  `json:"return_results"`
	ProvidersQueried   int  `json:"providers_queried"`
	ProvidersSucceeded int  `json:"providers_succeeded"`
	ProvidersFailed    int  `json:"providers_failed"`
	SkippedRecords     int  `json:"skipped_records"`
	SearchTimeMs       int  `json:"search_time_ms"`
	CacheHit           bool `json:"cache_hit"`
}

// SearchItineraryResponse is the response struct for the itinerary search endpoint
type SearchItineraryResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       Metadata       `json:"metadata"`
	Outbound       []Itinerary    `json:"outbound_itineraries"`
	Return         []Itinerary    `json:"return_itineraries,omitempty"`
}
