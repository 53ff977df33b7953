//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itinera/flight-itinerary-service/internal/app/dto"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flightprovider"
	"github.com/itinera/flight-itinerary-service/internal/pkg/itinerary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestItineraryService_SearchItineraries(t *testing.T) {
	type mockField struct {
		cache    *MockRecordCacher
		provider *flightprovider.MockFlightProvider
	}

	searchRequest := func(
		criteria dto.SearchCriteria,
		setupMock func(m mockField),
		check func(t *testing.T, got dto.SearchItineraryResponse, err error),
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := mockField{
				cache:    NewMockRecordCacher(t),
				provider: flightprovider.NewMockFlightProvider(t),
			}
			setupMock(m)

			factory := flightprovider.NewFlightProviderFactory()
			factory.AddProvider("test-provider", m.provider)

			s := &ItineraryService{
				ProviderFactory:       factory,
				Cache:                 m.cache,
				RecordCacheExpiration: 10 * time.Minute,
				RecordLockTimeout:     5 * time.Second,
				SearchOptions:         itinerary.NewOptions(time.UTC),
			}

			got, err := s.SearchItineraries(context.Background(), criteria)
			check(t, got, err)
		}
	}

	returnDate := "2025-03-15"
	criteria := dto.SearchCriteria{
		Origin:        "CGK",
		Destination:   "DPS",
		DepartureDate: "2025-03-10",
		Passengers:    1,
		CabinClass:    "economy",
	}

	roundTripCriteria := criteria
	roundTripCriteria.ReturnDate = &returnDate

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	returnDay := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	makeRecord := func(id, from, to string, dep, arr time.Time, price float64) dto.FlightRecord {
		return dto.FlightRecord{
			ID:             id,
			FlightNumber:   id,
			Provider:       "test-provider",
			Airline:        dto.Airline{Name: "Test Air", Code: "TS"},
			Departure:      dto.Endpoint{Airport: from},
			Arrival:        dto.Endpoint{Airport: to},
			DepartureTime:  dep,
			ArrivalTime:    arr,
			DurationHours:  arr.Sub(dep).Hours(),
			Price:          dto.Price{Amount: price, Currency: "IDR"},
			AvailableSeats: 4,
			CabinClass:     "economy",
		}
	}

	direct := makeRecord("TS801", "CGK", "DPS",
		day.Add(8*time.Hour), day.Add(10*time.Hour), 900000)
	legOne := makeRecord("TS802", "CGK", "SUB",
		day.Add(6*time.Hour), day.Add(7*time.Hour), 400000)
	legTwo := makeRecord("TS803", "SUB", "DPS",
		day.Add(9*time.Hour), day.Add(10*time.Hour), 350000)
	returnDirect := makeRecord("TS804", "DPS", "CGK",
		returnDay.Add(17*time.Hour), returnDay.Add(19*time.Hour), 950000)

	records := []dto.FlightRecord{direct, legOne, legTwo, returnDirect}

	t.Run("cache_hit", searchRequest(
		criteria,
		func(m mockField) {
			m.cache.On("GetCacheKey", criteria).Return("cache-key")
			m.cache.On("GetLockKey", criteria).Return("lock-key")
			m.cache.On("GetRecords", mock.Anything, "cache-key").Return(records, nil)
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{
				ProvidersQueried:   1,
				ProvidersSucceeded: 1,
			}, nil)
		},
		func(t *testing.T, got dto.SearchItineraryResponse, err error) {
			assert.NoError(t, err)
			assert.True(t, got.Metadata.CacheHit)
			assert.Equal(t, 2, got.Metadata.OutboundResults)
			assert.Empty(t, got.Return)
		},
	))

	t.Run("cache_miss_fetches_providers", searchRequest(
		criteria,
		func(m mockField) {
			m.cache.On("GetCacheKey", criteria).Return("cache-key")
			m.cache.On("GetLockKey", criteria).Return("lock-key")
			m.cache.On("GetRecords", mock.Anything, "cache-key").Return(nil, errors.New("miss"))
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{}, errors.New("miss"))
			m.provider.On("Search", mock.Anything, criteria).Return(records, nil)
			m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(true, nil)
			m.cache.On("SetRecords", mock.Anything, "cache-key", records,
				mock.Anything, 10*time.Minute).Return(nil)
			m.cache.On("ReleaseLock", mock.Anything, "lock-key").Return(nil)
		},
		func(t *testing.T, got dto.SearchItineraryResponse, err error) {
			assert.NoError(t, err)
			assert.False(t, got.Metadata.CacheHit)
			assert.Equal(t, 1, got.Metadata.ProvidersQueried)
			assert.Equal(t, 1, got.Metadata.ProvidersSucceeded)
			assert.Equal(t, 2, got.Metadata.OutboundResults)

			// default sort is best score: the connecting option is
			// cheaper in total, which outweighs its extra leg and delay
			assert.Len(t, got.Outbound[0].Legs, 2)
			assert.Len(t, got.Outbound[1].Legs, 1)
		},
	))

	t.Run("round_trip_searches_both_directions", searchRequest(
		roundTripCriteria,
		func(m mockField) {
			m.cache.On("GetCacheKey", roundTripCriteria).Return("cache-key")
			m.cache.On("GetLockKey", roundTripCriteria).Return("lock-key")
			m.cache.On("GetRecords", mock.Anything, "cache-key").Return(records, nil)
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{}, nil)
		},
		func(t *testing.T, got dto.SearchItineraryResponse, err error) {
			assert.NoError(t, err)
			assert.Equal(t, 2, got.Metadata.OutboundResults)
			assert.Equal(t, 1, got.Metadata.ReturnResults)
			assert.Equal(t, 3, got.Metadata.TotalResults)
			assert.Equal(t, "TS804", got.Return[0].Legs[0].FlightNumber)
		},
	))

	t.Run("no_itineraries_found", searchRequest(
		criteria,
		func(m mockField) {
			m.cache.On("GetCacheKey", criteria).Return("cache-key")
			m.cache.On("GetLockKey", criteria).Return("lock-key")
			m.cache.On("GetRecords", mock.Anything, "cache-key").
				Return([]dto.FlightRecord{returnDirect}, nil)
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{}, nil)
		},
		func(t *testing.T, got dto.SearchItineraryResponse, err error) {
			assert.ErrorIs(t, err, ErrNoItinerariesFound)
		},
	))

	t.Run("provider_failure_propagates", searchRequest(
		criteria,
		func(m mockField) {
			m.cache.On("GetCacheKey", criteria).Return("cache-key")
			m.cache.On("GetLockKey", criteria).Return("lock-key")
			m.cache.On("GetRecords", mock.Anything, "cache-key").Return(nil, errors.New("miss"))
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{}, errors.New("miss"))
			m.provider.On("Search", mock.Anything, criteria).Return(nil, errors.New("provider down"))
			m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(true, nil)
			m.cache.On("SetRecords", mock.Anything, "cache-key", []dto.FlightRecord{},
				mock.Anything, 10*time.Minute).Return(nil)
			m.cache.On("ReleaseLock", mock.Anything, "lock-key").Return(nil)
		},
		func(t *testing.T, got dto.SearchItineraryResponse, err error) {
			assert.ErrorIs(t, err, ErrNoItinerariesFound)
		},
	))
}
