package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/itinera/flight-itinerary-service/internal/app/dto"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flight"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flightprovider"
	"github.com/itinera/flight-itinerary-service/internal/pkg/itinerary"
)

type RecordCacher interface {
	GetLockKey(req dto.SearchCriteria) string
	GetCacheKey(req dto.SearchCriteria) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetRecords(ctx context.Context, key string) ([]dto.FlightRecord, error)
	GetMetadata(ctx context.Context, key string) (dto.Metadata, error)
	SetRecords(ctx context.Context,
		key string,
		records []dto.FlightRecord,
		metadata dto.Metadata,
		expiration time.Duration,
	) error
}

type providerResult struct {
	Provider string
	Records  []dto.FlightRecord
	Error    error
}

type ItineraryService struct {
	ProviderFactory       *flightprovider.FlightProviderFactory
	Cache                 RecordCacher
	RecordCacheExpiration time.Duration
	RecordLockTimeout     time.Duration
	SearchOptions         itinerary.Options
}

func NewItineraryService(providerFactory *flightprovider.FlightProviderFactory,
	cache RecordCacher, recordCacheExpiration time.Duration,
	recordLockTimeout time.Duration, searchOptions itinerary.Options) *ItineraryService {
	return &ItineraryService{
		ProviderFactory:       providerFactory,
		Cache:                 cache,
		RecordCacheExpiration: recordCacheExpiration,
		RecordLockTimeout:     recordLockTimeout,
		SearchOptions:         searchOptions,
	}
}

// SearchItineraries discovers every valid itinerary for the requested trip,
// direct or connecting. Flight records come from all providers (or the cache);
// the routing itself runs per direction, concurrently for round trips.
// SearchItineraries godoc
// @Summary      Search itineraries
// @Tags         Itineraries
// @Description  Search direct and connecting itineraries from all providers
// @Param        request  body      dto.SearchCriteria  true  "Search Criteria"
// @Success      200      {object}  dto.SearchItineraryResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/itineraries/search [post]
func (s *ItineraryService) SearchItineraries(
	ctx context.Context,
	req dto.SearchCriteria,
) (dto.SearchItineraryResponse, error) {
	var (
		records  []dto.FlightRecord
		metadata dto.Metadata
	)

	startTime := time.Now()
	cacheHit := false

	// get from cache first
	cacheKey := s.Cache.GetCacheKey(req)
	lockKey := s.Cache.GetLockKey(req)

	records, err := s.Cache.GetRecords(ctx, cacheKey)
	if err == nil {
		cacheHit = true
	} else {
		slog.WarnContext(ctx, "failed to get flight records from cache", slog.String("error", err.Error()))
	}

	metadata, err = s.Cache.GetMetadata(ctx, cacheKey)
	if err != nil {
		slog.WarnContext(ctx, "failed to get metadata from cache", slog.String("error", err.Error()))
	}

	// cache miss get from provider and store to cache
	if !cacheHit {
		// if there is concurrent request with same criteria, only one will be
		// processed to save to cache so the next request with the same
		// criteria will hit the cache
		var numberOfProviders, numberOfFailedProviders int

		records, numberOfProviders,
			numberOfFailedProviders, err = s.getFromProviders(ctx, req)
		if err != nil && !errors.Is(err, ErrNoFlightsFound) {
			return dto.SearchItineraryResponse{}, fmt.Errorf("failed to get flights from providers: %w", err)
		}

		metadata = dto.Metadata{
			ProvidersQueried:   numberOfProviders,
			ProvidersSucceeded: numberOfProviders - numberOfFailedProviders,
			ProvidersFailed:    numberOfFailedProviders,
		}

		// lock to process cache
		acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.RecordLockTimeout)
		if err != nil {
			return dto.SearchItineraryResponse{}, fmt.Errorf("failed to acquire lock: %w", err)
		}
		defer s.Cache.ReleaseLock(ctx, lockKey)

		if acquired {
			// if lock is acquired, process the request and save to cache
			err = s.Cache.SetRecords(ctx, cacheKey, records, metadata, s.RecordCacheExpiration)
			if err != nil {
				return dto.SearchItineraryResponse{}, fmt.Errorf("failed to set flight records to cache: %w", err)
			}
		}
	}

	outbound, returnItineraries, skipped := s.discoverItineraries(records, req)

	// filter, rank, and sort each direction independently
	outbound = s.presentItineraries(ctx, outbound, req)
	returnItineraries = s.presentItineraries(ctx, returnItineraries, req)

	// metadata
	metadata.OutboundResults = len(outbound)
	metadata.ReturnResults = len(returnItineraries)
	metadata.TotalResults = len(outbound) + len(returnItineraries)
	metadata.SkippedRecords = skipped
	metadata.SearchTimeMs = int(time.Since(startTime).Milliseconds())
	metadata.CacheHit = cacheHit

	if len(outbound) == 0 {
		return dto.SearchItineraryResponse{}, ErrNoItinerariesFound
	}

	return dto.SearchItineraryResponse{
		SearchCriteria: req,
		Metadata:       metadata,
		Outbound:       outbound,
		Return:         returnItineraries,
	}, nil
}

// discoverItineraries runs the routing pipeline once per direction. The two
// directions are independent, so a round trip runs them concurrently on their
// own record slices.
func (s *ItineraryService) discoverItineraries(records []dto.FlightRecord,
	req dto.SearchCriteria,
) (outbound []dto.Itinerary, returnItineraries []dto.Itinerary, skipped int) {
	location := s.SearchOptions.Location

	outboundRecords := flight.RecordsForDate(records, req.DepartureDate, location)

	if req.ReturnDate == nil {
		result := itinerary.Search(outboundRecords, req.Origin, req.Destination, s.SearchOptions)

		return result.Itineraries, nil, result.SkippedRecords
	}

	returnRecords := flight.RecordsForDate(records, *req.ReturnDate, location)

	var (
		outboundResult itinerary.Result
		returnResult   itinerary.Result
		waitGroup      sync.WaitGroup
	)

	waitGroup.Add(2)

	go func() {
		defer waitGroup.Done()
		outboundResult = itinerary.Search(outboundRecords, req.Origin, req.Destination, s.SearchOptions)
	}()

	go func() {
		defer waitGroup.Done()
		returnResult = itinerary.Search(returnRecords, req.Destination, req.Origin, s.SearchOptions)
	}()

	waitGroup.Wait()

	return outboundResult.Itineraries, returnResult.Itineraries,
		outboundResult.SkippedRecords + returnResult.SkippedRecords
}

func (s *ItineraryService) presentItineraries(ctx context.Context,
	itineraries []dto.Itinerary, req dto.SearchCriteria,
) []dto.Itinerary {
	filtered := flight.FilterItineraries(ctx, itineraries, req.FilterOption)
	ranked := flight.RankItineraries(filtered)

	return flight.SortItineraries(ranked, req.SortOption)
}

func (s *ItineraryService) getFromProviders(ctx context.Context,
	req dto.SearchCriteria,
) ([]dto.FlightRecord, int, int, error) {
	providers := s.ProviderFactory.GetAllProviders()
	results := make(chan providerResult, len(providers))
	var wg sync.WaitGroup

	// concurrently call all providers
	// timeout for each provider is set in the provider itself
	wg.Add(len(providers))
	for key, provider := range providers {
		go func(key string, p flightprovider.FlightProvider) {
			defer wg.Done()
			records, err := p.Search(ctx, req)
			results <- providerResult{
				Provider: key,
				Records:  records,
				Error:    err,
			}
		}(key, provider)
	}

	// wait all go routine finish
	go func() {
		wg.Wait()
		close(results)
	}()

	numberOfFailedProviders := 0
	var allRecords []dto.FlightRecord
	for result := range results {
		if result.Error != nil {
			slog.WarnContext(ctx, "provider failed",
				slog.String("provider", result.Provider),
				slog.Any("error", result.Error))
			numberOfFailedProviders++
			continue
		}
		allRecords = append(allRecords, result.Records...)
	}

	if len(allRecords) == 0 {
		return []dto.FlightRecord{}, len(providers), numberOfFailedProviders, ErrNoFlightsFound
	}

	return allRecords, len(providers), numberOfFailedProviders, nil
}
