package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itinera/flight-itinerary-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RecordCache stores the normalized flight records fetched from providers,
// keyed by search criteria. The itinerary pipeline always reruns on the
// cached records since filter and sort options vary per request.
type RecordCache struct {
	redis RedisClient
}

func NewRecordCache(redis RedisClient) *RecordCache {
	return &RecordCache{
		redis: redis,
	}
}

func (c *RecordCache) GetLockKey(req dto.SearchCriteria) string {
	return fmt.Sprintf("itinerary:lock:%s", criteriaKey(req))
}

func (c *RecordCache) GetCacheKey(req dto.SearchCriteria) string {
	return fmt.Sprintf("itinerary:cache:%s", criteriaKey(req))
}

func criteriaKey(req dto.SearchCriteria) string {
	returnDate := "-"
	if req.ReturnDate != nil {
		returnDate = *req.ReturnDate
	}

	return fmt.Sprintf("%s:%s:%s:%s:%s:%d",
		req.DepartureDate, returnDate, req.Origin, req.Destination, req.CabinClass, req.Passengers)
}

func (c *RecordCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *RecordCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *RecordCache) SetRecords(ctx context.Context,
	key string,
	records []dto.FlightRecord,
	metadata dto.Metadata,
	expiration time.Duration,
) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal flight records: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set flight records: %w", err)
	}

	metadataBytes, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	err = c.redis.Set(ctx, key+":metadata", metadataBytes, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}

func (c *RecordCache) GetRecords(ctx context.Context, key string) ([]dto.FlightRecord, error) {

	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var records []dto.FlightRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (c *RecordCache) GetMetadata(ctx context.Context, key string) (dto.Metadata, error) {
	metadataBytes, err := c.redis.Get(ctx, key+":metadata").Bytes()
	if err != nil {
		return dto.Metadata{}, err
	}

	var metadata dto.Metadata
	if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
		return dto.Metadata{}, err
	}

	return metadata, nil
}
