package flight

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

func TestRecordCache_Keys_Closure(t *testing.T) {
	keyRequest := func(req dto.SearchCriteria, wantLock, wantCache string) func(t *testing.T) {
		return func(t *testing.T) {
			c := &RecordCache{}
			if got := c.GetLockKey(req); got != wantLock {
				t.Fatalf("expected %s, got %s", wantLock, got)
			}
			if got := c.GetCacheKey(req); got != wantCache {
				t.Fatalf("expected %s, got %s", wantCache, got)
			}
		}
	}

	returnDate := "2025-03-15"

	t.Run("one_way", keyRequest(dto.SearchCriteria{
		Origin:        "CGK",
		Destination:   "DPS",
		DepartureDate: "2025-03-10",
		CabinClass:    "economy",
		Passengers:    1,
	},
		"itinerary:lock:2025-03-10:-:CGK:DPS:economy:1",
		"itinerary:cache:2025-03-10:-:CGK:DPS:economy:1",
	))

	t.Run("round_trip", keyRequest(dto.SearchCriteria{
		Origin:        "CGK",
		Destination:   "DPS",
		DepartureDate: "2025-03-10",
		ReturnDate:    &returnDate,
		CabinClass:    "business",
		Passengers:    2,
	},
		"itinerary:lock:2025-03-10:2025-03-15:CGK:DPS:business:2",
		"itinerary:cache:2025-03-10:2025-03-15:CGK:DPS:business:2",
	))
}

func TestRecordCache_AcquireLock_Closure(t *testing.T) {
	acquireLockRequest := func(key string, timeout time.Duration, mockSetup func(m *MockRedisClient), want bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewRecordCache(m)

			got, err := c.AcquireLock(context.Background(), key, timeout)
			if err != nil {
				t.Fatalf("AcquireLock returned error: %v", err)
			}
			if got != want {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	t.Run("lock_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(true, nil))
	}, true))

	t.Run("lock_not_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(false, nil))
	}, false))
}

func TestRecordCache_GetRecords_Closure(t *testing.T) {
	records := []dto.FlightRecord{
		{ID: "GA101_Garuda", FlightNumber: "GA101"},
	}
	payload, _ := json.Marshal(records)

	getRequest := func(mockSetup func(m *MockRedisClient), want []dto.FlightRecord, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewRecordCache(m)

			got, err := c.GetRecords(context.Background(), "cache-key")
			if (err != nil) != wantErr {
				t.Fatalf("GetRecords error = %v, wantErr %v", err, wantErr)
			}

			if !wantErr {
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("GetRecords mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	t.Run("hit", getRequest(func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "cache-key").Return(redis.NewStringResult(string(payload), nil))
	}, records, false))

	t.Run("miss", getRequest(func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "cache-key").Return(redis.NewStringResult("", redis.Nil))
	}, nil, true))
}

func TestRecordCache_ReleaseLock_Closure(t *testing.T) {
	m := NewMockRedisClient(t)
	m.On("Del", mock.Anything, "lock-key").Return(redis.NewIntResult(1, nil))

	c := NewRecordCache(m)
	if err := c.ReleaseLock(context.Background(), "lock-key"); err != nil {
		t.Fatalf("ReleaseLock returned error: %v", err)
	}
}
