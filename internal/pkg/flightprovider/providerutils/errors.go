package providerutils

import (
	"net/http"

	"github.com/itinera/flight-itinerary-service/internal/pkg/exception"
)

var ErrProviderInternalError = exception.New(http.StatusInternalServerError,
	"provider internal error or temporary unavailable")

var ErrRetryExceeded = exception.New(http.StatusInternalServerError, "retry exceeded")

var ErrProviderRateLimitExceeded = exception.New(http.StatusTooManyRequests,
	"provider rate limit exceeded")
