package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/itinera/flight-itinerary-service/internal/app/config"
	"github.com/itinera/flight-itinerary-service/internal/app/dto"
	"github.com/itinera/flight-itinerary-service/internal/app/endpoints"
	"github.com/itinera/flight-itinerary-service/internal/app/service"
	"github.com/itinera/flight-itinerary-service/internal/app/transport"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flight"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flightprovider"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flightprovider/airasia"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flightprovider/batikair"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flightprovider/garuda"
	"github.com/itinera/flight-itinerary-service/internal/pkg/flightprovider/lionair"
	"github.com/itinera/flight-itinerary-service/internal/pkg/itinerary"
	"github.com/itinera/flight-itinerary-service/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// @title           Flight Itinerary Service API
// @version         0.0.1
// @description     multi-leg flight itinerary search service
// @host      localhost:8080
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// one display location for the whole pipeline: providers prefilter travel
	// dates on it and the service splits directions on it
	location := loadDisplayLocation(ctx, cfg.Itinerary.DisplayTimezone)

	// init factory
	flightProviderFactory := initFlightProviderFactory(cfg, redisClient, location)

	// init service endpoint
	return endpoints.Endpoints{
		ItineraryEndpoint: makeItineraryEndpoint(flightProviderFactory, redisClient, cfg, location),
	}
}

// register flight provider
func initFlightProviderFactory(cfg *config.Config, redisClient *redis.Client,
	location *time.Location,
) *flightprovider.FlightProviderFactory {
	limiter := redis_rate.NewLimiter(redisClient)

	factory := flightprovider.NewFlightProviderFactory()
	factory.AddProvider(lionair.ProviderName, lionair.NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: cfg.Providers.LionAirProvider.SearchAPIURL,
		Timeout:      cfg.Providers.LionAirProvider.Timeout,
		MaxRetries:   cfg.Providers.LionAirProvider.MaxRetries,
		RateLimitRPS: cfg.Providers.LionAirProvider.RateLimitRPS,
		Limiter:      limiter,
		Location:     location,
	}))
	factory.AddProvider(batikair.ProviderName, batikair.NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: cfg.Providers.BatikAirProvider.SearchAPIURL,
		Timeout:      cfg.Providers.BatikAirProvider.Timeout,
		MaxRetries:   cfg.Providers.BatikAirProvider.MaxRetries,
		RateLimitRPS: cfg.Providers.BatikAirProvider.RateLimitRPS,
		Limiter:      limiter,
		Location:     location,
	}))
	factory.AddProvider(airasia.ProviderName, airasia.NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: cfg.Providers.AirAsiaProvider.SearchAPIURL,
		Timeout:      cfg.Providers.AirAsiaProvider.Timeout,
		MaxRetries:   cfg.Providers.AirAsiaProvider.MaxRetries,
		RateLimitRPS: cfg.Providers.AirAsiaProvider.RateLimitRPS,
		Limiter:      limiter,
		Location:     location,
	}))
	factory.AddProvider(garuda.ProviderName, garuda.NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: cfg.Providers.GarudaProvider.SearchAPIURL,
		Timeout:      cfg.Providers.GarudaProvider.Timeout,
		MaxRetries:   cfg.Providers.GarudaProvider.MaxRetries,
		RateLimitRPS: cfg.Providers.GarudaProvider.RateLimitRPS,
		Limiter:      limiter,
		Location:     location,
	}))

	return factory
}

func makeItineraryEndpoint(factory *flightprovider.FlightProviderFactory,
	redisClient *redis.Client, cfg *config.Config, location *time.Location) endpoints.ItineraryEndpoint {
	// cache
	recordCache := flight.NewRecordCache(redisClient)

	// search tuning
	searchOptions := makeSearchOptions(cfg.Itinerary, location)

	// service
	itineraryService := service.NewItineraryService(factory, recordCache,
		cfg.Providers.CacheExpiration, cfg.Providers.LockTimeout, searchOptions)

	// endpoint
	return endpoints.MakeItineraryEndpoint(itineraryService)
}

func loadDisplayLocation(ctx context.Context, timezone string) *time.Location {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.WarnContext(ctx, "unknown display timezone, falling back to UTC",
			slog.String("timezone", timezone))

		return time.UTC
	}

	return location
}

func makeSearchOptions(cfg config.Itinerary, location *time.Location) itinerary.Options {
	opts := itinerary.NewOptions(location)
	if cfg.MinConnectionMinutes > 0 {
		opts.MinConnection = time.Duration(cfg.MinConnectionMinutes) * time.Minute
	}

	if cfg.MaxPathLength > 0 {
		opts.MaxPathLength = cfg.MaxPathLength
	}

	if cfg.MaxCombinations > 0 {
		opts.MaxCombinations = cfg.MaxCombinations
	}

	return opts
}
