package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"house-price/internal/config"
	"house-price/internal/metrics"
	"house-price/internal/providers/openstreetmap"
	"house-price/internal/types"
)

// TimeoutWarning is shown when the geocoder does not answer in time
const TimeoutWarning = "Geocoder request timed out. Please try again."

const defaultTimeout = 10 * time.Second

var ErrLookupFailed = errors.New("reverse geocoding failed")

// Service resolves map clicks to place names
type Service interface {
	// Resolve names the place at coords. A geocoder timeout is not an error:
	// the place is reported as "Unknown" with a warning.
	Resolve(ctx context.Context, coords types.Coords) (*Resolution, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// Resolution is the outcome of resolving one coordinate
type Resolution struct {
	Coordinates types.Coords       `json:"coordinates"`
	Location    types.LocationInfo `json:"location"`
	CacheHit    bool               `json:"cache_hit"`
	Warning     string             `json:"warning,omitempty"`
}

type locationService struct {
	provider ReverseGeocodeProvider
	cache    Cache
	timeout  time.Duration
	logger   *slog.Logger
}

// NewLocationService creates a location service backed by Nominatim
func NewLocationService(cfg config.GeocoderConfig, cache Cache, logger *slog.Logger) Service {
	client := openstreetmap.NewClient(logger,
		openstreetmap.WithBaseURL(cfg.BaseURL),
		openstreetmap.WithUserAgent(cfg.UserAgent),
		openstreetmap.WithLanguage(cfg.Language),
	)
	return NewLocationServiceWithProviders(client, cache, cfg.Timeout, logger)
}

// NewLocationServiceWithProviders creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	provider ReverseGeocodeProvider,
	cache Cache,
	timeout time.Duration,
	logger *slog.Logger,
) Service {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &locationService{
		provider: provider,
		cache:    cache,
		timeout:  timeout,
		logger:   logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(ctx context.Context, coords types.Coords) (*Resolution, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	info, ok, err := s.cache.Get(ctx, coords)
	if err != nil {
		// A broken cache only costs a network call
		s.logger.Warn("geocode cache read failed", "coords", coords.Key(), "error", err)
	}
	if ok {
		metrics.GeocodeLookups.WithLabelValues(metrics.GeocodeHit).Inc()
		return &Resolution{Coordinates: coords, Location: info, CacheHit: true}, nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.provider.Lookup(lookupCtx, coords.Latitude, coords.Longitude)
	metrics.GeocodeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if isTimeout(err) && ctx.Err() == nil {
			metrics.GeocodeLookups.WithLabelValues(metrics.GeocodeTimeout).Inc()
			s.logger.Warn("geocoder timed out",
				"latitude", coords.Latitude,
				"longitude", coords.Longitude,
				"timeout", s.timeout,
			)
			return &Resolution{
				Coordinates: coords,
				Location:    types.LocationInfo{Name: types.UnknownPlace},
				Warning:     TimeoutWarning,
			}, nil
		}

		metrics.GeocodeLookups.WithLabelValues(metrics.GeocodeError).Inc()
		s.logger.Error("failed to reverse geocode",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	metrics.GeocodeLookups.WithLabelValues(metrics.GeocodeMiss).Inc()
	info = translateLocationInfo(resp)

	if err := s.cache.Set(ctx, coords, info); err != nil {
		s.logger.Warn("geocode cache write failed", "coords", coords.Key(), "error", err)
	}

	s.logger.Debug("resolved location",
		"coords", coords.Key(),
		"name", info.Name,
		"state", info.State,
	)

	return &Resolution{Coordinates: coords, Location: info}, nil
}

// translateLocationInfo converts a Nominatim reverse lookup response to a LocationInfo.
// The place name falls back city -> town -> village -> "Unknown".
func translateLocationInfo(resp *openstreetmap.LookupAPIResponse) types.LocationInfo {
	if resp == nil || resp.Error != "" {
		return types.LocationInfo{Name: types.UnknownPlace}
	}

	name := types.UnknownPlace
	switch {
	case resp.Address.City != "":
		name = resp.Address.City
	case resp.Address.Town != "":
		name = resp.Address.Town
	case resp.Address.Village != "":
		name = resp.Address.Village
	}

	return types.LocationInfo{
		Name:        name,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
		DisplayName: resp.DisplayName,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
