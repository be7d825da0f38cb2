// Package weather serves current-conditions lookups for property ZIP codes,
// memoizing results briefly so repeated dashboard renders do not hammer the
// upstream API.
package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jesquared/prophealth/internal/domain/models"
	"github.com/jesquared/prophealth/pkg/clients/openweather"
)

// DefaultCacheTTL is how long a fetched report stays fresh.
const DefaultCacheTTL = 10 * time.Minute

type cacheEntry struct {
	report    models.WeatherReport
	fetchedAt time.Time
}

// Service wraps the upstream client with a per-ZIP TTL cache. Lookup errors
// become data on the returned report rather than Go errors, so callers always
// have something renderable.
type Service struct {
	client openweather.Client
	ttl    time.Duration
	logger *zap.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry
	now   func() time.Time // injectable for deterministic tests
}

// NewService builds a weather service. A non-positive ttl falls back to
// DefaultCacheTTL.
func NewService(client openweather.Client, ttl time.Duration, logger *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		ttl:    ttl,
		logger: logger,
		cache:  make(map[string]cacheEntry),
		now:    time.Now,
	}
}

// CurrentByZip returns the current conditions for a ZIP code, from cache when
// fresh. Failed lookups are not cached, so a transient upstream error does
// not stick for the full TTL.
func (s *Service) CurrentByZip(ctx context.Context, zipCode string) models.WeatherReport {
	s.mu.Lock()
	if entry, ok := s.cache[zipCode]; ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		s.mu.Unlock()
		return entry.report
	}
	s.mu.Unlock()

	conditions, err := s.client.CurrentByZip(ctx, zipCode)
	if err != nil {
		s.logger.Warn("weather lookup failed",
			zap.String("zip", zipCode),
			zap.Error(err))
		return models.WeatherReport{Error: userMessage(err, zipCode)}
	}

	report := models.WeatherReport{
		Temp:        conditions.Temp,
		FeelsLike:   conditions.FeelsLike,
		Humidity:    conditions.Humidity,
		Description: conditions.Description,
		Icon:        conditions.Icon,
		WindSpeed:   conditions.WindSpeed,
		CityName:    conditions.CityName,
	}

	s.mu.Lock()
	s.cache[zipCode] = cacheEntry{report: report, fetchedAt: s.now()}
	s.mu.Unlock()

	return report
}

// Sweep drops expired cache entries and returns how many were removed. The
// scheduler calls this periodically; correctness does not depend on it since
// reads check freshness themselves.
func (s *Service) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for zip, entry := range s.cache {
		if !entry.fetchedAt.After(cutoff) {
			delete(s.cache, zip)
			removed++
		}
	}
	return removed
}

func userMessage(err error, zipCode string) string {
	switch {
	case errors.Is(err, openweather.ErrMissingAPIKey):
		return "Weather service is not configured: API key not provided."
	case errors.Is(err, openweather.ErrMissingZip):
		return "ZIP code not provided."
	case errors.Is(err, openweather.ErrInvalidAPIKey):
		return "Invalid weather API key. Please check the configured key."
	case errors.Is(err, openweather.ErrZipNotFound):
		return fmt.Sprintf("Weather data not found for ZIP code: %s.", zipCode)
	case errors.Is(err, openweather.ErrIncompleteData):
		return "Incomplete weather data received."
	default:
		return fmt.Sprintf("Weather lookup failed: %v.", err)
	}
}
