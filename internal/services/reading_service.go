package services

import (
	"context"
	"time"

	"github.com/vladimiradmaev/diabetes-tracker/internal/cache"
	"github.com/vladimiradmaev/diabetes-tracker/internal/config"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
	"github.com/vladimiradmaev/diabetes-tracker/internal/reading"
)

// ReadingStore is the part of the data access facade the reading service
// needs
type ReadingStore interface {
	InsertReading(ctx context.Context, reading *database.BloodSugarReading) (*database.BloodSugarReading, error)
	QueryReadings(ctx context.Context, userID uint, since time.Time) ([]database.BloodSugarReading, error)
}

type ReadingService struct {
	store   ReadingStore
	cache   *cache.QueryCache
	window  time.Duration
	refresh time.Duration
	now     func() time.Time
}

func NewReadingService(store ReadingStore, c *cache.QueryCache, cfg config.ReadingsConfig) *ReadingService {
	return &ReadingService{
		store:   store,
		cache:   c,
		window:  cfg.Window,
		refresh: cfg.RefreshInterval,
		now:     time.Now,
	}
}

// Submit validates in and stores it for userID. On success the user's
// cached readings are dropped and a fresh form is returned. On failure in
// is returned unchanged together with a validation or backend error.
func (s *ReadingService) Submit(ctx context.Context, userID uint, in reading.Input) (reading.Input, *database.BloodSugarReading, error) {
	rec, err := reading.Build(in, s.now().UTC())
	if err != nil {
		return in, nil, err
	}

	stored, err := s.store.InsertReading(ctx, &database.BloodSugarReading{
		UserID:          userID,
		BloodSugarLevel: rec.BloodSugarLevel,
		ReadingType:     rec.ReadingType,
		InsulinType:     rec.InsulinType,
		InsulinName:     rec.InsulinName,
		InsulinDose:     rec.InsulinDose,
		Notes:           rec.Notes,
		ReadingTime:     rec.ReadingTime,
	})
	if err != nil {
		return in, nil, apperrors.NewBackendError(err, "insert reading").WithContext("user_id", userID)
	}

	if err := s.cache.Invalidate(ctx, cache.Key(cache.ReadingsPrefix, userID)); err != nil {
		logger.WithContext(ctx).Warn("Failed to invalidate readings cache", "user_id", userID, "error", err)
	}

	logger.WithContext(ctx).Info("Reading stored",
		"user_id", userID,
		"reading_id", stored.ID,
		"reading_type", stored.ReadingType,
	)
	return reading.NewInput(), stored, nil
}

// RecentReadings returns the user's readings within the configured window,
// oldest first. Results are cached for the refresh interval.
func (s *ReadingService) RecentReadings(ctx context.Context, userID uint) ([]database.BloodSugarReading, error) {
	readings, err := cache.Fetch(ctx, s.cache, cache.Key(cache.ReadingsPrefix, userID), s.refresh,
		func(ctx context.Context) ([]database.BloodSugarReading, error) {
			return s.store.QueryReadings(ctx, userID, s.now().Add(-s.window))
		})
	if err != nil {
		return nil, apperrors.NewBackendError(err, "query readings").WithContext("user_id", userID)
	}
	return readings, nil
}

// ReadingSummary is the numeric stand-in for the readings chart
type ReadingSummary struct {
	Count   int
	Average float64
	Min     float64
	Max     float64
	Latest  *database.BloodSugarReading
}

// Summarize expects readings oldest first, as the store returns them
func Summarize(readings []database.BloodSugarReading) ReadingSummary {
	var sum ReadingSummary
	if len(readings) == 0 {
		return sum
	}

	sum.Count = len(readings)
	sum.Min = readings[0].BloodSugarLevel
	sum.Max = readings[0].BloodSugarLevel
	total := 0.0
	for _, r := range readings {
		total += r.BloodSugarLevel
		sum.Min = min(sum.Min, r.BloodSugarLevel)
		sum.Max = max(sum.Max, r.BloodSugarLevel)
	}
	sum.Average = total / float64(len(readings))
	latest := readings[len(readings)-1]
	sum.Latest = &latest
	return sum
}
