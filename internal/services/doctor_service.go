package services

import (
	"context"
	"strings"
	"time"

	"github.com/vladimiradmaev/diabetes-tracker/internal/cache"
	"github.com/vladimiradmaev/diabetes-tracker/internal/config"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
)

const doctorsTTL = 5 * time.Minute

type DoctorStore interface {
	QueryDoctors(ctx context.Context, location string) ([]database.Doctor, error)
}

type DoctorService struct {
	store         DoctorStore
	cache         *cache.QueryCache
	defaultCenter domain.Coordinates
	errs          *apperrors.Handler
}

func NewDoctorService(store DoctorStore, c *cache.QueryCache, cfg config.DoctorsConfig) *DoctorService {
	return &DoctorService{
		store:         store,
		cache:         c,
		defaultCenter: domain.Coordinates{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
		errs:          apperrors.NewHandler(logger.GetLogger()),
	}
}

// Search lists doctors whose location contains the filter, by name
func (s *DoctorService) Search(ctx context.Context, location string) ([]database.Doctor, error) {
	filter := strings.ToLower(strings.TrimSpace(location))
	doctors, err := cache.Fetch(ctx, s.cache, cache.Key(cache.DoctorsPrefix, filter), doctorsTTL,
		func(ctx context.Context) ([]database.Doctor, error) {
			return s.store.QueryDoctors(ctx, filter)
		})
	if err != nil {
		return nil, apperrors.NewBackendError(err, "query doctors").WithContext("location", filter)
	}
	return doctors, nil
}

// MapCenter returns the user's position when it is known and valid, and
// the configured default otherwise. A missing position is not an error for
// the caller; it is only logged.
func (s *DoctorService) MapCenter(ctx context.Context, userLocation *domain.Coordinates) domain.Coordinates {
	switch {
	case userLocation == nil:
		s.errs.Handle(ctx, apperrors.NewGeolocationUnavailableError("user location not shared"))
	case !userLocation.Valid():
		s.errs.Handle(ctx, apperrors.NewGeolocationUnavailableError("user location out of range").
			WithContext("lat", userLocation.Lat).
			WithContext("lng", userLocation.Lng))
	default:
		return *userLocation
	}
	return s.defaultCenter
}
