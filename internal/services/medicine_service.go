package services

import (
	"context"
	"strings"
	"time"

	"github.com/vladimiradmaev/diabetes-tracker/internal/cache"
	"github.com/vladimiradmaev/diabetes-tracker/internal/config"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	apperrors "github.com/vladimiradmaev/diabetes-tracker/internal/errors"
	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
)

type MedicineStore interface {
	QueryMedicineLogs(ctx context.Context, userID uint, limit int) ([]database.MedicineLog, error)
	InsertMedicineLog(ctx context.Context, log *database.MedicineLog) error
}

type MedicineService struct {
	store   MedicineStore
	cache   *cache.QueryCache
	limit   int
	refresh time.Duration
	now     func() time.Time
}

func NewMedicineService(store MedicineStore, c *cache.QueryCache, cfg config.ReadingsConfig) *MedicineService {
	return &MedicineService{
		store:   store,
		cache:   c,
		limit:   cfg.MedicineLimit,
		refresh: cfg.RefreshInterval,
		now:     time.Now,
	}
}

// RecentLogs returns the latest medicine logs, newest first
func (s *MedicineService) RecentLogs(ctx context.Context, userID uint) ([]database.MedicineLog, error) {
	logs, err := cache.Fetch(ctx, s.cache, cache.Key(cache.MedicinePrefix, userID), s.refresh,
		func(ctx context.Context) ([]database.MedicineLog, error) {
			return s.store.QueryMedicineLogs(ctx, userID, s.limit)
		})
	if err != nil {
		return nil, apperrors.NewBackendError(err, "query medicine logs").WithContext("user_id", userID)
	}
	return logs, nil
}

// AddLog records a medicine taken now. Once the row is stored the call
// succeeds even if the cached list could not be dropped.
func (s *MedicineService) AddLog(ctx context.Context, userID uint, name, dosage, notes string) error {
	name, dosage = strings.TrimSpace(name), strings.TrimSpace(dosage)
	if name == "" {
		return apperrors.NewMissingFieldError("medicine_name")
	}
	if dosage == "" {
		return apperrors.NewMissingFieldError("dosage")
	}

	entry := &database.MedicineLog{
		UserID:       userID,
		MedicineName: name,
		Dosage:       dosage,
		TakenAt:      s.now().UTC(),
	}
	if strings.TrimSpace(notes) != "" {
		entry.Notes = &notes
	}

	if err := s.store.InsertMedicineLog(ctx, entry); err != nil {
		return apperrors.NewBackendError(err, "insert medicine log").WithContext("user_id", userID)
	}
	if err := s.cache.Invalidate(ctx, cache.Key(cache.MedicinePrefix, userID)); err != nil {
		logger.WithContext(ctx).Warn("Failed to invalidate medicine cache", "user_id", userID, "error", err)
	}
	return nil
}
