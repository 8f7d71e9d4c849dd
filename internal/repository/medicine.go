package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
)

// MedicineRepository stores medicine intake logs
type MedicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) *MedicineRepository {
	return &MedicineRepository{db: db}
}

// QueryMedicineLogs returns up to limit logs, most recent first
func (r *MedicineRepository) QueryMedicineLogs(ctx context.Context, userID uint, limit int) ([]database.MedicineLog, error) {
	var logs []database.MedicineLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("taken_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to query medicine logs: %w", err)
	}
	return logs, nil
}

func (r *MedicineRepository) InsertMedicineLog(ctx context.Context, log *database.MedicineLog) error {
	log.TakenAt = log.TakenAt.UTC()
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to insert medicine log: %w", err)
	}
	return nil
}
