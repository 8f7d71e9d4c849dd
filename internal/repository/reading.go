package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
)

// ReadingRepository stores blood sugar readings
type ReadingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// InsertReading stores r and returns it with its generated id and
// created_at filled in
func (r *ReadingRepository) InsertReading(ctx context.Context, reading *database.BloodSugarReading) (*database.BloodSugarReading, error) {
	reading.ReadingTime = reading.ReadingTime.UTC()
	if err := r.db.WithContext(ctx).Create(reading).Error; err != nil {
		return nil, fmt.Errorf("failed to insert reading: %w", err)
	}
	return reading, nil
}

// QueryReadings returns the user's readings taken at or after since,
// oldest first
func (r *ReadingRepository) QueryReadings(ctx context.Context, userID uint, since time.Time) ([]database.BloodSugarReading, error) {
	var readings []database.BloodSugarReading
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND reading_time >= ?", userID, since.UTC()).
		Order("reading_time ASC").
		Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}
	return readings, nil
}
