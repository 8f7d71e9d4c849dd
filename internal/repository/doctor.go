package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
)

// DoctorRepository reads the doctor directory
type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// QueryDoctors returns doctors ordered by name. A non-empty location keeps
// only rows whose location contains it, ignoring case.
func (r *DoctorRepository) QueryDoctors(ctx context.Context, location string) ([]database.Doctor, error) {
	query := r.db.WithContext(ctx).Order("name")
	if location = strings.TrimSpace(location); location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	var doctors []database.Doctor
	if err := query.Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	return doctors, nil
}
