package interfaces

import (
	"context"

	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
	"github.com/vladimiradmaev/diabetes-tracker/internal/reading"
	"github.com/vladimiradmaev/diabetes-tracker/internal/services"
)

// UserServiceInterface defines the contract for user operations
type UserServiceInterface interface {
	RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*database.User, error)
}

// ReadingServiceInterface defines the contract for blood sugar readings
type ReadingServiceInterface interface {
	Submit(ctx context.Context, userID uint, in reading.Input) (reading.Input, *database.BloodSugarReading, error)
	RecentReadings(ctx context.Context, userID uint) ([]database.BloodSugarReading, error)
}

// MedicineServiceInterface defines the contract for medicine logs
type MedicineServiceInterface interface {
	RecentLogs(ctx context.Context, userID uint) ([]database.MedicineLog, error)
	AddLog(ctx context.Context, userID uint, name, dosage, notes string) error
}

// DoctorServiceInterface defines the contract for the doctor directory
type DoctorServiceInterface interface {
	Search(ctx context.Context, location string) ([]database.Doctor, error)
	MapCenter(ctx context.Context, userLocation *domain.Coordinates) domain.Coordinates
}

var (
	_ UserServiceInterface     = (*services.UserService)(nil)
	_ ReadingServiceInterface  = (*services.ReadingService)(nil)
	_ MedicineServiceInterface = (*services.MedicineService)(nil)
	_ DoctorServiceInterface   = (*services.DoctorService)(nil)
)
