package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
)

type User struct {
	gorm.Model
	TelegramID int64 `gorm:"uniqueIndex"`
	Username   string
	FirstName  string
	LastName   string
}

// BloodSugarReading is immutable once created
type BloodSugarReading struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uint                `gorm:"not null;index:idx_readings_user_time,priority:1" json:"user_id"`
	BloodSugarLevel float64             `gorm:"not null" json:"blood_sugar_level"`
	ReadingType     domain.ReadingType  `gorm:"type:varchar(20);not null" json:"reading_type"`
	InsulinType     *domain.InsulinType `gorm:"type:varchar(10)" json:"insulin_type,omitempty"`
	InsulinName     *string             `json:"insulin_name,omitempty"`
	InsulinDose     *float64            `json:"insulin_dose,omitempty"`
	ReadingTime     time.Time           `gorm:"not null;index:idx_readings_user_time,priority:2" json:"reading_time"`
	Notes           *string             `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
}

func (r *BloodSugarReading) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type MedicineLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_medicine_user_taken,priority:1" json:"user_id"`
	MedicineName string    `gorm:"not null" json:"medicine_name"`
	Dosage       string    `gorm:"not null" json:"dosage"`
	TakenAt      time.Time `gorm:"not null;index:idx_medicine_user_taken,priority:2" json:"taken_at"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

func (m *MedicineLog) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Doctor rows are reference data seeded by migration
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Specialization string    `gorm:"not null" json:"specialization"`
	Location       string    `gorm:"not null;index" json:"location"`
	ContactEmail   *string   `json:"contact_email"`
	ContactPhone   *string   `json:"contact_phone"`
	Address        *string   `json:"address"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (d *Doctor) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Coordinates returns the doctor's position when both parts are known
func (d Doctor) Coordinates() (domain.Coordinates, bool) {
	if d.Latitude == nil || d.Longitude == nil {
		return domain.Coordinates{}, false
	}
	return domain.Coordinates{Lat: *d.Latitude, Lng: *d.Longitude}, true
}
