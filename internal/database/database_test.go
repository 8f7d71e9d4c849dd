package database

import (
	"testing"

	"github.com/vladimiradmaev/diabetes-tracker/internal/config"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
)

func TestConnectSQLiteSeedsDoctors(t *testing.T) {
	db, err := Connect(config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })

	var count int64
	if err := db.Model(&Doctor{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("seeded doctors = %d, want 5", count)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
	if err := db.Model(&Doctor{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("doctors after re-migrate = %d, want 5", count)
	}
}

func TestReadingGetsID(t *testing.T) {
	db, err := Connect(config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = Close(db) })

	r := BloodSugarReading{UserID: 1, BloodSugarLevel: 110, ReadingType: domain.Fasting}
	if err := db.Create(&r).Error; err != nil {
		t.Fatal(err)
	}
	if r.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("BeforeCreate should assign an id")
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestDoctorCoordinates(t *testing.T) {
	lat, lng := 1.5, 2.5
	if _, ok := (Doctor{Latitude: &lat}).Coordinates(); ok {
		t.Error("half a coordinate pair should not be usable")
	}
	c, ok := Doctor{Latitude: &lat, Longitude: &lng}.Coordinates()
	if !ok || c.Lat != lat || c.Lng != lng {
		t.Errorf("Coordinates() = %+v, %v", c, ok)
	}
}
