package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/vladimiradmaev/diabetes-tracker/internal/config"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestGetOrCreateUser(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	first, err := repo.GetOrCreateUser(ctx, 100, "ann", "Ann", "Lee")
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.GetOrCreateUser(ctx, 100, "renamed", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID || second.Username != "ann" {
		t.Errorf("second call should return the existing user, got %+v", second)
	}
}

func TestQueryReadingsWindowAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewReadingRepository(newTestDB(t))
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	insert := func(userID uint, level float64, at time.Time) {
		t.Helper()
		_, err := repo.InsertReading(ctx, &database.BloodSugarReading{
			UserID:          userID,
			BloodSugarLevel: level,
			ReadingType:     domain.Fasting,
			ReadingTime:     at,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	insert(1, 150, now.Add(-time.Hour))
	insert(1, 90, now.Add(-48*time.Hour))
	insert(1, 200, now.Add(-8*24*time.Hour))
	insert(2, 300, now.Add(-time.Hour))

	readings, err := repo.QueryReadings(ctx, 1, now.Add(-7*24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(readings) != 2 {
		t.Fatalf("got %d readings, want 2", len(readings))
	}
	if readings[0].BloodSugarLevel != 90 || readings[1].BloodSugarLevel != 150 {
		t.Errorf("readings not ordered by reading_time ascending: %v, %v",
			readings[0].BloodSugarLevel, readings[1].BloodSugarLevel)
	}
}

func TestInsertReadingKeepsOptionalColumnsNull(t *testing.T) {
	ctx := context.Background()
	repo := NewReadingRepository(newTestDB(t))

	stored, err := repo.InsertReading(ctx, &database.BloodSugarReading{
		UserID:          1,
		BloodSugarLevel: 120,
		ReadingType:     domain.Bedtime,
		ReadingTime:     time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}

	readings, err := repo.QueryReadings(ctx, 1, time.Now().Add(-time.Hour))
	if err != nil || len(readings) != 1 {
		t.Fatalf("QueryReadings() = %v, %v", readings, err)
	}
	got := readings[0]
	if got.ID != stored.ID {
		t.Errorf("ID = %s, want %s", got.ID, stored.ID)
	}
	if got.InsulinType != nil || got.InsulinName != nil || got.InsulinDose != nil || got.Notes != nil {
		t.Errorf("optional columns should be NULL: %+v", got)
	}
}

func TestQueryMedicineLogs(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicineRepository(newTestDB(t))
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		err := repo.InsertMedicineLog(ctx, &database.MedicineLog{
			UserID:       1,
			MedicineName: "Metformin",
			Dosage:       "500mg",
			TakenAt:      base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	logs, err := repo.QueryMedicineLogs(ctx, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 5 {
		t.Fatalf("got %d logs, want 5", len(logs))
	}
	if !logs[0].TakenAt.Equal(base.Add(6 * time.Hour)) {
		t.Errorf("first log taken at %v, want the latest", logs[0].TakenAt)
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].TakenAt.After(logs[i-1].TakenAt) {
			t.Fatalf("logs not in descending order at %d", i)
		}
	}
}

func TestQueryDoctors(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository(newTestDB(t))

	tests := []struct {
		name     string
		location string
		want     []string
	}{
		{"no filter returns all by name", "", []string{
			"Dr. Emily Rodriguez", "Dr. James Wilson", "Dr. Michael Chen", "Dr. Priya Patel", "Dr. Sarah Johnson",
		}},
		{"case-insensitive substring", "new york", []string{"Dr. Michael Chen", "Dr. Sarah Johnson"}},
		{"whitespace only is no filter", "   ", nil},
		{"no match", "Paris", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctors, err := repo.QueryDoctors(ctx, tt.location)
			if err != nil {
				t.Fatal(err)
			}
			if tt.want == nil {
				if len(doctors) != 5 {
					t.Errorf("got %d doctors, want 5", len(doctors))
				}
				return
			}
			if len(doctors) != len(tt.want) {
				t.Fatalf("got %d doctors, want %d", len(doctors), len(tt.want))
			}
			for i, d := range doctors {
				if d.Name != tt.want[i] {
					t.Errorf("doctor[%d] = %q, want %q", i, d.Name, tt.want[i])
				}
			}
		})
	}
}
