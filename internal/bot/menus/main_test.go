package menus

import (
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
)

type recorder struct {
	texts []string
}

func (r *recorder) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		r.texts = append(r.texts, m.Text)
	}
	return tgbotapi.Message{}, nil
}

func TestSendReadingsUsesDisplayLocation(t *testing.T) {
	readings := []database.BloodSugarReading{
		{BloodSugarLevel: 110, ReadingType: domain.Fasting, ReadingTime: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)},
		{BloodSugarLevel: 160, ReadingType: domain.AfterMeal, ReadingTime: time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)},
	}

	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{"utc by default", nil, "Jan 15, 2024 12:00 PM"},
		{"fixed offset", time.FixedZone("EST", -5*3600), "Jan 15, 2024 7:00 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			if err := SendReadings(r, 1, readings, 7, tt.loc); err != nil {
				t.Fatal(err)
			}
			if len(r.texts) != 1 || !strings.Contains(r.texts[0], tt.want) {
				t.Errorf("texts = %q, want %q", r.texts, tt.want)
			}
		})
	}

	r := &recorder{}
	_ = SendReadings(r, 1, readings, 7, time.FixedZone("EST", -5*3600))
	if !strings.Contains(r.texts[0], "Latest: 160 mg/dL at Jan 15, 2024 1:30 PM") {
		t.Errorf("summary = %q", r.texts[0])
	}
}
