package menus

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/keyboards"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/reading"
	"github.com/vladimiradmaev/diabetes-tracker/internal/services"
)

// Sender is the part of the Telegram API that menus use
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// maxListedReadings caps the reading list; the summary covers the rest
const maxListedReadings = 10

const timeLayout = "Jan 2, 2006 3:04 PM"

// localTime formats t in loc, or in UTC when loc is nil
func localTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(timeLayout)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func send(api Sender, chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = markup
	_, err := api.Send(msg)
	return err
}

// SendText sends a plain message with no markup
func SendText(api Sender, chatID int64, text string) error {
	_, err := api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SendMainMenu sends the main menu to a chat
func SendMainMenu(api Sender, chatID int64) error {
	text := `🩸 *Diabetes Tracker* helps you manage type 1 diabetes

• Log blood sugar readings and get a suggested insulin dose
• Review your readings from the last week
• Keep track of your medicine
• Check your risk and learn about diabetes
• Find a doctor near you

⚠️ *Important:* dose suggestions are for reference only. Always follow your doctor's advice.

Choose an action:`
	return send(api, chatID, text, keyboards.MainMenu())
}

// SendHelp lists the commands
func SendHelp(api Sender, chatID int64) error {
	text := `Available commands:
/start - Show the main menu
/reading - Add a blood sugar reading
/readings - Show recent readings
/quiz - Take the risk assessment
/learn - Open the education course
/doctors - Find a doctor
/help - Show this message

How a dose is suggested:
1. Enter your blood sugar level in mg/dL
2. Pick when the reading was taken
3. The dose corrects toward 120 mg/dL (1 unit per 50 mg/dL) and adds a meal dose (45 g carbs at 1 unit per 15 g) for readings before a meal

You can change the suggested dose before saving.`
	_, err := api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SendReadingForm shows the reading being entered with its suggested dose
func SendReadingForm(api Sender, chatID int64, in reading.Input) error {
	var b strings.Builder
	b.WriteString("🩸 *New reading*\n\n")
	fmt.Fprintf(&b, "Blood sugar: %s mg/dL\n", escape(orDash(in.BloodSugarLevel)))
	fmt.Fprintf(&b, "Reading type: %s\n", in.ReadingType.Label())
	fmt.Fprintf(&b, "Insulin type: %s\n", in.InsulinType.Label())
	if in.InsulinName != "" {
		fmt.Fprintf(&b, "Insulin: %s", escape(in.InsulinName))
		if ins, ok := in.Insulin(); ok {
			fmt.Fprintf(&b, " (onset %s, peak %s, duration %s)", ins.Onset, ins.Peak, ins.Duration)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Insulin dose: %s units", escape(orDash(in.InsulinDose)))
	if units, ok := in.Suggestion(); ok {
		fmt.Fprintf(&b, " _(suggested: %d)_", units)
	}
	b.WriteString("\n")
	if in.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", escape(in.Notes))
	}
	b.WriteString("\nAdjust the fields below, then save.")

	return send(api, chatID, b.String(), keyboards.ReadingForm(in))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// SendReadingSaved confirms a stored reading
func SendReadingSaved(api Sender, chatID int64, r *database.BloodSugarReading) error {
	text := fmt.Sprintf("✅ Reading saved: %.0f mg/dL (%s)", r.BloodSugarLevel, r.ReadingType.Label())
	if r.InsulinDose != nil {
		text += fmt.Sprintf("\n💉 Insulin: %g units", *r.InsulinDose)
		if r.InsulinName != nil {
			text += " of " + escape(*r.InsulinName)
		}
	}
	return send(api, chatID, text, keyboards.MainMenu())
}

// SendReadings lists recent readings with a summary. Times are shown in loc.
func SendReadings(api Sender, chatID int64, readings []database.BloodSugarReading, days int, loc *time.Location) error {
	if len(readings) == 0 {
		return send(api, chatID, fmt.Sprintf("No readings in the last %d days.", days), keyboards.Readings())
	}

	sum := services.Summarize(readings)
	var b strings.Builder
	fmt.Fprintf(&b, "📈 *Readings, last %d days*\n\n", days)
	fmt.Fprintf(&b, "Count: %d\nAverage: %.0f mg/dL\nRange: %.0f–%.0f mg/dL\n", sum.Count, sum.Average, sum.Min, sum.Max)
	fmt.Fprintf(&b, "Latest: %.0f mg/dL at %s\n\n", sum.Latest.BloodSugarLevel, localTime(sum.Latest.ReadingTime, loc))

	shown := readings
	if len(shown) > maxListedReadings {
		shown = shown[len(shown)-maxListedReadings:]
	}
	for _, r := range shown {
		fmt.Fprintf(&b, "• %s  %.0f mg/dL, %s", localTime(r.ReadingTime, loc), r.BloodSugarLevel, r.ReadingType.Label())
		if r.InsulinDose != nil {
			fmt.Fprintf(&b, ", %g u", *r.InsulinDose)
		}
		b.WriteString("\n")
	}
	return send(api, chatID, b.String(), keyboards.Readings())
}

// SendMedicineLogs lists the latest medicine logs
func SendMedicineLogs(api Sender, chatID int64, logs []database.MedicineLog, loc *time.Location) error {
	if len(logs) == 0 {
		return send(api, chatID, "💊 No medicine logged yet.", keyboards.Medicine())
	}

	var b strings.Builder
	b.WriteString("💊 *Recent medicine*\n\n")
	for _, l := range logs {
		fmt.Fprintf(&b, "• %s  %s, %s", localTime(l.TakenAt, loc), escape(l.MedicineName), escape(l.Dosage))
		if l.Notes != nil {
			fmt.Fprintf(&b, " (%s)", escape(*l.Notes))
		}
		b.WriteString("\n")
	}
	return send(api, chatID, b.String(), keyboards.Medicine())
}

// SendPrompt asks for free text and offers a way back to the menu
func SendPrompt(api Sender, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.BackToMain()
	_, err := api.Send(msg)
	return err
}
