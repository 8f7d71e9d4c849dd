package menus

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/keyboards"
	"github.com/vladimiradmaev/diabetes-tracker/internal/content"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
	"github.com/vladimiradmaev/diabetes-tracker/internal/quiz"
)

// maxVenues caps the map pins sent after a doctor search
const maxVenues = 5

// SendQuizQuestion shows the question the session is asking
func SendQuizQuestion(api Sender, chatID int64, s quiz.Session) error {
	q := quiz.Questions[s.Index]
	text := fmt.Sprintf("📝 *Risk assessment* (%d/%d)\n\n%s\n\n_%s_",
		s.Index+1, s.Total, q.Text, q.Info)
	return send(api, chatID, text, keyboards.QuizAnswer())
}

// SendQuizResult shows the risk level with food recommendations
func SendQuizResult(api Sender, chatID int64, risk quiz.Risk) error {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 *Your risk level: %s*\n\n", risk)
	switch risk {
	case quiz.RiskHigh:
		b.WriteString("Please consult a healthcare provider soon for proper testing.\n\n")
	case quiz.RiskModerate:
		b.WriteString("Consider discussing these symptoms with your doctor.\n\n")
	default:
		b.WriteString("Keep up a healthy lifestyle and regular check-ups.\n\n")
	}

	b.WriteString("🥗 *Foods to include*\n")
	for _, f := range content.FoodsToInclude {
		fmt.Fprintf(&b, "• %s: %s\n", f.Name, f.Description)
	}
	b.WriteString("\n🚫 *Foods to avoid*\n")
	for _, f := range content.FoodsToAvoid {
		fmt.Fprintf(&b, "• %s: %s\n", f.Name, f.Description)
	}
	b.WriteString("\n_This assessment is not a diagnosis._")

	return send(api, chatID, b.String(), keyboards.QuizResult())
}

// SendEducation shows the course, the open lesson if any, and quick tips
func SendEducation(api Sender, chatID int64, sel content.Selection) error {
	var b strings.Builder
	b.WriteString("📚 *Education*\n\n")

	if lesson, ok := sel.OpenLesson(content.Modules); ok {
		fmt.Fprintf(&b, "*%s* (%s)\n%s\n\n", lesson.Title, lesson.Duration, lesson.Content)
	} else if mod, ok := sel.ExpandedModule(content.Modules); ok {
		fmt.Fprintf(&b, "*%s*\n%s\n\nPick a lesson below.\n\n", mod.Title, mod.Description)
	} else {
		b.WriteString("Pick a module to see its lessons.\n\n")
	}

	b.WriteString("💡 *Quick tips*\n")
	for _, group := range content.QuickTips {
		fmt.Fprintf(&b, "%s: %s\n", group.Title, strings.Join(group.Tips, "; "))
	}

	return send(api, chatID, b.String(), keyboards.Education(content.Modules, sel))
}

// SendAwareness shows the selected video
func SendAwareness(api Sender, chatID int64, c content.Carousel) error {
	video, ok := c.Current(content.Videos)
	if !ok {
		video, c = content.Videos[0], content.Carousel{}
	}
	text := fmt.Sprintf("🎥 *%s* (%d/%d)\n%s\n\n%s",
		video.Title, c.Index+1, len(content.Videos), video.Description, video.URL)
	return send(api, chatID, text, keyboards.Awareness(content.Videos, c))
}

func SendNews(api Sender, chatID int64) error {
	var b strings.Builder
	b.WriteString("📰 *Latest news*\n\n")
	for _, n := range content.News {
		fmt.Fprintf(&b, "*%s*\n%s\n\n", n.Title, n.Description)
	}
	return send(api, chatID, b.String(), keyboards.BackToAwareness())
}

func SendRelatedConditions(api Sender, chatID int64) error {
	var b strings.Builder
	b.WriteString("🩻 *Related conditions*\n\n")
	for _, c := range content.RelatedConditions {
		fmt.Fprintf(&b, "*%s*\n%s\nSymptoms: %s\nPrevention: %s\n\n",
			c.Name, c.Description, strings.Join(c.Symptoms, ", "), strings.Join(c.Prevention, ", "))
	}
	return send(api, chatID, b.String(), keyboards.BackToAwareness())
}

func SendLifestyleTips(api Sender, chatID int64) error {
	var b strings.Builder
	b.WriteString("🌱 *Lifestyle tips*\n\n")
	for _, group := range content.LifestyleTips {
		fmt.Fprintf(&b, "%s *%s*\n", group.Icon, group.Title)
		for _, tip := range group.Tips {
			fmt.Fprintf(&b, "• %s\n", tip)
		}
		b.WriteString("\n")
	}
	return send(api, chatID, b.String(), keyboards.BackToAwareness())
}

// SendDoctorPrompt asks for a location filter or the user's position
func SendDoctorPrompt(api Sender, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "🩺 Type a city or region to filter doctors, or share your location.")
	msg.ReplyMarkup = keyboards.ShareLocation()
	if _, err := api.Send(msg); err != nil {
		return err
	}
	return send(api, chatID, "Or browse the whole directory:", keyboards.Doctors())
}

// SendDoctors lists doctors and pins the ones with known coordinates.
// The first message also removes the location reply keyboard.
func SendDoctors(api Sender, chatID int64, doctors []database.Doctor, center domain.Coordinates, filter string) error {
	var b strings.Builder
	if filter != "" {
		fmt.Fprintf(&b, "🩺 *Doctors in \"%s\"*\n", escape(filter))
	} else {
		b.WriteString("🩺 *Doctors*\n")
	}
	fmt.Fprintf(&b, "📍 Map center: %.4f, %.4f\n\n", center.Lat, center.Lng)

	if len(doctors) == 0 {
		b.WriteString("No doctors found for this location.")
	}
	for _, d := range doctors {
		fmt.Fprintf(&b, "*%s*, %s\n%s\n", escape(d.Name), escape(d.Specialization), escape(d.Location))
		if d.Address != nil {
			fmt.Fprintf(&b, "🏠 %s\n", escape(*d.Address))
		}
		if d.ContactPhone != nil {
			fmt.Fprintf(&b, "📞 %s\n", escape(*d.ContactPhone))
		}
		if d.ContactEmail != nil {
			fmt.Fprintf(&b, "✉️ %s\n", escape(*d.ContactEmail))
		}
		b.WriteString("\n")
	}

	if err := send(api, chatID, b.String(), tgbotapi.NewRemoveKeyboard(true)); err != nil {
		return err
	}

	pinned := 0
	for _, d := range doctors {
		if pinned == maxVenues {
			break
		}
		pos, ok := d.Coordinates()
		if !ok {
			continue
		}
		address := d.Location
		if d.Address != nil {
			address = *d.Address
		}
		if _, err := api.Send(tgbotapi.NewVenue(chatID, d.Name, address, pos.Lat, pos.Lng)); err != nil {
			return err
		}
		pinned++
	}

	return send(api, chatID, "What next?", keyboards.BackToMain())
}
