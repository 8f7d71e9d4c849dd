package keyboards

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/diabetes-tracker/internal/content"
	"github.com/vladimiradmaev/diabetes-tracker/internal/domain"
	"github.com/vladimiradmaev/diabetes-tracker/internal/insulin"
	"github.com/vladimiradmaev/diabetes-tracker/internal/reading"
)

// Callback data
const (
	MainMenuData     = "main_menu"
	HelpData         = "help"
	AddReadingData   = "add_reading"
	ReadingsData     = "readings"
	BloodSugarData   = "reading_blood_sugar"
	DoseOverrideData = "dose_override"
	NotesData        = "reading_notes"
	SubmitData       = "reading_submit"
	CancelData       = "reading_cancel"
	MedicineData     = "medicine"
	AddMedicineData  = "add_medicine"
	QuizData         = "quiz"
	QuizResetData    = "quiz_reset"
	EducationData    = "education"
	AwarenessData    = "awareness"
	NewsData         = "awareness_news"
	ConditionsData   = "awareness_conditions"
	LifestyleData    = "awareness_lifestyle"
	DoctorsData      = "doctors"
	AllDoctorsData   = "doctors_all"

	ReadingTypePrefix = "reading_type:"
	InsulinTypePrefix = "insulin_type:"
	InsulinNamePrefix = "insulin_name:"
	QuizAnswerPrefix  = "quiz_answer:"
	ModulePrefix      = "module:"
	LessonPrefix      = "lesson:"
	VideoPrefix       = "video:"

	// NoInsulinValue follows InsulinTypePrefix to clear the insulin type
	NoInsulinValue = "none"
)

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", MainMenuData),
	)
}

// MainMenu creates the main menu keyboard
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🩸 Add reading", AddReadingData),
			tgbotapi.NewInlineKeyboardButtonData("📈 My readings", ReadingsData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💊 Medicine", MedicineData),
			tgbotapi.NewInlineKeyboardButtonData("🩺 Find a doctor", DoctorsData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Risk check", QuizData),
			tgbotapi.NewInlineKeyboardButtonData("📚 Learn", EducationData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎥 Awareness", AwarenessData),
			tgbotapi.NewInlineKeyboardButtonData("❓ Help", HelpData),
		),
	)
}

// BackToMain is a single "main menu" button
func BackToMain() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(backRow())
}

func mark(selected bool, label string) string {
	if selected {
		return "✅ " + label
	}
	return label
}

// ReadingForm lets the user fill in the remaining fields of a reading
func ReadingForm(in reading.Input) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var types []tgbotapi.InlineKeyboardButton
	for _, t := range domain.ReadingTypes {
		types = append(types, tgbotapi.NewInlineKeyboardButtonData(
			mark(in.ReadingType == t, t.Label()), ReadingTypePrefix+string(t)))
	}
	rows = append(rows, types[:2], types[2:])

	insulinRow := tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(mark(in.InsulinType == domain.NoInsulin, "No insulin"), InsulinTypePrefix+NoInsulinValue),
	)
	for _, t := range domain.InsulinTypes {
		insulinRow = append(insulinRow, tgbotapi.NewInlineKeyboardButtonData(
			mark(in.InsulinType == t, t.Label()), InsulinTypePrefix+string(t)))
	}
	rows = append(rows, insulinRow)

	if names := insulin.Names(in.InsulinType); len(names) > 0 {
		var row []tgbotapi.InlineKeyboardButton
		for _, name := range names {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				mark(in.InsulinName == name, name), InsulinNamePrefix+name))
		}
		rows = append(rows, row)
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🩸 Change level", BloodSugarData),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Change dose", DoseOverrideData),
			tgbotapi.NewInlineKeyboardButtonData("🗒 Notes", NotesData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💾 Save reading", SubmitData),
			tgbotapi.NewInlineKeyboardButtonData("✖️ Cancel", CancelData),
		),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Readings shows the actions available under the readings summary
func Readings() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🩸 Add reading", AddReadingData),
		),
		backRow(),
	)
}

func Medicine() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Log medicine", AddMedicineData),
		),
		backRow(),
	)
}

// QuizAnswer offers yes/no for the current question
func QuizAnswer() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes", QuizAnswerPrefix+"yes"),
			tgbotapi.NewInlineKeyboardButtonData("No", QuizAnswerPrefix+"no"),
		),
		backRow(),
	)
}

func QuizResult() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Take again", QuizResetData),
		),
		backRow(),
	)
}

// Education lists the modules, with the lessons of the expanded one
func Education(modules []content.Module, sel content.Selection) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	expanded, hasExpanded := -1, sel.Module != nil
	if hasExpanded {
		expanded = *sel.Module
	}

	for m, mod := range modules {
		label := "▸ " + mod.Title
		if m == expanded {
			label = "▾ " + mod.Title
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d", ModulePrefix, m))))

		if m != expanded {
			continue
		}
		for l, lesson := range mod.Lessons {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(
					mark(sel.IsOpen(m, l), fmt.Sprintf("   %s (%s)", lesson.Title, lesson.Duration)),
					fmt.Sprintf("%s%d:%d", LessonPrefix, m, l))))
		}
	}

	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Awareness has one button per video plus the other awareness sections
func Awareness(videos []content.Video, c content.Carousel) tgbotapi.InlineKeyboardMarkup {
	var dots []tgbotapi.InlineKeyboardButton
	for i := range videos {
		label := fmt.Sprintf("%d", i+1)
		if i == c.Index {
			label = fmt.Sprintf("• %d •", i+1)
		}
		dots = append(dots, tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d", VideoPrefix, i)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		dots,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📰 News", NewsData),
			tgbotapi.NewInlineKeyboardButtonData("🩻 Related conditions", ConditionsData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌱 Lifestyle tips", LifestyleData),
		),
		backRow(),
	)
}

func BackToAwareness() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Awareness", AwarenessData),
		),
		backRow(),
	)
}

func Doctors() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 All doctors", AllDoctorsData),
		),
		backRow(),
	)
}

// ShareLocation asks the client for the user's position
func ShareLocation() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewOneTimeReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonLocation("📍 Share my location"),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}
