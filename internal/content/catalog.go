// Package content holds the static educational and awareness material and
// the selection state used to browse it.
package content

type Lesson struct {
	Title    string
	Content  string
	Duration string
	Image    string
}

type Module struct {
	ID          int
	Title       string
	Description string
	Lessons     []Lesson
}

type TipGroup struct {
	Title string
	Icon  string
	Tips  []string
}

type Video struct {
	Title       string
	URL         string
	Description string
}

type NewsItem struct {
	Title       string
	Description string
	Image       string
	Link        string
}

type Condition struct {
	Name        string
	Description string
	Image       string
	Symptoms    []string
	Prevention  []string
}

type Food struct {
	Name        string
	Description string
	Image       string
}

// Modules is the education course
var Modules = []Module{
	{
		ID:          1,
		Title:       "Understanding Type 1 Diabetes",
		Description: "Learn about what Type 1 Diabetes is and how it affects your body.",
		Lessons: []Lesson{
			{Title: "What is Type 1 Diabetes?", Content: "Type 1 diabetes is an autoimmune condition where your body stops producing insulin...", Duration: "15 mins", Image: "https://images.unsplash.com/photo-1579684385127-1ef15d508118?w=400"},
			{Title: "The Role of Insulin", Content: "Insulin is a hormone that helps your body use glucose for energy...", Duration: "20 mins", Image: "https://images.unsplash.com/photo-1579684453377-8d2678f2b257?w=400"},
			{Title: "Managing Blood Sugar", Content: "Learn how to monitor and control your blood sugar levels...", Duration: "25 mins", Image: "https://images.unsplash.com/photo-1579684453403-f4f7c1c5e8c1?w=400"},
		},
	},
	{
		ID:          2,
		Title:       "Insulin Management",
		Description: "Master the art of insulin dosing and timing.",
		Lessons: []Lesson{
			{Title: "Types of Insulin", Content: "Understanding different insulin types and their action profiles...", Duration: "20 mins", Image: "https://images.unsplash.com/photo-1579684453423-f84349ef60b0?w=400"},
			{Title: "Calculating Insulin Doses", Content: "Learn how to calculate insulin doses based on carbs and blood sugar...", Duration: "30 mins", Image: "https://images.unsplash.com/photo-1579684453437-1f65c6305d3e?w=400"},
			{Title: "Injection Techniques", Content: "Proper insulin injection methods and site rotation...", Duration: "15 mins", Image: "https://images.unsplash.com/photo-1579684453447-1f65c6305d3e?w=400"},
		},
	},
	{
		ID:          3,
		Title:       "Nutrition and Exercise",
		Description: "Essential tips for diet and physical activity.",
		Lessons: []Lesson{
			{Title: "Carbohydrate Counting", Content: "Learn how to count carbs and estimate portions...", Duration: "25 mins", Image: "https://images.unsplash.com/photo-1579684453457-1f65c6305d3e?w=400"},
			{Title: "Exercise Guidelines", Content: "Safe exercise practices and blood sugar management during activity...", Duration: "20 mins", Image: "https://images.unsplash.com/photo-1579684453467-1f65c6305d3e?w=400"},
			{Title: "Meal Planning", Content: "Creating balanced meals and snacks for optimal blood sugar control...", Duration: "30 mins", Image: "https://images.unsplash.com/photo-1579684453477-1f65c6305d3e?w=400"},
		},
	},
}

// QuickTips accompany the education course
var QuickTips = []TipGroup{
	{Title: "Blood Sugar Testing", Tips: []string{"Test before meals and 2 hours after", "Keep a log of your readings", "Clean hands before testing", "Rotate testing sites"}},
	{Title: "Insulin Storage", Tips: []string{"Store insulin in the refrigerator", "Don't freeze insulin", "Keep in-use insulin at room temperature", "Check expiration dates"}},
	{Title: "Emergency Preparedness", Tips: []string{"Always carry fast-acting sugar", "Wear medical ID", "Have glucagon available", "Keep emergency contacts updated"}},
}

// Videos is the awareness carousel
var Videos = []Video{
	{Title: "Understanding Type 1 Diabetes", URL: "https://www.youtube.com/embed/dQw4w9WgXcQ", Description: "Learn about the basics of Type 1 Diabetes and how it affects your body."},
	{Title: "Managing Blood Sugar Levels", URL: "https://www.youtube.com/embed/dQw4w9WgXcQ", Description: "Expert tips on maintaining healthy blood sugar levels throughout the day."},
	{Title: "Exercise and Type 1 Diabetes", URL: "https://www.youtube.com/embed/dQw4w9WgXcQ", Description: "Safe exercise guidelines for people with Type 1 Diabetes."},
}

var News = []NewsItem{
	{Title: "New Research in Type 1 Diabetes Treatment", Description: "Recent studies show promising results in developing new treatment methods for Type 1 Diabetes...", Image: "https://images.unsplash.com/photo-1576671081837-49b1a991dd54?w=400", Link: "#"},
	{Title: "Upcoming Awareness Programs", Description: "Join our community events and learn more about managing Type 1 Diabetes...", Image: "https://images.unsplash.com/photo-1573497019940-1c28c88b4f3e?w=400", Link: "#"},
	{Title: "Diet and Nutrition Updates", Description: "Latest research on dietary recommendations for Type 1 Diabetes management...", Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400", Link: "#"},
}

var RelatedConditions = []Condition{
	{
		Name:        "Celiac Disease",
		Description: "People with Type 1 Diabetes have a higher risk of developing celiac disease...",
		Image:       "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400",
		Symptoms:    []string{"Digestive issues", "Fatigue", "Weight loss", "Anemia"},
		Prevention:  []string{"Gluten-free diet", "Regular screening", "Early diagnosis"},
	},
	{
		Name:        "Thyroid Disorders",
		Description: "Regular thyroid function tests are important as thyroid disorders are common in Type 1 Diabetes...",
		Image:       "https://images.unsplash.com/photo-1628595351029-c2bf17511435?w=400",
		Symptoms:    []string{"Weight changes", "Fatigue", "Mood changes", "Temperature sensitivity"},
		Prevention:  []string{"Regular testing", "Medication compliance", "Healthy lifestyle"},
	},
	{
		Name:        "Diabetic Retinopathy",
		Description: "A condition that affects blood vessels in the retina and can lead to vision problems...",
		Image:       "https://images.unsplash.com/photo-1577758231548-cd94c5d23a9c?w=400",
		Symptoms:    []string{"Blurred vision", "Floaters", "Vision loss", "Eye pain"},
		Prevention:  []string{"Regular eye exams", "Blood sugar control", "Blood pressure management"},
	},
}

var LifestyleTips = []TipGroup{
	{Title: "Healthy Eating", Icon: "🥗", Tips: []string{"Count carbohydrates accurately", "Eat regular, balanced meals", "Monitor portion sizes", "Choose whole grains over refined grains"}},
	{Title: "Physical Activity", Icon: "🏃‍♂️", Tips: []string{"Exercise regularly", "Monitor blood sugar before and after activity", "Carry fast-acting carbs during exercise", "Stay hydrated"}},
	{Title: "Mental Health", Icon: "🧘‍♀️", Tips: []string{"Practice stress management", "Join support groups", "Get adequate sleep", "Maintain work-life balance"}},
}

// FoodsToInclude and FoodsToAvoid are shown with assessment results
var (
	FoodsToInclude = []Food{
		{Name: "Leafy Greens", Description: "Low in carbs, high in nutrients", Image: "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400"},
		{Name: "Whole Grains", Description: "Complex carbohydrates for steady energy", Image: "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400"},
		{Name: "Lean Proteins", Description: "Essential for muscle maintenance", Image: "https://images.unsplash.com/photo-1532550907401-a500c9a57435?w=400"},
		{Name: "Healthy Fats", Description: "Important for hormone balance", Image: "https://images.unsplash.com/photo-1519051733127-12680d9ab958?w=400"},
	}
	FoodsToAvoid = []Food{
		{Name: "Sugary Beverages", Description: "Can cause rapid blood sugar spikes", Image: "https://images.unsplash.com/photo-1581006852262-e4307cf6283a?w=400"},
		{Name: "Processed Foods", Description: "Often high in hidden sugars", Image: "https://images.unsplash.com/photo-1621887348744-6b0444f4aa9a?w=400"},
		{Name: "High-Glycemic Foods", Description: "Can cause blood sugar instability", Image: "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=400"},
		{Name: "Excessive Alcohol", Description: "Can interfere with blood sugar control", Image: "https://images.unsplash.com/photo-1569529465841-dfecdab7503b?w=400"},
	}
)
