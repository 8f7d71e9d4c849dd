package quiz

// Question is a yes/no symptom question
type Question struct {
	ID   int
	Text string
	Info string
}

// Questions is the type 1 diabetes symptom questionnaire
var Questions = []Question{
	{ID: 1, Text: "Are you experiencing increased thirst and frequent urination?", Info: "These are common early symptoms of Type 1 Diabetes"},
	{ID: 2, Text: "Have you noticed unexplained weight loss recently?", Info: "Unexplained weight loss can be a sign of Type 1 Diabetes"},
	{ID: 3, Text: "Do you feel unusually tired or weak?", Info: "Fatigue is a common symptom of Type 1 Diabetes"},
	{ID: 4, Text: "Have you experienced blurred vision?", Info: "High blood sugar can affect your vision"},
	{ID: 5, Text: "Do you have a family history of Type 1 Diabetes?", Info: "Genetic factors can increase your risk"},
}
