package insulin

import "github.com/vladimiradmaev/diabetes-tracker/internal/domain"

// Insulin describes a commercially available insulin
type Insulin struct {
	Name     string
	Onset    string
	Peak     string
	Duration string
	Image    string
}

// Catalog lists the insulins selectable for each insulin type
var Catalog = map[domain.InsulinType][]Insulin{
	domain.Rapid: {
		{Name: "Fiasp", Onset: "2-5 min", Peak: "1-3 hrs", Duration: "3-5 hrs", Image: "https://images.unsplash.com/photo-1585435557343-3b092031a831?w=400"},
		{Name: "NovoRapid", Onset: "10-20 min", Peak: "1-3 hrs", Duration: "3-5 hrs", Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=400"},
		{Name: "Humalog", Onset: "15-30 min", Peak: "1-2 hrs", Duration: "4-6 hrs", Image: "https://images.unsplash.com/photo-1583912267550-d6cc3c410d1c?w=400"},
	},
	domain.Long: {
		{Name: "Lantus", Onset: "1-2 hrs", Peak: "No peak", Duration: "20-24 hrs", Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=400"},
		{Name: "Levemir", Onset: "1-2 hrs", Peak: "6-8 hrs", Duration: "16-24 hrs", Image: "https://images.unsplash.com/photo-1583912267550-d6cc3c410d1c?w=400"},
		{Name: "Tresiba", Onset: "30-90 min", Peak: "No peak", Duration: "42+ hrs", Image: "https://images.unsplash.com/photo-1585435557343-3b092031a831?w=400"},
	},
}

// Lookup finds an insulin by type and name
func Lookup(t domain.InsulinType, name string) (Insulin, bool) {
	for _, ins := range Catalog[t] {
		if ins.Name == name {
			return ins, true
		}
	}
	return Insulin{}, false
}

// Names returns the insulin names available for t
func Names(t domain.InsulinType) []string {
	names := make([]string, 0, len(Catalog[t]))
	for _, ins := range Catalog[t] {
		names = append(names, ins.Name)
	}
	return names
}
