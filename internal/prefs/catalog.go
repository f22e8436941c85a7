package prefs

// Option is one entry in a closed selection catalog.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// SkinTypes is the Fitzpatrick scale catalog. Skin type feeds safe sun
// exposure guidance.
var SkinTypes = []Option{
	{ID: "Type I", Label: "Type I", Description: "Pale white; burns always, never tans."},
	{ID: "Type II", Label: "Type II", Description: "White; burns easily, tans poorly."},
	{ID: "Type III", Label: "Type III", Description: "Cream white; burns sometimes, tans uniformly."},
	{ID: "Type IV", Label: "Type IV", Description: "Light brown; burns minimally, tans easily."},
	{ID: "Type V", Label: "Type V", Description: "Moderate brown; rarely burns, tans very easily."},
	{ID: "Type VI", Label: "Type VI", Description: "Dark brown/black; never burns, tans always."},
}

// Chronotypes is the sleep chronotype catalog. Chronotype tunes wake-up and
// wind-down suggestions.
var Chronotypes = []Option{
	{ID: "Lion", Label: "Lion (Early)", Description: "Wakes up early, most productive in the morning."},
	{ID: "Bear", Label: "Bear (Medium)", Description: "Follows solar cycle, energy peaks mid-day."},
	{ID: "Wolf", Label: "Wolf (Late)", Description: "Wakes up late, most productive in the evening."},
	{ID: "Dolphin", Label: "Dolphin (Irregular)", Description: "Light sleeper, irregular energy patterns."},
}

func catalogHas(catalog []Option, id string) bool {
	for _, opt := range catalog {
		if opt.ID == id {
			return true
		}
	}
	return false
}
