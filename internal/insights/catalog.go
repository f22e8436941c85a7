// Package insights serves the static knowledge-base content: five educational
// cards plus a footer fact.
package insights

// Insight is one knowledge-base card.
type Insight struct {
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// DidYouKnow is the footer fact shown under the cards.
const DidYouKnow = `"Circadian" comes from the Latin "circa" (about) and "dies" (day), meaning "about a day".`

// Catalog returns the full card set in display order.
func Catalog() []Insight {
	return []Insight{
		{
			Category: "Circadian Rhythm",
			Icon:     "vital_signs",
			Color:    "text-purple-400",
			Title:    "Mastering Your Master Clock",
			Content:  "Your suprachiasmatic nucleus (SCN) is reset by light entering the eyes. Viewing bright light (ideally sunlight) for 10-30 minutes immediately after waking helps anchor your cortisol peak, ensuring alertness now and melatonin release 12-14 hours later.",
		},
		{
			Category: "Solar Health",
			Icon:     "wb_sunny",
			Color:    "text-yellow-400",
			Title:    "The Vitamin D Window",
			Content:  "Vitamin D is only synthesized when the sun is above 45° in the sky (usually 10 AM - 2 PM). Morning sun signals wakefulness, but noon sun builds immunity. Short, intense exposure around solar noon is most efficient for Vitamin D production.",
		},
		{
			Category: "Magnetism",
			Icon:     "explore",
			Color:    "text-red-400",
			Title:    "Geomagnetic Influence",
			Content:  "Human biology contains magnetite crystals. Fluctuations in Earth's magnetic field (K-index > 4) can correlate with reduced Heart Rate Variability (HRV) and increased anxiety. During solar storms, prioritize grounding and stress reduction.",
		},
		{
			Category: "Water & Moon",
			Icon:     "water_drop",
			Color:    "text-blue-400",
			Title:    "Lunar Biological Tides",
			Content:  "The human body is ~60% water. While controversial, some studies suggest lunar phases impact sleep latency (time to fall asleep) and deep sleep duration. Hydration needs may increase during the full moon due to subtle gravitational shifts.",
		},
		{
			Category: "Blue Light",
			Icon:     "visibility_off",
			Color:    "text-indigo-400",
			Title:    "Digital Sunset",
			Content:  "Artificial blue light after sunset suppresses melatonin production twice as much as other wavelengths. Implementing a 'digital sunset'—avoiding screens 1-2 hours before bed—is the single most effective habit for sleep quality.",
		},
	}
}
