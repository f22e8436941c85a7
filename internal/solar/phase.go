package solar

// PhaseInfo titles the current circadian phase.
type PhaseInfo struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type phaseSpec struct {
	info PhaseInfo
	tip  string
}

var (
	preDawnPhase = phaseSpec{
		info: PhaseInfo{Title: "Pre-Dawn", Subtitle: "Melatonin is peaking."},
		tip:  "Keep environments dark to preserve sleep quality until wake time.",
	}
	postSunsetPhase = phaseSpec{
		info: PhaseInfo{Title: "Post-Sunset", Subtitle: "Melatonin production begins."},
		tip:  "Avoid blue light now. Use warm lighting to prepare for bed.",
	}

	// Daylight phases bucket clamped progress into five equal ranges.
	daylightPhases = [5]phaseSpec{
		{
			info: PhaseInfo{Title: "Sunrise Phase", Subtitle: "Critical for circadian reset."},
			tip:  "Get 10-30 mins of light now to anchor your wake/sleep cycle.",
		},
		{
			info: PhaseInfo{Title: "Morning Rise", Subtitle: "Cortisol is elevating naturally."},
			tip:  "Great time for caffeine or exercise. Alertness is rising.",
		},
		{
			// The Solar Noon tip branches on the UV index; see classifyPhase.
			info: PhaseInfo{Title: "Solar Noon", Subtitle: "Sun is at highest elevation."},
		},
		{
			info: PhaseInfo{Title: "Afternoon", Subtitle: "Natural energy dip."},
			tip:  "Naps should be <20 mins. A walk is better than caffeine now.",
		},
		{
			info: PhaseInfo{Title: "Sunset Phase", Subtitle: "Signal to body day is ending."},
			tip:  "View the sunset. The color spectrum signals safety to your brain.",
		},
	}

	noonHighUVTip  = "UV is high. Limit direct exposure or use protection."
	noonDefaultTip = "Take a walk. Brightest light of the day."

	// rainTip replaces any phase tip whenever the classified weather is rain.
	rainTip = "Rainy day? Indoor lighting is often too dim. Sit by a window."
)

// classifyPhase picks the circadian phase and its tip. The raw (unclamped)
// progress sign decides pre-dawn and post-sunset; within daylight the clamped
// value selects one of the five buckets.
func classifyPhase(raw, clamped, uvIndex float64) (PhaseInfo, string) {
	switch {
	case raw < 0:
		return preDawnPhase.info, preDawnPhase.tip
	case raw > 1:
		return postSunsetPhase.info, postSunsetPhase.tip
	}

	// Half-open buckets resolved by ascending comparisons; dividing by the
	// bucket width misclassifies the 0.6 boundary under float truncation.
	var idx int
	switch {
	case clamped < 0.2:
		idx = 0
	case clamped < 0.4:
		idx = 1
	case clamped < 0.6:
		idx = 2
	case clamped < 0.8:
		idx = 3
	default:
		idx = 4
	}
	phase := daylightPhases[idx]

	tip := phase.tip
	if idx == 2 {
		if uvIndex > 5 {
			tip = noonHighUVTip
		} else {
			tip = noonDefaultTip
		}
	}
	return phase.info, tip
}
