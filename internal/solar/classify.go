package solar

// Kind is a categorical weather classification derived from a WMO weather
// code and a day/night flag.
type Kind string

const (
	KindSunny  Kind = "sunny"
	KindCloudy Kind = "cloudy"
	KindRain   Kind = "rain"
	KindSnow   Kind = "snow"
	KindNight  Kind = "night"
)

// Display carries the fixed presentation metadata for a weather kind.
type Display struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var kindDisplays = map[Kind]Display{
	KindSunny:  {Icon: "wb_sunny", Description: "Clear", Color: "text-yellow-400"},
	KindCloudy: {Icon: "cloud", Description: "Cloudy", Color: "text-white"},
	KindRain:   {Icon: "rainy", Description: "Rain", Color: "text-blue-400"},
	KindSnow:   {Icon: "ac_unit", Description: "Snow", Color: "text-white"},
	KindNight:  {Icon: "bedtime", Description: "Clear Night", Color: "text-blue-200"},
}

// Classify maps a WMO weather code to a Kind. First match wins; night only
// overrides the two clear-sky codes, every other code reads the same whether
// it is day or night.
func Classify(code int, night bool) Kind {
	switch {
	case night && (code == 0 || code == 1):
		return KindNight
	case code == 0 || code == 1:
		return KindSunny
	case code <= 48:
		return KindCloudy
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return KindSnow
	default:
		return KindRain
	}
}

// Display returns the presentation metadata for the kind.
func (k Kind) Display() Display {
	return kindDisplays[k]
}
