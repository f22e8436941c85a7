package solar

// VitaminD reports whether the current UV level supports vitamin D synthesis.
type VitaminD struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
	Active bool   `json:"active"`
}

// UVLevel buckets a UV index into its severity label. Thresholds ascend in
// half-open ranges; an index of exactly zero reads as no UV at all.
func UVLevel(uv float64) string {
	switch {
	case uv == 0:
		return "None"
	case uv < 3:
		return "Low"
	case uv < 6:
		return "Moderate"
	case uv < 8:
		return "High"
	case uv < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}

// VitaminDStatus derives the synthesis status from the UV index. UVB, the
// band the skin needs, is typically present from UV index 3 upward.
func VitaminDStatus(uv float64) VitaminD {
	switch {
	case uv >= 3:
		return VitaminD{Status: "Synthesizing", Detail: "Optimal production", Active: true}
	case uv >= 1:
		return VitaminD{Status: "Low", Detail: "Inefficient production", Active: false}
	default:
		return VitaminD{Status: "Inactive", Detail: "UV Index too low", Active: false}
	}
}
