package solar

import "math"

// The timeline widget renders a half-ellipse arc in a fixed 360x180 local
// coordinate space, centered at (180,160) with radius 140. Pointer positions
// arrive in rendered pixels and are rescaled into that space before the
// angle is taken, which keeps the mapping stable under responsive resizing.
const (
	arcLocalWidth  = 360.0
	arcLocalHeight = 180.0
	arcCenterX     = 180.0
	arcCenterY     = 160.0
)

// Bounds is the rendered pixel size of the timeline widget.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MapPointer converts a widget-relative pointer coordinate into normalized
// timeline progress in [0,1]: 0 at the sunrise end of the arc, 1 at the
// sunset end. The visual arc spans only the upper half-plane, so a positive
// angle (below the horizon line) snaps to the nearest horizontal extreme
// instead of interpolating. Degenerate bounds map to 0.
func MapPointer(x, y float64, b Bounds) float64 {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}

	dx := x*(arcLocalWidth/b.Width) - arcCenterX
	dy := y*(arcLocalHeight/b.Height) - arcCenterY

	angle := math.Atan2(dy, dx)
	if angle > 0 {
		if dx < 0 {
			angle = -math.Pi
		} else {
			angle = 0
		}
	}

	progress := (angle + math.Pi) / math.Pi
	return clamp01(progress)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
