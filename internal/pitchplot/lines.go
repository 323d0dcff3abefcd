// Package pitchplot draws pitch markings with standardized or raw points on
// top, as a PNG via gonum/plot or an interactive HTML scatter via go-echarts.
package pitchplot

import (
	"math"

	"github.com/banshee-data/pitchgrid/internal/dimensions"
)

// Point is a location in provider coordinates.
type Point struct{ X, Y float64 }

// circleSegments is the number of chords used for the center circle.
const circleSegments = 64

// Lines returns the pitch markings as polylines in the pitch's own
// coordinates: touchlines and goal lines, the halfway line, both penalty
// areas, both six-yard boxes, the goals and the center circle.
func Lines(d *dimensions.Dimensions) [][]Point {
	l, r, b, t := d.Left, d.Right, d.Bottom, d.Top
	lines := [][]Point{
		{{l, b}, {r, b}, {r, t}, {l, t}, {l, b}},
		{{d.CenterLength, b}, {d.CenterLength, t}},
		box(l, d.PenaltyAreaLeft, d.PenaltyAreaBottom, d.PenaltyAreaTop),
		box(r, d.PenaltyAreaRight, d.PenaltyAreaBottom, d.PenaltyAreaTop),
		box(l, d.SixYardLeft, d.SixYardBottom, d.SixYardTop),
		box(r, d.SixYardRight, d.SixYardBottom, d.SixYardTop),
	}
	if d.GoalLength > 0 {
		lines = append(lines,
			box(l, l-d.GoalLength, d.GoalBottom, d.GoalTop),
			box(r, r+d.GoalLength, d.GoalBottom, d.GoalTop),
		)
	}
	if d.CircleDiameter > 0 {
		rx, ry := circleRadii(d)
		lines = append(lines, ellipse(d.CenterLength, d.CenterWidth, rx, ry))
	}
	return lines
}

// Spots returns the center spot and both penalty spots.
func Spots(d *dimensions.Dimensions) []Point {
	return []Point{
		{d.CenterLength, d.CenterWidth},
		{d.PenaltyLeft, d.CenterWidth},
		{d.PenaltyRight, d.CenterWidth},
	}
}

// box is a three sided box drawn out from the goal line at x0 to x1.
func box(x0, x1, y0, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// circleRadii returns the center circle radius along each axis. Normalized
// pitches (metricasports) keep the diameter in meters, so it is scaled by
// the real pitch size.
func circleRadii(d *dimensions.Dimensions) (float64, float64) {
	r := d.CircleDiameter / 2
	length := math.Abs(d.Right - d.Left)
	if d.CircleDiameter < length/2 || d.PitchLength <= 0 || d.PitchWidth <= 0 {
		return r, r
	}
	return r * length / d.PitchLength, r * math.Abs(d.Top-d.Bottom) / d.PitchWidth
}

func ellipse(cx, cy, rx, ry float64) []Point {
	pts := make([]Point, circleSegments+1)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{cx + rx*math.Cos(theta), cy + ry*math.Sin(theta)}
	}
	return pts
}

// finite drops pairs where either coordinate is NaN or infinite.
func finite(x, y []float64) []Point {
	pts := make([]Point, 0, len(x))
	for i := range x {
		if i >= len(y) {
			break
		}
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsInf(x[i], 0) || math.IsInf(y[i], 0) {
			continue
		}
		pts = append(pts, Point{x[i], y[i]})
	}
	return pts
}

// padding is the margin drawn around the pitch, in provider units.
func padding(d *dimensions.Dimensions) float64 {
	if d.PadDefault > 0 {
		return d.PadDefault * math.Max(d.PadMultiplier, 1)
	}
	return 0.04 * math.Abs(d.Right-d.Left)
}
