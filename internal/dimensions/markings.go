package dimensions

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// standardizedExtent is the UEFA reference pitch [xmin, xmax, ymin, ymax].
var standardizedExtent = [4]float64{0, uefaLength, 0, uefaWidth}

// pitchMarkings builds the sorted marking arrays used as interpolation
// anchors, and the pitch extent.
//
// Inverted pitches have their y markings reflected into un-inverted local
// coordinates (y' = Top + Bottom - y) so they line up with the values the
// standardizer feeds in after flipping the y-axis.
func (d *Dimensions) pitchMarkings() {
	d.xMarkings = []float64{
		d.Left, d.SixYardLeft, d.PenaltyLeft, d.PenaltyAreaLeft, d.CenterLength,
		d.PenaltyAreaRight, d.PenaltyRight, d.SixYardRight, d.Right,
	}

	y := []float64{
		d.Bottom, d.PenaltyAreaBottom, d.SixYardBottom, d.GoalBottom,
		d.GoalTop, d.SixYardTop, d.PenaltyAreaTop, d.Top,
	}
	if d.InvertY {
		for i, v := range y {
			y[i] = d.Top + d.Bottom - v
		}
		sort.Float64s(y)
		d.pitchExtent = [4]float64{d.Left, d.Right, d.Top, d.Bottom}
	} else {
		d.pitchExtent = [4]float64{d.Left, d.Right, d.Bottom, d.Top}
	}
	d.yMarkings = y
}

// checkIncreasing returns an error unless the markings are strictly
// increasing and free of NaNs.
func checkIncreasing(axis string, markings []float64) error {
	if floats.HasNaN(markings) {
		return fmt.Errorf("%s markings contain NaN", axis)
	}
	for i := 1; i < len(markings); i++ {
		if markings[i] <= markings[i-1] {
			return fmt.Errorf("%s markings not strictly increasing at index %d (%g <= %g), pitch too small for its markings",
				axis, i, markings[i], markings[i-1])
		}
	}
	return nil
}

// juegoDePosicion builds the positional play grid: the x lines split each
// half between the penalty area and center line, and the y lines are the
// y markings without the goal posts.
func (d *Dimensions) juegoDePosicion() {
	d.positionalX = []float64{
		d.Left, d.PenaltyAreaLeft,
		d.PenaltyAreaLeft + (d.CenterLength-d.PenaltyAreaLeft)/2,
		d.CenterLength,
		d.CenterLength + (d.PenaltyAreaRight-d.CenterLength)/2,
		d.PenaltyAreaRight, d.Right,
	}
	m := d.yMarkings
	d.positionalY = []float64{m[0], m[1], m[2], m[5], m[6], m[7]}
}

// stripeLocations splits the pitch into mowing stripes: one for each six-yard
// box, three inside each penalty area and ten across the middle.
func (d *Dimensions) stripeLocations() {
	penArea := (d.PenaltyAreaLength - d.SixYardLength) / 2
	other := (d.Length - 2*d.SixYardLength - 6*penArea) / 10

	steps := []float64{d.Left, d.SixYardLength}
	for i := 0; i < 3; i++ {
		steps = append(steps, penArea)
	}
	for i := 0; i < 10; i++ {
		steps = append(steps, other)
	}
	for i := 0; i < 3; i++ {
		steps = append(steps, penArea)
	}
	steps = append(steps, d.SixYardLength)

	d.stripes = make([]float64, len(steps))
	floats.CumSum(d.stripes, steps)
}

// XMarkings returns the sorted x anchors: left side, six-yard line, penalty
// spot, penalty area line, center line and their mirrors.
func (d *Dimensions) XMarkings() []float64 { return clone(d.xMarkings) }

// YMarkings returns the sorted y anchors in un-inverted coordinates: side,
// penalty area edge, six-yard edge, goal post and their mirrors.
func (d *Dimensions) YMarkings() []float64 { return clone(d.yMarkings) }

// PitchExtent returns [xmin, xmax, ymin, ymax].
func (d *Dimensions) PitchExtent() [4]float64 { return d.pitchExtent }

// StandardizedExtent returns the UEFA reference extent every provider can be
// converted to.
func (d *Dimensions) StandardizedExtent() [4]float64 { return standardizedExtent }

// PositionalX returns the juego de posición vertical lines.
func (d *Dimensions) PositionalX() []float64 { return clone(d.positionalX) }

// PositionalY returns the juego de posición horizontal lines.
func (d *Dimensions) PositionalY() []float64 { return clone(d.positionalY) }

// StripeLocations returns the boundaries of the mowing stripes along x.
func (d *Dimensions) StripeLocations() []float64 { return clone(d.stripes) }

// Clip clamps a point to the pitch extent.
func (d *Dimensions) Clip(x, y float64) (float64, float64) {
	e := d.pitchExtent
	return clamp(x, e[0], e[1]), clamp(y, e[2], e[3])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
