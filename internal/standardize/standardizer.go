// Package standardize converts coordinates between pitch coordinate systems.
//
// A naive conversion rescales the whole extent, which moves landmarks: a shot
// from the edge of an Opta penalty area does not land on the edge of a UEFA
// penalty area. The Standardizer instead interpolates linearly between
// matching pitch markings, so a point keeps its position relative to the
// nearest lines on either side.
package standardize

import (
	"fmt"
	"math"

	"github.com/banshee-data/pitchgrid/internal/dimensions"
	"gonum.org/v1/gonum/interp"
)

// Config selects the source and destination pitches. Lengths and widths are
// in meters and only required for providers in dimensions.SizeVaries; zero
// means unset.
type Config struct {
	PitchFrom  string
	PitchTo    string
	LengthFrom float64
	WidthFrom  float64
	LengthTo   float64
	WidthTo    float64
}

// Standardizer converts points from one pitch coordinate system to another.
// It holds no mutable state after construction and is safe for concurrent use.
type Standardizer struct {
	cfg      Config
	from, to *dimensions.Dimensions

	// forward maps from -> to, reverse maps to -> from.
	forward, reverse axisPair
}

type axisPair struct {
	x, y interp.PiecewiseLinear
}

// New creates a Standardizer for two named providers. It fails with an error
// wrapping dimensions.ErrInvalidArgument when a provider is unknown or a
// variable-size provider is missing its length or width.
func New(cfg Config) (*Standardizer, error) {
	from, err := newDims("pitch_from", cfg.PitchFrom, cfg.WidthFrom, cfg.LengthFrom)
	if err != nil {
		return nil, err
	}
	to, err := newDims("pitch_to", cfg.PitchTo, cfg.WidthTo, cfg.LengthTo)
	if err != nil {
		return nil, err
	}
	s, err := NewFromDimensions(from, to)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	return s, nil
}

func newDims(role, provider string, width, length float64) (*dimensions.Dimensions, error) {
	if !dimensions.IsValid(provider) {
		return nil, fmt.Errorf("%w: %s should be one of %s, got %q",
			dimensions.ErrInvalidArgument, role, dimensions.ValidProvidersString(), provider)
	}
	d, err := dimensions.New(provider, width, length)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", role, err)
	}
	return d, nil
}

// NewFromDimensions creates a Standardizer from already resolved dimensions,
// for example a pitch built with dimensions.NewCenterScale.
func NewFromDimensions(from, to *dimensions.Dimensions) (*Standardizer, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("%w: dimensions must not be nil", dimensions.ErrInvalidArgument)
	}
	s := &Standardizer{
		from: from,
		to:   to,
		cfg:  Config{PitchFrom: from.Provider, PitchTo: to.Provider},
	}

	fx, fy := from.XMarkings(), from.YMarkings()
	tx, ty := to.XMarkings(), to.YMarkings()
	if len(fx) != len(tx) || len(fy) != len(ty) {
		return nil, fmt.Errorf("%w: marking counts differ between %s and %s",
			dimensions.ErrInvalidArgument, from.Provider, to.Provider)
	}
	if err := s.forward.fit(fx, tx, fy, ty); err != nil {
		return nil, err
	}
	if err := s.reverse.fit(tx, fx, ty, fy); err != nil {
		return nil, err
	}
	return s, nil
}

// fit expects strictly increasing source markings; dimensions.New guarantees
// this for every pitch it returns.
func (a *axisPair) fit(xFrom, xTo, yFrom, yTo []float64) error {
	if err := a.x.Fit(xFrom, xTo); err != nil {
		return fmt.Errorf("fit x markings: %w", err)
	}
	if err := a.y.Fit(yFrom, yTo); err != nil {
		return fmt.Errorf("fit y markings: %w", err)
	}
	return nil
}

// From returns the source pitch dimensions.
func (s *Standardizer) From() *dimensions.Dimensions { return s.from }

// To returns the destination pitch dimensions.
func (s *Standardizer) To() *dimensions.Dimensions { return s.to }

// Transform converts x, y from the source pitch to the destination pitch, or
// the other way round when reverse is true. Points outside the source pitch
// are clipped to its edge first, so every result lies on the destination
// pitch. NaN coordinates stay NaN. The inputs are not modified.
//
// Transform panics if x and y have different lengths.
func (s *Standardizer) Transform(x, y []float64, reverse bool) ([]float64, []float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("standardize: length mismatch: len(x)=%d len(y)=%d", len(x), len(y)))
	}
	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	for i := range x {
		xs[i], ys[i] = s.TransformPoint(x[i], y[i], reverse)
	}
	return xs, ys
}

// TransformPoint converts a single point. See Transform.
func (s *Standardizer) TransformPoint(x, y float64, reverse bool) (float64, float64) {
	dimFrom, dimTo, axes := s.from, s.to, &s.forward
	if reverse {
		dimFrom, dimTo, axes = s.to, s.from, &s.reverse
	}

	x, y = dimFrom.Clip(x, y)
	if dimFrom.InvertY {
		y = dimFrom.Top + dimFrom.Bottom - y
	}

	xStd := predict(&axes.x, x)
	yStd := predict(&axes.y, y)

	if dimTo.InvertY {
		yStd = dimTo.Top + dimTo.Bottom - yStd
	}
	return xStd, yStd
}

// predict finds the pair of markings bracketing v by binary search and
// interpolates between the matching destination markings.
func predict(pl *interp.PiecewiseLinear, v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return pl.Predict(v)
}

// String describes the conversion.
func (s *Standardizer) String() string {
	c := s.cfg
	return fmt.Sprintf("Standardizer(pitch_from=%s, pitch_to=%s, length_from=%s, width_from=%s, length_to=%s, width_to=%s)",
		c.PitchFrom, c.PitchTo, size(c.LengthFrom), size(c.WidthFrom), size(c.LengthTo), size(c.WidthTo))
}

func size(v float64) string {
	if v == 0 {
		return "none"
	}
	return fmt.Sprintf("%g", v)
}
