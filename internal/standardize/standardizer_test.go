package standardize

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/banshee-data/pitchgrid/internal/dimensions"
	"github.com/banshee-data/pitchgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func mustNew(t *testing.T, cfg Config) *Standardizer {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown from", Config{PitchFrom: "hawkeye", PitchTo: dimensions.UEFA}},
		{"unknown to", Config{PitchFrom: dimensions.Opta, PitchTo: "statsperform"}},
		{"custom to without size", Config{PitchFrom: dimensions.Opta, PitchTo: dimensions.Custom}},
		{"tracab from without width", Config{PitchFrom: dimensions.Tracab, PitchTo: dimensions.Opta, LengthFrom: 105}},
		{"metricasports to without length", Config{PitchFrom: dimensions.Opta, PitchTo: dimensions.MetricaSports, WidthTo: 68}},
		{"skillcorner size given for wrong side", Config{PitchFrom: dimensions.SkillCorner, PitchTo: dimensions.Opta, LengthTo: 105, WidthTo: 68}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := New(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, dimensions.ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestNewFromDimensions_Nil(t *testing.T) {
	uefa, err := dimensions.New(dimensions.UEFA, 0, 0)
	require.NoError(t, err)

	_, err = NewFromDimensions(nil, uefa)
	assert.ErrorIs(t, err, dimensions.ErrInvalidArgument)
	_, err = NewFromDimensions(uefa, nil)
	assert.ErrorIs(t, err, dimensions.ErrInvalidArgument)
}

func TestTransform_LandmarksMapExactly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cfg          Config
		x, y         float64
		wantX, wantY float64
	}{
		{"opta penalty area right edge", Config{PitchFrom: dimensions.Opta, PitchTo: dimensions.UEFA}, 83, 21.1, 88.5, 13.84},
		{"opta penalty area left edge", Config{PitchFrom: dimensions.Opta, PitchTo: dimensions.UEFA}, 17, 78.9, 16.5, 54.16},
		{"opta center spot", Config{PitchFrom: dimensions.Opta, PitchTo: dimensions.UEFA}, 50, 50, 52.5, 34},
		{"opta penalty spot", Config{PitchFrom: dimensions.Opta, PitchTo: dimensions.UEFA}, 88.5, 45.2, 94, 30.34},
		{"statsbomb penalty area corner", Config{PitchFrom: dimensions.StatsBomb, PitchTo: dimensions.UEFA}, 102, 18, 88.5, 54.16},
		{"statsbomb six-yard box corner", Config{PitchFrom: dimensions.StatsBomb, PitchTo: dimensions.UEFA}, 6, 50, 5.5, 24.84},
		{"statsbomb top left corner", Config{PitchFrom: dimensions.StatsBomb, PitchTo: dimensions.UEFA}, 0, 0, 0, 68},
		{"statsbomb to wyscout keeps orientation", Config{PitchFrom: dimensions.StatsBomb, PitchTo: dimensions.Wyscout}, 0, 0, 0, 0},
		{"wyscout goal post", Config{PitchFrom: dimensions.Wyscout, PitchTo: dimensions.StatsBomb}, 100, 44, 120, 36},
		{"uefa to tracab penalty area", Config{PitchFrom: dimensions.UEFA, PitchTo: dimensions.Tracab, LengthTo: 105, WidthTo: 68}, 16.5, 13.84, -3600, -2016},
		{"uefa to metricasports center", Config{PitchFrom: dimensions.UEFA, PitchTo: dimensions.MetricaSports, LengthTo: 105, WidthTo: 68}, 52.5, 34, 0.5, 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := mustNew(t, tt.cfg)
			x, y := s.TransformPoint(tt.x, tt.y, false)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)

			// and back onto the original landmark
			bx, by := s.TransformPoint(x, y, true)
			assert.InDelta(t, tt.x, bx, 1e-9)
			assert.InDelta(t, tt.y, by, 1e-9)
		})
	}
}

func TestTransform_OptaToCustomKeepsBoxPositions(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Config{PitchFrom: dimensions.Opta, PitchTo: dimensions.Custom, LengthTo: 105, WidthTo: 68})
	x, y := s.Transform([]float64{83.5, 94.6, 88.5}, []float64{70, 42, 50}, false)
	to := s.To()

	// just inside the penalty area
	assert.Greater(t, x[0], to.PenaltyAreaRight)
	assert.Less(t, x[0], to.Right)
	assert.Greater(t, y[0], to.PenaltyAreaBottom)
	assert.Less(t, y[0], to.PenaltyAreaTop)

	// inside the six-yard box
	assert.Greater(t, x[1], to.SixYardRight)
	assert.Greater(t, y[1], to.SixYardBottom)
	assert.Less(t, y[1], to.SixYardTop)

	// on the penalty spot
	assert.InDelta(t, to.PenaltyRight, x[2], 1e-9)
	assert.InDelta(t, to.CenterWidth, y[2], 1e-9)
}

func TestTransform_StatsBombUEFARoundTrip(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Config{PitchFrom: dimensions.StatsBomb, PitchTo: dimensions.UEFA})
	x := []float64{0, 18, 60, 100.5, 120, 37.2}
	y := []float64{0, 40, 80, 12.3, 55, 79.9}

	ux, uy := s.Transform(x, y, false)
	for i := range ux {
		assert.GreaterOrEqual(t, ux[i], 0.0)
		assert.LessOrEqual(t, ux[i], 105.0)
		assert.GreaterOrEqual(t, uy[i], 0.0)
		assert.LessOrEqual(t, uy[i], 68.0)
	}

	bx, by := s.Transform(ux, uy, true)
	testutil.AssertFloatsClose(t, bx, x, tolerance)
	testutil.AssertFloatsClose(t, by, y, tolerance)
}

func TestTransform_ReverseAllProviderPairs(t *testing.T) {
	t.Parallel()

	rng := testutil.NewRand(42)
	for _, from := range dimensions.ValidProviders {
		for _, to := range dimensions.ValidProviders {
			cfg := Config{
				PitchFrom:  from,
				PitchTo:    to,
				LengthFrom: float64(90 + rng.Intn(26)),
				WidthFrom:  float64(55 + rng.Intn(21)),
				LengthTo:   float64(90 + rng.Intn(26)),
				WidthTo:    float64(55 + rng.Intn(21)),
			}
			s := mustNew(t, cfg)

			x, y := testutil.UniformPoints(rng, 500, s.From().PitchExtent())
			xStd, yStd := s.Transform(x, y, false)
			xRev, yRev := s.Transform(xStd, yStd, true)

			t.Run(from+"->"+to, func(t *testing.T) {
				testutil.AssertFloatsClose(t, xRev, x, tolerance)
				testutil.AssertFloatsClose(t, yRev, y, tolerance)
			})
		}
	}
}

func TestTransform_ChainClosure(t *testing.T) {
	t.Parallel()

	const numPitches = 200
	rng := testutil.NewRand(7)
	length := float64(90 + rng.Intn(26))
	width := float64(55 + rng.Intn(21))

	providers := make([]string, numPitches)
	for i := range providers {
		providers[i] = dimensions.ValidProviders[rng.Intn(len(dimensions.ValidProviders))]
	}

	start, err := dimensions.New(providers[0], width, length)
	require.NoError(t, err)
	x0, y0 := testutil.UniformPoints(rng, 2000, start.PitchExtent())

	x, y := x0, y0
	for i := 0; i < numPitches; i++ {
		s := mustNew(t, Config{
			PitchFrom: providers[i], PitchTo: providers[(i+1)%numPitches],
			LengthFrom: length, WidthFrom: width, LengthTo: length, WidthTo: width,
		})
		x, y = s.Transform(x, y, false)
	}

	testutil.AssertFloatsClose(t, x, x0, tolerance)
	testutil.AssertFloatsClose(t, y, y0, tolerance)
}

func TestTransform_ClipsOutsidePoints(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Config{PitchFrom: dimensions.Opta, PitchTo: dimensions.StatsBomb})

	tests := []struct {
		name         string
		x, y         float64
		clipX, clipY float64
		reverse      bool
	}{
		{"beyond right and top", 110, 120, 100, 100, false},
		{"beyond left and bottom", -3, -0.5, 0, 0, false},
		{"only x outside", 101, 42, 100, 42, false},
		{"reverse beyond statsbomb bottom", 60, 95, 60, 80, true},
		{"reverse beyond statsbomb top", -10, -10, 0, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := s.TransformPoint(tt.x, tt.y, tt.reverse)
			wantX, wantY := s.TransformPoint(tt.clipX, tt.clipY, tt.reverse)
			assert.Equal(t, wantX, gotX)
			assert.Equal(t, wantY, gotY)
		})
	}
}

func TestTransform_OutputWithinDestination(t *testing.T) {
	t.Parallel()

	rng := testutil.NewRand(3)
	s := mustNew(t, Config{PitchFrom: dimensions.Wyscout, PitchTo: dimensions.SkillCorner, LengthTo: 100, WidthTo: 64})

	// deliberately spill outside the source pitch
	x, y := testutil.UniformPoints(rng, 1000, [4]float64{-20, 120, -20, 120})
	xs, ys := s.Transform(x, y, false)

	e := s.To().PitchExtent()
	for i := range xs {
		assert.True(t, xs[i] >= e[0]-1e-9 && xs[i] <= e[1]+1e-9, "x[%d]=%f outside %v", i, xs[i], e)
		assert.True(t, ys[i] >= e[2]-1e-9 && ys[i] <= e[3]+1e-9, "y[%d]=%f outside %v", i, ys[i], e)
	}
}

func TestTransform_NaNAndInputs(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Config{PitchFrom: dimensions.StatsBomb, PitchTo: dimensions.Opta})

	x := []float64{math.NaN(), 60}
	y := []float64{40, math.NaN()}
	xs, ys := s.Transform(x, y, false)

	assert.True(t, math.IsNaN(xs[0]))
	assert.False(t, math.IsNaN(ys[0]))
	assert.InDelta(t, 50.0, xs[1], 1e-9)
	assert.True(t, math.IsNaN(ys[1]))

	// inputs untouched
	assert.True(t, math.IsNaN(x[0]))
	assert.Equal(t, 60.0, x[1])

	empty, emptyY := s.Transform(nil, nil, false)
	assert.Empty(t, empty)
	assert.Empty(t, emptyY)

	assert.Panics(t, func() { s.Transform([]float64{1, 2}, []float64{1}, false) })
}

func TestTransform_CenterScale(t *testing.T) {
	t.Parallel()

	from, err := dimensions.NewCenterScale(68, 105, 2, 2, true)
	require.NoError(t, err)
	to, err := dimensions.New(dimensions.UEFA, 0, 0)
	require.NoError(t, err)

	s, err := NewFromDimensions(from, to)
	require.NoError(t, err)

	// inverted: -1 is the top edge
	x, y := s.TransformPoint(-1, -1, false)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 68.0, y, 1e-9)

	x, y = s.TransformPoint(0, 0, false)
	assert.InDelta(t, 52.5, x, 1e-9)
	assert.InDelta(t, 34.0, y, 1e-9)
}

func TestTransform_ConcurrentUse(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Config{PitchFrom: dimensions.Opta, PitchTo: dimensions.Tracab, LengthTo: 105, WidthTo: 68})
	x, y := testutil.UniformPoints(testutil.NewRand(11), 200, s.From().PitchExtent())
	wantX, wantY := s.Transform(x, y, false)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gotX, gotY := s.Transform(x, y, false)
			assert.Equal(t, wantX, gotX)
			assert.Equal(t, wantY, gotY)
		}()
	}
	wg.Wait()
}

func TestString(t *testing.T) {
	s := mustNew(t, Config{PitchFrom: dimensions.StatsBomb, PitchTo: dimensions.Custom, LengthTo: 105, WidthTo: 68})
	assert.Equal(t,
		"Standardizer(pitch_from=statsbomb, pitch_to=custom, length_from=none, width_from=none, length_to=105, width_to=68)",
		s.String())
}
