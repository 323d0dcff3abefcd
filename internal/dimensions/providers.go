package dimensions

// Wyscout dimensions follow ggsoccer, including its 12 unit goal width.
// Tracab is in centimeters; uefa, custom, skillcorner, secondspectrum and
// impect are in meters.

// UEFA reference size in meters.
const (
	uefaLength = 105.
	uefaWidth  = 68.
)

// Real-world marking distances in meters.
const (
	goalWidthM         = 7.32
	goalLengthM        = 2.
	sixYardWidthM      = 18.32
	sixYardLengthM     = 5.5
	penaltyAreaWidthM  = 40.32
	penaltyAreaLengthM = 16.5
	penaltySpotM       = 11.
	circleDiameterM    = 18.3
	cornerDiameterM    = 2.
	arcDegrees         = 53.05
)

func optaDims() *Dimensions {
	return &Dimensions{
		Left: 0, Right: 100, Bottom: 0, Top: 100, Aspect: uefaWidth / uefaLength,
		Width: 100, Length: 100, PitchWidth: uefaWidth, PitchLength: uefaLength,
		GoalWidth: 9.6, GoalLength: 1.9, GoalBottom: 45.2, GoalTop: 54.8,
		SixYardWidth: 26.4, SixYardLength: 5.8, SixYardLeft: 5.8,
		SixYardRight: 94.2, SixYardBottom: 36.8, SixYardTop: 63.2,
		PenaltyLeft: 11.5, PenaltyRight: 88.5, PenaltySpotDistance: 11.5,
		PenaltyAreaWidth: 57.8, PenaltyAreaLength: 17, PenaltyAreaLeft: 17,
		PenaltyAreaRight: 83, PenaltyAreaBottom: 21.1, PenaltyAreaTop: 78.9,
		CenterWidth: 50, CenterLength: 50, CircleDiameter: 17.68,
		CornerDiameter: 1.94,
		PadDefault: 4, PadMultiplier: 1,
	}
}

func wyscoutDims() *Dimensions {
	return &Dimensions{
		Left: 0, Right: 100, Bottom: 100, Top: 0, Aspect: uefaWidth / uefaLength,
		Width: 100, Length: 100, PitchWidth: uefaWidth, PitchLength: uefaLength,
		GoalWidth: 12, GoalLength: 1.9, GoalBottom: 56, GoalTop: 44,
		SixYardWidth: 26, SixYardLength: 6, SixYardLeft: 6,
		SixYardRight: 94, SixYardBottom: 63, SixYardTop: 37,
		PenaltyLeft: 10, PenaltyRight: 90, PenaltySpotDistance: 10,
		PenaltyAreaWidth: 62, PenaltyAreaLength: 16, PenaltyAreaLeft: 16,
		PenaltyAreaRight: 84, PenaltyAreaBottom: 81, PenaltyAreaTop: 19,
		CenterWidth: 50, CenterLength: 50, CircleDiameter: 17.68,
		CornerDiameter: 1.94, InvertY: true,
		PadDefault: 4, PadMultiplier: 1,
	}
}

func uefaDims() *Dimensions {
	return &Dimensions{
		Left: 0, Right: uefaLength, Top: uefaWidth, Bottom: 0, Aspect: 1,
		Width: uefaWidth, Length: uefaLength, PitchWidth: uefaWidth, PitchLength: uefaLength,
		GoalWidth: goalWidthM, GoalLength: goalLengthM, GoalBottom: 30.34, GoalTop: 37.66,
		SixYardWidth: sixYardWidthM, SixYardLength: sixYardLengthM, SixYardLeft: 5.5,
		SixYardRight: 99.5, SixYardBottom: 24.84, SixYardTop: 43.16,
		PenaltyLeft: 11, PenaltyRight: 94, PenaltySpotDistance: penaltySpotM,
		PenaltyAreaWidth: penaltyAreaWidthM, PenaltyAreaLength: penaltyAreaLengthM, PenaltyAreaLeft: 16.5,
		PenaltyAreaRight: 88.5, PenaltyAreaBottom: 13.84, PenaltyAreaTop: 54.16,
		CenterWidth: 34, CenterLength: 52.5, CircleDiameter: circleDiameterM,
		CornerDiameter: cornerDiameterM, Arc: arcDegrees,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	}
}

func statsbombDims() *Dimensions {
	return &Dimensions{
		Left: 0, Right: 120, Bottom: 80, Top: 0, Aspect: 1,
		Width: 80, Length: 120, PitchWidth: 80, PitchLength: 120,
		GoalWidth: 8, GoalLength: 2.4, GoalBottom: 44, GoalTop: 36,
		SixYardWidth: 20, SixYardLength: 6, SixYardLeft: 6,
		SixYardRight: 114, SixYardBottom: 50, SixYardTop: 30,
		PenaltyLeft: 12, PenaltyRight: 108, PenaltySpotDistance: 12,
		PenaltyAreaWidth: 44, PenaltyAreaLength: 18, PenaltyAreaLeft: 18,
		PenaltyAreaRight: 102, PenaltyAreaBottom: 62, PenaltyAreaTop: 18,
		CenterWidth: 40, CenterLength: 60, CircleDiameter: 20,
		CornerDiameter: 2.186, Arc: arcDegrees, InvertY: true,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	}
}

// metricasportsDims is a unit square with y inverted. Marking distances are
// scaled by the real pitch size.
func metricasportsDims(width, length float64) *Dimensions {
	d := &Dimensions{
		Left: 0, Right: 1, Top: 0, Bottom: 1,
		Width: 1, Length: 1, CenterWidth: 0.5, CenterLength: 0.5,
		PitchWidth: width, PitchLength: length,
		Aspect:              width / length,
		SixYardWidth:        round4(sixYardWidthM / width),
		SixYardLength:       round4(sixYardLengthM / length),
		PenaltyAreaWidth:    round4(penaltyAreaWidthM / width),
		PenaltyAreaLength:   round4(penaltyAreaLengthM / length),
		PenaltySpotDistance: round4(penaltySpotM / length),
		GoalLength:          round4(goalLengthM / length),
		GoalWidth:           round4(goalWidthM / width),
		CircleDiameter:      circleDiameterM,
		CornerDiameter:      cornerDiameterM,
		InvertY:             true,
		PadDefault:          0.04,
		PadMultiplier:       1,
	}
	d.penaltyBoxDims()
	return d
}

// customDims has its origin at the bottom left and is measured in meters.
func customDims(width, length float64) *Dimensions {
	d := &Dimensions{
		Left: 0, Bottom: 0, Right: length, Top: width, Aspect: 1,
		Width: width, Length: length, PitchWidth: width, PitchLength: length,
		CenterWidth: width / 2, CenterLength: length / 2,
		GoalWidth: goalWidthM, GoalLength: goalLengthM,
		SixYardWidth: sixYardWidthM, SixYardLength: sixYardLengthM,
		PenaltyAreaWidth: penaltyAreaWidthM, PenaltyAreaLength: penaltyAreaLengthM,
		PenaltySpotDistance: penaltySpotM,
		CircleDiameter: circleDiameterM, CornerDiameter: cornerDiameterM, Arc: arcDegrees,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	}
	d.penaltyBoxDims()
	return d
}

// variableCenterDims has its origin at the center spot. The distances are in
// the same units as width and length.
func variableCenterDims(width, length, scale float64) *Dimensions {
	d := &Dimensions{
		Aspect: 1, PitchWidth: width, PitchLength: length,
		Width: width, Length: length,
		GoalWidth: goalWidthM * scale, GoalLength: goalLengthM * scale,
		SixYardWidth: sixYardWidthM * scale, SixYardLength: sixYardLengthM * scale,
		PenaltyAreaWidth: penaltyAreaWidthM * scale, PenaltyAreaLength: penaltyAreaLengthM * scale,
		PenaltySpotDistance: penaltySpotM * scale,
		CircleDiameter: circleDiameterM * scale, CornerDiameter: cornerDiameterM * scale,
		Arc: arcDegrees, OriginCenter: true,
		PadDefault: 4, PadMultiplier: scale, AspectEqual: true,
	}
	d.Left = -length / 2
	d.Right = -d.Left
	d.Bottom = -width / 2
	d.Top = -d.Bottom
	d.penaltyBoxDims()
	return d
}

func centerDims(width, length float64) *Dimensions {
	return variableCenterDims(width, length, 1)
}

// tracabDims takes width and length already converted to centimeters.
func tracabDims(width, length float64) *Dimensions {
	return variableCenterDims(width, length, 100)
}

func impectDims() *Dimensions {
	return variableCenterDims(uefaWidth, uefaLength, 1)
}

// centerScaleDims squeezes a pitchLength x pitchWidth meter pitch into a box
// of length x width centered on the origin.
func centerScaleDims(pitchWidth, pitchLength, width, length float64, invertY bool) *Dimensions {
	top, bottom := width/2, -width/2
	if invertY {
		top, bottom = bottom, top
	}
	sx := length / pitchLength
	sy := width / pitchWidth
	d := &Dimensions{
		Top: top, Bottom: bottom, Left: -length / 2, Right: length / 2,
		PitchWidth: pitchWidth, PitchLength: pitchLength,
		Width: width, Length: length,
		Aspect:              pitchWidth / pitchLength * length / width,
		SixYardWidth:        round4(sixYardWidthM * sy),
		SixYardLength:       round4(sixYardLengthM * sx),
		PenaltyAreaWidth:    round4(penaltyAreaWidthM * sy),
		PenaltyAreaLength:   round4(penaltyAreaLengthM * sx),
		PenaltySpotDistance: round4(penaltySpotM * sx),
		GoalWidth:           round4(goalWidthM * sy),
		GoalLength:          round4(goalLengthM * sx),
		CircleDiameter:      circleDiameterM,
		CornerDiameter:      cornerDiameterM,
		InvertY: invertY, OriginCenter: true,
		PadDefault: 0.04 * width, PadMultiplier: 1,
	}
	d.PenaltyLeft = d.Left + d.PenaltySpotDistance
	d.PenaltyRight = -d.PenaltyLeft
	d.PenaltyAreaLeft = d.Left + d.PenaltyAreaLength
	d.PenaltyAreaRight = -d.PenaltyAreaLeft
	d.SixYardLeft = d.Left + d.SixYardLength
	d.SixYardRight = -d.SixYardLeft
	d.PenaltyAreaBottom = -d.PenaltyAreaWidth / 2
	d.PenaltyAreaTop = d.PenaltyAreaWidth / 2
	d.SixYardBottom = -d.SixYardWidth / 2
	d.SixYardTop = d.SixYardWidth / 2
	d.GoalBottom = -d.GoalWidth / 2
	d.GoalTop = d.GoalWidth / 2
	return d
}
