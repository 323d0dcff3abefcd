package pitchplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/banshee-data/pitchgrid/internal/dimensions"
	"github.com/banshee-data/pitchgrid/internal/fsutil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	lineColor  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	pointColor = color.RGBA{R: 214, G: 39, B: 40, A: 200}
)

// PNGWidth is the rendered image width; height follows the pitch aspect.
const PNGWidth = 10 * vg.Inch

// RenderPNG draws the markings of d with the points x, y on top and writes
// the image to path. Inverted pitches are drawn with y increasing downwards.
// Points with NaN coordinates are left out.
func RenderPNG(fsys fsutil.FileSystem, path string, d *dimensions.Dimensions, x, y []float64, title string) error {
	p, err := newPitchPlot(d, x, y, title)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(PNGWidth, pngHeight(d), "png")
	if err != nil {
		return fmt.Errorf("failed to encode plot: %w", err)
	}
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func newPitchPlot(d *dimensions.Dimensions, x, y []float64, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, line := range Lines(d) {
		l, err := plotter.NewLine(toXYs(line))
		if err != nil {
			return nil, err
		}
		l.Color = lineColor
		l.Width = vg.Points(1)
		p.Add(l)
	}

	spots, err := plotter.NewScatter(toXYs(Spots(d)))
	if err != nil {
		return nil, err
	}
	spots.GlyphStyle.Color = lineColor
	spots.GlyphStyle.Shape = draw.CircleGlyph{}
	spots.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(spots)

	if pts := finite(x, y); len(pts) > 0 {
		s, err := plotter.NewScatter(toXYs(pts))
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = pointColor
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("points (%d)", len(pts)), s)
		p.Legend.Top = true
		p.Legend.Left = false
		p.Legend.XOffs = -10
		p.Legend.YOffs = -10
	}

	pad := padding(d)
	p.X.Min = math.Min(d.Left, d.Right) - pad - d.GoalLength
	p.X.Max = math.Max(d.Left, d.Right) + pad + d.GoalLength
	p.Y.Min = math.Min(d.Bottom, d.Top) - pad
	p.Y.Max = math.Max(d.Bottom, d.Top) + pad
	if d.InvertY {
		p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	}
	return p, nil
}

func pngHeight(d *dimensions.Dimensions) vg.Length {
	aspect := d.Aspect
	if aspect <= 0 || math.IsNaN(aspect) {
		aspect = 68.0 / 105.0
	}
	if d.AspectEqual {
		aspect = math.Abs(d.Top-d.Bottom) / math.Abs(d.Right-d.Left)
	}
	// leave room for the title and axes
	return vg.Length(float64(PNGWidth)*aspect) + vg.Inch
}

func toXYs(pts []Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	return xys
}
