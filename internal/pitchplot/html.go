package pitchplot

import (
	"bytes"
	"fmt"
	"math"

	"github.com/banshee-data/pitchgrid/internal/dimensions"
	"github.com/banshee-data/pitchgrid/internal/fsutil"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// markingStep is the spacing, as a fraction of the pitch length, between the
// dots that trace each marking in the HTML view.
const markingStep = 0.005

// RenderHTML writes an interactive scatter of the points x, y over the
// markings of d to path.
func RenderHTML(fsys fsutil.FileSystem, path string, d *dimensions.Dimensions, x, y []float64, title string) error {
	var buf bytes.Buffer
	if err := newPitchScatter(d, x, y, title).Render(&buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if err := fsys.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func newPitchScatter(d *dimensions.Dimensions, x, y []float64, title string) *charts.Scatter {
	step := markingStep * math.Abs(d.Right-d.Left)
	var marks []opts.ScatterData
	for _, line := range Lines(d) {
		for _, pt := range trace(line, step) {
			marks = append(marks, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
		}
	}

	pts := finite(x, y)
	data := make([]opts.ScatterData, 0, len(pts))
	for _, pt := range pts {
		data = append(data, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
	}

	subtitle := fmt.Sprintf("provider=%s points=%d", d.Provider, len(data))
	if d.InvertY {
		subtitle += " (y axis inverted)"
	}

	pad := padding(d)
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1050px", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Min: math.Min(d.Left, d.Right) - pad, Max: math.Max(d.Left, d.Right) + pad,
			Name: "x", NameLocation: "middle", NameGap: 25,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: math.Min(d.Bottom, d.Top) - pad, Max: math.Max(d.Bottom, d.Top) + pad,
			Name: "y", NameLocation: "middle", NameGap: 30,
		}),
	)
	scatter.AddSeries("markings", marks, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	scatter.AddSeries("points", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	return scatter
}

// trace samples a polyline every step units, keeping the vertices.
func trace(line []Point, step float64) []Point {
	if len(line) == 0 || step <= 0 {
		return line
	}
	out := []Point{line[0]}
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		n := int(math.Ceil(math.Hypot(b.X-a.X, b.Y-a.Y) / step))
		for k := 1; k <= n; k++ {
			f := float64(k) / float64(n)
			out = append(out, Point{a.X + f*(b.X-a.X), a.Y + f*(b.Y-a.Y)})
		}
	}
	return out
}
