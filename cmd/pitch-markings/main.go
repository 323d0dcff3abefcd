// Command pitch-markings prints a provider's resolved pitch dimensions and
// the marking arrays used to standardize its coordinates.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/pitchgrid/internal/dimensions"
	"github.com/banshee-data/pitchgrid/internal/units"
)

type markingsReport struct {
	Provider           string                 `json:"provider"`
	Dimensions         *dimensions.Dimensions `json:"dimensions"`
	XMarkings          []float64              `json:"x_markings"`
	YMarkings          []float64              `json:"y_markings"`
	PitchExtent        [4]float64             `json:"pitch_extent"`
	StandardizedExtent [4]float64             `json:"standardized_extent"`
	PositionalX        []float64              `json:"positional_x"`
	PositionalY        []float64              `json:"positional_y"`
	Stripes            []float64              `json:"stripes"`
}

func main() {
	var provider, unitsName string
	var length, width float64

	flag.StringVar(&provider, "provider", dimensions.UEFA, "provider: "+dimensions.ValidProvidersString())
	flag.Float64Var(&length, "length", 0, "pitch length, for providers whose size varies")
	flag.Float64Var(&width, "width", 0, "pitch width, for providers whose size varies")
	flag.StringVar(&unitsName, "units", units.Meters, "units of length and width: "+units.GetValidUnitsString())
	flag.Parse()

	if !units.IsValid(unitsName) {
		log.Fatalf("invalid units %q, should be one of %s", unitsName, units.GetValidUnitsString())
	}
	if err := writeReport(os.Stdout, provider, units.ToMeters(width, unitsName), units.ToMeters(length, unitsName)); err != nil {
		log.Fatalf("pitch-markings: %v", err)
	}
}

func writeReport(w io.Writer, provider string, width, length float64) error {
	d, err := dimensions.New(provider, width, length)
	if err != nil {
		return err
	}
	report := markingsReport{
		Provider:           provider,
		Dimensions:         d,
		XMarkings:          d.XMarkings(),
		YMarkings:          d.YMarkings(),
		PitchExtent:        d.PitchExtent(),
		StandardizedExtent: d.StandardizedExtent(),
		PositionalX:        d.PositionalX(),
		PositionalY:        d.PositionalY(),
		Stripes:            d.StripeLocations(),
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
