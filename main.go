package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/banshee-data/pitchgrid/internal/config"
	"github.com/banshee-data/pitchgrid/internal/dimensions"
	"github.com/banshee-data/pitchgrid/internal/events"
	"github.com/banshee-data/pitchgrid/internal/fsutil"
	"github.com/banshee-data/pitchgrid/internal/monitoring"
	"github.com/banshee-data/pitchgrid/internal/pitchplot"
	"github.com/banshee-data/pitchgrid/internal/standardize"
	"github.com/banshee-data/pitchgrid/internal/units"
	"github.com/banshee-data/pitchgrid/internal/version"
)

// maxInputSize bounds points and events files.
const maxInputSize = 256 * 1024 * 1024

// Main
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, fsutil.OSFileSystem{}); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("pitchgrid: %v", err)
	}
}

// run parses args, converts the points or events and writes CSV to stdout.
func run(args []string, stdin io.Reader, stdout io.Writer, fsys fsutil.FileSystem) error {
	fs := flag.NewFlagSet("pitchgrid", flag.ContinueOnError)
	from := fs.String("from", config.DefaultPitchFrom, "Source provider: "+dimensions.ValidProvidersString())
	to := fs.String("to", config.DefaultPitchTo, "Destination provider: "+dimensions.ValidProvidersString())
	lengthFrom := fs.Float64("length-from", 0, "Source pitch length (for "+sizeProviders()+")")
	widthFrom := fs.Float64("width-from", 0, "Source pitch width")
	lengthTo := fs.Float64("length-to", 0, "Destination pitch length")
	widthTo := fs.Float64("width-to", 0, "Destination pitch width")
	unitsFlag := fs.String("units", config.DefaultUnits, "Units of the pitch sizes: "+units.GetValidUnitsString())
	reverse := fs.Bool("reverse", false, "Convert from the destination pitch back to the source")
	configPath := fs.String("config", "", "JSON or YAML conversion config; flags override its values")
	inPath := fs.String("in", "", "CSV file of x,y points (default stdin)")
	eventsPath := fs.String("events", "", "Events JSON file to standardize instead of points")
	eventsFormat := fs.String("events-format", "", "Events format: statsbomb or wyscout (default from -from)")
	plotPath := fs.String("plot", "", "Write a PNG of the converted points")
	htmlPath := fs.String("html", "", "Write an HTML scatter of the converted points")
	verbose := fs.Bool("v", false, "Log skipped rows and events")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Fprintf(stdout, "pitchgrid %s\n", version.String())
		return nil
	}
	monitoring.Verbose = *verbose

	cfg := &config.ConversionConfig{}
	if *configPath != "" {
		loaded, err := config.Load(fsys, *configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// only flags given on the command line override the config file
	overrides := &config.ConversionConfig{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "from":
			overrides.PitchFrom = config.String(*from)
		case "to":
			overrides.PitchTo = config.String(*to)
		case "length-from":
			overrides.LengthFrom = config.Float64(*lengthFrom)
		case "width-from":
			overrides.WidthFrom = config.Float64(*widthFrom)
		case "length-to":
			overrides.LengthTo = config.Float64(*lengthTo)
		case "width-to":
			overrides.WidthTo = config.Float64(*widthTo)
		case "units":
			overrides.Units = config.String(*unitsFlag)
		case "reverse":
			overrides.Reverse = config.Bool(*reverse)
		}
	})
	cfg.Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := standardize.New(cfg.StandardizerConfig())
	if err != nil {
		return err
	}
	monitoring.Debugf("%s reverse=%t", s, cfg.GetReverse())

	src, dst := s.From(), s.To()
	if cfg.GetReverse() {
		src, dst = dst, src
	}

	var xs, ys []float64
	if *eventsPath != "" {
		format := *eventsFormat
		if format == "" {
			format = src.Provider
		}
		data, err := fsutil.ReadFileLimited(fsys, *eventsPath, maxInputSize)
		if err != nil {
			return err
		}
		evs, err := events.Parse(format, data)
		if err != nil {
			return fmt.Errorf("%s: %w", *eventsPath, err)
		}
		std := events.Standardize(s, evs, cfg.GetReverse())
		if err := events.WriteCSV(stdout, std); err != nil {
			return err
		}
		xs, ys = make([]float64, len(std)), make([]float64, len(std))
		for i, e := range std {
			xs[i], ys[i] = e.X, e.Y
		}
	} else {
		r := stdin
		if *inPath != "" {
			data, err := fsutil.ReadFileLimited(fsys, *inPath, maxInputSize)
			if err != nil {
				return err
			}
			r = bytes.NewReader(data)
		}
		x, y, err := readPoints(r)
		if err != nil {
			return err
		}
		xs, ys = s.Transform(x, y, cfg.GetReverse())
		if err := writePoints(stdout, xs, ys); err != nil {
			return err
		}
	}

	title := fmt.Sprintf("%s to %s", src.Provider, dst.Provider)
	if *plotPath != "" {
		if err := pitchplot.RenderPNG(fsys, *plotPath, dst, xs, ys, title); err != nil {
			return err
		}
		log.Printf("wrote %s", *plotPath)
	}
	if *htmlPath != "" {
		if err := pitchplot.RenderHTML(fsys, *htmlPath, dst, xs, ys, title); err != nil {
			return err
		}
		log.Printf("wrote %s", *htmlPath)
	}
	return nil
}

func sizeProviders() string {
	return strings.Join(dimensions.SizeVaries, ", ")
}
