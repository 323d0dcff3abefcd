package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/banshee-data/pitchgrid/internal/dimensions"
	"github.com/banshee-data/pitchgrid/internal/fsutil"
	"github.com/banshee-data/pitchgrid/internal/standardize"
	"github.com/banshee-data/pitchgrid/internal/units"
	"gopkg.in/yaml.v3"
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Defaults used when a field is omitted.
const (
	DefaultPitchFrom = dimensions.StatsBomb
	DefaultPitchTo   = dimensions.UEFA
	DefaultUnits     = units.Meters
)

// ConversionConfig describes a pitch to pitch conversion. The same schema is
// accepted as JSON or YAML. Nil fields fall back to the Get* defaults, so
// partial files are safe and command-line flags can be layered on top with
// Merge.
type ConversionConfig struct {
	PitchFrom *string `json:"pitch_from,omitempty" yaml:"pitch_from,omitempty"`
	PitchTo   *string `json:"pitch_to,omitempty" yaml:"pitch_to,omitempty"`

	// Pitch sizes in Units, only needed for providers whose size varies.
	LengthFrom *float64 `json:"length_from,omitempty" yaml:"length_from,omitempty"`
	WidthFrom  *float64 `json:"width_from,omitempty" yaml:"width_from,omitempty"`
	LengthTo   *float64 `json:"length_to,omitempty" yaml:"length_to,omitempty"`
	WidthTo    *float64 `json:"width_to,omitempty" yaml:"width_to,omitempty"`
	Units      *string  `json:"units,omitempty" yaml:"units,omitempty"`

	Reverse *bool `json:"reverse,omitempty" yaml:"reverse,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }

// String returns a pointer to v, for building configs from flags.
func String(v string) *string { return ptrString(v) }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return ptrFloat64(v) }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return ptrBool(v) }

// Load reads a ConversionConfig from a .json, .yaml or .yml file.
// The file is checked against a 1MB size limit and validated.
func Load(fsys fsutil.FileSystem, path string) (*ConversionConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	data, err := fsutil.ReadFileLimited(fsys, cleanPath, maxFileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &ConversionConfig{}
	if ext == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Merge overwrites fields in c with every non-nil field of o.
func (c *ConversionConfig) Merge(o *ConversionConfig) {
	if o == nil {
		return
	}
	if o.PitchFrom != nil {
		c.PitchFrom = o.PitchFrom
	}
	if o.PitchTo != nil {
		c.PitchTo = o.PitchTo
	}
	if o.LengthFrom != nil {
		c.LengthFrom = o.LengthFrom
	}
	if o.WidthFrom != nil {
		c.WidthFrom = o.WidthFrom
	}
	if o.LengthTo != nil {
		c.LengthTo = o.LengthTo
	}
	if o.WidthTo != nil {
		c.WidthTo = o.WidthTo
	}
	if o.Units != nil {
		c.Units = o.Units
	}
	if o.Reverse != nil {
		c.Reverse = o.Reverse
	}
}

// Validate checks that the configuration values are valid.
func (c *ConversionConfig) Validate() error {
	if c.PitchFrom != nil && !dimensions.IsValid(*c.PitchFrom) {
		return fmt.Errorf("pitch_from must be one of %s, got %q", dimensions.ValidProvidersString(), *c.PitchFrom)
	}
	if c.PitchTo != nil && !dimensions.IsValid(*c.PitchTo) {
		return fmt.Errorf("pitch_to must be one of %s, got %q", dimensions.ValidProvidersString(), *c.PitchTo)
	}
	if c.Units != nil && !units.IsValid(*c.Units) {
		return fmt.Errorf("units must be one of %s, got %q", units.GetValidUnitsString(), *c.Units)
	}

	sizes := []struct {
		name string
		v    *float64
	}{
		{"length_from", c.LengthFrom},
		{"width_from", c.WidthFrom},
		{"length_to", c.LengthTo},
		{"width_to", c.WidthTo},
	}
	for _, s := range sizes {
		if s.v != nil && *s.v < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", s.name, *s.v)
		}
	}

	if dimensions.RequiresSize(c.GetPitchFrom()) && (c.GetLengthFrom() == 0 || c.GetWidthFrom() == 0) {
		return fmt.Errorf("length_from and width_from are required for pitch_from %s", c.GetPitchFrom())
	}
	if dimensions.RequiresSize(c.GetPitchTo()) && (c.GetLengthTo() == 0 || c.GetWidthTo() == 0) {
		return fmt.Errorf("length_to and width_to are required for pitch_to %s", c.GetPitchTo())
	}
	return nil
}

// GetPitchFrom returns the pitch_from value or the default.
func (c *ConversionConfig) GetPitchFrom() string {
	if c.PitchFrom == nil {
		return DefaultPitchFrom
	}
	return *c.PitchFrom
}

// GetPitchTo returns the pitch_to value or the default.
func (c *ConversionConfig) GetPitchTo() string {
	if c.PitchTo == nil {
		return DefaultPitchTo
	}
	return *c.PitchTo
}

// GetUnits returns the units value or the default.
func (c *ConversionConfig) GetUnits() string {
	if c.Units == nil {
		return DefaultUnits
	}
	return *c.Units
}

// GetLengthFrom returns length_from in meters, or 0 when unset.
func (c *ConversionConfig) GetLengthFrom() float64 { return c.meters(c.LengthFrom) }

// GetWidthFrom returns width_from in meters, or 0 when unset.
func (c *ConversionConfig) GetWidthFrom() float64 { return c.meters(c.WidthFrom) }

// GetLengthTo returns length_to in meters, or 0 when unset.
func (c *ConversionConfig) GetLengthTo() float64 { return c.meters(c.LengthTo) }

// GetWidthTo returns width_to in meters, or 0 when unset.
func (c *ConversionConfig) GetWidthTo() float64 { return c.meters(c.WidthTo) }

func (c *ConversionConfig) meters(v *float64) float64 {
	if v == nil {
		return 0
	}
	return units.ToMeters(*v, c.GetUnits())
}

// GetReverse returns the reverse value or the default.
func (c *ConversionConfig) GetReverse() bool {
	if c.Reverse == nil {
		return false
	}
	return *c.Reverse
}

// StandardizerConfig resolves the defaults and converts sizes to meters.
func (c *ConversionConfig) StandardizerConfig() standardize.Config {
	return standardize.Config{
		PitchFrom:  c.GetPitchFrom(),
		PitchTo:    c.GetPitchTo(),
		LengthFrom: c.GetLengthFrom(),
		WidthFrom:  c.GetWidthFrom(),
		LengthTo:   c.GetLengthTo(),
		WidthTo:    c.GetWidthTo(),
	}
}
