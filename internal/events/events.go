// Package events reads event locations from provider event files and writes
// them back out in a standardized coordinate system.
package events

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/banshee-data/pitchgrid/internal/monitoring"
	"github.com/banshee-data/pitchgrid/internal/standardize"
	"github.com/tidwall/gjson"
)

// Supported event formats.
const (
	FormatStatsBomb = "statsbomb"
	FormatWyscout   = "wyscout"
)

// ValidFormats lists the formats Parse accepts.
var ValidFormats = []string{FormatStatsBomb, FormatWyscout}

// Event is the location part of a match event. EndX and EndY are NaN when the
// event has no end location.
type Event struct {
	ID   string
	Type string
	X, Y float64

	EndX, EndY float64
}

// HasEnd reports whether the event has an end location.
func (e Event) HasEnd() bool {
	return !math.IsNaN(e.EndX) && !math.IsNaN(e.EndY)
}

// Parse reads events in the given format. Events without a start location
// are skipped.
func Parse(format string, data []byte) ([]Event, error) {
	switch format {
	case FormatStatsBomb:
		return ParseStatsBomb(data)
	case FormatWyscout:
		return ParseWyscout(data)
	default:
		return nil, fmt.Errorf("unknown events format %q, should be one of %v", format, ValidFormats)
	}
}

// statsbombEndPaths are the event kinds carrying an end_location.
var statsbombEndPaths = []string{"pass.end_location", "carry.end_location", "shot.end_location", "goalkeeper.end_location"}

// ParseStatsBomb reads a StatsBomb open-data events file: a JSON array of
// events with "location" and, for passes, carries and shots, an
// "end_location" nested under the event kind.
func ParseStatsBomb(data []byte) ([]Event, error) {
	root, err := parseArray(data, "")
	if err != nil {
		return nil, err
	}

	var out []Event
	for i, ev := range root.Array() {
		loc := ev.Get("location").Array()
		if len(loc) < 2 {
			monitoring.Debugf("statsbomb event %d (%s) has no location, skipping", i, ev.Get("type.name").String())
			continue
		}
		e := Event{
			ID:   ev.Get("id").String(),
			Type: ev.Get("type.name").String(),
			X:    loc[0].Float(),
			Y:    loc[1].Float(),
			EndX: math.NaN(),
			EndY: math.NaN(),
		}
		for _, path := range statsbombEndPaths {
			// shot end locations may include a z coordinate
			if end := ev.Get(path).Array(); len(end) >= 2 {
				e.EndX, e.EndY = end[0].Float(), end[1].Float()
				break
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// ParseWyscout reads Wyscout events: either a bare array or an object with an
// "events" array, each event holding up to two "positions" of {x, y}.
func ParseWyscout(data []byte) ([]Event, error) {
	path := ""
	if gjson.GetBytes(data, "events").IsArray() {
		path = "events"
	}
	root, err := parseArray(data, path)
	if err != nil {
		return nil, err
	}

	var out []Event
	for i, ev := range root.Array() {
		pos := ev.Get("positions").Array()
		if len(pos) == 0 {
			monitoring.Debugf("wyscout event %d has no positions, skipping", i)
			continue
		}
		typ := ev.Get("eventName").String()
		if typ == "" {
			typ = ev.Get("type.primary").String()
		}
		e := Event{
			ID:   ev.Get("id").String(),
			Type: typ,
			X:    pos[0].Get("x").Float(),
			Y:    pos[0].Get("y").Float(),
			EndX: math.NaN(),
			EndY: math.NaN(),
		}
		if len(pos) > 1 {
			e.EndX, e.EndY = pos[1].Get("x").Float(), pos[1].Get("y").Float()
		}
		out = append(out, e)
	}
	return out, nil
}

func parseArray(data []byte, path string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("events file is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if path != "" {
		root = root.Get(path)
	}
	if !root.IsArray() {
		return gjson.Result{}, fmt.Errorf("events file must contain a JSON array of events")
	}
	return root, nil
}

// Standardize converts the start and end locations of events with s. The
// input slice is not modified.
func Standardize(s *standardize.Standardizer, evs []Event, reverse bool) []Event {
	out := make([]Event, len(evs))
	for i, e := range evs {
		e.X, e.Y = s.TransformPoint(e.X, e.Y, reverse)
		if e.HasEnd() {
			e.EndX, e.EndY = s.TransformPoint(e.EndX, e.EndY, reverse)
		}
		out[i] = e
	}
	return out
}

// WriteCSV writes events as id,type,x,y,end_x,end_y rows with a header.
// Missing end locations are left empty.
func WriteCSV(w io.Writer, evs []Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "type", "x", "y", "end_x", "end_y"}); err != nil {
		return err
	}
	for _, e := range evs {
		row := []string{e.ID, e.Type, formatFloat(e.X), formatFloat(e.Y), "", ""}
		if e.HasEnd() {
			row[4], row[5] = formatFloat(e.EndX), formatFloat(e.EndY)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
