package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/banshee-data/pitchgrid/internal/monitoring"
)

// readPoints reads x,y rows. A first row that does not parse as numbers is
// treated as a header; blank fields become NaN and pass through unchanged.
func readPoints(r io.Reader) ([]float64, []float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var xs, ys []float64
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read points: %w", err)
		}
		x, errX := parseCoord(rec[0])
		y, errY := parseCoord(rec[1])
		if errX != nil || errY != nil {
			if row == 1 {
				monitoring.Debugf("treating %q as a header row", strings.Join(rec, ","))
				continue
			}
			return nil, nil, fmt.Errorf("row %d: invalid point %q", row, strings.Join(rec, ","))
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

func parseCoord(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return strconv.ParseFloat("NaN", 64)
	}
	return strconv.ParseFloat(s, 64)
}

// writePoints writes x,y rows with a header. NaN is written as an empty field.
func writePoints(w io.Writer, xs, ys []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range xs {
		if err := cw.Write([]string{formatCoord(xs[i]), formatCoord(ys[i])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCoord(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
