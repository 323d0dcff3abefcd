package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/banshee-data/pitchgrid/internal/dimensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, dimensions.Opta, 0, 0))

	var got struct {
		Provider    string     `json:"provider"`
		XMarkings   []float64  `json:"x_markings"`
		YMarkings   []float64  `json:"y_markings"`
		PitchExtent [4]float64 `json:"pitch_extent"`
		Dimensions  struct {
			PenaltyAreaRight float64
			InvertY          bool
		} `json:"dimensions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "opta", got.Provider)
	assert.Equal(t, []float64{0, 5.8, 11.5, 17, 50, 83, 88.5, 94.2, 100}, got.XMarkings)
	assert.Equal(t, []float64{0, 21.1, 36.8, 45.2, 54.8, 63.2, 78.9, 100}, got.YMarkings)
	assert.Equal(t, [4]float64{0, 100, 0, 100}, got.PitchExtent)
	assert.Equal(t, 83.0, got.Dimensions.PenaltyAreaRight)
	assert.False(t, got.Dimensions.InvertY)
}

func TestWriteReport_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := writeReport(&buf, dimensions.Custom, 0, 0)
	assert.True(t, errors.Is(err, dimensions.ErrInvalidArgument))
	assert.Zero(t, buf.Len())
}
