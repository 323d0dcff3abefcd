package events

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/banshee-data/pitchgrid/internal/standardize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statsbombEvents = `[
  {"id": "a1", "type": {"id": 35, "name": "Starting XI"}},
  {"id": "a2", "type": {"name": "Pass"}, "location": [60.0, 40.0],
   "pass": {"end_location": [102.0, 18.0]}},
  {"id": "a3", "type": {"name": "Shot"}, "location": [108.0, 40.0],
   "shot": {"end_location": [120.0, 40.0, 1.2]}},
  {"id": "a4", "type": {"name": "Pressure"}, "location": [18.0, 62.0]}
]`

const wyscoutEvents = `{"events": [
  {"id": 1, "eventName": "Pass", "positions": [{"x": 50, "y": 50}, {"x": 84, "y": 19}]},
  {"id": 2, "eventName": "Shot", "positions": [{"x": 94, "y": 50}]},
  {"id": 3, "eventName": "Interruption", "positions": []}
]}`

func TestParseStatsBomb(t *testing.T) {
	evs, err := ParseStatsBomb([]byte(statsbombEvents))
	require.NoError(t, err)
	require.Len(t, evs, 3)

	assert.Equal(t, "a2", evs[0].ID)
	assert.Equal(t, "Pass", evs[0].Type)
	assert.Equal(t, 60.0, evs[0].X)
	assert.Equal(t, 40.0, evs[0].Y)
	assert.Equal(t, 102.0, evs[0].EndX)
	assert.Equal(t, 18.0, evs[0].EndY)

	assert.Equal(t, 120.0, evs[1].EndX)
	assert.Equal(t, 40.0, evs[1].EndY)

	assert.False(t, evs[2].HasEnd())
}

func TestParseWyscout(t *testing.T) {
	evs, err := ParseWyscout([]byte(wyscoutEvents))
	require.NoError(t, err)
	require.Len(t, evs, 2)

	assert.Equal(t, "1", evs[0].ID)
	assert.Equal(t, "Pass", evs[0].Type)
	assert.True(t, evs[0].HasEnd())
	assert.Equal(t, 84.0, evs[0].EndX)
	assert.False(t, evs[1].HasEnd())

	bare := `[{"id": 7, "type": {"primary": "pass"}, "positions": [{"x": 10, "y": 20}]}]`
	evs, err = Parse(FormatWyscout, []byte(bare))
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, "pass", evs[0].Type)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
	}{
		{"unknown format", "opta", `[]`},
		{"invalid json", FormatStatsBomb, `[{"id": `},
		{"not an array", FormatStatsBomb, `{"id": "a1"}`},
		{"wyscout object without events", FormatWyscout, `{"meta": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.format, []byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestStandardize(t *testing.T) {
	s, err := standardize.New(standardize.Config{PitchFrom: "statsbomb", PitchTo: "uefa"})
	require.NoError(t, err)

	evs, err := ParseStatsBomb([]byte(statsbombEvents))
	require.NoError(t, err)

	std := Standardize(s, evs, false)
	require.Len(t, std, len(evs))

	// center spot and penalty area corner are markings
	assert.InDelta(t, 52.5, std[0].X, 1e-9)
	assert.InDelta(t, 34.0, std[0].Y, 1e-9)
	assert.InDelta(t, 88.5, std[0].EndX, 1e-9)
	assert.InDelta(t, 54.16, std[0].EndY, 1e-9)
	assert.True(t, math.IsNaN(std[2].EndX))

	// input untouched
	assert.Equal(t, 60.0, evs[0].X)

	back := Standardize(s, std, true)
	for i := range evs {
		assert.InDelta(t, evs[i].X, back[i].X, 1e-5)
		assert.InDelta(t, evs[i].Y, back[i].Y, 1e-5)
	}
}

func TestWriteCSV(t *testing.T) {
	evs := []Event{
		{ID: "a2", Type: "Pass", X: 52.5, Y: 34, EndX: 88.5, EndY: 13.84},
		{ID: "a4", Type: "Pressure, high", X: 16.5, Y: 60, EndX: math.NaN(), EndY: math.NaN()},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, evs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,type,x,y,end_x,end_y", lines[0])
	assert.Equal(t, "a2,Pass,52.5,34,88.5,13.84", lines[1])
	assert.Equal(t, `a4,"Pressure, high",16.5,60,,`, lines[2])
}
