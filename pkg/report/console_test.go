package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/rsaxena/tirepace/pkg/model"
)

func TestTextReporter_WriteOverview(t *testing.T) {
	var buf bytes.Buffer
	NewTextReporter(WithOutput(&buf)).WriteOverview(model.RaceOverview{
		EventName: "British Grand Prix",
		Location:  "Silverstone",
		Date:      time.Date(2025, 7, 6, 14, 0, 0, 0, time.UTC),
		TotalLaps: 1048,
		CompoundUsage: []model.CompoundUsage{
			{Compound: model.CompoundIntermediate, Laps: 600, Percentage: 57.3},
			{Compound: model.CompoundMedium, Laps: 448, Percentage: 42.7},
		},
	})

	want := `F1 Tire-Adjusted Pace Analysis
Event: British Grand Prix
Date: July 06, 2025
Total laps analyzed: 1048

Tire Compound Usage:
  INTERMEDIATE: 600 laps (57.3%)
  MEDIUM: 448 laps (42.7%)

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("overview output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextReporter_WriteSegments(t *testing.T) {
	var buf bytes.Buffer
	NewTextReporter(WithOutput(&buf)).WriteSegments([]model.SegmentResult{
		{
			Segment: model.Segment{Name: "Early Wet Chaos"},
			Ranking: []model.SegmentPerformance{
				{Driver: "NOR", AvgAdjustedTime: 98.00, LapCount: 12},
				// below the display threshold: still the reference
				{Driver: "PIA", AvgAdjustedTime: 98.04, LapCount: 11},
				{Driver: "VER", AvgAdjustedTime: 98.06, LapCount: 10},
			},
		},
		{
			Segment: model.Segment{Name: "Heavy Rain Period"},
		},
	})

	want := `Segment Analysis Results:

Early Wet Chaos:
  1. NOR: REF (12 laps)
  2. PIA: REF (11 laps)
  3. VER: +0.06s (10 laps)

Heavy Rain Period:

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("segment output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextReporter_WriteEvolution(t *testing.T) {
	var buf bytes.Buffer
	NewTextReporter(WithOutput(&buf)).WriteEvolution([]model.DriverEvolution{
		{Driver: "NOR", Points: []model.EvolutionPoint{
			{Segment: "A", Position: 1}, {Segment: "B", Position: 2},
		}},
		// never qualified: not listed
		{Driver: "STR"},
	})

	assert.Equal(t, "Performance Evolution:\n  NOR: Average P1.5\n", buf.String())
}

func TestTextReporter_WriteAdjustedLaps(t *testing.T) {
	var buf bytes.Buffer
	NewTextReporter(WithOutput(&buf)).WriteAdjustedLaps([]model.AdjustedLap{
		{
			Driver: "HAM", LapNumber: 12, RawTime: 95.123, AdjustedTime: 87.623,
			Compound: model.CompoundSoft, TireAge: 5, TotalAdjustment: -7.5,
		},
	})
	out := buf.String()
	assert.Contains(t, out, "HAM")
	assert.Contains(t, out, "95.123")
	assert.Contains(t, out, "87.623")
	assert.Contains(t, out, "-7.50")
}
