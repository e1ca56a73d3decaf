package model

// AdjustmentParams holds the normalization heuristics. They are plain
// data so tests can substitute their own values.
type AdjustmentParams struct {
	// CompoundDeltas maps a compound onto its pace delta in seconds
	// relative to the fresh intermediate baseline. Compounds without an
	// entry get no adjustment.
	CompoundDeltas map[TireCompound]float64
	// DegradationRate is the cumulative wear penalty in seconds per lap
	// of tire age, independent of compound.
	DegradationRate float64
	// MinLapTime/MaxLapTime bound plausible racing laps (inclusive).
	// Laps outside are pit stops, neutralizations or corrupt samples.
	MinLapTime float64
	MaxLapTime float64
}

func DefaultAdjustmentParams() AdjustmentParams {
	return AdjustmentParams{
		CompoundDeltas: map[TireCompound]float64{
			CompoundIntermediate: 0.0,
			CompoundSoft:         -8.0,
			CompoundMedium:       -6.0,
			CompoundHard:         -4.0,
			CompoundWet:          3.0,
		},
		DegradationRate: 0.1,
		MinLapTime:      80,
		MaxLapTime:      200,
	}
}

// Segment is a fixed contiguous span of lap numbers treated as one
// analysis window. Bounds are inclusive.
type Segment struct {
	Name        string
	Description string
	FromLap     int
	ToLap       int
}

func (s Segment) Contains(lapNumber int) bool {
	return lapNumber >= s.FromLap && lapNumber <= s.ToLap
}

// AnalysisParams configures the segment aggregation. Driver order is
// significant: it is the iteration order and the tiebreak on equal pace.
type AnalysisParams struct {
	// MinLaps is the minimum number of adjusted laps a driver needs
	// within a segment to show up in its ranking.
	MinLaps  int
	Segments []Segment
	Drivers  []string
}

func DefaultSegments() []Segment {
	return []Segment{
		{
			Name:        "Early Wet Chaos",
			Description: "Formation lap tire decisions, standing water",
			FromLap:     1,
			ToLap:       15,
		},
		{
			Name:        "Heavy Rain Period",
			Description: "Safety car periods, maximum spray conditions",
			FromLap:     16,
			ToLap:       34,
		},
		{
			Name:        "Drying Phase",
			Description: "Track evolution, strategic tire transitions",
			FromLap:     35,
			ToLap:       49,
		},
	}
}

func DefaultAnalysisParams() AnalysisParams {
	return AnalysisParams{
		MinLaps:  3,
		Segments: DefaultSegments(),
		Drivers:  []string{"NOR", "PIA", "VER", "HAM", "HUL", "STR"},
	}
}
