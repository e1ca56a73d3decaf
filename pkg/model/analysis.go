package model

import "time"

// SegmentPerformance aggregates one driver's adjusted laps within one
// race segment. Consistency is the sample standard deviation and is NaN
// when only a single lap qualified.
type SegmentPerformance struct {
	Driver          string
	AvgAdjustedTime float64
	LapCount        int
	Consistency     float64
	BestLap         float64
}

// SegmentResult is the ranked outcome of one segment, fastest normalized
// pace first. An empty ranking means no driver had enough laps.
type SegmentResult struct {
	Segment Segment
	Ranking []SegmentPerformance
}

// EvolutionPoint records where a driver ranked in one segment and how far
// the driver was from that segment's fastest qualifier.
type EvolutionPoint struct {
	Segment     string
	Position    int
	GapToLeader float64
}

// DriverEvolution is the chronological sequence of a driver's segment
// results; segments the driver did not qualify in are simply absent.
type DriverEvolution struct {
	Driver string
	Points []EvolutionPoint
}

// AverageRank returns the arithmetic mean of the recorded positions.
// ok is false when the driver never qualified in any segment.
func (d DriverEvolution) AverageRank() (avg float64, ok bool) {
	if len(d.Points) == 0 {
		return 0, false
	}
	sum := 0
	for _, p := range d.Points {
		sum += p.Position
	}
	return float64(sum) / float64(len(d.Points)), true
}

// CompoundUsage is one bar of the compound histogram. Percentage is
// relative to all lap rows (including rows without compound data) and
// rounded to one decimal.
type CompoundUsage struct {
	Compound   TireCompound
	Laps       int
	Percentage float64
}

// RaceOverview bundles the session metadata with the compound histogram.
type RaceOverview struct {
	EventName     string
	Location      string
	Date          time.Time
	TotalLaps     int
	CompoundUsage []CompoundUsage
}

// AnalysisResult bundles the four artifacts produced by one pipeline run.
type AnalysisResult struct {
	Overview     RaceOverview
	AdjustedLaps []AdjustedLap
	Segments     []SegmentResult
	Evolution    []DriverEvolution
}
