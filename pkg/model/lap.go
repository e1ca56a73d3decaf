package model

import "math"

// TireCompound is one of the official tire compound labels used during a
// race weekend. Labels not listed here (e.g. TEST) are still carried
// through; they just get no pace adjustment.
type TireCompound string

const (
	CompoundIntermediate TireCompound = "INTERMEDIATE"
	CompoundSoft         TireCompound = "SOFT"
	CompoundMedium       TireCompound = "MEDIUM"
	CompoundHard         TireCompound = "HARD"
	CompoundWet          TireCompound = "WET"
	// CompoundUnknown marks laps where the timing feed carried no stint info.
	CompoundUnknown TireCompound = ""
)

// Lap is one row of the session lap table: one driver, one lap.
type Lap struct {
	Driver    string // three letter driver code
	LapNumber int
	Time      float64 // lap time in seconds, NaN when not recorded
	Compound  TireCompound
	TireAge   int // laps on the current set, -1 when unknown
}

func (l Lap) HasTime() bool {
	return !math.IsNaN(l.Time)
}

// AdjustedLap is a valid racing lap normalized onto the fresh intermediate
// reference frame. All source attributes are kept for traceability.
type AdjustedLap struct {
	Driver          string
	LapNumber       int
	RawTime         float64
	AdjustedTime    float64
	Compound        TireCompound
	TireAge         int
	TotalAdjustment float64
}
