package model

import "time"

// Session holds one race session as delivered by the session loader:
// event metadata plus the full lap table.
type Session struct {
	EventName   string
	Location    string
	Date        time.Time
	SessionType string
	Laps        []Lap
}

// TotalLaps is the number of rows in the lap table (all drivers combined).
func (s *Session) TotalLaps() int {
	return len(s.Laps)
}
