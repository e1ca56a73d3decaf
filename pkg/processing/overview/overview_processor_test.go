package overview

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/rsaxena/tirepace/pkg/model"
)

func sampleSession() *model.Session {
	laps := []model.Lap{
		{Driver: "NOR", LapNumber: 1, Compound: model.CompoundIntermediate},
		{Driver: "NOR", LapNumber: 2, Compound: model.CompoundIntermediate},
		{Driver: "VER", LapNumber: 1, Compound: model.CompoundWet},
		// no stint data for this row
		{Driver: "HAM", LapNumber: 1, Compound: model.CompoundUnknown},
	}
	return &model.Session{
		EventName:   "British Grand Prix",
		Location:    "Silverstone",
		Date:        time.Date(2025, 7, 6, 14, 0, 0, 0, time.UTC),
		SessionType: "Race",
		Laps:        laps,
	}
}

func TestOverviewProcessor_Process(t *testing.T) {
	got := NewOverviewProcessor().Process(sampleSession())

	assert.Equal(t, "British Grand Prix", got.EventName)
	assert.Equal(t, 4, got.TotalLaps)

	// unknown compound rows stay out of the histogram but count in the base
	assert.DeepEqual(t, []model.CompoundUsage{
		{Compound: model.CompoundIntermediate, Laps: 2, Percentage: 50.0},
		{Compound: model.CompoundWet, Laps: 1, Percentage: 25.0},
	}, got.CompoundUsage)
}

func TestOverviewProcessor_Rounding(t *testing.T) {
	sess := &model.Session{
		Laps: []model.Lap{
			{Compound: model.CompoundSoft},
			{Compound: model.CompoundMedium},
			{Compound: model.CompoundMedium},
		},
	}
	got := NewOverviewProcessor().Process(sess)
	assert.Equal(t, 2, len(got.CompoundUsage))
	assert.Equal(t, 66.7, got.CompoundUsage[0].Percentage)
	assert.Equal(t, 33.3, got.CompoundUsage[1].Percentage)
}

func TestOverviewProcessor_EmptySession(t *testing.T) {
	got := NewOverviewProcessor().Process(&model.Session{})
	assert.Equal(t, 0, got.TotalLaps)
	assert.Equal(t, 0, len(got.CompoundUsage))
}
