//nolint:funlen,lll // ok for tests
package adjust

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsaxena/tirepace/pkg/model"
)

func racingLap(driver string, lapNumber int, seconds float64) model.Lap {
	return model.Lap{
		Driver:    driver,
		LapNumber: lapNumber,
		Time:      seconds,
		Compound:  model.CompoundIntermediate,
		TireAge:   0,
	}
}

func TestAdjustProcessor_Process(t *testing.T) {
	tests := []struct {
		name   string
		laps   []model.Lap
		checks func(t *testing.T, got []model.AdjustedLap)
	}{
		{
			name: "empty table yields empty result",
			laps: []model.Lap{},
			checks: func(t *testing.T, got []model.AdjustedLap) {
				assert.Empty(t, got)
			},
		},
		{
			name: "soft compound with tire age five",
			laps: []model.Lap{{
				Driver: "NOR", LapNumber: 10, Time: 95.0,
				Compound: model.CompoundSoft, TireAge: 5,
			}},
			checks: func(t *testing.T, got []model.AdjustedLap) {
				assert.Len(t, got, 1)
				// 95.0 + (-8.0) + 5*0.1
				assert.InDelta(t, 87.5, got[0].AdjustedTime, 1e-9)
				assert.InDelta(t, -7.5, got[0].TotalAdjustment, 1e-9)
				assert.Equal(t, 95.0, got[0].RawTime)
				assert.Equal(t, model.CompoundSoft, got[0].Compound)
				assert.Equal(t, 5, got[0].TireAge)
			},
		},
		{
			name: "compound without delta entry gets no adjustment",
			laps: []model.Lap{{
				Driver: "VER", LapNumber: 3, Time: 100.0,
				Compound: model.TireCompound("TEST"), TireAge: 0,
			}},
			checks: func(t *testing.T, got []model.AdjustedLap) {
				assert.Len(t, got, 1)
				assert.InDelta(t, 100.0, got[0].AdjustedTime, 1e-9)
				assert.InDelta(t, 0.0, got[0].TotalAdjustment, 1e-9)
			},
		},
		{
			name: "plausibility bounds are inclusive",
			laps: []model.Lap{
				racingLap("HAM", 1, 80.0),
				racingLap("HAM", 2, 200.0),
				racingLap("HAM", 3, 79.99),
				racingLap("HAM", 4, 200.01),
			},
			checks: func(t *testing.T, got []model.AdjustedLap) {
				assert.Len(t, got, 2)
				assert.Equal(t, 1, got[0].LapNumber)
				assert.Equal(t, 2, got[1].LapNumber)
			},
		},
		{
			name: "rows with missing data are silently skipped",
			laps: []model.Lap{
				{Driver: "HUL", LapNumber: 1, Time: math.NaN(), Compound: model.CompoundWet, TireAge: 2},
				{Driver: "HUL", LapNumber: 2, Time: 98.0, Compound: model.CompoundUnknown, TireAge: 2},
				{Driver: "HUL", LapNumber: 3, Time: 98.0, Compound: model.CompoundWet, TireAge: -1},
				{Driver: "HUL", LapNumber: 4, Time: 98.0, Compound: model.CompoundWet, TireAge: 2},
			},
			checks: func(t *testing.T, got []model.AdjustedLap) {
				assert.Len(t, got, 1)
				assert.Equal(t, 4, got[0].LapNumber)
				// 98.0 + 3.0 + 0.2
				assert.InDelta(t, 101.2, got[0].AdjustedTime, 1e-9)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAdjustProcessor()
			tt.checks(t, p.Process(tt.laps))
		})
	}
}

func TestAdjustProcessor_CustomParams(t *testing.T) {
	params := model.AdjustmentParams{
		CompoundDeltas:  map[model.TireCompound]float64{model.CompoundSoft: -1.0},
		DegradationRate: 0.5,
		MinLapTime:      10,
		MaxLapTime:      20,
	}
	p := NewAdjustProcessor(WithAdjustmentParams(params))
	got := p.Process([]model.Lap{{
		Driver: "PIA", LapNumber: 1, Time: 15.0,
		Compound: model.CompoundSoft, TireAge: 2,
	}})
	assert.Len(t, got, 1)
	assert.InDelta(t, 15.0, got[0].AdjustedTime, 1e-9)
}
