//nolint:funlen // ok for tests
package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsaxena/tirepace/pkg/model"
)

func segResult(name string, entries ...model.SegmentPerformance) model.SegmentResult {
	return model.SegmentResult{
		Segment: model.Segment{Name: name},
		Ranking: entries,
	}
}

func perf(driver string, mean float64) model.SegmentPerformance {
	return model.SegmentPerformance{Driver: driver, AvgAdjustedTime: mean}
}

func TestTrendProcessor_Process(t *testing.T) {
	p := NewTrendProcessor()

	results := []model.SegmentResult{
		segResult("A", perf("VER", 98.0), perf("NOR", 98.4), perf("HAM", 99.1)),
		segResult("B", perf("NOR", 101.0), perf("HAM", 101.3)),
		segResult("C", perf("VER", 95.0), perf("HAM", 95.2)),
	}
	got := p.Process(results)

	byDriver := make(map[string]model.DriverEvolution)
	for _, evo := range got {
		byDriver[evo.Driver] = evo
	}

	// leader always carries a zero self gap
	assert.Equal(t, 1, byDriver["VER"].Points[0].Position)
	assert.Equal(t, 0.0, byDriver["VER"].Points[0].GapToLeader)

	// gaps are relative to the segment reference
	assert.InDelta(t, 0.4, byDriver["NOR"].Points[0].GapToLeader, 1e-9)
	assert.InDelta(t, 1.1, byDriver["HAM"].Points[0].GapToLeader, 1e-9)

	// VER skipped segment B: two entries in chronological order
	ver := byDriver["VER"]
	assert.Len(t, ver.Points, 2)
	assert.Equal(t, "A", ver.Points[0].Segment)
	assert.Equal(t, "C", ver.Points[1].Segment)

	// HAM qualified everywhere
	ham := byDriver["HAM"]
	assert.Len(t, ham.Points, 3)
	assert.Equal(t, []int{3, 2, 2},
		[]int{ham.Points[0].Position, ham.Points[1].Position, ham.Points[2].Position})
}

func TestTrendProcessor_EmptySegments(t *testing.T) {
	p := NewTrendProcessor()
	got := p.Process([]model.SegmentResult{
		segResult("A"),
		segResult("B"),
	})
	assert.Empty(t, got)
}

func TestDriverEvolution_AverageRank(t *testing.T) {
	evo := model.DriverEvolution{
		Driver: "NOR",
		Points: []model.EvolutionPoint{
			{Segment: "A", Position: 2},
			{Segment: "B", Position: 1},
		},
	}
	avg, ok := evo.AverageRank()
	assert.True(t, ok)
	assert.InDelta(t, 1.5, avg, 1e-9)

	_, ok = model.DriverEvolution{Driver: "SAI"}.AverageRank()
	assert.False(t, ok)
}
