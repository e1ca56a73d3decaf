package trend

import (
	"github.com/rsaxena/tirepace/pkg/model"
)

// TrendProcessor turns the per-segment rankings into per-driver
// evolution sequences across the race.
type TrendProcessor struct{}

func NewTrendProcessor() *TrendProcessor {
	return &TrendProcessor{}
}

// Process visits the segments in their analyzed (chronological) order.
// Within a segment the first ranked entry is the reference; every entry
// contributes (segment, rank, gap to reference) to its driver's sequence.
// Drivers are returned in order of first appearance, which keeps the
// output deterministic across runs.
func (p *TrendProcessor) Process(results []model.SegmentResult) []model.DriverEvolution {
	byDriver := make(map[string]int)
	ret := make([]model.DriverEvolution, 0)
	for _, res := range results {
		if len(res.Ranking) == 0 {
			continue
		}
		reference := res.Ranking[0].AvgAdjustedTime
		for i, perf := range res.Ranking {
			idx, ok := byDriver[perf.Driver]
			if !ok {
				idx = len(ret)
				byDriver[perf.Driver] = idx
				ret = append(ret, model.DriverEvolution{Driver: perf.Driver})
			}
			ret[idx].Points = append(ret[idx].Points, model.EvolutionPoint{
				Segment:     res.Segment.Name,
				Position:    i + 1,
				GapToLeader: perf.AvgAdjustedTime - reference,
			})
		}
	}
	return ret
}
