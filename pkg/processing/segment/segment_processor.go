package segment

import (
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/rsaxena/tirepace/log"
	"github.com/rsaxena/tirepace/pkg/model"
)

type SegmentProcessor struct {
	params model.AnalysisParams
	l      *log.Logger
}

type SegmentProcessorOption func(sp *SegmentProcessor)

func WithAnalysisParams(params model.AnalysisParams) SegmentProcessorOption {
	return func(sp *SegmentProcessor) {
		sp.params = params
	}
}

func WithLogger(arg *log.Logger) SegmentProcessorOption {
	return func(sp *SegmentProcessor) {
		sp.l = arg
	}
}

func NewSegmentProcessor(opts ...SegmentProcessorOption) *SegmentProcessor {
	ret := &SegmentProcessor{
		params: model.DefaultAnalysisParams(),
		l:      log.Default().Named("processing.segment"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Process ranks the tracked drivers within each configured segment by
// mean adjusted time. Drivers below the minimum lap count are omitted
// from that segment; a segment may end up with an empty ranking.
func (p *SegmentProcessor) Process(laps []model.AdjustedLap) []model.SegmentResult {
	ret := make([]model.SegmentResult, 0, len(p.params.Segments))
	for _, seg := range p.params.Segments {
		ranking := make([]model.SegmentPerformance, 0, len(p.params.Drivers))
		for _, driver := range p.params.Drivers {
			driverLaps := lo.Filter(laps, func(l model.AdjustedLap, _ int) bool {
				return l.Driver == driver && seg.Contains(l.LapNumber)
			})
			if len(driverLaps) == 0 || len(driverLaps) < p.params.MinLaps {
				continue
			}
			ranking = append(ranking, p.aggregate(driver, driverLaps))
		}
		// stable: equal means keep the configured driver order
		sort.SliceStable(ranking, func(i, j int) bool {
			return ranking[i].AvgAdjustedTime < ranking[j].AvgAdjustedTime
		})
		p.l.Debug("segment aggregated",
			log.String("segment", seg.Name),
			log.Int("qualified", len(ranking)))
		ret = append(ret, model.SegmentResult{Segment: seg, Ranking: ranking})
	}
	return ret
}

func (p *SegmentProcessor) aggregate(
	driver string,
	laps []model.AdjustedLap,
) model.SegmentPerformance {
	times := lo.Map(laps, func(l model.AdjustedLap, _ int) float64 {
		return l.AdjustedTime
	})
	best := times[0]
	for _, t := range times[1:] {
		if t < best {
			best = t
		}
	}
	return model.SegmentPerformance{
		Driver:          driver,
		AvgAdjustedTime: stat.Mean(times, nil),
		LapCount:        len(times),
		// sample std dev; NaN with a single lap, kept as is
		Consistency: stat.StdDev(times, nil),
		BestLap:     best,
	}
}
