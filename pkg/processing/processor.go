package processing

import (
	"github.com/rsaxena/tirepace/pkg/model"
	"github.com/rsaxena/tirepace/pkg/processing/adjust"
	"github.com/rsaxena/tirepace/pkg/processing/overview"
	"github.com/rsaxena/tirepace/pkg/processing/segment"
	"github.com/rsaxena/tirepace/pkg/processing/trend"
)

// Processor composes the full pipeline: overview, lap adjustment,
// segment aggregation and trend summary. All stages are pure functions
// over the session table; running the same session twice yields
// identical results.
type Processor struct {
	overviewProcessor *overview.OverviewProcessor
	adjustProcessor   *adjust.AdjustProcessor
	segmentProcessor  *segment.SegmentProcessor
	trendProcessor    *trend.TrendProcessor
}

type ProcessorOption func(proc *Processor)

func WithAdjustmentParams(params model.AdjustmentParams) ProcessorOption {
	return func(proc *Processor) {
		proc.adjustProcessor = adjust.NewAdjustProcessor(
			adjust.WithAdjustmentParams(params))
	}
}

func WithAnalysisParams(params model.AnalysisParams) ProcessorOption {
	return func(proc *Processor) {
		proc.segmentProcessor = segment.NewSegmentProcessor(
			segment.WithAnalysisParams(params))
	}
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	ret := &Processor{
		overviewProcessor: overview.NewOverviewProcessor(),
		adjustProcessor:   adjust.NewAdjustProcessor(),
		segmentProcessor:  segment.NewSegmentProcessor(),
		trendProcessor:    trend.NewTrendProcessor(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Process runs one full analysis over the given session.
func (p *Processor) Process(sess *model.Session) *model.AnalysisResult {
	adjusted := p.adjustProcessor.Process(sess.Laps)
	segments := p.segmentProcessor.Process(adjusted)
	return &model.AnalysisResult{
		Overview:     p.overviewProcessor.Process(sess),
		AdjustedLaps: adjusted,
		Segments:     segments,
		Evolution:    p.trendProcessor.Process(segments),
	}
}
