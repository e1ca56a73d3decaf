package adjust

import (
	"github.com/samber/lo"

	"github.com/rsaxena/tirepace/log"
	"github.com/rsaxena/tirepace/pkg/model"
)

type AdjustProcessor struct {
	params model.AdjustmentParams
	l      *log.Logger
}

type AdjustProcessorOption func(ap *AdjustProcessor)

func WithAdjustmentParams(params model.AdjustmentParams) AdjustProcessorOption {
	return func(ap *AdjustProcessor) {
		ap.params = params
	}
}

func WithLogger(arg *log.Logger) AdjustProcessorOption {
	return func(ap *AdjustProcessor) {
		ap.l = arg
	}
}

func NewAdjustProcessor(opts ...AdjustProcessorOption) *AdjustProcessor {
	ret := &AdjustProcessor{
		params: model.DefaultAdjustmentParams(),
		l:      log.Default().Named("processing.adjust"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Process converts the raw lap table into adjusted laps on the fresh
// intermediate reference frame. Rows with missing data or implausible
// times are dropped without error; an empty table yields an empty result.
func (p *AdjustProcessor) Process(laps []model.Lap) []model.AdjustedLap {
	valid := lo.Filter(laps, func(l model.Lap, _ int) bool {
		return p.isRacingLap(l)
	})
	ret := make([]model.AdjustedLap, 0, len(valid))
	for i := range valid {
		ret = append(ret, p.adjust(valid[i]))
	}
	if skipped := len(laps) - len(valid); skipped > 0 {
		p.l.Debug("dropped invalid laps",
			log.Int("skipped", skipped),
			log.Int("kept", len(valid)))
	}
	return ret
}

func (p *AdjustProcessor) isRacingLap(l model.Lap) bool {
	if !l.HasTime() || l.Compound == model.CompoundUnknown || l.TireAge < 0 {
		return false
	}
	return l.Time >= p.params.MinLapTime && l.Time <= p.params.MaxLapTime
}

func (p *AdjustProcessor) adjust(l model.Lap) model.AdjustedLap {
	// zero value covers compounds without a delta entry
	compoundDelta := p.params.CompoundDeltas[l.Compound]
	agePenalty := float64(l.TireAge) * p.params.DegradationRate
	total := compoundDelta + agePenalty
	return model.AdjustedLap{
		Driver:          l.Driver,
		LapNumber:       l.LapNumber,
		RawTime:         l.Time,
		AdjustedTime:    l.Time + total,
		Compound:        l.Compound,
		TireAge:         l.TireAge,
		TotalAdjustment: total,
	}
}
