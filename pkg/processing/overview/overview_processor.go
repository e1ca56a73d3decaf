package overview

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rsaxena/tirepace/pkg/model"
)

// OverviewProcessor derives the race overview: session metadata plus the
// compound usage histogram.
type OverviewProcessor struct{}

func NewOverviewProcessor() *OverviewProcessor {
	return &OverviewProcessor{}
}

var hundred = decimal.NewFromInt(100)

// Process counts laps per known compound. Rows without compound data are
// excluded from the histogram but still count towards the percentage
// base, matching the session totals reported alongside.
func (p *OverviewProcessor) Process(sess *model.Session) model.RaceOverview {
	counts := make(map[model.TireCompound]int)
	for i := range sess.Laps {
		if c := sess.Laps[i].Compound; c != model.CompoundUnknown {
			counts[c]++
		}
	}
	total := int64(sess.TotalLaps())
	usage := make([]model.CompoundUsage, 0, len(counts))
	for compound, laps := range counts {
		pct, _ := decimal.NewFromInt(int64(laps)).
			Mul(hundred).
			Div(decimal.NewFromInt(total)).
			Round(1).
			Float64()
		usage = append(usage, model.CompoundUsage{
			Compound:   compound,
			Laps:       laps,
			Percentage: pct,
		})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Laps != usage[j].Laps {
			return usage[i].Laps > usage[j].Laps
		}
		return usage[i].Compound < usage[j].Compound
	})
	return model.RaceOverview{
		EventName:     sess.EventName,
		Location:      sess.Location,
		Date:          sess.Date,
		TotalLaps:     sess.TotalLaps(),
		CompoundUsage: usage,
	}
}
