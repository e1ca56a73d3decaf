// Package report renders the analysis artifacts as indented console text.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/rsaxena/tirepace/pkg/model"
)

// DefaultRefThreshold is the display threshold below which a gap is
// shown as the reference instead of "+0.00s".
const DefaultRefThreshold = 0.05

type TextReporter struct {
	out          io.Writer
	refThreshold float64
}

type TextReporterOption func(tr *TextReporter)

func WithOutput(w io.Writer) TextReporterOption {
	return func(tr *TextReporter) {
		tr.out = w
	}
}

func WithRefThreshold(arg float64) TextReporterOption {
	return func(tr *TextReporter) {
		tr.refThreshold = arg
	}
}

func NewTextReporter(opts ...TextReporterOption) *TextReporter {
	ret := &TextReporter{
		out:          os.Stdout,
		refThreshold: DefaultRefThreshold,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WriteAnalysis renders the overview, the segment rankings and the
// evolution summary of one pipeline run.
func (tr *TextReporter) WriteAnalysis(res *model.AnalysisResult) {
	tr.WriteOverview(res.Overview)
	tr.WriteSegments(res.Segments)
	tr.WriteEvolution(res.Evolution)
}

func (tr *TextReporter) WriteOverview(ov model.RaceOverview) {
	fmt.Fprintf(tr.out, "F1 Tire-Adjusted Pace Analysis\n")
	fmt.Fprintf(tr.out, "Event: %s\n", ov.EventName)
	fmt.Fprintf(tr.out, "Date: %s\n", ov.Date.Format("January 02, 2006"))
	fmt.Fprintf(tr.out, "Total laps analyzed: %d\n\n", ov.TotalLaps)

	fmt.Fprintf(tr.out, "Tire Compound Usage:\n")
	for _, usage := range ov.CompoundUsage {
		fmt.Fprintf(tr.out, "  %s: %d laps (%.1f%%)\n",
			usage.Compound, usage.Laps, usage.Percentage)
	}
	fmt.Fprintln(tr.out)
}

func (tr *TextReporter) WriteSegments(results []model.SegmentResult) {
	fmt.Fprintf(tr.out, "Segment Analysis Results:\n")
	for _, res := range results {
		fmt.Fprintf(tr.out, "\n%s:\n", res.Segment.Name)
		if len(res.Ranking) == 0 {
			continue
		}
		reference := res.Ranking[0].AvgAdjustedTime
		for i, perf := range res.Ranking {
			fmt.Fprintf(tr.out, "  %d. %s: %s (%d laps)\n",
				i+1, perf.Driver,
				tr.gap(perf.AvgAdjustedTime-reference),
				perf.LapCount)
		}
	}
	fmt.Fprintln(tr.out)
}

func (tr *TextReporter) WriteEvolution(evolution []model.DriverEvolution) {
	fmt.Fprintf(tr.out, "Performance Evolution:\n")
	for _, evo := range evolution {
		avg, ok := evo.AverageRank()
		if !ok {
			continue
		}
		fmt.Fprintf(tr.out, "  %s: Average P%.1f\n", evo.Driver, avg)
	}
}

// WriteAdjustedLaps dumps the adjusted lap table for ad-hoc follow up.
func (tr *TextReporter) WriteAdjustedLaps(laps []model.AdjustedLap) {
	fmt.Fprintf(tr.out, "%-6s %4s %9s %9s %-13s %4s %8s\n",
		"Driver", "Lap", "Raw", "Adjusted", "Compound", "Age", "Adj")
	for _, l := range laps {
		fmt.Fprintf(tr.out, "%-6s %4d %9.3f %9.3f %-13s %4d %+8.2f\n",
			l.Driver, l.LapNumber, l.RawTime, l.AdjustedTime,
			l.Compound, l.TireAge, l.TotalAdjustment)
	}
}

func (tr *TextReporter) gap(gap float64) string {
	if gap < tr.refThreshold {
		return "REF"
	}
	return fmt.Sprintf("+%.2fs", gap)
}
