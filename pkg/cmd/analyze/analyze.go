package analyze

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsaxena/tirepace/log"
	"github.com/rsaxena/tirepace/pkg/config"
	"github.com/rsaxena/tirepace/pkg/model"
	"github.com/rsaxena/tirepace/pkg/processing"
	"github.com/rsaxena/tirepace/pkg/report"
	"github.com/rsaxena/tirepace/pkg/utils"
)

var drivers []string

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "runs the full tire-adjusted pace analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd.Context())
		},
	}
	cmd.Flags().StringSliceVar(&drivers, "drivers",
		model.DefaultAnalysisParams().Drivers,
		"driver codes to analyze (order is kept for ties)")
	return cmd
}

func runAnalysis(ctx context.Context) error {
	logger := config.InitLogging()

	ldr, closer, err := utils.NewSessionLoader()
	if err != nil {
		return err
	}
	defer closer()

	sess, err := ldr.Load(ctx, config.Season, config.EventName, config.SessionType)
	if err != nil {
		return fmt.Errorf("loading session data: %w", err)
	}
	logger.Debug("session ready",
		log.String("event", sess.EventName),
		log.Int("laps", sess.TotalLaps()))

	params := model.DefaultAnalysisParams()
	if len(drivers) > 0 {
		params.Drivers = drivers
	}
	proc := processing.NewProcessor(processing.WithAnalysisParams(params))
	res := proc.Process(sess)

	report.NewTextReporter().WriteAnalysis(res)
	return nil
}
