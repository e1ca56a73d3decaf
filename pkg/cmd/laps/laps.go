package laps

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/rsaxena/tirepace/pkg/config"
	"github.com/rsaxena/tirepace/pkg/model"
	"github.com/rsaxena/tirepace/pkg/processing/adjust"
	"github.com/rsaxena/tirepace/pkg/report"
	"github.com/rsaxena/tirepace/pkg/utils"
)

var drivers []string

func NewLapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laps",
		Short: "dumps the adjusted lap table for ad-hoc analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaps(cmd.Context())
		},
	}
	cmd.Flags().StringSliceVar(&drivers, "drivers", nil,
		"restrict output to these driver codes")
	return cmd
}

func runLaps(ctx context.Context) error {
	config.InitLogging()

	ldr, closer, err := utils.NewSessionLoader()
	if err != nil {
		return err
	}
	defer closer()

	sess, err := ldr.Load(ctx, config.Season, config.EventName, config.SessionType)
	if err != nil {
		return fmt.Errorf("loading session data: %w", err)
	}
	adjusted := adjust.NewAdjustProcessor().Process(sess.Laps)
	if len(drivers) > 0 {
		adjusted = lo.Filter(adjusted, func(l model.AdjustedLap, _ int) bool {
			return lo.Contains(drivers, l.Driver)
		})
	}
	report.NewTextReporter().WriteAdjustedLaps(adjusted)
	return nil
}
