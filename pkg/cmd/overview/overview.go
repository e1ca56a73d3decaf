package overview

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsaxena/tirepace/pkg/config"
	"github.com/rsaxena/tirepace/pkg/processing/overview"
	"github.com/rsaxena/tirepace/pkg/report"
	"github.com/rsaxena/tirepace/pkg/utils"
)

func NewOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "shows the race overview and tire compound usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverview(cmd.Context())
		},
	}
}

func runOverview(ctx context.Context) error {
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
	ov := overview.NewOverviewProcessor().Process(sess)
	report.NewTextReporter().WriteOverview(ov)
	return nil
}
