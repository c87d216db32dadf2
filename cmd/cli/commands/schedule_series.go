package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// ScheduleSeriesCmd creates the scheduleSeries command
func ScheduleSeriesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduleSeries",
		Short: "Create draft rehearsals for every series configured in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromStr, _ := cmd.Flags().GetString("from")
			count, _ := cmd.Flags().GetInt("count")
			location, _ := cmd.Flags().GetString("location")
			leadID, _ := cmd.Flags().GetInt("lead")
			performanceID, _ := cmd.Flags().GetInt("performance")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			from, err := time.Parse("2006-01-02 15:04", fromStr)
			if err != nil {
				return fmt.Errorf("from must be in YYYY-MM-DD HH:MM format: %w", err)
			}

			if len(app.Cfg.RehearsalSeries) == 0 {
				fmt.Println("No rehearsal series configured.")
				return nil
			}

			drafts, err := services.ScheduleSeries(
				app.Ctx, app.Database, app.Logger, app.Cfg.RehearsalSeries, from, count)
			if err != nil {
				return err
			}

			if location == "" {
				location = app.Cfg.DefaultLocation
			}

			if dryRun {
				fmt.Printf("\nPlanned drafts (%d), not saved:\n", len(drafts))
				for i, draft := range drafts {
					fmt.Printf("  %2d. %s — %s\n", i+1, draft.Date.Format("2006-01-02 15:04"), draft.Title)
				}
				fmt.Println()
				return nil
			}

			for _, draft := range drafts {
				draft.Location = location
				draft.RehearsalLeadID = leadID
				draft.PerformanceID = performanceID

				shift, err := app.Database.GetActiveShift(app.Ctx, draft.Date)
				if err != nil {
					return err
				}
				created, err := services.CreateRehearsal(
					app.Ctx, app.Database, app.Database, app.Logger,
					draft, services.ShiftContext{Shift: shift}, services.ValidateOptions{})
				if err != nil {
					return err
				}
				fmt.Printf("✓ Created rehearsal %d on %s\n", created.ID, created.Date.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().String("from", "", "First occurrence (YYYY-MM-DD HH:MM)")
	cmd.Flags().Int("count", 1, "Drafts per series without an explicit count")
	cmd.Flags().String("location", "", "Location (defaults to config)")
	cmd.Flags().Int("lead", 0, "Rehearsal lead user id")
	cmd.Flags().Int("performance", 0, "Linked performance id")
	cmd.Flags().Bool("dry-run", false, "Print planned drafts without saving")
	cmd.MarkFlagRequired("from")

	return cmd
}
