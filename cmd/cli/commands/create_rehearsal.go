package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// CreateRehearsalCmd creates the createRehearsal command
func CreateRehearsalCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createRehearsal",
		Short: "Create a new rehearsal",
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			dateStr, _ := cmd.Flags().GetString("date")
			location, _ := cmd.Flags().GetString("location")
			duration, _ := cmd.Flags().GetInt("duration")
			leadID, _ := cmd.Flags().GetInt("lead")
			performanceID, _ := cmd.Flags().GetInt("performance")
			shiftLeadID, _ := cmd.Flags().GetInt("shift-lead")
			rehearsalType, _ := cmd.Flags().GetString("type")

			date, err := time.Parse("2006-01-02 15:04", dateStr)
			if err != nil {
				return fmt.Errorf("date must be in YYYY-MM-DD HH:MM format: %w", err)
			}

			if location == "" {
				location = app.Cfg.DefaultLocation
			}
			if duration == 0 && app.Cfg.DefaultDurationMinutes > 0 {
				duration = app.Cfg.DefaultDurationMinutes
			}

			draft := &model.Rehearsal{
				Title:           title,
				Date:            date,
				Location:        location,
				DurationMinutes: duration,
				Type:            model.RehearsalType(rehearsalType),
				PerformanceID:   performanceID,
				RehearsalLeadID: leadID,
				ShiftLeadID:     shiftLeadID,
			}

			shift, err := app.Database.GetActiveShift(app.Ctx, date)
			if err != nil {
				return err
			}

			created, err := services.CreateRehearsal(
				app.Ctx, app.Database, app.Database, app.Logger,
				draft, services.ShiftContext{Shift: shift}, services.ValidateOptions{})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Rehearsal created!\n\n")
			fmt.Printf("ID:       %d\n", created.ID)
			fmt.Printf("Title:    %s\n", created.Title)
			fmt.Printf("Date:     %s\n", created.Date.Format("2006-01-02 15:04"))
			fmt.Printf("Duration: %d minutes\n", created.DurationMinutes)
			fmt.Printf("Status:   %s\n\n", created.Status)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Rehearsal title")
	cmd.Flags().String("date", "", "Date and time (YYYY-MM-DD HH:MM)")
	cmd.Flags().String("location", "", "Location (defaults to config)")
	cmd.Flags().Int("duration", 0, "Duration in minutes (defaults to config)")
	cmd.Flags().Int("lead", 0, "Rehearsal lead user id")
	cmd.Flags().Int("performance", 0, "Linked performance id")
	cmd.Flags().Int("shift-lead", 0, "Duty supervisor user id")
	cmd.Flags().String("type", string(model.TypeGeneralPractice), "Rehearsal type")
	cmd.MarkFlagRequired("date")

	return cmd
}
