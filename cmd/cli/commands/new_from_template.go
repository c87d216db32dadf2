package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// NewFromTemplateCmd creates the newFromTemplate command
func NewFromTemplateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newFromTemplate <template_id>",
		Short: "Create draft rehearsals from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("template_id must be a number: %w", err)
			}

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

			templates, err := services.ListTemplates(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}
			idx := -1
			for i := range templates {
				if templates[i].ID == templateID {
					idx = i
					break
				}
			}
			if idx < 0 {
				return fmt.Errorf("template %d not found", templateID)
			}

			drafts, err := services.ScheduleFromTemplate(app.Logger, &templates[idx], from, count)
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
	cmd.Flags().Int("count", 1, "Number of drafts to generate")
	cmd.Flags().String("location", "", "Location (defaults to config)")
	cmd.Flags().Int("lead", 0, "Rehearsal lead user id")
	cmd.Flags().Int("performance", 0, "Linked performance id")
	cmd.Flags().Bool("dry-run", false, "Print planned drafts without saving")
	cmd.MarkFlagRequired("from")

	return cmd
}
