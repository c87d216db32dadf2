package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// SetStatusCmd creates the setStatus command
func SetStatusCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setStatus <rehearsal_id> <status>",
		Short: "Set a rehearsal's lifecycle status",
		Long: `Set a rehearsal's lifecycle status. Valid statuses: Planning,
"In Progress", Completed, Cancelled. Any status may follow any other;
a promoted rehearsal stays promoted regardless of status changes.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rehearsal_id must be a number: %w", err)
			}

			status := model.Status(args[1])
			if err := services.UpdateRehearsalStatus(app.Ctx, app.Database, app.Logger, id, status); err != nil {
				return err
			}

			fmt.Printf("✓ Rehearsal %d is now %s\n", id, status)
			return nil
		},
	}
}
