package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// DeleteRehearsalCmd creates the deleteRehearsal command
func DeleteRehearsalCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteRehearsal <rehearsal_id>",
		Short: "Delete a rehearsal and its song plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rehearsal_id must be a number: %w", err)
			}

			if err := services.DeleteRehearsal(app.Ctx, app.Database, app.Logger, id); err != nil {
				return err
			}

			fmt.Printf("✓ Rehearsal %d deleted\n", id)
			return nil
		},
	}
}
