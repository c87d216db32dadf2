package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// PromoteRehearsalCmd creates the promoteRehearsal command
func PromoteRehearsalCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "promoteRehearsal <rehearsal_id>",
		Short: "Promote a completed rehearsal into a performance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rehearsal_id must be a number: %w", err)
			}

			performance, err := services.PromoteRehearsal(app.Ctx, app.Database, app.Logger, id)
			if err != nil {
				var eligibility *services.EligibilityError
				if errors.As(err, &eligibility) {
					fmt.Printf("✗ %s\n", eligibility.Reason)
					return nil
				}
				return err
			}

			fmt.Printf("\n✓ Rehearsal %d promoted!\n\n", id)
			fmt.Printf("Performance ID: %d\n", performance.ID)
			fmt.Printf("Date:           %s\n\n", performance.Date.Format("2006-01-02 15:04"))
			return nil
		},
	}
}
