package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// DeleteSongCmd creates the deleteSong command
func DeleteSongCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deleteSong <rehearsal_id> <rehearsal_song_id>",
		Short: "Remove a song plan from a rehearsal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rehearsalID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rehearsal_id must be a number: %w", err)
			}
			rehearsalSongID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rehearsal_song_id must be a number: %w", err)
			}
			callerID, _ := cmd.Flags().GetInt("as-user")

			caller, err := lookupUser(app, callerID)
			if err != nil {
				return err
			}

			err = services.DeleteSongPlan(app.Ctx, app.Database, app.Logger, caller, rehearsalID, rehearsalSongID)
			if err != nil {
				var permission *services.PermissionError
				if errors.As(err, &permission) {
					fmt.Printf("✗ %s: only the plan's adder, the rehearsal lead, or an admin may delete it\n", permission.Error())
					return nil
				}
				return err
			}

			fmt.Printf("✓ Song plan %d removed from rehearsal %d\n", rehearsalSongID, rehearsalID)
			return nil
		},
	}

	cmd.Flags().Int("as-user", 0, "User id performing the delete")
	cmd.MarkFlagRequired("as-user")

	return cmd
}

func lookupUser(app *AppContext, id int) (model.User, error) {
	users, err := app.Database.GetUsers(app.Ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to fetch user directory: %w", err)
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("user %d not found", id)
}
