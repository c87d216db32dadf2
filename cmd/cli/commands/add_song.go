package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/model"
	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// AddSongCmd creates the addSong command
func AddSongCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addSong <rehearsal_id> <song_id>",
		Short: "Add a song plan to a rehearsal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rehearsalID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rehearsal_id must be a number: %w", err)
			}
			songID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("song_id must be a number: %w", err)
			}

			order, _ := cmd.Flags().GetInt("order")
			timeAllocated, _ := cmd.Flags().GetInt("time")
			leads, _ := cmd.Flags().GetIntSlice("leads")
			addedBy, _ := cmd.Flags().GetInt("added-by")

			plan, err := services.AddSongPlan(app.Ctx, app.Database, app.Logger, rehearsalID, model.SongPlan{
				SongID:        songID,
				Order:         order,
				TimeAllocated: timeAllocated,
				LeadSingerIDs: leads,
				AddedByID:     addedBy,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Song %d added to rehearsal %d at position %d (plan #%d)\n",
				songID, rehearsalID, plan.Order, plan.RehearsalSongID)
			return nil
		},
	}

	cmd.Flags().Int("order", 0, "Position in the performance sequence (default: after last)")
	cmd.Flags().Int("time", 0, "Minutes allocated to this song")
	cmd.Flags().IntSlice("leads", nil, "Lead singer user ids")
	cmd.Flags().Int("added-by", 0, "User id recorded as the plan's adder")

	return cmd
}
