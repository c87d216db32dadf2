package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// ViewRehearsalCmd creates the viewRehearsal command
func ViewRehearsalCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewRehearsal <rehearsal_id>",
		Short: "Show a rehearsal with its song plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rehearsal_id must be a number: %w", err)
			}

			rehearsal, res, err := services.ViewRehearsal(app.Ctx, app.Database, app.Logger, id)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s (#%d)\n", rehearsal.Title, rehearsal.ID)
			fmt.Printf("Date:     %s\n", rehearsal.Date.Format("2006-01-02 15:04"))
			fmt.Printf("Location: %s\n", rehearsal.Location)
			fmt.Printf("Duration: %d minutes\n", rehearsal.DurationMinutes)
			fmt.Printf("Lead:     %s\n", res.ResolveUserName(rehearsal.RehearsalLeadID))
			fmt.Printf("Status:   %s", rehearsal.Status)
			if rehearsal.IsPromoted {
				fmt.Printf(" (promoted)")
			}
			fmt.Printf("\n\nSongs (%d):\n", len(rehearsal.SongPlans))

			for _, sp := range rehearsal.SongPlans {
				leads := "unassigned"
				if len(sp.LeadSingerNames) > 0 {
					leads = strings.Join(sp.LeadSingerNames, ", ")
				}
				fmt.Printf("  %2d. %-30s %3d min  lead: %s\n", sp.Order, sp.SongTitle, sp.TimeAllocated, leads)
				for _, vp := range sp.VoiceParts {
					members := "unassigned"
					if len(vp.MemberNames) > 0 {
						members = strings.Join(vp.MemberNames, ", ")
					}
					fmt.Printf("      %-13s %s\n", vp.VoicePartType+":", members)
				}
			}
			fmt.Println()
			return nil
		},
	}
}
