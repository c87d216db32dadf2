package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ciraganenicole/choir-registry/pkg/core/services"
)

// ListTemplatesCmd creates the listTemplates command
func ListTemplatesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listTemplates",
		Short: "List rehearsal templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := services.ListTemplates(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(templates) == 0 {
				fmt.Println("No templates defined.")
				return nil
			}

			fmt.Printf("\nTemplates (%d):\n", len(templates))
			for _, tpl := range templates {
				fmt.Printf("  %3d. %-30s %-25s %3d min", tpl.ID, tpl.Title, tpl.Type, tpl.DurationMinutes)
				if tpl.Recurrence != "" {
					fmt.Printf("  [%s]", tpl.Recurrence)
				}
				if len(tpl.Tags) > 0 {
					fmt.Printf("  (%s)", strings.Join(tpl.Tags, ", "))
				}
				fmt.Println()
			}
			fmt.Println()
			return nil
		},
	}
}
