package cli

import (
	"fmt"
	"strings"

	"github.com/NewsDesk/internal/app"
	"github.com/spf13/cobra"
)

func newOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show categories, sources and crawler health at a glance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.NewDeskService(client).Overview(cmd.Context())
			if err != nil {
				return fmt.Errorf("load overview: %w", err)
			}

			out := cmd.OutOrStdout()
			if flagOutput == outputJSON {
				return writeJSON(out, map[string]any{
					"categories": overview.Categories,
					"sources":    overview.Sources,
					"stats":      overview.Stats,
					"status":     overview.Status,
				})
			}

			printStatus(out, overview.Status)
			fmt.Fprintln(out, overview.Stats.Stats)
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Categories:"), strings.Join(overview.Categories, ", "))
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Sources:"), strings.Join(overview.Sources, ", "))
			return nil
		},
	}
}
