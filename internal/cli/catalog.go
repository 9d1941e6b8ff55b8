package cli

import (
	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List article categories, optionally for one source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("source") {
				res, err := client.Articles.CategoriesBySource(cmd.Context(), source)
				return render(cmd, res, err, printList("Categories of "+source))
			}
			res, err := client.Articles.Categories(cmd.Context())
			return render(cmd, res, err, printList("Categories"))
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "Only categories published by this source")
	return cmd
}

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List article sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.Articles.Sources(cmd.Context())
			return render(cmd, res, err, printList("Sources"))
		},
	}
}
