package cli

import (
	"github.com/spf13/cobra"
)

func newCrawlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crawl [source]",
		Short: "Run a crawl of every source, or of one source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				res, err := client.Crawler.CrawlSource(cmd.Context(), args[0])
				return render(cmd, res, err, printCrawlResult)
			}
			res, err := client.Crawler.StartCrawling(cmd.Context())
			return render(cmd, res, err, printCrawlResult)
		},
	}
}

func newCrawlerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawler",
		Short: "Inspect the crawler",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "stats",
			Short: "Show crawler statistics",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := client.Crawler.Stats(cmd.Context())
				return render(cmd, res, err, printStats)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show crawler status",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := client.Crawler.Status(cmd.Context())
				return render(cmd, res, err, printStatus)
			},
		},
	)
	return cmd
}
