package cli

import (
	"fmt"
	"log/slog"

	"github.com/NewsDesk/pkg/config"
	"github.com/NewsDesk/pkg/logging"
	"github.com/NewsDesk/pkg/newsapi"
	"github.com/spf13/cobra"
)

const (
	outputJSON   = "json"
	outputPretty = "pretty"
)

var (
	flagAPIURL    string
	flagLogLevel  string
	flagLogFormat string
	flagOutput    string

	logger *slog.Logger
	client *newsapi.Client
)

// NewRootCmd creates the root cobra command for the newsctl CLI.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:   "newsctl",
		Short: "Query and operate the news crawler backend",
		Long:  "newsctl browses crawled articles and triggers the crawler through the backend REST API.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagOutput != outputJSON && flagOutput != outputPretty {
				return fmt.Errorf("unknown output %q (want %s or %s)", flagOutput, outputJSON, outputPretty)
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat, cmd.ErrOrStderr())
			slog.SetDefault(logger)
			client = newsapi.New(newsapi.DefaultConfig(flagAPIURL), newsapi.WithHooks(newsapi.NewLogHook(logger)))
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPIURL, "api-url", cfg.APIBaseURL, "Backend base URL (or NEWS_API_URL env)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
	root.PersistentFlags().StringVarP(&flagOutput, "output", "o", outputPretty, "Output format (pretty, json)")

	root.AddCommand(
		newArticlesCmd(),
		newCategoriesCmd(),
		newSourcesCmd(),
		newCrawlCmd(),
		newCrawlerCmd(),
		newOverviewCmd(),
	)

	return root
}
