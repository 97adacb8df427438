package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kagiso-dev/flyer-deals/internal/config"
	"github.com/kagiso-dev/flyer-deals/internal/flyer"
)

// refreshCmd fetches the full catalog once and reports what the feed
// currently holds. Useful for checking connectivity before serving.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the flyer catalog once and report its size",
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})

	fc := flyer.NewHTTPClient(cfg.Catalog.BaseURL,
		flyer.WithHTTPClient(&http.Client{Timeout: cfg.Catalog.FetchTimeout}),
		flyer.WithRateLimit(cfg.Catalog.RateLimit.PerSecond, cfg.Catalog.RateLimit.Burst),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout)
	defer cancel()

	deals, err := fc.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetching catalog: %w", err)
	}

	logger.Info("catalog fetched", "deals", len(deals))

	stores := map[string]int{}
	for i := range deals {
		stores[deals[i].Store]++
	}
	for s, n := range stores {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d deals\n", s, n)
	}

	return nil
}
