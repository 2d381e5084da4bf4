package cli

import (
	"context"

	"github.com/spf13/cobra"

	"tpstats/adapters/statsapi"
	"tpstats/internal"
	"tpstats/internal/config"
	"tpstats/internal/errors"
	"tpstats/ui"
	"tpstats/ui/binder"
	"tpstats/ui/view"
)

func newServeCmd() *cobra.Command {
	var port string
	var debug bool
	var warm bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the timepoint statistics page",
		Long: `Serve the tabbed statistics page. Each tab loads its timepoint from the
stats backend when it is shown.

Example: STATS_BASE_URL=http://localhost:9090 tpstats serve --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("debug") {
				cfg.UI.DebugEnabled = debug
			}

			logger := internal.NewDefaultLogger()
			b, err := newBinder(cfg, logger)
			if err != nil {
				return err
			}
			if warm {
				go b.Init(context.Background())
			}

			server, err := ui.NewServer(b, logger, ui.Options{GinMode: cfg.Server.GinMode})
			if err != nil {
				return errors.Wrap(err, "failed to create UI server")
			}
			return server.Start(":" + cfg.Server.Port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "8080", "Port to listen on (overrides PORT)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Show debug payloads and stack traces (overrides DEBUG_ENABLED)")
	cmd.Flags().BoolVar(&warm, "warm", false, "Load the active tab once at startup")
	return cmd
}

// newBinder builds the stats client, the document of configured tabs and
// the binder over them
func newBinder(cfg *config.Config, logger *internal.Logger) (*binder.TimepointStatsBinder, error) {
	client, err := statsapi.NewClient(statsapi.Config{
		BaseURL: cfg.Stats.BaseURL,
		Timeout: cfg.Stats.Timeout,
	})
	if err != nil {
		return nil, err
	}

	tabs, err := tabsFromConfig(cfg.Timepoints)
	if err != nil {
		return nil, err
	}
	doc, err := view.NewDocumentFromTabs(tabs, view.FullLayout())
	if err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, err)
	}

	return binder.NewTimepointStatsBinder(binder.Config{DebugEnabled: cfg.UI.DebugEnabled}, client, doc, logger), nil
}
