package cli

import (
	"github.com/spf13/cobra"

	"tpstats/internal"
	"tpstats/internal/config"
	"tpstats/internal/testkit"
)

func newFixtureCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Serve a stand-in stats backend for the configured timepoints",
		Long: `Serve GET /stats/timepoint/{id} with deterministic statistics for every
configured timepoint. FIXTURE_FAILING and FIXTURE_MALFORMED list timepoints
answered with an error payload or an undecodable body.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Fixture.Port = port
			}

			fixture := newFixture(cfg, internal.NewDefaultLogger())
			return fixture.Start(":" + cfg.Fixture.Port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "9090", "Port to listen on (overrides FIXTURE_PORT)")
	return cmd
}

// newFixture registers every configured timepoint, then applies the failing
// and malformed overrides
func newFixture(cfg *config.Config, logger *internal.Logger) *testkit.Fixture {
	fixture := testkit.NewFixture(cfg.Fixture.Seed, logger)
	for _, tp := range cfg.Timepoints {
		fixture.Register(tp.ID, testkit.ScenarioSuccess)
	}
	for _, id := range cfg.Fixture.Failing {
		fixture.Register(id, testkit.ScenarioError)
	}
	for _, id := range cfg.Fixture.Malformed {
		fixture.Register(id, testkit.ScenarioMalformed)
	}
	return fixture
}
