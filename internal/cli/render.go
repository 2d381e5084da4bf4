package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tpstats/adapters/statsapi"
	"tpstats/internal"
	"tpstats/internal/config"
	"tpstats/internal/errors"
	"tpstats/internal/output"
	"tpstats/ui/binder"
	"tpstats/ui/view"
)

type renderOptions struct {
	concurrency int
	debug       bool
	noColor     bool
	strict      bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [timepoint-ids...]",
		Short: "Load timepoints and print their statistics",
		Long: `Load the given timepoints, or every configured one, and print each pane
the way the page would show it.

Example: tpstats render t0 t2 --concurrency 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				cfg.UI.DebugEnabled = opts.debug
			}
			return runRender(cmd, cfg, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 4, "Maximum number of timepoints loaded at once")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Print debug payloads (overrides DEBUG_ENABLED)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit non-zero when any timepoint fails to load")
	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config, ids []string, opts renderOptions) error {
	if opts.concurrency < 1 {
		return errors.InvalidInput("concurrency must be at least 1")
	}

	client, err := statsapi.NewClient(statsapi.Config{
		BaseURL: cfg.Stats.BaseURL,
		Timeout: cfg.Stats.Timeout,
	})
	if err != nil {
		return err
	}

	configured, err := tabsFromConfig(cfg.Timepoints)
	if err != nil {
		return err
	}
	tabs, err := selectTabs(configured, ids)
	if err != nil {
		return err
	}
	doc, err := view.NewDocumentFromTabs(tabs, view.FullLayout())
	if err != nil {
		return errors.WithCode(errors.CodeInvalidInput, err)
	}

	logger := internal.NewLoggerWithOutput(internal.NewDefaultLogger().GetLevel(), cmd.ErrOrStderr())
	b := binder.NewTimepointStatsBinder(binder.Config{DebugEnabled: cfg.UI.DebugEnabled}, client, doc, logger)

	panes := doc.Panes()
	outcomes := make([]binder.Outcome, len(panes))

	g, ctx := errgroup.WithContext(contextOrBackground(cmd.Context()))
	g.SetLimit(opts.concurrency)
	for i, p := range panes {
		i, p := i, p
		g.Go(func() error {
			outcomes[i] = b.LoadTimepointData(ctx, p.ID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scheme := output.SchemeFor(out, opts.noColor)
	failed := 0
	for i, p := range panes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := output.WritePane(out, p.Snapshot(), outcomes[i], scheme); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
		if outcomes[i] != binder.OutcomeSuccess {
			failed++
		}
	}

	if opts.strict && failed > 0 {
		return errors.New(errors.CodeExternalService, fmt.Sprintf("%d of %d timepoints failed to load", failed, len(panes)))
	}
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
