// Package binder loads timepoint statistics into the panes of the tabbed
// stats page.
package binder

import (
	"context"
	rtdebug "runtime/debug"
	"strings"

	"github.com/google/uuid"

	"tpstats/domain/timepoint"
	"tpstats/internal"
	"tpstats/internal/errors"
	"tpstats/ports"
	"tpstats/ui/view"
)

// Config holds binder settings
type Config struct {
	// DebugEnabled renders debug payloads and stack traces to the user.
	// Keep it off in production.
	DebugEnabled bool
}

// Outcome reports which rendering path a load took
type Outcome int

const (
	OutcomeMissingTarget Outcome = iota
	OutcomeSuccess
	OutcomeFailure
	OutcomeNetworkError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeNetworkError:
		return "network_error"
	default:
		return "missing_target"
	}
}

// TimepointStatsBinder fetches a timepoint's statistics and writes them
// into that timepoint's pane.
type TimepointStatsBinder struct {
	config Config
	source ports.StatsSource
	doc    *view.Document
	logger *internal.Logger
}

// NewTimepointStatsBinder creates a binder over the panes of doc
func NewTimepointStatsBinder(config Config, source ports.StatsSource, doc *view.Document, logger *internal.Logger) *TimepointStatsBinder {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &TimepointStatsBinder{
		config: config,
		source: source,
		doc:    doc,
		logger: logger.Named("Binder"),
	}
}

// Config returns the binder settings
func (b *TimepointStatsBinder) Config() Config {
	return b.config
}

// Document returns the document the binder writes to
func (b *TimepointStatsBinder) Document() *view.Document {
	return b.doc
}

// Init loads the initially active tab
func (b *TimepointStatsBinder) Init(ctx context.Context) Outcome {
	id := b.doc.ActiveID()
	if id.IsEmpty() {
		b.logger.Warn("no active tab to load")
		return OutcomeMissingTarget
	}
	return b.LoadTimepointData(ctx, id)
}

// ActivateTab handles a tab-shown event. The timepoint id is the fragment
// of the trigger's href, e.g. "#tp-3" or "/stats#tp-3".
func (b *TimepointStatsBinder) ActivateTab(ctx context.Context, href string) Outcome {
	_, fragment, found := strings.Cut(href, "#")
	if !found || fragment == "" {
		b.logger.Warn("tab trigger href %q has no target fragment", href)
		return OutcomeMissingTarget
	}
	return b.LoadTimepointData(ctx, timepoint.ID(fragment))
}

// LoadTimepointData fetches the timepoint and renders exactly one of the
// success, failure or network-error paths into its pane. Nothing is
// returned as an error: a missing pane is logged and the load abandoned.
func (b *TimepointStatsBinder) LoadTimepointData(ctx context.Context, id timepoint.ID) Outcome {
	pane, ok := b.doc.Pane(id)
	if !ok {
		b.logger.Error("tab pane not found for timepoint %q", id)
		return OutcomeMissingTarget
	}

	loadID := uuid.NewString()
	pane.Update(func(p *view.Pane) {
		p.LastLoadID = loadID
		p.StatsContainer.Hide()
		p.ErrorContainer.Hide()
		p.LoadingIndicator.Show()
	})
	b.logger.Debug("loading timepoint %s (load %s)", id, loadID)

	resp, err := b.source.FetchTimepoint(ctx, id)
	if err == nil && resp == nil {
		err = errors.InternalError("stats source returned no response")
	}

	var outcome Outcome
	pane.Update(func(p *view.Pane) {
		switch {
		case err != nil:
			b.renderNetworkError(p, err)
			outcome = OutcomeNetworkError
		case resp.IsSuccess():
			b.updateContent(p, resp)
			p.StatsContainer.Show()
			p.ErrorContainer.Hide()
			outcome = OutcomeSuccess
		default:
			b.renderError(p, resp)
			outcome = OutcomeFailure
		}
		p.LoadingIndicator.Hide()
	})

	switch outcome {
	case OutcomeNetworkError:
		b.logger.Error("timepoint %s: %v", id, err)
	case OutcomeFailure:
		msg, _ := resp.Message()
		b.logger.Warn("timepoint %s returned status %q: %s", id, resp.Status(), msg)
	default:
		b.logger.Debug("timepoint %s loaded (load %s)", id, loadID)
	}
	return outcome
}

// renderError shows the application-level error panel
func (b *TimepointStatsBinder) renderError(p *view.Pane, resp *timepoint.StatsResponse) {
	msg, ok := resp.Message()
	if !ok {
		msg = "Unknown error"
	}
	data := errorPanelData{Message: msg}
	if b.config.DebugEnabled {
		if debug, ok := resp.TopLevelDebug(); ok {
			data.Debug = indentJSON(debug)
		}
	}
	p.ErrorContainer.SetText(msg)
	p.ErrorContainer.SetHTML(renderPanel("error_panel", data))
	p.ErrorContainer.Show()
}

// renderNetworkError shows the transport/parse failure panel
func (b *TimepointStatsBinder) renderNetworkError(p *view.Pane, err error) {
	data := networkErrorPanelData{Message: err.Error()}
	if b.config.DebugEnabled {
		data.Stack = errors.StackTrace(err)
		if data.Stack == "" {
			data.Stack = string(rtdebug.Stack())
		}
	}
	p.ErrorContainer.SetText(data.Message)
	p.ErrorContainer.SetHTML(renderPanel("network_error_panel", data))
	p.ErrorContainer.Show()
}
