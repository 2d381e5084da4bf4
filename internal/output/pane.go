package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"tpstats/domain/timepoint"
	"tpstats/ui/binder"
	"tpstats/ui/view"
)

// WritePane renders a loaded pane: a headline with the outcome, then the
// three tables on success or the error message otherwise. The debug dump is
// printed only when the pane shows it.
func WritePane(w io.Writer, p *view.Pane, outcome binder.Outcome, scheme *ColorScheme) error {
	if scheme == nil {
		scheme = NoColorScheme()
	}
	pw := &errWriter{w: w}

	pw.printf("%s %s\n", scheme.Title.Sprint(p.Label), scheme.Muted.Sprintf("(%s)", p.ID))
	switch outcome {
	case binder.OutcomeSuccess:
		pw.printf("  %s\n", scheme.Success.Sprint("loaded"))
	case binder.OutcomeFailure:
		pw.printf("  %s %s\n", scheme.Failure.Sprint("Error Loading Data:"), errorText(p))
	case binder.OutcomeNetworkError:
		pw.printf("  %s %s\n", scheme.Network.Sprint("Network Error:"), errorText(p))
	default:
		pw.printf("  %s\n", scheme.Muted.Sprint(outcome.String()))
	}
	if pw.err != nil || outcome != binder.OutcomeSuccess {
		return pw.err
	}

	if p.EdgeCoverage != nil {
		pw.printf("\n%s\n", scheme.Section.Sprint("Edge coverage"))
		tw := tabwriter.NewWriter(pw, 0, 0, 2, ' ', 0)
		for _, row := range p.EdgeCoverage.Rows {
			fmt.Fprintf(tw, "  %s\t%s\n", scheme.Label.Sprint(row.Label), scheme.Value.Sprint(row.Last().Value()))
		}
		tw.Flush()
	}

	if p.Original != nil {
		pw.printf("\n%s\n", scheme.Section.Sprint("Components: original graph"))
		tw := tabwriter.NewWriter(pw, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  \t%s\n", scheme.Muted.Sprint(strings.Join([]string{"total", "single node", "small", "interesting"}, "\t")))
		for _, row := range p.Original.Rows {
			values := make([]string, 0, len(timepoint.OriginalFields))
			for _, field := range timepoint.OriginalFields {
				values = append(values, row.Cell(field).Value())
			}
			fmt.Fprintf(tw, "  %s\t%s\n", scheme.Label.Sprint(row.Category.Label()), strings.Join(values, "\t"))
		}
		tw.Flush()
	}

	if p.Biclique != nil {
		pw.printf("\n%s\n", scheme.Section.Sprint("Components: biclique graph"))
		tw := tabwriter.NewWriter(pw, 0, 0, 2, ' ', 0)
		for _, row := range p.Biclique.Rows {
			fmt.Fprintf(tw, "  %s\t%s\n", scheme.Label.Sprint(row.Label), scheme.Value.Sprint(row.Last().Value()))
		}
		tw.Flush()
	}

	if p.DebugInfo.IsVisible() && p.DebugInfo.Text != "" {
		pw.printf("\n%s\n%s\n", scheme.Highlight.Sprint("Debug"), p.DebugInfo.Text)
	}
	return pw.err
}

func errorText(p *view.Pane) string {
	if p.ErrorContainer == nil || p.ErrorContainer.Text == "" {
		return "Unknown error"
	}
	return p.ErrorContainer.Text
}

// errWriter keeps the first write error and drops later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e, format, args...)
}
