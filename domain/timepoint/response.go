package timepoint

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// StatusSuccess is the only status value that selects the success path
const StatusSuccess = "success"

// StatsResponse is one decoded GET /stats/timepoint/{id} body. Fields are
// read lazily with presence checks only; nothing beyond that is validated.
type StatsResponse struct {
	root gjson.Result
}

// ParseResponse decodes a response body. Only unparseable JSON or a
// non-object document is rejected.
func ParseResponse(body []byte) (*StatsResponse, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrMalformedResponse)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrMalformedResponse, root.Type)
	}
	return &StatsResponse{root: root}, nil
}

// Status returns the raw status string, empty when absent
func (r *StatsResponse) Status() string {
	return r.root.Get("status").String()
}

// IsSuccess reports whether status is exactly the string "success"
func (r *StatsResponse) IsSuccess() bool {
	status := r.root.Get("status")
	return status.Type == gjson.String && status.Str == StatusSuccess
}

// Message returns the error message and whether one was sent
func (r *StatsResponse) Message() (string, bool) {
	msg := r.root.Get("message")
	if !present(msg) {
		return "", false
	}
	return msg.String(), true
}

// TopLevelDebug returns the raw JSON of the top-level debug field used by
// the error path.
func (r *StatsResponse) TopLevelDebug() (string, bool) {
	return rawIfPresent(r.root.Get("debug"))
}

// DataDebug returns the raw JSON of data.debug
func (r *StatsResponse) DataDebug() (string, bool) {
	return rawIfPresent(r.root.Get("data.debug"))
}

// RawEdgeStats returns data.debug.raw_edge_stats. Missing numeric fields
// read as zero.
func (r *StatsResponse) RawEdgeStats() (EdgeCoverage, bool) {
	if !present(r.root.Get("data.debug")) {
		return EdgeCoverage{}, false
	}
	raw := r.root.Get("data.debug.raw_edge_stats")
	if !present(raw) {
		return EdgeCoverage{}, false
	}
	return EdgeCoverage{
		SingleCoverage:      raw.Get("single_coverage").Float(),
		SinglePercentage:    raw.Get("single_percentage").Float(),
		MultipleCoverage:    raw.Get("multiple_coverage").Float(),
		MultiplePercentage:  raw.Get("multiple_percentage").Float(),
		Uncovered:           raw.Get("uncovered").Float(),
		UncoveredPercentage: raw.Get("uncovered_percentage").Float(),
	}, true
}

// Components returns data.stats.components
func (r *StatsResponse) Components() (Components, bool) {
	comps := r.root.Get("data.stats.components")
	if !present(comps) {
		return Components{}, false
	}
	return Components{
		original: child(comps, "original"),
		biclique: child(comps, "biclique"),
	}, true
}

// Components wraps the two component-statistics branches
type Components struct {
	original gjson.Result
	biclique gjson.Result
}

// HasOriginal reports whether the original branch was sent
func (c Components) HasOriginal() bool { return present(c.original) }

// HasBiclique reports whether the biclique branch was sent
func (c Components) HasBiclique() bool { return present(c.biclique) }

// OriginalValue returns the display text of original[category][field],
// "0" when the category or the field is absent.
func (c Components) OriginalValue(category OriginalCategory, field OriginalField) string {
	return cellText(child(child(c.original, string(category)), string(field)))
}

// BicliqueValue returns the display text of biclique.connected[category],
// "0" when absent.
func (c Components) BicliqueValue(category BicliqueCategory) string {
	return cellText(child(child(c.biclique, "connected"), category.FieldKey()))
}

// child looks up an exact object key without interpreting path syntax
func child(r gjson.Result, key string) gjson.Result {
	if !r.IsObject() {
		return gjson.Result{}
	}
	var found gjson.Result
	r.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
			return false
		}
		return true
	})
	return found
}

// present mirrors a truthiness check: null, false, 0 and "" count as absent
func present(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}

func rawIfPresent(r gjson.Result) (string, bool) {
	if !present(r) {
		return "", false
	}
	return r.Raw, true
}

func cellText(r gjson.Result) string {
	if !present(r) {
		return "0"
	}
	switch r.Type {
	case gjson.Number:
		return FormatNumber(r.Num)
	case gjson.String:
		return r.Str
	case gjson.True:
		return "true"
	default:
		return r.Raw
	}
}
