package timepoint

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors
var (
	ErrInvalidID         = errors.New("invalid timepoint id")
	ErrMalformedResponse = errors.New("malformed stats response")
)

// ID identifies a timepoint. The same value names the tab pane and the
// backend path segment.
type ID string

// ParseID parses a string into a timepoint ID
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: id cannot be empty", ErrInvalidID)
	}
	if strings.ContainsAny(s, "#/ ") {
		return "", fmt.Errorf("%w: %q contains a reserved character", ErrInvalidID, s)
	}
	return ID(s), nil
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// OriginalCategory is a row of the original components table
type OriginalCategory string

const (
	CategoryConnected    OriginalCategory = "connected"
	CategoryBiconnected  OriginalCategory = "biconnected"
	CategoryTriconnected OriginalCategory = "triconnected"
)

// OriginalCategories lists the original table rows in display order
var OriginalCategories = []OriginalCategory{
	CategoryConnected,
	CategoryBiconnected,
	CategoryTriconnected,
}

// Label returns the human-readable row label
func (c OriginalCategory) Label() string {
	switch c {
	case CategoryConnected:
		return "Connected"
	case CategoryBiconnected:
		return "Biconnected"
	case CategoryTriconnected:
		return "Triconnected"
	default:
		return string(c)
	}
}

// OriginalField is a column of the original components table
type OriginalField string

const (
	FieldTotal       OriginalField = "total"
	FieldSingleNode  OriginalField = "single_node"
	FieldSmall       OriginalField = "small"
	FieldInteresting OriginalField = "interesting"
)

// OriginalFields lists the original table columns in display order
var OriginalFields = []OriginalField{
	FieldTotal,
	FieldSingleNode,
	FieldSmall,
	FieldInteresting,
}

// CellClass returns the markup class of the column's cells, e.g. "single-node-cell"
func (f OriginalField) CellClass() string {
	return strings.ReplaceAll(string(f), "_", "-") + "-cell"
}

// BicliqueCategory is a row of the biclique components table
type BicliqueCategory string

const (
	BicliqueEmpty       BicliqueCategory = "empty"
	BicliqueSimple      BicliqueCategory = "simple"
	BicliqueInteresting BicliqueCategory = "interesting"
	BicliqueComplex     BicliqueCategory = "complex"
)

// BicliqueCategories lists the biclique table rows in display order
var BicliqueCategories = []BicliqueCategory{
	BicliqueEmpty,
	BicliqueSimple,
	BicliqueInteresting,
	BicliqueComplex,
}

// Label returns the human-readable row label
func (c BicliqueCategory) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// FieldKey returns the payload key for the category. Spaces become
// underscores; none of the current categories contain one.
func (c BicliqueCategory) FieldKey() string {
	return strings.ReplaceAll(string(c), " ", "_")
}

// RowClass returns the markup class of a category row, e.g. "connected-row"
func RowClass(category string) string {
	return category + "-row"
}

// EdgeCoverage holds the raw edge statistics of a timepoint.
// Percentages are fractions in [0,1].
type EdgeCoverage struct {
	SingleCoverage      float64 `json:"single_coverage"`
	SinglePercentage    float64 `json:"single_percentage"`
	MultipleCoverage    float64 `json:"multiple_coverage"`
	MultiplePercentage  float64 `json:"multiple_percentage"`
	Uncovered           float64 `json:"uncovered"`
	UncoveredPercentage float64 `json:"uncovered_percentage"`
}

// SingleText is the display text of the single coverage row
func (e EdgeCoverage) SingleText() string {
	return FormatCoverage(e.SingleCoverage, e.SinglePercentage)
}

// MultipleText is the display text of the multiple coverage row
func (e EdgeCoverage) MultipleText() string {
	return FormatCoverage(e.MultipleCoverage, e.MultiplePercentage)
}

// UncoveredText is the display text of the uncovered row
func (e EdgeCoverage) UncoveredText() string {
	return FormatCoverage(e.Uncovered, e.UncoveredPercentage)
}
