package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpstats/domain/timepoint"
)

func TestNilElementsAreSkipped(t *testing.T) {
	var e *Element
	var c *Cell
	var r *Row

	assert.NotPanics(t, func() {
		e.Show()
		e.Hide()
		e.SetText("x")
		e.SetHTML("<b>x</b>")
		c.Set("1")
		r.Last().Set("2")
	})
	assert.False(t, e.IsVisible())
	assert.Equal(t, "", c.Value())
}

func TestNewPaneFullLayout(t *testing.T) {
	p := NewPane("tp-1", "", FullLayout())

	assert.Equal(t, "tp-1", p.Label)
	require.NotNil(t, p.LoadingIndicator)
	require.NotNil(t, p.StatsContainer)
	require.NotNil(t, p.ErrorContainer)
	require.NotNil(t, p.DebugInfo)
	assert.Equal(t, 3, p.EdgeCoverage.Len())
	assert.Equal(t, "Uncovered", p.EdgeCoverage.Row(2).Label)

	for _, category := range timepoint.OriginalCategories {
		row := p.Original.Row(category)
		require.NotNil(t, row, category)
		for _, field := range timepoint.OriginalFields {
			assert.Equal(t, "-", row.Cell(field).Value())
		}
	}
	for _, category := range timepoint.BicliqueCategories {
		require.NotNil(t, p.Biclique.Row(category), category)
	}
}

func TestNewPanePartialLayout(t *testing.T) {
	p := NewPane("tp-2", "Week 2", Layout{
		ErrorContainer: true,
		EdgeRows:       2,
		OriginalTable:  true,
		OriginalRows:   []timepoint.OriginalCategory{timepoint.CategoryConnected},
	})

	assert.Nil(t, p.LoadingIndicator)
	assert.Nil(t, p.StatsContainer)
	assert.Nil(t, p.Biclique)
	assert.Nil(t, p.Biclique.Row(timepoint.BicliqueEmpty))
	assert.Nil(t, p.Original.Row(timepoint.CategoryBiconnected))
	assert.Nil(t, p.EdgeCoverage.Row(2))
	assert.Equal(t, "", p.EdgeCoverage.Row(1).Label)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	p := NewPane("tp-1", "Week 1", FullLayout())
	p.Update(func(p *Pane) {
		p.StatsContainer.Show()
		p.Original.Row(timepoint.CategoryConnected).Total.Set("3")
		p.Biclique.Row(timepoint.BicliqueEmpty).Last().Set("4")
	})

	snap := p.Snapshot()
	p.Update(func(p *Pane) {
		p.StatsContainer.Hide()
		p.Original.Row(timepoint.CategoryConnected).Total.Set("9")
		p.Biclique.Row(timepoint.BicliqueEmpty).Last().Set("9")
	})

	assert.True(t, snap.StatsContainer.IsVisible())
	assert.Equal(t, "3", snap.Original.Row(timepoint.CategoryConnected).Total.Value())
	assert.Equal(t, "4", snap.Biclique.Row(timepoint.BicliqueEmpty).Last().Value())
}

func TestDocumentFromTabs(t *testing.T) {
	doc, err := NewDocumentFromTabs([]Tab{
		{ID: "tp-1", Label: "Week 1"},
		{ID: "tp-2", Label: "Week 2", Active: true},
		{ID: "tp-3", Label: "Week 3", Active: true},
	}, FullLayout())
	require.NoError(t, err)

	assert.Len(t, doc.Panes(), 3)
	assert.Equal(t, timepoint.ID("tp-2"), doc.ActiveID())
	active, ok := doc.Active()
	require.True(t, ok)
	assert.Equal(t, "Week 2", active.Label)

	_, ok = doc.Pane("missing")
	assert.False(t, ok)
}

func TestDocumentDefaultsActiveAndRejectsDuplicates(t *testing.T) {
	doc, err := NewDocumentFromTabs([]Tab{{ID: "a"}, {ID: "b"}}, FullLayout())
	require.NoError(t, err)
	assert.Equal(t, timepoint.ID("a"), doc.ActiveID())

	_, err = NewDocumentFromTabs([]Tab{{ID: "a"}, {ID: "a"}}, FullLayout())
	assert.Error(t, err)

	empty := NewDocument()
	_, ok := empty.Active()
	assert.False(t, ok)
	assert.Error(t, empty.Add(NewPane("", "", Layout{}), false))
}
