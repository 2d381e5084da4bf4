package testkit

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"tpstats/domain/timepoint"
)

func TestSummarizeComponents(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for i := 0; i < 9; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(g.NewEdge(simple.Node(1), simple.Node(2)))
	g.SetEdge(g.NewEdge(simple.Node(3), simple.Node(4)))
	g.SetEdge(g.NewEdge(simple.Node(4), simple.Node(5)))
	g.SetEdge(g.NewEdge(simple.Node(5), simple.Node(6)))
	g.SetEdge(g.NewEdge(simple.Node(7), simple.Node(8)))

	s := SummarizeComponents(g)
	// components: {0} {1,2} {3,4,5,6} {7,8}
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.SingleNode)
	assert.Equal(t, 2, s.Small)
	assert.Equal(t, 1, s.Interesting)
	assert.InDelta(t, 2.25, s.SizeMean, 1e-9)
	assert.InDelta(t, 2.0, s.SizeMedian, 1e-9)
}

func TestRandomGraphIsDeterministic(t *testing.T) {
	a := RandomGraph(rand.New(rand.NewSource(7)), 50, 0.6)
	b := RandomGraph(rand.New(rand.NewSource(7)), 50, 0.6)
	assert.Equal(t, a.Nodes().Len(), b.Nodes().Len())
	assert.Equal(t, a.Edges().Len(), b.Edges().Len())
	assert.Equal(t, 1, RandomGraph(rand.New(rand.NewSource(7)), 1, 0.6).Nodes().Len())
}

func fetch(t *testing.T, srv *httptest.Server, id string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(srv.URL + "/stats/timepoint/" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestFixtureScenarios(t *testing.T) {
	f := NewFixture(42, nil)
	f.Register("t0", ScenarioSuccess)
	f.Register("t1", ScenarioError)
	f.Register("t2", ScenarioMalformed)
	srv := httptest.NewServer(f.Handler())
	defer srv.Close()

	status, body := fetch(t, srv, "t0")
	assert.Equal(t, http.StatusOK, status)
	resp, err := timepoint.ParseResponse(body)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	_, ok := resp.RawEdgeStats()
	assert.True(t, ok)
	comps, ok := resp.Components()
	require.True(t, ok)
	assert.True(t, comps.HasOriginal())
	assert.True(t, comps.HasBiclique())

	_, body = fetch(t, srv, "t1")
	resp, err = timepoint.ParseResponse(body)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	_, ok = resp.TopLevelDebug()
	assert.True(t, ok)

	_, body = fetch(t, srv, "t2")
	_, err = timepoint.ParseResponse(body)
	assert.Error(t, err)

	status, body = fetch(t, srv, "nope")
	assert.Equal(t, http.StatusNotFound, status)
	resp, err = timepoint.ParseResponse(body)
	require.NoError(t, err)
	msg, _ := resp.Message()
	assert.Equal(t, "unknown timepoint nope", msg)
}

func TestSuccessPayloadConsistency(t *testing.T) {
	f := NewFixture(42, nil)

	first, err := json.Marshal(f.SuccessPayload("t0"))
	require.NoError(t, err)
	second, err := json.Marshal(f.SuccessPayload("t0"))
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))

	resp, err := timepoint.ParseResponse(first)
	require.NoError(t, err)
	edge, ok := resp.RawEdgeStats()
	require.True(t, ok)
	assert.InDelta(t, 1.0, edge.SinglePercentage+edge.MultiplePercentage+edge.UncoveredPercentage, 1e-9)
}
