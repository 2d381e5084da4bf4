package testkit

import (
	"math/rand"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ComponentSummary classifies the connected components of a graph by size
type ComponentSummary struct {
	Total       int
	SingleNode  int
	Small       int
	Interesting int
	SizeMean    float64
	SizeMedian  float64
}

// smallComponentMax is the largest component size still counted as small
const smallComponentMax = 3

// RandomGraph builds a sparse undirected graph with nodes vertices and
// roughly nodes*density edges.
func RandomGraph(rng *rand.Rand, nodes int, density float64) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < nodes; i++ {
		g.AddNode(simple.Node(i))
	}
	if nodes < 2 {
		return g
	}
	edges := int(float64(nodes) * density)
	for i := 0; i < edges; i++ {
		u := rng.Intn(nodes)
		v := rng.Intn(nodes)
		if u == v {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(u), simple.Node(v)))
	}
	return g
}

// SummarizeComponents counts connected components by size class
func SummarizeComponents(g *simple.UndirectedGraph) ComponentSummary {
	components := topo.ConnectedComponents(g)

	summary := ComponentSummary{Total: len(components)}
	sizes := make([]float64, 0, len(components))
	for _, component := range components {
		size := len(component)
		sizes = append(sizes, float64(size))
		switch {
		case size == 1:
			summary.SingleNode++
		case size <= smallComponentMax:
			summary.Small++
		default:
			summary.Interesting++
		}
	}

	if len(sizes) > 0 {
		summary.SizeMean, _ = stats.Mean(sizes)
		summary.SizeMedian, _ = stats.Median(sizes)
	}
	return summary
}
