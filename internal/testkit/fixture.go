// Package testkit provides a stand-in statistics backend for local
// development and tests. It serves GET /stats/timepoint/{timepoint} with
// deterministic payloads derived from a seeded random graph per timepoint.
package testkit

import (
	"encoding/json"
	"hash/fnv"
	"math/rand"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tpstats/internal"
)

// Scenario selects the payload a timepoint is served with
type Scenario int

const (
	ScenarioSuccess Scenario = iota
	ScenarioError
	ScenarioMalformed
)

// Fixture is the fixture backend
type Fixture struct {
	router    *chi.Mux
	seed      int64
	logger    *internal.Logger
	mu        sync.RWMutex
	scenarios map[string]Scenario
}

// NewFixture creates a fixture backend. Timepoints must be registered
// before they are served; unknown ones get an error payload.
func NewFixture(seed int64, logger *internal.Logger) *Fixture {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	f := &Fixture{
		router:    chi.NewRouter(),
		seed:      seed,
		logger:    logger.Named("Fixture"),
		scenarios: make(map[string]Scenario),
	}
	f.router.Use(middleware.Recoverer)
	f.router.Get("/stats/timepoint/{timepoint}", f.handleTimepoint)
	return f
}

// Register sets the scenario of a timepoint
func (f *Fixture) Register(id string, scenario Scenario) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scenarios[id] = scenario
}

// Handler returns the HTTP handler of the backend
func (f *Fixture) Handler() http.Handler {
	return f.router
}

// Start serves the backend on addr
func (f *Fixture) Start(addr string) error {
	f.logger.Info("fixture stats backend listening on %s", addr)
	return http.ListenAndServe(addr, f.router)
}

func (f *Fixture) handleTimepoint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "timepoint")

	f.mu.RLock()
	scenario, known := f.scenarios[id]
	f.mu.RUnlock()

	switch {
	case !known:
		f.logger.Warn("unknown timepoint %q requested", id)
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"status":  "error",
			"message": "unknown timepoint " + id,
		})
	case scenario == ScenarioMalformed:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"success","data":`))
	case scenario == ScenarioError:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "error",
			"message": "statistics for timepoint " + id + " are not available yet",
			"debug": map[string]interface{}{
				"timepoint": id,
				"stage":     "component_analysis",
			},
		})
	default:
		writeJSON(w, http.StatusOK, f.SuccessPayload(id))
	}
}

// SuccessPayload builds the deterministic success payload of a timepoint
func (f *Fixture) SuccessPayload(id string) map[string]interface{} {
	rng := rand.New(rand.NewSource(f.seed ^ int64(hashID(id))))

	nodes := 40 + rng.Intn(80)
	g := RandomGraph(rng, nodes, 0.6)
	connected := SummarizeComponents(g)

	edges := g.Edges().Len()
	single := rng.Intn(edges + 1)
	multiple := rng.Intn(edges - single + 1)
	uncovered := edges - single - multiple

	return map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"debug": map[string]interface{}{
				"timepoint":             id,
				"node_count":            nodes,
				"edge_count":            edges,
				"component_size_mean":   connected.SizeMean,
				"component_size_median": connected.SizeMedian,
				"raw_edge_stats": map[string]interface{}{
					"single_coverage":      single,
					"single_percentage":    fraction(single, edges),
					"multiple_coverage":    multiple,
					"multiple_percentage":  fraction(multiple, edges),
					"uncovered":            uncovered,
					"uncovered_percentage": fraction(uncovered, edges),
				},
			},
			"stats": map[string]interface{}{
				"components": map[string]interface{}{
					"original": map[string]interface{}{
						"connected":    componentStats(connected),
						"biconnected":  derivedStats(rng, connected.Total),
						"triconnected": derivedStats(rng, connected.Interesting),
					},
					"biclique": map[string]interface{}{
						"connected": map[string]interface{}{
							"empty":       rng.Intn(10),
							"simple":      rng.Intn(10),
							"interesting": rng.Intn(5),
							"complex":     rng.Intn(3),
						},
					},
				},
			},
		},
	}
}

func componentStats(s ComponentSummary) map[string]int {
	return map[string]int{
		"total":       s.Total,
		"single_node": s.SingleNode,
		"small":       s.Small,
		"interesting": s.Interesting,
	}
}

// derivedStats fabricates a plausible breakdown bounded by max
func derivedStats(rng *rand.Rand, max int) map[string]int {
	total := rng.Intn(max + 1)
	single := rng.Intn(total + 1)
	small := rng.Intn(total - single + 1)
	return map[string]int{
		"total":       total,
		"single_node": single,
		"small":       small,
		"interesting": total - single - small,
	}
}

func fraction(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

func hashID(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
