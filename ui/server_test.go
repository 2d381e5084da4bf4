package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tpstats/adapters/statsapi"
	"tpstats/domain/timepoint"
	"tpstats/internal"
	"tpstats/internal/testkit"
	"tpstats/ui/binder"
	"tpstats/ui/view"
)

type testEnv struct {
	server  *Server
	fixture *testkit.Fixture
	backend *httptest.Server
}

func newTestEnv(t *testing.T, debug bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := internal.NewLoggerWithOutput(internal.LogLevelError, &bytes.Buffer{})
	fixture := testkit.NewFixture(42, logger)
	fixture.Register("t0", testkit.ScenarioSuccess)
	fixture.Register("t1", testkit.ScenarioError)
	fixture.Register("t2", testkit.ScenarioMalformed)
	backend := httptest.NewServer(fixture.Handler())
	t.Cleanup(backend.Close)

	client, err := statsapi.NewClient(statsapi.Config{BaseURL: backend.URL})
	require.NoError(t, err)

	doc, err := view.NewDocumentFromTabs([]view.Tab{
		{ID: "t0", Label: "Baseline"},
		{ID: "t1"},
		{ID: "t2"},
		{ID: "t3"},
	}, view.FullLayout())
	require.NoError(t, err)

	b := binder.NewTimepointStatsBinder(binder.Config{DebugEnabled: debug}, client, doc, logger)
	server, err := NewServer(b, logger, Options{GinMode: gin.TestMode})
	require.NoError(t, err)

	return &testEnv{server: server, fixture: fixture, backend: backend}
}

func (e *testEnv) get(t *testing.T, path string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(w, req)
	return w
}

func TestIndexRendersTabs(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/", false)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `href="#t0"`)
	assert.Contains(t, body, ">Baseline</a>")
	assert.Contains(t, body, `hx-get="/timepoints/t1/pane"`)
	assert.Contains(t, body, `hx-trigger="load"`)
	assert.Contains(t, body, `id="original-components-table"`)
	assert.NotContains(t, body, "Debug mode is on")
}

func TestIndexWiresLoadingIndicator(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/", false)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	// tab triggers and the initially loaded pane both point at their pane's indicator
	assert.Equal(t, 4+1, strings.Count(body, `hx-indicator="#`))
	assert.Contains(t, body, `hx-indicator="#t1 .loading-indicator"`)
	assert.Contains(t, body, `hx-trigger="load" hx-swap="innerHTML" hx-indicator="#t0 .loading-indicator"`)
	assert.Contains(t, body, `class="loading-indicator htmx-indicator`)

	css := env.get(t, "/static/css/tpstats.css", false).Body.String()
	assert.Contains(t, css, ".loading-indicator.htmx-indicator.htmx-request")
}

func TestIndexShowsDebugNotice(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.get(t, "/", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Debug mode is on")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/healthz", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","timepoints":4}`, w.Body.String())
}

func TestPaneFragmentSuccess(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/timepoints/t0/pane", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	assert.Contains(t, body, `class="stats-container"`)
	assert.Contains(t, body, `class="loading-indicator htmx-indicator text-center py-4 d-none"`)
	assert.Contains(t, body, `class="error-container d-none"`)
	assert.Contains(t, body, `class="connected-row"`)
	assert.Contains(t, body, `class="empty-row"`)
	assert.Contains(t, body, "%)")
	assert.Contains(t, body, `debug-info small bg-light p-2 d-none`)
}

func TestPaneFragmentErrorResponse(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/timepoints/t1/pane", true)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `class="error-container"`)
	assert.Contains(t, body, "Error Loading Data")
	assert.Contains(t, body, "statistics for timepoint t1 are not available yet")
	assert.NotContains(t, body, "debug-dump")
	assert.Contains(t, body, `class="stats-container d-none"`)
}

func TestPaneFragmentMalformedResponse(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.get(t, "/timepoints/t2/pane", true)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Network Error")
	assert.Contains(t, body, "stack-trace")
}

func TestPaneFragmentUnknownToBackend(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/timepoints/t3/pane", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unknown timepoint t3")
}

func TestPaneFragmentMissingPane(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/timepoints/t9/pane", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No tab pane for timepoint t9.")
}

func TestPaneFragmentBadID(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/timepoints/%20/pane", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaneJSON(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.get(t, "/api/timepoints/t0", false)
	require.Equal(t, http.StatusOK, w.Code)

	var state paneState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "t0", state.ID)
	assert.Equal(t, "success", state.Outcome)
	assert.NotEmpty(t, state.LoadID)
	assert.False(t, state.LoadingShown)
	assert.True(t, state.StatsShown)
	assert.False(t, state.ErrorShown)
	assert.True(t, state.DebugShown)
	assert.Contains(t, state.DebugInfo, `"raw_edge_stats"`)
	assert.Len(t, state.EdgeCoverage, 3)
	assert.Len(t, state.Original, len(timepoint.OriginalCategories))
	assert.Len(t, state.Biclique, len(timepoint.BicliqueCategories))

	w = env.get(t, "/api/timepoints/t1", false)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "failure", state.Outcome)
	assert.True(t, state.ErrorShown)
	assert.False(t, state.StatsShown)
	assert.Contains(t, state.ErrorHTML, "debug-dump")

	w = env.get(t, "/api/timepoints/t9", false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportWorkbook(t *testing.T) {
	env := newTestEnv(t, false)

	require.Equal(t, http.StatusOK, env.get(t, "/api/timepoints/t0", false).Code)

	w := env.get(t, "/timepoints/t0/export.xlsx", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "timepoint-t0.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetEdgeCoverage, sheetOriginal, sheetBiclique}, f.GetSheetList())

	label, err := f.GetCellValue(sheetEdgeCoverage, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Single coverage", label)
	coverage, err := f.GetCellValue(sheetEdgeCoverage, "B2")
	require.NoError(t, err)
	assert.Contains(t, coverage, "%)")

	rows, err := f.GetRows(sheetOriginal)
	require.NoError(t, err)
	assert.Len(t, rows, 1+len(timepoint.OriginalCategories))

	rows, err = f.GetRows(sheetBiclique)
	require.NoError(t, err)
	assert.Len(t, rows, 1+len(timepoint.BicliqueCategories))
}

func TestExportBeforeLoadHasPlaceholders(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/timepoints/t1/export.xlsx", false)
	require.Equal(t, http.StatusOK, w.Code)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(sheetOriginal, "B2")
	require.NoError(t, err)
	assert.Equal(t, "-", value)

	w = env.get(t, "/timepoints/t9/export.xlsx", false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaticStylesheet(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.get(t, "/static/css/tpstats.css", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".debug-info")

	assert.Contains(t, env.get(t, "/", false).Body.String(), `href="/static/css/tpstats.css"`)
}
