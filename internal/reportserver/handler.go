package reportserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ChenyuHeee/AIOPS/internal/report"
	"github.com/ChenyuHeee/AIOPS/internal/scoring"
	"github.com/ChenyuHeee/AIOPS/internal/store"
)

// defaultListLimit caps the index page when no limit is requested.
const defaultListLimit = 50

// RunSource reads recorded runs.
type RunSource interface {
	ListRuns(ctx context.Context, limit int) ([]store.Run, error)
	LoadRun(ctx context.Context, id string) (store.Run, scoring.Result, error)
}

// NewHandler builds the HTTP handler for the run index, per-run pages and
// the raw database download.
func NewHandler(dbPath string, runs RunSource, logger *zap.SugaredLogger) (http.Handler, error) {
	if dbPath == "" {
		return nil, errors.New("reportserver: db path is required")
	}
	if runs == nil {
		return nil, errors.New("reportserver: run source is required")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	h := &handler{runs: runs, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.serveIndex)
	mux.HandleFunc("GET /runs/{id}", h.serveRun)
	mux.HandleFunc("GET /runs/{id}/report.json", h.serveRunJSON)
	mux.Handle("/data/history.duckdb", serveDatabase(dbPath))
	return mux, nil
}

type handler struct {
	runs   RunSource
	logger *zap.SugaredLogger
}

// serveIndex lists recent runs, newest first.
func (h *handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	runs, err := h.runs.ListRuns(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexPage(runs).Render(r.Context(), w); err != nil {
		h.logger.Warnw("render index", "error", err)
	}
}

// serveRun renders the HTML report of one run.
func (h *handler) serveRun(w http.ResponseWriter, r *http.Request) {
	run, result, ok := h.loadRun(w, r)
	if !ok {
		return
	}
	page := report.Page{
		Title:           "Run " + run.ID,
		RunID:           run.ID,
		Label:           run.Label,
		GroundTruth:     run.GroundTruth,
		Submission:      run.Submission,
		ReasonThreshold: run.ReasonThreshold,
		GeneratedAt:     run.CreatedAt,
		Result:          result,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.ReportPage(page).Render(r.Context(), w); err != nil {
		h.logger.Warnw("render run", "run", run.ID, "error", err)
	}
}

// serveRunJSON writes the run result in the JSON report shape.
func (h *handler) serveRunJSON(w http.ResponseWriter, r *http.Request) {
	_, result, ok := h.loadRun(w, r)
	if !ok {
		return
	}
	if result.Samples == nil {
		result.Samples = []scoring.SampleScore{}
	}
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		h.logger.Warnw("encode run", "error", err)
	}
}

func (h *handler) loadRun(w http.ResponseWriter, r *http.Request) (store.Run, scoring.Result, bool) {
	id := r.PathValue("id")
	run, result, err := h.runs.LoadRun(r.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		http.Error(w, "run not found", http.StatusNotFound)
		return store.Run{}, scoring.Result{}, false
	}
	if err != nil {
		h.fail(w, r, err)
		return store.Run{}, scoring.Result{}, false
	}
	return run, result, true
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Errorw("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// serveDatabase serves the DuckDB file from disk for offline analysis.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}
