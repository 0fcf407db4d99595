package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	mwerrors "github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/history"
	pkgio "github.com/matzehuels/mazewalk/pkg/io"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
	"github.com/matzehuels/mazewalk/pkg/render"
)

// maxListLimit caps GET /api/v1/runs.
const maxListLimit = 200

// SolveRequest is the body of POST /api/v1/solve. Either Maze holds a maze
// in text form or the generator fields describe one to generate.
type SolveRequest struct {
	Maze string `json:"maze,omitempty"`

	Rows      int     `json:"rows,omitempty"`
	Cols      int     `json:"cols,omitempty"`
	Algorithm string  `json:"algorithm,omitempty"`
	Density   float64 `json:"density,omitempty"`
	Seed      uint64  `json:"seed,omitempty"`

	Strategies []string `json:"strategies,omitempty"`
	Format     string   `json:"format,omitempty"`
	Style      string   `json:"style,omitempty"`
}

// SolveResponse is returned by POST /api/v1/solve.
type SolveResponse struct {
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	MazeHash  string        `json:"maze_hash"`
	Algorithm string        `json:"algorithm,omitempty"`
	Seed      uint64        `json:"seed,omitempty"`
	Runs      []RunResponse `json:"runs"`
}

// RunResponse describes one strategy's run.
type RunResponse struct {
	ID         string  `json:"id,omitempty"`
	Strategy   string  `json:"strategy"`
	Found      bool    `json:"found"`
	Outcome    string  `json:"outcome"`
	Settled    int     `json:"settled"`
	Frontier   int     `json:"frontier"`
	DurationMS float64 `json:"duration_ms"`
	Render     string  `json:"render"`
}

// textFormats are the formats that can be embedded in a JSON string.
var textFormats = []render.Format{render.FormatText, render.FormatJSON, render.FormatSVG, render.FormatDOT}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req SolveRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, mwerrors.Wrap(mwerrors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	opts, format, err := req.pipelineOptions()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rows, cols := res.Maze.Dims()
	resp := SolveResponse{
		Rows:     rows,
		Cols:     cols,
		MazeHash: res.MazeHash,
		Runs:     make([]RunResponse, 0, len(res.Runs)),
	}
	if gen := res.Generator; gen != nil {
		resp.Algorithm = string(gen.Algorithm)
		resp.Seed = gen.Seed
	}
	for _, run := range res.Runs {
		rr := RunResponse{
			Strategy:   run.Search.Strategy.String(),
			Found:      run.Search.Found,
			Outcome:    outcome(run.Search.Found),
			Settled:    run.Search.Settled(),
			Frontier:   run.Search.Frontier(),
			DurationMS: float64(run.Search.Duration.Microseconds()) / 1000,
			Render:     string(run.Artifacts[string(format)]),
		}
		if run.Report != nil {
			rr.ID = run.Report.ID
		}
		resp.Runs = append(resp.Runs, rr)
	}
	writeJSON(w, http.StatusOK, resp)
}

// pipelineOptions validates the request and converts it.
func (req SolveRequest) pipelineOptions() (pipeline.Options, render.Format, error) {
	format := render.FormatText
	if req.Format != "" {
		f, err := render.ParseFormat(req.Format)
		if err != nil {
			return pipeline.Options{}, "", err
		}
		format = f
	}
	if !isTextFormat(format) {
		return pipeline.Options{}, "", mwerrors.New(mwerrors.ErrCodeInvalidFormat,
			"format %q cannot be returned inline (want text, json, svg or dot)", format)
	}

	opts := pipeline.Options{
		Strategies: req.Strategies,
		Formats:    []string{string(format)},
		Style:      req.Style,
	}
	if strings.TrimSpace(req.Maze) != "" {
		g, err := pkgio.ReadMaze(strings.NewReader(req.Maze))
		if err != nil {
			return pipeline.Options{}, "", err
		}
		opts.Grid = g
	} else {
		opts.Maze = maze.Options{
			Rows:      req.Rows,
			Cols:      req.Cols,
			Algorithm: maze.Algorithm(req.Algorithm),
			Density:   req.Density,
			Seed:      req.Seed,
		}
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, "", err
	}
	return opts, format, nil
}

func isTextFormat(f render.Format) bool {
	for _, t := range textFormats {
		if f == t {
			return true
		}
	}
	return false
}

func outcome(found bool) string {
	if found {
		return "solved!"
	}
	return "no solution!"
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	opts := history.ListOptions{Strategy: r.URL.Query().Get("strategy")}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, r, mwerrors.New(mwerrors.ErrCodeInvalidInput, "limit must be a positive integer, got %q", v))
			return
		}
		opts.Limit = min(n, maxListLimit)
	}

	runs, err := s.history.List(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if runs == nil {
		runs = []*history.Report{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	rep, err := s.history.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
