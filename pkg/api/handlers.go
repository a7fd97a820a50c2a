package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Glenn-jpg/MasterNTNU/pkg/buildinfo"
	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	fdmio "github.com/Glenn-jpg/MasterNTNU/pkg/io"
	"github.com/Glenn-jpg/MasterNTNU/pkg/pipeline"
)

// Response headers set on successful solves.
const (
	HeaderRunID    = "X-Run-ID"
	HeaderCache    = "X-Cache"
	HeaderResidual = "X-Residual"
)

type healthBody struct {
	Status  string         `json:"status"`
	Version string         `json:"version"`
	Build   buildinfo.Info `json:"build"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{
		Status:  "ok",
		Version: buildinfo.Version,
		Build:   buildinfo.Get(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.counters.Snapshot())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts, format, err := parseSolveQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	p, err := fdmio.ReadProblem(body, fdmio.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts.Logger = s.logger
	res, err := s.runner.Execute(r.Context(), p, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", pipeline.ContentType(format))
	h.Set(HeaderRunID, res.ID)
	h.Set(HeaderCache, cacheStatus(res.CacheInfo))
	h.Set(HeaderResidual, strconv.FormatFloat(res.Stats.Residual, 'g', -1, 64))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// parseSolveQuery reads pipeline options from the query string. Exactly one
// output format is served per request.
func parseSolveQuery(q url.Values) (pipeline.Options, string, error) {
	var opts pipeline.Options

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, "", err
	}
	opts.Formats = []string{format}
	opts.Method = q.Get("method")
	opts.Plane = q.Get("plane")

	var err error
	if opts.Tolerance, err = floatParam(q, "tolerance"); err != nil {
		return opts, "", err
	}
	if opts.Width, err = floatParam(q, "width"); err != nil {
		return opts, "", err
	}
	if opts.HideInput, err = boolParam(q, "hide_input"); err != nil {
		return opts, "", err
	}
	if opts.Detailed, err = boolParam(q, "detailed"); err != nil {
		return opts, "", err
	}
	if opts.Refresh, err = boolParam(q, "refresh"); err != nil {
		return opts, "", err
	}
	return opts, format, opts.ValidateAndSetDefaults()
}

func floatParam(q url.Values, name string) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "%s: not a number: %q", name, v)
	}
	return f, nil
}

func boolParam(q url.Values, name string) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, apperr.New(apperr.ErrCodeInvalidInput, "%s: not a boolean: %q", name, v)
	}
	return b, nil
}

func cacheStatus(ci pipeline.CacheInfo) string {
	switch {
	case ci.SolveHit && ci.RenderHit:
		return "hit"
	case ci.SolveHit:
		return "partial"
	}
	return "miss"
}

// statusCode maps an error to its HTTP status.
func statusCode(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case apperr.IsInputError(err):
		return http.StatusBadRequest
	case apperr.Is(err, apperr.ErrCodeSingularSystem):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusCode(err)
	code := string(apperr.GetCode(err))
	switch {
	case status == http.StatusRequestEntityTooLarge:
		code = "TOO_LARGE"
	case code == "":
		code = string(apperr.ErrCodeInternal)
	}

	if status >= 500 {
		s.logger.Error("solve failed", "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("rejected request", "path", r.URL.Path, "code", code)
	}
	writeJSON(w, status, errorBody{Code: code, Message: apperr.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
