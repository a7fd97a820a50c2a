// Package pipeline runs the solve → render pipeline shared by the CLI and
// the HTTP API.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Solve: Find the equilibrium shape of a force density problem
//  2. Render: Produce artifacts from the solution (SVG, PNG, PDF, JSON, OBJ, DOT)
//
// Each stage is cached by content hash, so solving the same problem with the
// same options twice costs one cache lookup. Cache failures are logged and
// treated as misses.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, problem, pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	    Plane:   "xz",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	sol, hit, err := runner.Solve(ctx, problem, opts)
//	artifacts, hit, err := runner.Render(ctx, problem, sol, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Glenn-jpg/MasterNTNU/pkg/cache"
	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	"github.com/Glenn-jpg/MasterNTNU/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultTolerance is the node coincidence tolerance.
	DefaultTolerance = fdm.DefaultTolerance

	// DefaultMethod is the direct solver for D_N.
	DefaultMethod = string(fdm.MethodCholesky)

	// DefaultPlane is the projection plane of the SVG plot.
	DefaultPlane = string(render.DefaultPlane)

	// DefaultWidth is the SVG plot width in pixels.
	DefaultWidth = 800.0

	// DefaultPNGScale is the rsvg-convert zoom factor for PNG output.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG         = "svg"
	FormatPNG         = "png"
	FormatPDF         = "pdf"
	FormatJSON        = "json"
	FormatOBJ         = "obj"
	FormatDOT         = "dot"
	FormatTopologySVG = "topology-svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:         true,
	FormatPNG:         true,
	FormatPDF:         true,
	FormatJSON:        true,
	FormatOBJ:         true,
	FormatDOT:         true,
	FormatTopologySVG: true,
}

// FormatNames lists the output formats in display order.
var FormatNames = []string{FormatJSON, FormatSVG, FormatPNG, FormatPDF, FormatOBJ, FormatDOT, FormatTopologySVG}

// FormatExtension returns the file extension used when writing format.
func FormatExtension(format string) string {
	if format == FormatTopologySVG {
		return ".topology.svg"
	}
	return "." + format
}

// ContentType returns the MIME type of an artifact format.
func ContentType(format string) string {
	switch format {
	case FormatSVG, FormatTopologySVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatOBJ:
		return "model/obj"
	case FormatDOT:
		return "text/vnd.graphviz"
	}
	return "application/octet-stream"
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Solve options
	Tolerance  float64 `json:"tolerance,omitempty"`
	Method     string  `json:"method,omitempty"`
	Sequential bool    `json:"sequential,omitempty"`
	Refresh    bool    `json:"refresh,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Plane     string   `json:"plane,omitempty"`
	Width     float64  `json:"width,omitempty"`
	HideInput bool     `json:"hide_input,omitempty"`
	Detailed  bool     `json:"detailed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies the run in logs and API responses.
	ID string

	// Problem is the solved input.
	Problem fdm.Problem

	// ProblemHash is the content hash of the problem.
	ProblemHash string

	// Solution is the equilibrium.
	Solution *fdm.Solution

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount   int
	FreeCount   int
	BranchCount int
	LineCount   int
	Residual    float64
	SolveTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // Whether the solution came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMethod checks that a solve method is valid.
func ValidateMethod(method string) error {
	if !fdm.ValidMethods[fdm.Method(method)] {
		return apperr.New(apperr.ErrCodeInvalidFormat,
			"invalid method: %q (must be one of: cholesky, lu)", method)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSolve validates and sets defaults for the solve stage.
func (o *Options) ValidateForSolve() error {
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Method == "" {
		o.Method = DefaultMethod
	}
	o.Method = strings.ToLower(o.Method)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := apperr.ValidateTolerance(o.Tolerance); err != nil {
		return err
	}
	return ValidateMethod(o.Method)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Plane == "" {
		o.Plane = DefaultPlane
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	plane, err := render.ParsePlane(o.Plane)
	if err != nil {
		return err
	}
	o.Plane = string(plane)
	if o.Width < 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "width must be positive, got %g", o.Width)
	}
	return nil
}

// SolveOptions converts the options into solver options.
func (o *Options) SolveOptions() []fdm.Option {
	opts := []fdm.Option{
		fdm.WithTolerance(o.Tolerance),
		fdm.WithMethod(fdm.Method(o.Method)),
	}
	if o.Sequential {
		opts = append(opts, fdm.WithSequentialAxes())
	}
	if o.Logger != nil {
		opts = append(opts, fdm.WithLogger(o.Logger))
	}
	return opts
}

// SolveKeyOpts returns cache key options for the solve stage.
func (o *Options) SolveKeyOpts() cache.SolveKeyOpts {
	return cache.SolveKeyOpts{Tolerance: o.Tolerance, Method: o.Method}
}

// ArtifactKeyOpts returns cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	ko := cache.ArtifactKeyOpts{Format: format, Detailed: o.Detailed}
	switch format {
	case FormatSVG, FormatPNG, FormatPDF:
		ko.Plane = o.Plane
		ko.Width = o.Width
		ko.HideInput = o.HideInput
	}
	return ko
}
