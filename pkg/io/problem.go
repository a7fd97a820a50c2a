package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

// problemFile is the encoding-neutral shape of a problem file.
type problemFile struct {
	Lines          []lineFile  `json:"lines" toml:"lines" hcl:"line,block"`
	ForceDensities []float64   `json:"force_densities,omitempty" toml:"force_densities,omitempty" hcl:"force_densities,optional"`
	Supports       [][]float64 `json:"supports" toml:"supports" hcl:"supports,optional"`
	Load           []float64   `json:"load,omitempty" toml:"load,omitempty" hcl:"load,optional"`
}

type lineFile struct {
	Start []float64 `json:"start" toml:"start" hcl:"start"`
	End   []float64 `json:"end" toml:"end" hcl:"end"`
	Q     *float64  `json:"q,omitempty" toml:"q,omitempty" hcl:"q,optional"`
}

// ReadProblem decodes a problem in the given format from r and validates it.
// ReadProblem does not close r.
func ReadProblem(r io.Reader, format Format) (fdm.Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return fdm.Problem{}, fmt.Errorf("read: %w", err)
	}

	var pf problemFile
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&pf); err != nil {
			return fdm.Problem{}, apperr.Wrap(apperr.ErrCodeInvalidProblem, err, "decode json")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&pf)
		if err != nil {
			return fdm.Problem{}, apperr.Wrap(apperr.ErrCodeInvalidProblem, err, "decode toml")
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return fdm.Problem{}, apperr.New(apperr.ErrCodeInvalidProblem, "decode toml: unknown key %q", extra[0].String())
		}
	case FormatHCL:
		if err := decodeHCL(data, &pf); err != nil {
			return fdm.Problem{}, err
		}
	default:
		return fdm.Problem{}, apperr.New(apperr.ErrCodeInvalidFormat, "unknown problem format %q", format)
	}

	p, err := pf.problem()
	if err != nil {
		return fdm.Problem{}, err
	}
	if err := p.Validate(); err != nil {
		return fdm.Problem{}, err
	}
	return p, nil
}

// ImportProblem reads the problem file at path, choosing the decoder from
// the file extension.
func ImportProblem(path string) (fdm.Problem, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return fdm.Problem{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fdm.Problem{}, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "open %s", path)
		}
		return fdm.Problem{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ReadProblem(f, format)
	if err != nil {
		return fdm.Problem{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WriteProblem encodes p in the given format. Densities are written per
// line. The output can be read back with [ReadProblem].
func WriteProblem(p fdm.Problem, w io.Writer, format Format) error {
	if err := p.Validate(); err != nil {
		return err
	}
	pf := fileFromProblem(p)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pf); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(pf); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case FormatHCL:
		return encodeHCL(pf, w)
	}
	return apperr.New(apperr.ErrCodeInvalidFormat, "unknown problem format %q", format)
}

// WriteProblemTOML encodes p as TOML.
func WriteProblemTOML(p fdm.Problem, w io.Writer) error {
	return WriteProblem(p, w, FormatTOML)
}

// ExportProblem writes p to path, choosing the encoding from the extension.
func ExportProblem(p fdm.Problem, path string) error {
	if err := apperr.ValidateOutputPath(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteProblem(p, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (pf problemFile) problem() (fdm.Problem, error) {
	var p fdm.Problem

	perLine := 0
	for _, l := range pf.Lines {
		if l.Q != nil {
			perLine++
		}
	}
	if perLine > 0 && len(pf.ForceDensities) > 0 {
		return p, apperr.New(apperr.ErrCodeInvalidInput,
			"force densities given both per line and as force_densities")
	}
	if perLine > 0 && perLine < len(pf.Lines) {
		for i, l := range pf.Lines {
			if l.Q == nil {
				return p, apperr.New(apperr.ErrCodeMissingInput, "line %d has no force density q", i)
			}
		}
	}

	p.Lines = make([]geom.Line, len(pf.Lines))
	for i, l := range pf.Lines {
		start, err := geom.FromSlice(l.Start)
		if err != nil {
			return p, apperr.Wrap(apperr.ErrCodeInvalidProblem, err, "line %d start", i)
		}
		end, err := geom.FromSlice(l.End)
		if err != nil {
			return p, apperr.Wrap(apperr.ErrCodeInvalidProblem, err, "line %d end", i)
		}
		p.Lines[i] = geom.Ln(start, end)
	}

	if perLine > 0 {
		p.ForceDensities = make([]float64, len(pf.Lines))
		for i, l := range pf.Lines {
			p.ForceDensities[i] = *l.Q
		}
	} else {
		p.ForceDensities = pf.ForceDensities
	}

	p.Supports = make([]geom.Point, len(pf.Supports))
	for i, s := range pf.Supports {
		pt, err := geom.FromSlice(s)
		if err != nil {
			return p, apperr.Wrap(apperr.ErrCodeInvalidProblem, err, "support %d", i)
		}
		p.Supports[i] = pt
	}

	if pf.Load != nil {
		load, err := geom.FromSlice(pf.Load)
		if err != nil {
			return p, apperr.Wrap(apperr.ErrCodeInvalidProblem, err, "load")
		}
		p.Load = &load
	}
	return p, nil
}

func fileFromProblem(p fdm.Problem) problemFile {
	pf := problemFile{
		Lines:    make([]lineFile, len(p.Lines)),
		Supports: make([][]float64, len(p.Supports)),
	}
	for i, l := range p.Lines {
		q := p.ForceDensities[i]
		pf.Lines[i] = lineFile{Start: coords(l.Start), End: coords(l.End), Q: &q}
	}
	for i, s := range p.Supports {
		pf.Supports[i] = coords(s)
	}
	if p.Load != nil {
		pf.Load = coords(*p.Load)
	}
	return pf
}

func coords(p geom.Point) []float64 {
	a := p.Array()
	return a[:]
}
