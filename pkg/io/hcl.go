package io

import (
	"io"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
)

// hclFilename tells hclsimple to use native HCL syntax.
const hclFilename = "problem.hcl"

// evalContext exposes a few arithmetic helpers to HCL problem files so
// coordinates can be written as expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
		},
		Functions: map[string]function.Function{
			"abs":   stdlib.AbsoluteFunc,
			"ceil":  stdlib.CeilFunc,
			"floor": stdlib.FloorFunc,
			"max":   stdlib.MaxFunc,
			"min":   stdlib.MinFunc,
			"pow":   stdlib.PowFunc,
		},
	}
}

func decodeHCL(data []byte, pf *problemFile) error {
	if err := hclsimple.Decode(hclFilename, data, evalContext(), pf); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidProblem, err, "decode hcl")
	}
	return nil
}

func encodeHCL(pf problemFile, w io.Writer) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	supports := make([]cty.Value, len(pf.Supports))
	for i, s := range pf.Supports {
		supports[i] = tupleOf(s)
	}
	body.SetAttributeValue("supports", cty.TupleVal(supports))
	if pf.Load != nil {
		body.SetAttributeValue("load", tupleOf(pf.Load))
	}

	for _, l := range pf.Lines {
		body.AppendNewline()
		b := body.AppendNewBlock("line", nil).Body()
		b.SetAttributeValue("start", tupleOf(l.Start))
		b.SetAttributeValue("end", tupleOf(l.End))
		if l.Q != nil {
			b.SetAttributeValue("q", cty.NumberFloatVal(*l.Q))
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "encode hcl")
	}
	return nil
}

func tupleOf(v []float64) cty.Value {
	vals := make([]cty.Value, len(v))
	for i, x := range v {
		vals[i] = cty.NumberFloatVal(x)
	}
	return cty.TupleVal(vals)
}
