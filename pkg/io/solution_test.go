package io

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
)

func solved(t *testing.T) *fdm.Solution {
	t.Helper()
	sol, err := fdm.Solve(context.Background(), wantProblem())
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	return sol
}

func TestSolutionJSONRoundTrip(t *testing.T) {
	sol := solved(t)

	var buf bytes.Buffer
	if err := WriteSolutionJSON(sol, &buf); err != nil {
		t.Fatalf("WriteSolutionJSON() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"free_count": 2`) {
		t.Errorf("output missing free_count:\n%s", buf.String())
	}

	got, err := ReadSolutionJSON(&buf)
	if err != nil {
		t.Fatalf("ReadSolutionJSON() error: %v", err)
	}
	if !reflect.DeepEqual(got, sol) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, sol)
	}
}

func TestReadSolutionJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed", `{`},
		{"counts", `{"free_count": 2, "fixed_count": 1, "nodes": []}`},
		{"branch node", `{"free_count": 1, "fixed_count": 0, "nodes": [{"index": 0, "position": [0, 0, 0]}], "branches": [{"start": 0, "end": 4}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSolutionJSON(strings.NewReader(tt.src))
			if !apperr.Is(err, apperr.ErrCodeInvalidFormat) {
				t.Errorf("ReadSolutionJSON() error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestWriteOBJ(t *testing.T) {
	sol := solved(t)

	var buf bytes.Buffer
	if err := WriteOBJ(sol, &buf); err != nil {
		t.Fatalf("WriteOBJ() error: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "\nv "); got != len(sol.Nodes) {
		t.Errorf("vertex count = %d, want %d", got, len(sol.Nodes))
	}
	if got := strings.Count(out, "\nl "); got != len(sol.Lines) {
		t.Errorf("line count = %d, want %d", got, len(sol.Lines))
	}
	// Branch 1 joins free node 0 to the first support, vertex 3.
	if !strings.Contains(out, "\nl 1 3\n") {
		t.Errorf("output missing support bar:\n%s", out)
	}
}
