package io

import (
	"context"
	"path/filepath"
	"testing"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
)

// The repository ships example problems in every supported format.
func TestExampleProblems(t *testing.T) {
	tests := []struct {
		file     string
		lines    int
		supports int
	}{
		{"cable_net.toml", 4, 4},
		{"arch.hcl", 5, 2},
		{"hanging_chain.json", 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p, err := ImportProblem(filepath.Join("..", "..", "examples", tt.file))
			if err != nil {
				t.Fatalf("ImportProblem() error: %v", err)
			}
			if len(p.Lines) != tt.lines || len(p.Supports) != tt.supports {
				t.Errorf("%d lines, %d supports, want %d and %d",
					len(p.Lines), len(p.Supports), tt.lines, tt.supports)
			}
		})
	}
}

func TestExampleArchNeedsLU(t *testing.T) {
	p, err := ImportProblem(filepath.Join("..", "..", "examples", "arch.hcl"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = fdm.Solve(context.Background(), p)
	if !apperr.Is(err, apperr.ErrCodeSingularSystem) {
		t.Errorf("Cholesky on a compression-only arch: error = %v, want SINGULAR_SYSTEM", err)
	}

	sol, err := fdm.Solve(context.Background(), p, fdm.WithMethod(fdm.MethodLU))
	if err != nil {
		t.Fatalf("LU solve: %v", err)
	}
	for _, n := range sol.Nodes[:sol.FreeCount] {
		if n.Position.Z <= 0 {
			t.Errorf("arch node %d at z = %g, want above the supports", n.Index, n.Position.Z)
		}
	}
}
