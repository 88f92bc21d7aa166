package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/matzehuels/msgprune/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"interrupted", context.Canceled, 130},
		{"interrupted mid-run", fmt.Errorf("run: %w", context.Canceled), 130},
		{"fatal", errors.New(errors.ErrCodeNotFound, "directory not found: %s", "messages"), 1},
		{"extras found", errors.New(errors.ErrCodeExtrasFound, "1 file(s) contain 2 extra key(s)"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
