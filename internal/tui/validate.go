// ABOUTME: Pre-flight validation for the configured vector file.
// ABOUTME: Probes the first line to confirm the file parses and matches the expected dimension.
package tui

import (
	"context"
	"fmt"

	"github.com/2389-research/glovebox/internal/config"
	"github.com/2389-research/glovebox/internal/embeddings"
)

// ValidateVectors checks that path exists and parses as a vector file, and
// that its dimension matches dim when dim > 0. Only the first line is read,
// so multi-gigabyte files validate instantly. The context allows
// cancellation when the user quits during validation.
func ValidateVectors(ctx context.Context, path string, dim int) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}

	type probeResult struct {
		dim int
		err error
	}

	// ProbeFile has no context hook, so run it in a goroutine and let the
	// select abandon it on cancellation.
	ch := make(chan probeResult, 1)
	go func() {
		d, err := embeddings.ProbeFile(expanded)
		ch <- probeResult{dim: d, err: err}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		// The probe may race a cancellation; cancellation wins
		if err := ctx.Err(); err != nil {
			return err
		}
		if res.err != nil {
			return res.err
		}
		if dim > 0 && res.dim != dim {
			return fmt.Errorf("vectors are %d-dimensional, expected %d", res.dim, dim)
		}
		return nil
	}
}
