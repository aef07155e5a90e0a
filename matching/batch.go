// SPDX-License-Identifier: MIT

package matching

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kmatch/matrix"
)

// MaxWeightAll solves independent weight matrices concurrently.
//
// Each matrix gets its own solver; nothing is shared between solves, so the
// results are identical to calling MaxWeight on each one in turn. At most
// limit solves run at once (limit <= 0 means GOMAXPROCS).
//
// Behavior highlights:
//   - out[i] is the result for ws[i].
//   - The first failing item cancels solves that have not started yet; a solve
//     already running always finishes. On error no results are returned.
//   - ctx is checked before each solve starts, never inside one.
//
// Errors:
//   - any MaxWeight error, prefixed with the item index; ctx.Err() on cancellation.
func MaxWeightAll(ctx context.Context, ws []matrix.Matrix, limit int, opts ...Option) ([]*Result, error) {
	o := gatherOptions(opts)
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	out := make([]*Result, len(ws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, w := range ws {
		if gctx.Err() != nil {
			break
		}
		i, w := i, w
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := maxWeight(w, o)
			if err != nil {
				return fmt.Errorf("matching: item %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
