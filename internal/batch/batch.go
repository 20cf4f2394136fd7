// Package batch derives icons for many seeds in parallel.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"identicon/internal/dot"
)

// Deriver produces the icon for one seed.
type Deriver interface {
	Derive(seed []byte) dot.Icon
}

// DeriverFunc adapts a plain function such as dot.Derive.
type DeriverFunc func(seed []byte) dot.Icon

func (f DeriverFunc) Derive(seed []byte) dot.Icon {
	return f(seed)
}

// Derive runs d over seeds with at most workers goroutines and returns the
// icons in input order. workers <= 0 means one per CPU.
func Derive(ctx context.Context, d Deriver, seeds [][]byte, workers int) ([]dot.Icon, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	icons := make([]dot.Icon, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		if gctx.Err() != nil {
			break
		}
		i, seed := i, seed // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			icons[i] = d.Derive(seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return icons, nil
}
