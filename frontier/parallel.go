package frontier

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stoned/model"
)

// AssembleAll assembles one model per configuration over the same dataset,
// at most WithParallelism at a time. Results keep the order of cfgs. The
// first failure cancels the remaining work and is returned wrapped with
// the index of its configuration.
func AssembleAll(ctx context.Context, data Data, cfgs []Config, opts ...Option) ([]*model.Model, error) {
	o := gatherOptions(opts...)
	out := make([]*model.Model, len(cfgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for i, cfg := range cfgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := Assemble(data, cfg, opts...)
			if err != nil {
				return fmt.Errorf("config %d: %w", i, err)
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
