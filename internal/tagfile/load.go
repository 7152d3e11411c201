package tagfile

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/phobologic/scopelist/internal/model"
)

// LoadAll reads and parses every file in paths concurrently. The result is
// indexed like paths so callers can fold records in argument order. The
// first failure cancels the remaining reads.
func LoadAll(ctx context.Context, paths []string, opts Options) ([][]model.Record, error) {
	results := make([][]model.Record, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := ReadFile(path)
			if err != nil {
				return err
			}
			records, err := Parse(data, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if opts.Logger != nil {
				opts.Logger.Debug("parsed tags file", "path", path, "records", len(records))
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
