package core

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ExtractAll extracts tagged comments from many files concurrently.
// Worker count defaults to the CPU count and never exceeds the number
// of files. Files with no matches are omitted from the result map.
// With ignoreErrors set, per-file failures are skipped instead of
// failing the whole pass.
func ExtractAll(ctx context.Context, files []string, workers int, opts Options, ignoreErrors bool) (map[string][]Comment, error) {
	results := make(map[string][]Comment)
	if len(files) == 0 {
		return results, nil
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, file := range files {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			cmts, err := ExtractComments(file, opts)
			if err != nil {
				if ignoreErrors {
					return nil
				}
				return err
			}
			if len(cmts) > 0 {
				mu.Lock()
				results[file] = cmts
				mu.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
