package builder

import (
	"context"
	"sync"

	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/params"
)

// Result is the outcome of one build in a sweep.
type Result struct {
	Options battery.Options
	Model   *battery.Model
	Err     error
}

// BuildAll composes one model per option set concurrently. Each build
// owns its own registry and workspace; the parameter set is shared
// read-only. Results keep the input order. A canceled context marks the
// remaining builds failed without starting them.
func BuildAll(ctx context.Context, optionSets []battery.Options, p *params.Set) []Result {
	results := make([]Result, len(optionSets))

	var wg sync.WaitGroup
	for i, opts := range optionSets {
		wg.Add(1)
		go func(idx int, opts battery.Options) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[idx] = Result{Options: opts, Err: err}
				return
			}

			m, err := Build(opts, p)
			results[idx] = Result{Options: opts, Model: m, Err: err}
		}(i, opts)
	}
	wg.Wait()

	return results
}
