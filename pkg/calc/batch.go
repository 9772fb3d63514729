package calc

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one expression in a batch.
type Result struct {
	Expr   string // the expression as submitted
	Output string // textual result, or the error description
	Ok     bool   // false when the result is an error token
}

// EvaluateAll evaluates every expression concurrently on this evaluator,
// limited to jobs goroutines (GOMAXPROCS when jobs <= 0). Results keep the
// input order; each slot is written by exactly one goroutine, so no mutex is
// needed. Evaluation is reentrant because all pipeline buffers are
// call-local; the registry must not be mutated while a batch runs.
func (e *Evaluator) EvaluateAll(ctx context.Context, exprs []string, jobs int) ([]Result, error) {
	if len(exprs) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(exprs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(exprs)))

	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			ok, out := e.TryEvaluate(expr)
			results[i] = Result{Expr: expr, Output: out, Ok: ok}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
