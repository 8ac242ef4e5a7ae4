package assessor

import (
	"context"
	"log/slog"
	"sync"
)

// AssessBatch assesses a slice of passwords with up to Config.MaxConcurrent
// workers, preserving input order. Evaluation itself cannot fail; the only
// error is ctx.Err() when the context is cancelled before all passwords have
// been dispatched.
func (a *assessor) AssessBatch(ctx context.Context, passwords []string) ([]Result, error) {
	if len(passwords) == 0 {
		return nil, nil
	}

	maxConcurrent := a.config.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	slog.Debug("assessing password batch",
		"batch_size", len(passwords),
		"max_concurrent", maxConcurrent)
	a.metrics.RecordBatchSize(len(passwords))

	results := make([]Result, len(passwords))
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i, password := range passwords {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}

		wg.Add(1)
		a.metrics.RecordConcurrentAssessments(1)
		go func(i int, password string) {
			defer wg.Done()
			defer func() {
				<-sem
				a.metrics.RecordConcurrentAssessments(-1)
			}()
			results[i] = a.Assess(password)
		}(i, password)
	}
	wg.Wait()

	slog.Debug("password batch assessed", "batch_size", len(passwords))
	return results, nil
}
