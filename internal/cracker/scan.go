package cracker

import (
	"context"
	"hashhush/pkg/digest"
	"hashhush/pkg/logger"
	"hashhush/pkg/serrors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// ScanState is the terminal state of a dictionary scan. A scan only starts
// once the algorithm is known to be valid, so it cannot abort; invalid input
// is rejected by Crack before scanning.
type ScanState string

const (
	// StateFound means a candidate matched the target.
	StateFound ScanState = "FOUND"
	// StateExhausted means every candidate was evaluated without a match.
	StateExhausted ScanState = "EXHAUSTED"
)

// ScanOptions tune a single scan.
type ScanOptions struct {
	// Workers above 1 split the candidates into that many contiguous ranges
	// scanned concurrently.
	Workers int
	// ProgressInterval logs progress every N evaluated candidates; zero disables it.
	ProgressInterval int
}

// ScanReport describes a finished scan. Index and Password are only
// meaningful when State is StateFound.
type ScanReport struct {
	State     ScanState
	Index     int
	Password  string
	Evaluated int
	Failed    int
}

// Scan tests candidates against target and reports the match with the
// lowest index. The sequential scan stops at the first match; the parallel
// scan may evaluate a few candidates past it but never reports a later one.
// A candidate whose evaluation fails is logged and skipped.
func Scan(ctx context.Context, c digest.Comparer, target string, candidates []string,
	opts ScanOptions) ScanReport {
	if len(candidates) == 0 {
		return ScanReport{State: StateExhausted, Index: -1}
	}

	if opts.Workers > 1 && len(candidates) > 1 {
		return scanParallel(ctx, c, target, candidates, opts)
	}

	return scanSequential(ctx, c, target, candidates, opts)
}

func scanSequential(ctx context.Context, c digest.Comparer, target string, candidates []string,
	opts ScanOptions) ScanReport {
	report := ScanReport{State: StateExhausted, Index: -1}

	for i, candidate := range candidates {
		ok, err := evaluate(c, target, candidate)
		report.Evaluated++
		logProgress(ctx, opts.ProgressInterval, report.Evaluated, len(candidates))
		if err != nil {
			report.Failed++
			logCandidateError(ctx, i, err)

			continue
		}
		if ok {
			report.State = StateFound
			report.Index = i
			report.Password = candidate

			return report
		}
	}

	return report
}

func scanParallel(ctx context.Context, c digest.Comparer, target string, candidates []string,
	opts ScanOptions) ScanReport {
	n := len(candidates)
	workers := min(opts.Workers, n)
	chunk := (n + workers - 1) / workers

	// best holds the lowest matching index seen so far, n while none matched.
	var best atomic.Int64
	best.Store(int64(n))

	var evaluated, failed atomic.Int64

	// workers never fail: candidate errors are counted and skipped
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)

		wg.Go(func() {
			for i := start; i < end; i++ {
				// a lower index already matched; nothing in this range can win
				if int64(i) >= best.Load() {
					return
				}

				ok, err := evaluate(c, target, candidates[i])
				logProgress(ctx, opts.ProgressInterval, int(evaluated.Add(1)), n)
				if err != nil {
					failed.Add(1)
					logCandidateError(ctx, i, err)

					continue
				}
				if ok {
					lowerTo(&best, int64(i))

					return
				}
			}
		})
	}
	wg.Wait()

	report := ScanReport{
		State:     StateExhausted,
		Index:     -1,
		Evaluated: int(evaluated.Load()),
		Failed:    int(failed.Load()),
	}
	if idx := int(best.Load()); idx < n {
		report.State = StateFound
		report.Index = idx
		report.Password = candidates[idx]
	}

	return report
}

// lowerTo stores v into a if it is lower than the current value.
func lowerTo(a *atomic.Int64, v int64) {
	for {
		cur := a.Load()
		if v >= cur || a.CompareAndSwap(cur, v) {
			return
		}
	}
}

// evaluate compares one candidate, turning failures and panics of the
// underlying primitive into candidate evaluation errors.
func evaluate(c digest.Comparer, target, candidate string) (ok bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			ok = false
			err = serrors.With(serrors.ErrCandidateEvaluation, "panic while comparing candidate: %v", p)
		}
	}()

	ok, err = c.Compare(target, candidate)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrCandidateEvaluation, err, "could not compare candidate")
	}

	return ok, nil
}

func logCandidateError(ctx context.Context, index int, err error) {
	logger.Warn(ctx, "skipping candidate", zap.Int("index", index), zap.Error(err))
}

func logProgress(ctx context.Context, interval, evaluated, total int) {
	if interval <= 0 || evaluated%interval != 0 {
		return
	}

	logger.Debug(ctx, "scan progress", zap.Int("tested", evaluated), zap.Int("total", total))
}
