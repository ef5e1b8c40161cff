package cracker_test

import (
	"context"
	"errors"
	"hashhush/internal/cracker"
	"hashhush/pkg/domain"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// prefixComparer matches every candidate starting with "match" and counts
// how many candidates it was asked about.
type prefixComparer struct {
	calls atomic.Int64
	// slow candidates sleep before answering
	slow map[string]time.Duration
}

func (p *prefixComparer) Algorithm() domain.Algorithm { return domain.AlgorithmMD5 }

func (p *prefixComparer) Compute(plaintext string) (string, error) { return plaintext, nil }

func (p *prefixComparer) Compare(_, plaintext string) (bool, error) {
	p.calls.Add(1)
	if d, ok := p.slow[plaintext]; ok {
		time.Sleep(d)
	}
	switch plaintext {
	case "fail":
		return false, errors.New("cannot evaluate")
	case "boom":
		panic("comparer exploded")
	}

	return strings.HasPrefix(plaintext, "match"), nil
}

func TestScan_FirstMatchWinsAndStops(t *testing.T) {
	c := &prefixComparer{}
	candidates := []string{"miss-0", "miss-1", "match-a", "match-b", "miss-2"}

	report := cracker.Scan(context.Background(), c, "target", candidates, cracker.ScanOptions{})
	require.Equal(t, cracker.StateFound, report.State)
	require.Equal(t, 2, report.Index)
	require.Equal(t, "match-a", report.Password)
	require.Equal(t, 3, report.Evaluated)
	require.Equal(t, int64(3), c.calls.Load(), "candidates after the match must not be evaluated")
}

func TestScan_ExhaustionEvaluatesEverything(t *testing.T) {
	candidates := []string{"a", "b", "c", "d", "e", "f", "g"}

	for _, workers := range []int{0, 1, 3, 16} {
		c := &prefixComparer{}
		report := cracker.Scan(context.Background(), c, "target", candidates,
			cracker.ScanOptions{Workers: workers, ProgressInterval: 2})
		require.Equal(t, cracker.StateExhausted, report.State, "workers=%d", workers)
		require.Equal(t, -1, report.Index)
		require.Empty(t, report.Password)
		require.Equal(t, len(candidates), report.Evaluated)
		require.Equal(t, int64(len(candidates)), c.calls.Load())
	}
}

func TestScan_Empty(t *testing.T) {
	report := cracker.Scan(context.Background(), &prefixComparer{}, "target", nil, cracker.ScanOptions{Workers: 4})
	require.Equal(t, cracker.StateExhausted, report.State)
	require.Zero(t, report.Evaluated)
}

func TestScan_CandidateErrorsAreSkipped(t *testing.T) {
	candidates := []string{"fail", "miss", "boom", "match-after-errors"}

	for _, workers := range []int{1, 2} {
		report := cracker.Scan(context.Background(), &prefixComparer{}, "target", candidates,
			cracker.ScanOptions{Workers: workers})
		require.Equal(t, cracker.StateFound, report.State, "workers=%d", workers)
		require.Equal(t, 3, report.Index)
		require.Equal(t, 2, report.Failed)
	}
}

func TestScan_ParallelKeepsSourceOrder(t *testing.T) {
	// worker 0 owns indices 0-1 and is slow to reach its match at index 1;
	// worker 3 owns indices 6-7 and matches immediately at index 6.
	candidates := []string{"miss-0", "match-early", "miss-2", "miss-3", "miss-4", "miss-5", "match-late", "miss-7"}
	c := &prefixComparer{slow: map[string]time.Duration{"match-early": 50 * time.Millisecond}}

	report := cracker.Scan(context.Background(), c, "target", candidates, cracker.ScanOptions{Workers: 4})
	require.Equal(t, cracker.StateFound, report.State)
	require.Equal(t, 1, report.Index)
	require.Equal(t, "match-early", report.Password)
}

func TestScan_ParallelMoreWorkersThanCandidates(t *testing.T) {
	report := cracker.Scan(context.Background(), &prefixComparer{}, "target",
		[]string{"miss", "match"}, cracker.ScanOptions{Workers: 32})
	require.Equal(t, cracker.StateFound, report.State)
	require.Equal(t, 1, report.Index)
}
