package serrors_test

import (
	"errors"
	"fmt"
	"hashhush/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrMissingInput,
		serrors.ErrUnsupportedAlgorithm,
		serrors.ErrAlgorithmUndetectable,
		serrors.ErrCandidateEvaluation,
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("invalid salt")

	e1 := serrors.With(serrors.ErrUnsupportedAlgorithm, "unsupported algorithm %q", "crc32")
	require.Equal(t, `unsupported algorithm "crc32"`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrCandidateEvaluation, base, "candidate %d", 7)
	require.Equal(t, "candidate 7: invalid salt", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrMissingInput)
	require.Equal(t, "MISSING_INPUT", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrCandidateEvaluation, base, "comparing")

	require.ErrorIs(t, e, serrors.ErrCandidateEvaluation)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrMissingInput)

	// kinds survive further wrapping with fmt.Errorf
	wrapped := fmt.Errorf("crack: %w", serrors.KindOnly(serrors.ErrAlgorithmUndetectable))
	require.ErrorIs(t, wrapped, serrors.ErrAlgorithmUndetectable)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnsupportedAlgorithm, base, "dispatch")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrUnsupportedAlgorithm, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrMissingInput, serrors.KindOf(serrors.With(serrors.ErrMissingInput, "hash is required")))
	require.Equal(t, serrors.ErrRateLimited, serrors.KindOf(fmt.Errorf("x: %w", serrors.KindOnly(serrors.ErrRateLimited))))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("boom")))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}
