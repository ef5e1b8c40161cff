// Package digest computes and compares digests under a named algorithm.
//
// Fixed-output algorithms (the MD5, SHA and RIPEMD families and Whirlpool)
// are pure functions of the plaintext: a candidate matches a target when
// the lowercase hex digests are equal, ignoring case. Adaptive algorithms
// (bcrypt) embed a random salt in every digest, so a candidate is checked
// with the algorithm's verify primitive against the target instead. Both
// variants sit behind Comparer so callers never branch on the difference.
package digest

import (
	"hashhush/pkg/domain"
	"hashhush/pkg/serrors"
)

// Comparer computes digests for one algorithm and tests candidates against
// a target digest.
type Comparer interface {
	// Algorithm returns the algorithm this comparer implements.
	Algorithm() domain.Algorithm
	// Compute returns the digest of plaintext.
	Compute(plaintext string) (string, error)
	// Compare reports whether plaintext produces target.
	Compare(target, plaintext string) (bool, error)
}

// Options tune the adaptive comparers.
type Options struct {
	// BcryptCost is the work factor used when generating bcrypt digests.
	// Zero selects DefaultBcryptCost.
	BcryptCost int
}

// For returns the comparer for alg using default options.
func For(alg domain.Algorithm) (Comparer, error) {
	return ForWithOptions(alg, Options{})
}

// ForWithOptions returns the comparer for alg. It fails with
// serrors.ErrUnsupportedAlgorithm for AlgorithmUnknown and for names
// outside the supported set.
func ForWithOptions(alg domain.Algorithm, opts Options) (Comparer, error) {
	switch alg {
	case domain.AlgorithmMD5, domain.AlgorithmSHA1, domain.AlgorithmSHA224, domain.AlgorithmSHA256,
		domain.AlgorithmSHA384, domain.AlgorithmSHA512, domain.AlgorithmRIPEMD160, domain.AlgorithmWhirlpool:
		return fixed{alg: alg, newHash: fixedHashes[alg]}, nil
	case domain.AlgorithmBcrypt:
		return newBcrypt(opts.BcryptCost), nil
	case domain.AlgorithmUnknown:
		return nil, serrors.With(serrors.ErrUnsupportedAlgorithm, "cannot compute digests for an unknown algorithm")
	default:
		return nil, serrors.With(serrors.ErrUnsupportedAlgorithm, "unsupported algorithm %q", string(alg))
	}
}

// Compute returns the digest of plaintext under alg.
func Compute(plaintext string, alg domain.Algorithm) (string, error) {
	c, err := For(alg)
	if err != nil {
		return "", err
	}

	return c.Compute(plaintext)
}

// Compare reports whether plaintext produces target under alg.
func Compare(target, plaintext string, alg domain.Algorithm) (bool, error) {
	c, err := For(alg)
	if err != nil {
		return false, err
	}

	return c.Compare(target, plaintext)
}
