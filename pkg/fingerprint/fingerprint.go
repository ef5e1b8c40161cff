// Package fingerprint classifies digest strings by their structure.
//
// Classification is a single deterministic pass over a fixed, ordered
// pattern table; the first matching pattern wins. Some algorithms share a
// shape: SHA-1 and RIPEMD-160 digests are both 40 hex characters, SHA-512
// and Whirlpool both 128. For these pairs the earlier table entry (sha1,
// sha512) is reported; Candidates exposes every structural match.
package fingerprint

import (
	"hashhush/pkg/domain"
	"regexp"
)

type pattern struct {
	algorithm domain.Algorithm
	re        *regexp.Regexp
}

// patterns is scanned top to bottom. ripemd160 and whirlpool never win
// Identify because sha1 and sha512 precede them with identical shapes.
var patterns = []pattern{ //nolint: gochecknoglobals
	{domain.AlgorithmMD5, regexp.MustCompile(`^[a-fA-F0-9]{32}$`)},
	{domain.AlgorithmSHA1, regexp.MustCompile(`^[a-fA-F0-9]{40}$`)},
	{domain.AlgorithmRIPEMD160, regexp.MustCompile(`^[a-fA-F0-9]{40}$`)},
	{domain.AlgorithmSHA224, regexp.MustCompile(`^[a-fA-F0-9]{56}$`)},
	{domain.AlgorithmSHA256, regexp.MustCompile(`^[a-fA-F0-9]{64}$`)},
	{domain.AlgorithmSHA384, regexp.MustCompile(`^[a-fA-F0-9]{96}$`)},
	{domain.AlgorithmSHA512, regexp.MustCompile(`^[a-fA-F0-9]{128}$`)},
	{domain.AlgorithmWhirlpool, regexp.MustCompile(`^[a-fA-F0-9]{128}$`)},
	{domain.AlgorithmBcrypt, regexp.MustCompile(`^\$2[aby]\$\d{1,2}\$[./A-Za-z0-9]{53}$`)},
}

// Identify returns the first algorithm whose pattern matches digest, with
// high confidence, or AlgorithmUnknown with low confidence.
func Identify(digest string) domain.Fingerprint {
	for _, p := range patterns {
		if p.re.MatchString(digest) {
			return domain.Fingerprint{Algorithm: p.algorithm, Confidence: domain.ConfidenceHigh}
		}
	}

	return domain.Fingerprint{Algorithm: domain.AlgorithmUnknown, Confidence: domain.ConfidenceLow}
}

// Candidates returns every algorithm whose pattern matches digest, in table
// order. The first element, if any, is what Identify reports.
func Candidates(digest string) []domain.Algorithm {
	var out []domain.Algorithm
	for _, p := range patterns {
		if p.re.MatchString(digest) {
			out = append(out, p.algorithm)
		}
	}

	return out
}

// Ambiguous reports whether more than one algorithm shares digest's shape.
func Ambiguous(digest string) bool {
	return len(Candidates(digest)) > 1
}
