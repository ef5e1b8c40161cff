package cracker

import (
	"context"
	"hashhush/pkg/domain"
)

// Cracker exposes the three engine operations. Implementations are
// stateless per call and safe for concurrent use.
//
//go:generate mockgen -package mockcracker -source=interface.go -destination=mock/mockcracker.go *
type Cracker interface {
	// Detect classifies hash by structure.
	Detect(ctx context.Context, hash string) (*domain.Detection, error)
	// Generate computes the digest of text under the named algorithm.
	Generate(ctx context.Context, text string, algorithm string) (*domain.Generation, error)
	// Crack searches candidates, or the built-in dictionary when candidates is
	// empty, for the plaintext of hash. An empty algorithm is detected from hash.
	Crack(ctx context.Context, hash string, algorithm string, candidates []string) (*domain.CrackResult, error)
}
