package digest

import (
	"errors"
	"fmt"
	"hashhush/pkg/domain"
	"hashhush/pkg/serrors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor for generated bcrypt digests.
const DefaultBcryptCost = 10

type adaptive struct {
	cost int
}

func newBcrypt(cost int) adaptive {
	if cost == 0 {
		cost = DefaultBcryptCost
	}

	return adaptive{cost: cost}
}

func (a adaptive) Algorithm() domain.Algorithm { return domain.AlgorithmBcrypt }

// MaxBcryptPlaintext is the longest plaintext bcrypt accepts, in bytes.
const MaxBcryptPlaintext = 72

// Compute returns a freshly salted digest; two calls never return the same
// string. Plaintexts longer than MaxBcryptPlaintext bytes are rejected with
// serrors.ErrBadRequest.
func (a adaptive) Compute(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), a.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "text is %d bytes, bcrypt accepts at most %d",
			len(plaintext), MaxBcryptPlaintext)
	}
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(out), nil
}

// Compare verifies plaintext against the salt and cost embedded in target.
func (a adaptive) Compare(target, plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(target), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("could not verify bcrypt digest: %w", err)
	}
}
