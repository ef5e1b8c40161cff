package digest

import (
	"crypto/md5"  //nolint: gosec
	"crypto/sha1" //nolint: gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"hashhush/pkg/domain"
	"strings"

	"github.com/jzelinskie/whirlpool"
	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" //nolint: staticcheck
)

// fixedHashes maps every fixed-output algorithm to its hash constructor.
var fixedHashes = map[domain.Algorithm]func() hash.Hash{ //nolint: gochecknoglobals
	domain.AlgorithmMD5:       md5.New,
	domain.AlgorithmSHA1:      sha1.New,
	domain.AlgorithmSHA224:    sha256.New224,
	domain.AlgorithmSHA256:    sha256simd.New,
	domain.AlgorithmSHA384:    sha512.New384,
	domain.AlgorithmSHA512:    sha512.New,
	domain.AlgorithmRIPEMD160: ripemd160.New,
	domain.AlgorithmWhirlpool: whirlpool.New,
}

// fixed is a Comparer for deterministic digests.
type fixed struct {
	alg     domain.Algorithm
	newHash func() hash.Hash
}

func (f fixed) Algorithm() domain.Algorithm { return f.alg }

func (f fixed) Compute(plaintext string) (string, error) {
	h := f.newHash()
	// hash.Hash.Write never returns an error
	_, _ = h.Write([]byte(plaintext))

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (f fixed) Compare(target, plaintext string) (bool, error) {
	got, err := f.Compute(plaintext)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(got, target), nil
}
