package domain

import "strings"

// Algorithm identifies a hashing algorithm. The set is closed; Unknown is a
// valid classification result rather than an error.
type Algorithm string

const (
	AlgorithmMD5       Algorithm = "md5"
	AlgorithmSHA1      Algorithm = "sha1"
	AlgorithmSHA224    Algorithm = "sha224"
	AlgorithmSHA256    Algorithm = "sha256"
	AlgorithmSHA384    Algorithm = "sha384"
	AlgorithmSHA512    Algorithm = "sha512"
	AlgorithmRIPEMD160 Algorithm = "ripemd160"
	AlgorithmWhirlpool Algorithm = "whirlpool"
	AlgorithmBcrypt    Algorithm = "bcrypt"
	// AlgorithmUnknown is returned when a digest does not match any known pattern.
	AlgorithmUnknown Algorithm = "unknown"
)

// AlgorithmInfo describes a supported algorithm for listings.
type AlgorithmInfo struct {
	Name        string    `json:"name"`
	Value       Algorithm `json:"value"`
	Description string    `json:"description"`
}

// algorithms is the supported set in catalogue order.
var algorithms = []AlgorithmInfo{ //nolint: gochecknoglobals
	{Name: "MD5", Value: AlgorithmMD5, Description: "128-bit hash function"},
	{Name: "SHA-1", Value: AlgorithmSHA1, Description: "160-bit hash function"},
	{Name: "SHA-256", Value: AlgorithmSHA256, Description: "256-bit hash function"},
	{Name: "SHA-512", Value: AlgorithmSHA512, Description: "512-bit hash function"},
	{Name: "SHA-224", Value: AlgorithmSHA224, Description: "224-bit hash function"},
	{Name: "SHA-384", Value: AlgorithmSHA384, Description: "384-bit hash function"},
	{Name: "RIPEMD-160", Value: AlgorithmRIPEMD160, Description: "160-bit hash function"},
	{Name: "Whirlpool", Value: AlgorithmWhirlpool, Description: "512-bit hash function"},
	{Name: "bcrypt", Value: AlgorithmBcrypt, Description: "Password hashing function"},
}

// Algorithms returns the catalogue of supported algorithms.
func Algorithms() []AlgorithmInfo {
	out := make([]AlgorithmInfo, len(algorithms))
	copy(out, algorithms)

	return out
}

// ParseAlgorithm maps a case-insensitive name onto the supported set. The
// second return value is false (and the algorithm AlgorithmUnknown) when the
// name is not a supported algorithm.
func ParseAlgorithm(name string) (Algorithm, bool) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if a.Supported() {
		return a, true
	}

	return AlgorithmUnknown, false
}

// Supported reports whether a names an algorithm digests can be computed with.
func (a Algorithm) Supported() bool {
	switch a {
	case AlgorithmMD5, AlgorithmSHA1, AlgorithmSHA224, AlgorithmSHA256, AlgorithmSHA384,
		AlgorithmSHA512, AlgorithmRIPEMD160, AlgorithmWhirlpool, AlgorithmBcrypt:
		return true
	case AlgorithmUnknown:
		return false
	default:
		return false
	}
}

// Adaptive reports whether the algorithm salts its output, which makes
// digests non-deterministic and comparison a verify operation.
func (a Algorithm) Adaptive() bool {
	return a == AlgorithmBcrypt
}

func (a Algorithm) String() string { return string(a) }
