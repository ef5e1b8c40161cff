package domain

// Detection is the outcome of classifying one digest. Candidates lists
// every algorithm sharing the digest's shape, in classification order.
type Detection struct {
	Hash        string
	Fingerprint Fingerprint
	Candidates  []Algorithm
}

// Generation is a digest computed from plaintext.
type Generation struct {
	OriginalText string
	Algorithm    Algorithm
	Hash         string
}
