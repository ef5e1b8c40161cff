package domain

// Confidence expresses how certain a fingerprint classification is.
type Confidence string

const (
	// ConfidenceHigh means a structural pattern matched the digest.
	ConfidenceHigh Confidence = "high"
	// ConfidenceLow means the digest could not be classified.
	ConfidenceLow Confidence = "low"
)

// Fingerprint is the result of classifying a digest string.
type Fingerprint struct {
	Algorithm  Algorithm  `json:"detectedType"`
	Confidence Confidence `json:"confidence"`
}
