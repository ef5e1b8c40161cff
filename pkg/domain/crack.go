package domain

// CrackResult is the outcome of a dictionary attack against one digest.
// Password is nil when no candidate matched.
type CrackResult struct {
	Found     bool      `json:"found"`
	Password  *string   `json:"password"`
	Algorithm Algorithm `json:"algorithm"`
}

// Found builds a successful result for the given plaintext.
func Found(password string, algorithm Algorithm) CrackResult {
	return CrackResult{Found: true, Password: &password, Algorithm: algorithm}
}

// Exhausted builds a result for a scan that matched nothing.
func Exhausted(algorithm Algorithm) CrackResult {
	return CrackResult{Algorithm: algorithm}
}
