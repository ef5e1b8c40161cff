package v1handler

import (
	"hashhush/pkg/domain"
	"hashhush/pkg/serrors"
	"net/http"
)

const (
	// selfTestPassword is cracked by TestCrack from its md5 digest.
	selfTestPassword  = "password"
	selfTestAlgorithm = domain.AlgorithmMD5
)

// Health reports that the service is up.
func (h Handler) Health(_ http.ResponseWriter, _ *http.Request) (encoder, error) {
	return HealthResponse{Status: "OK", Message: "Hash Hush API is running"}, nil
}

// Algorithms lists the supported algorithms.
func (h Handler) Algorithms(_ http.ResponseWriter, _ *http.Request) (encoder, error) {
	return AlgorithmsResponse(domain.Algorithms()), nil
}

// Detect classifies a digest.
func (h Handler) Detect(w http.ResponseWriter, r *http.Request) (encoder, error) {
	data, err := readBody(w, r, h.options.MaxBodyBytes)
	if err != nil {
		return nil, err
	}

	var req DetectRequest
	if err = req.Decode(data); err != nil {
		return nil, err
	}

	res, err := h.deps.Cracker.Detect(r.Context(), req.Hash)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DetectResponse{Detection: *res}, nil
}

// Generate computes a digest of the given text.
func (h Handler) Generate(w http.ResponseWriter, r *http.Request) (encoder, error) {
	data, err := readBody(w, r, h.options.MaxBodyBytes)
	if err != nil {
		return nil, err
	}

	var req GenerateRequest
	if err = req.Decode(data); err != nil {
		return nil, err
	}

	res, err := h.deps.Cracker.Generate(r.Context(), req.Text, req.Algorithm)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return GenerateResponse{Generation: *res}, nil
}

// Crack runs a dictionary attack against a digest, using the caller's
// dictionary when one is given and the built-in list otherwise.
func (h Handler) Crack(w http.ResponseWriter, r *http.Request) (encoder, error) {
	data, err := readBody(w, r, h.options.MaxBodyBytes)
	if err != nil {
		return nil, err
	}

	var req CrackRequest
	if err = req.Decode(data); err != nil {
		return nil, err
	}
	if limit := h.options.MaxDictionarySize; limit > 0 && len(req.Dictionary) > limit {
		return nil, serrors.With(serrors.ErrBadRequest, "dictionary has %d entries, at most %d are allowed",
			len(req.Dictionary), limit)
	}

	res, err := h.deps.Cracker.Crack(r.Context(), req.Hash, req.Algorithm, req.Dictionary)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return CrackResponse{Hash: req.Hash, Result: *res}, nil
}

// TestCrack generates a known digest and cracks it with the built-in
// dictionary, reporting whether the round trip recovered the plaintext.
func (h Handler) TestCrack(_ http.ResponseWriter, r *http.Request) (encoder, error) {
	gen, err := h.deps.Cracker.Generate(r.Context(), selfTestPassword, selfTestAlgorithm.String())
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	res, err := h.deps.Cracker.Crack(r.Context(), gen.Hash, selfTestAlgorithm.String(), nil)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return TestCrackResponse{
		TestPassword: selfTestPassword,
		TestHash:     gen.Hash,
		Result:       *res,
		Success:      res.Found && res.Password != nil && *res.Password == selfTestPassword,
	}, nil
}
