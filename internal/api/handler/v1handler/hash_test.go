package v1handler_test

import (
	"encoding/json"
	"hashhush/internal/api/handler/v1handler"
	mockcracker "hashhush/internal/cracker/mock"
	"hashhush/pkg/domain"
	"hashhush/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, opts v1handler.Options) (*mockcracker.MockCracker, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mockcracker.NewMockCracker(ctrl)

	h := v1handler.New(v1handler.Deps{Cracker: m}, opts)
	mux := http.NewServeMux()
	h.Register(mux, nil)
	mux.HandleFunc("/", h.NotFound)

	return m, mux
}

func do(t *testing.T, srv http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	res := rec.Result()
	defer func() {
		_ = res.Body.Close()
	}()
	require.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))

	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))

	return res.StatusCode, out
}

func TestHealth(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	status, body := do(t, srv, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]any{"status": "OK", "message": "Hash Hush API is running"}, body)
}

func TestAlgorithms(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/algorithms", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, len(domain.Algorithms()))
	require.Equal(t, map[string]string{"name": "MD5", "value": "md5", "description": "128-bit hash function"}, out[0])
	require.Equal(t, "bcrypt", out[len(out)-1]["value"])
}

func TestDetect(t *testing.T) {
	m, srv := newTestServer(t, v1handler.Options{})
	hash := "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"

	m.EXPECT().Detect(gomock.Any(), hash).Return(&domain.Detection{
		Hash:        hash,
		Fingerprint: domain.Fingerprint{Algorithm: domain.AlgorithmSHA1, Confidence: domain.ConfidenceHigh},
		Candidates:  []domain.Algorithm{domain.AlgorithmSHA1, domain.AlgorithmRIPEMD160},
	}, nil)

	status, body := do(t, srv, http.MethodPost, "/api/detect", `{"hash":"`+hash+`","extra":[1,2]}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]any{
		"hash":         hash,
		"detectedType": "sha1",
		"confidence":   "high",
		"candidates":   []any{"sha1", "ripemd160"},
	}, body)
}

func TestDetect_MissingHash(t *testing.T) {
	m, srv := newTestServer(t, v1handler.Options{})

	m.EXPECT().Detect(gomock.Any(), "").Return(nil, serrors.With(serrors.ErrMissingInput, "hash is required"))

	status, body := do(t, srv, http.MethodPost, "/api/detect", "")
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "MISSING_INPUT", body["code"])
	require.Equal(t, "hash is required", body["message"])
}

func TestDetect_MalformedBody(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	for _, body := range []string{
		`{"hash":`, `[]`, `{"hash":42}`, `"hash"`,
		`{"hash":"5f4dcc3b5aa765d61d8327deb882cf99"} garbage`,
		`{"hash":"5f4dcc3b5aa765d61d8327deb882cf99"}{}`,
	} {
		status, res := do(t, srv, http.MethodPost, "/api/detect", body)
		require.Equal(t, http.StatusBadRequest, status, body)
		require.Equal(t, "BAD_REQUEST", res["code"], body)
	}
}

func TestDetect_TrailingWhitespace(t *testing.T) {
	m, srv := newTestServer(t, v1handler.Options{})

	m.EXPECT().Detect(gomock.Any(), "5f4dcc3b5aa765d61d8327deb882cf99").Return(&domain.Detection{
		Hash:        "5f4dcc3b5aa765d61d8327deb882cf99",
		Fingerprint: domain.Fingerprint{Algorithm: domain.AlgorithmMD5, Confidence: domain.ConfidenceHigh},
		Candidates:  []domain.Algorithm{domain.AlgorithmMD5},
	}, nil)

	status, _ := do(t, srv, http.MethodPost, "/api/detect", "{\"hash\":\"5f4dcc3b5aa765d61d8327deb882cf99\"}\n\t ")
	require.Equal(t, http.StatusOK, status)
}

func TestGenerate(t *testing.T) {
	m, srv := newTestServer(t, v1handler.Options{})

	m.EXPECT().Generate(gomock.Any(), "password", "md5").Return(&domain.Generation{
		OriginalText: "password",
		Algorithm:    domain.AlgorithmMD5,
		Hash:         "5f4dcc3b5aa765d61d8327deb882cf99",
	}, nil)

	status, body := do(t, srv, http.MethodPost, "/api/generate", `{"text":"password","algorithm":"md5"}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]any{
		"originalText": "password",
		"algorithm":    "md5",
		"hash":         "5f4dcc3b5aa765d61d8327deb882cf99",
	}, body)
}

func TestGenerate_Unsupported(t *testing.T) {
	m, srv := newTestServer(t, v1handler.Options{})

	m.EXPECT().Generate(gomock.Any(), "password", "crc32").
		Return(nil, serrors.With(serrors.ErrUnsupportedAlgorithm, `unsupported hash algorithm "crc32"`))

	status, body := do(t, srv, http.MethodPost, "/api/generate", `{"text":"password","algorithm":"crc32"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "UNSUPPORTED_ALGORITHM", body["code"])
}

func TestCrack_Found(t *testing.T) {
	m, srv := newTestServer(t, v1handler.Options{})
	hash := "e10adc3949ba59abbe56e057f20f883e"
	res := domain.Found("123456", domain.AlgorithmMD5)

	m.EXPECT().Crack(gomock.Any(), hash, "", []string{"abc", "123456"}).Return(&res, nil)

	status, body := do(t, srv, http.MethodPost, "/api/crack", `{"hash":"`+hash+`","dictionary":["abc","123456"]}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]any{
		"hash":      hash,
		"algorithm": "md5",
		"found":     true,
		"password":  "123456",
	}, body)
}

func TestCrack_NotFound(t *testing.T) {
	m, srv := newTestServer(t, v1handler.Options{})
	hash := "5f4dcc3b5aa765d61d8327deb882cf99"
	res := domain.Exhausted(domain.AlgorithmMD5)

	// null dictionary falls back to the built-in list inside the cracker
	m.EXPECT().Crack(gomock.Any(), hash, "md5", gomock.Nil()).Return(&res, nil)

	status, body := do(t, srv, http.MethodPost, "/api/crack",
		`{"hash":"`+hash+`","algorithm":"md5","dictionary":null}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, false, body["found"])
	require.Contains(t, body, "password")
	require.Nil(t, body["password"])
}

func TestCrack_Undetectable(t *testing.T) {
	m, srv := newTestServer(t, v1handler.Options{})

	m.EXPECT().Crack(gomock.Any(), "zzz", "", gomock.Nil()).
		Return(nil, serrors.With(serrors.ErrAlgorithmUndetectable, "unable to detect hash algorithm"))

	status, body := do(t, srv, http.MethodPost, "/api/crack", `{"hash":"zzz"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "ALGORITHM_UNDETECTABLE", body["code"])
	require.Equal(t, "unable to detect hash algorithm", body["message"])
}

func TestCrack_Limits(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{MaxBodyBytes: 64, MaxDictionarySize: 2})

	status, body := do(t, srv, http.MethodPost, "/api/crack", `{"hash":"x","dictionary":["a","b","c"]}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "BAD_REQUEST", body["code"])

	status, body = do(t, srv, http.MethodPost, "/api/crack", `{"hash":"`+strings.Repeat("a", 128)+`"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "BAD_REQUEST", body["code"])

	_, body = do(t, srv, http.MethodPost, "/api/crack", `{"hash":"x","dictionary":[1]}`)
	require.Equal(t, "BAD_REQUEST", body["code"])
}

func TestTestCrack(t *testing.T) {
	m, srv := newTestServer(t, v1handler.Options{})
	hash := "5f4dcc3b5aa765d61d8327deb882cf99"
	res := domain.Found("password", domain.AlgorithmMD5)

	gomock.InOrder(
		m.EXPECT().Generate(gomock.Any(), "password", "md5").Return(&domain.Generation{
			OriginalText: "password",
			Algorithm:    domain.AlgorithmMD5,
			Hash:         hash,
		}, nil),
		m.EXPECT().Crack(gomock.Any(), hash, "md5", gomock.Nil()).Return(&res, nil),
	)

	status, body := do(t, srv, http.MethodGet, "/api/test-crack", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]any{
		"testPassword": "password",
		"testHash":     hash,
		"result":       map[string]any{"found": true, "password": "password", "algorithm": "md5"},
		"success":      true,
	}, body)
}

func TestUnknownRoute(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	status, body := do(t, srv, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "NOT_FOUND", body["code"])
	require.Equal(t, "route not found", body["message"])
}
