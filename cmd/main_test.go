package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"hashhush/internal/api/handler/v1handler"
	"hashhush/internal/config"
	"hashhush/internal/cracker"
	"hashhush/pkg/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	require.Equal(t, []string{"-c", "a.yml"}, configArgs([]string{"crack", "-c", "a.yml", "--wordlist", "w"}))
	require.Equal(t, []string{"-c", "b.yml"}, configArgs([]string{"--config=b.yml", "serve"}))
	require.Equal(t, []string{"-c", "c.yml"}, configArgs([]string{"--config", "c.yml"}))
	require.Nil(t, configArgs([]string{"crack", "--workers", "4"}))
	require.Nil(t, configArgs([]string{"serve", "-c"}))
}

func TestGenerate_All(t *testing.T) {
	var out bytes.Buffer
	c := cracker.New(cracker.Options{}, nil)

	require.NoError(t, generate(context.Background(), &out, c, "password", allAlgorithms))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(domain.Algorithms())-1)
	require.Equal(t, []string{"md5", "5f4dcc3b5aa765d61d8327deb882cf99"}, strings.Fields(lines[0]))
	require.NotContains(t, out.String(), "bcrypt")
}

func TestGenerate_Single(t *testing.T) {
	var out bytes.Buffer
	c := cracker.New(cracker.Options{}, nil)

	require.NoError(t, generate(context.Background(), &out, c, "password", "sha1"))
	require.Equal(t, "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8\n", out.String())

	require.Error(t, generate(context.Background(), &out, c, "password", "crc32"))
}

func TestPrintDetection(t *testing.T) {
	var out bytes.Buffer
	printDetection(&out, &domain.Detection{
		Hash:        strings.Repeat("a", 40),
		Fingerprint: domain.Fingerprint{Algorithm: domain.AlgorithmSHA1, Confidence: domain.ConfidenceHigh},
		Candidates:  []domain.Algorithm{domain.AlgorithmSHA1, domain.AlgorithmRIPEMD160},
	})

	require.Equal(t, "type:       sha1\nconfidence: high\ncandidates: sha1, ripemd160\n", out.String())
}

func TestCrackCommand_Wordlist(t *testing.T) {
	wordlist := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(wordlist, []byte("alpha\nbravo\r\ncharlie\n"), 0o600))

	var cfg config.Config
	cfg.Cracker.Workers = 1

	// sha256("bravo")
	cmd := crackCommand(&cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--wordlist", wordlist, "--workers", "2",
		"f144a6907dc4284d1f9fe6a7d9b9ff53c02c1d07ba68f24d413d7ff7f757a782"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "found (sha256): bravo\n", out.String())
}

func TestSignToken(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	token, err := signToken(string(privPEM), "analyst", time.Hour, time.Now())
	require.NoError(t, err)

	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: string(pubPEM)})
	require.NoError(t, err)
	ctx, err := sh.HandleBearerAuth(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "analyst", v1handler.GetSubjectFromContext(ctx))

	_, err = signToken("not a key", "analyst", time.Hour, time.Now())
	require.Error(t, err)
}
