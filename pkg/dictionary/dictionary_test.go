package dictionary_test

import (
	"hashhush/pkg/dictionary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_Order(t *testing.T) {
	list := dictionary.Default()
	require.Equal(t, dictionary.Len(), len(list))
	require.Equal(t, []string{"password", "123456", "123456789", "qwerty"}, list[:4])
	require.Equal(t, "administrator0", list[len(list)-1])

	for i, w := range list {
		require.NotEmpty(t, w, "entry %d is empty", i)
	}
}

func TestDefault_AppendDoesNotLeak(t *testing.T) {
	list := dictionary.Default()
	_ = append(list, "injected")

	again := dictionary.Default()
	require.Len(t, again, dictionary.Len())
	require.NotEqual(t, "injected", again[len(again)-1])
}

func TestRead(t *testing.T) {
	words, err := dictionary.Read(strings.NewReader("alpha\r\n\nbeta gamma\n  delta\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta gamma", "  delta"}, words)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o600))

	words, err := dictionary.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, words)

	_, err = dictionary.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
