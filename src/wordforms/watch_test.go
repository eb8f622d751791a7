package wordforms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "word-forms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"go": {"base": "go"}}`), 0644))

	h, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Dictionary().Len())

	require.NoError(t, os.WriteFile(path, []byte(`{"go": {"base": "go"}, "he": {"base": "he"}}`), 0644))
	require.NoError(t, h.Reload())
	assert.Equal(t, 2, h.Dictionary().Len())
	assert.True(t, h.Dictionary().Contains("he"))
}

func TestHandle_ReloadKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "word-forms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"go": {"base": "go"}}`), 0644))

	h, err := Open(path)
	require.NoError(t, err)
	prev := h.Dictionary()

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	assert.Error(t, h.Reload())
	assert.Same(t, prev, h.Dictionary())
}
