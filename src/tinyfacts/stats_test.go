package tinyfacts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyfacts/tinyfacts/src/tinyfacts"
)

func TestCollectGenStats(t *testing.T) {
	dict := testDict()
	folder := t.TempDir()

	created := filepath.Join(folder, "gpt-4_1-nano_created")
	require.NoError(t, os.MkdirAll(created, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(created, "a.txt"), []byte("He goes there."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(created, "b.txt"), []byte("he went home"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(created, "c.txt"), []byte("zog goes there"), 0644))
	// files outside *_created folders are ignored
	require.NoError(t, os.WriteFile(filepath.Join(folder, "notes.txt"), []byte("zog"), 0644))

	stats, err := tinyfacts.CollectGenStats(dict, folder)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FileCount)
	assert.Equal(t, 1, stats.InvalidFileCount)
	assert.Equal(t, 6, stats.WordCount)
	// he, goes, there, went, home
	assert.Equal(t, 5, stats.UniqueWordCount)
}

func TestCollectGenStats_Empty(t *testing.T) {
	stats, err := tinyfacts.CollectGenStats(testDict(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, tinyfacts.GenStats{}, stats)
}

func TestOutputFolder(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "gpt-4_1-nano_created"), tinyfacts.OutputFolder("out", "gpt-4.1-nano"))
	assert.Equal(t, filepath.Join("out", "qwen3_8b_created"), tinyfacts.OutputFolder("out", "qwen3:8b"))
	assert.Equal(t, filepath.Join("out", "org_model_created"), tinyfacts.OutputFolder("out", "org/model"))
}
