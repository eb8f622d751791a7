package tinyfacts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

// GenStats summarizes a folder of generated explanations. Files live under
// per-model subfolders named <model>_created; files containing disallowed
// words are counted separately and excluded from the word totals.
type GenStats struct {
	FileCount        int
	InvalidFileCount int
	WordCount        int
	UniqueWordCount  int
}

// CollectGenStats classifies every *_created/*.txt file under folder.
func CollectGenStats(dict *wordforms.Dictionary, folder string) (GenStats, error) {
	fsys := os.DirFS(folder)
	paths, err := doublestar.Glob(fsys, "*_created/*.txt")
	if err != nil {
		return GenStats{}, err
	}

	var stats GenStats
	wordSet := make(map[string]struct{})
	for _, path := range paths {
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return GenStats{}, err
		}
		words := SplitWords(string(raw))
		if len(CheckWords(dict, words)) > 0 {
			stats.InvalidFileCount++
			continue
		}
		stats.FileCount++
		stats.WordCount += len(words)
		for _, w := range words {
			wordSet[w] = struct{}{}
		}
	}
	stats.UniqueWordCount = len(wordSet)
	return stats, nil
}

var folderReplacer = strings.NewReplacer(".", "_", "/", "_", ":", "_")

// OutputFolder derives the save folder for a model's generated texts,
// flattening characters that do not belong in a path.
func OutputFolder(base, modelName string) string {
	return filepath.Join(base, folderReplacer.Replace(modelName)+"_created")
}
