package tinyfacts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyfacts/tinyfacts/src/tinyfacts"
	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

func testHandle(t *testing.T) *wordforms.Handle {
	t.Helper()
	path := filepath.Join(t.TempDir(), "word-forms.json")
	raw := `{
		"go": {"base": "go", "verb-3sg-present": "goes", "verb-past": "went"},
		"he": {"base": "he"},
		"there": {"base": "there"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))
	h, err := wordforms.Open(path)
	require.NoError(t, err)
	return h
}

func TestAPI_Check(t *testing.T) {
	srv := httptest.NewServer(tinyfacts.NewAPIHandler(testHandle(t)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/check", "application/json",
		strings.NewReader(`{"text": "He zog there.", "context_radius": 1}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		WordCount    int                     `json:"word_count"`
		Valid        bool                    `json:"valid"`
		InvalidWords []tinyfacts.InvalidWord `json:"invalid_words"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.WordCount)
	assert.False(t, body.Valid)
	require.Len(t, body.InvalidWords, 1)
	assert.Equal(t, "zog", body.InvalidWords[0].Word)
	assert.Equal(t, 1, body.InvalidWords[0].Index)
	assert.Equal(t, "he zog there", body.InvalidWords[0].Context)
}

func TestAPI_CheckValid(t *testing.T) {
	srv := httptest.NewServer(tinyfacts.NewAPIHandler(testHandle(t)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/check", "application/json",
		strings.NewReader(`{"text": "He goes there."}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Valid        bool                    `json:"valid"`
		InvalidWords []tinyfacts.InvalidWord `json:"invalid_words"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Valid)
	assert.Empty(t, body.InvalidWords)
}

func TestAPI_Lookup(t *testing.T) {
	srv := httptest.NewServer(tinyfacts.NewAPIHandler(testHandle(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/lookup?form=goes")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Form string `json:"form"`
		Base string `json:"base"`
		Tag  string `json:"tag"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "goes", body.Form)
	assert.Equal(t, "go", body.Base)
	assert.Equal(t, "verb-3sg-present", body.Tag)

	resp404, err := http.Get(srv.URL + "/api/lookup?form=zog")
	require.NoError(t, err)
	defer resp404.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp404.StatusCode)
}

func TestAPI_AllowedAndComplete(t *testing.T) {
	srv := httptest.NewServer(tinyfacts.NewAPIHandler(testHandle(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/allowed")
	require.NoError(t, err)
	defer resp.Body.Close()
	var allowed []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&allowed))
	assert.Equal(t, []string{"go", "goes", "he", "there", "went"}, allowed)

	resp2, err := http.Get(srv.URL + "/api/complete?prefix=goe")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var comp struct {
		Prefix string `json:"prefix"`
		Found  bool   `json:"found"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&comp))
	assert.True(t, comp.Found)
}
